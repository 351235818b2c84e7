package inspection_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Trio2/telegram-construction-bot/internal/domain"
)

func queuedSubmission(chatID int64, inspectionType string) *domain.Submission {
	now := time.Now()
	return &domain.Submission{
		ID:             uuid.New(),
		TelegramUserID: 42,
		UserName:       "Dan Foreman",
		ChatID:         chatID,
		ChatType:       "private",
		InspectionType: inspectionType,
		Notes:          "queued earlier",
		PreferredDate:  "2025-06-15",
		Status:         domain.SubmissionQueued,
		Attempts:       1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestRedeliverQueuedDeliversAndNotifies(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"permit_number":"P-55"}}`))
	}))
	defer srv.Close()

	tg := newFakeTelegram()
	repo := newFakeSubmissionRepo()
	svc := newTestService(t, srv.URL, tg, repo)

	if err := repo.Create(ctx, queuedSubmission(100, "Plumbing")); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, queuedSubmission(200, "Framing")); err != nil {
		t.Fatal(err)
	}

	redelivered, err := svc.RedeliverQueued(ctx)
	if err != nil {
		t.Fatalf("RedeliverQueued: %v", err)
	}
	if redelivered != 2 {
		t.Errorf("redelivered = %d, want 2", redelivered)
	}

	for _, sub := range repo.all() {
		if sub.Status != domain.SubmissionDelivered {
			t.Errorf("submission %s status = %s, want delivered", sub.ID, sub.Status)
		}
		if sub.Attempts != 2 {
			t.Errorf("submission %s attempts = %d, want 2", sub.ID, sub.Attempts)
		}
		if sub.PermitNumber == nil || *sub.PermitNumber != "P-55" {
			t.Errorf("submission %s PermitNumber = %v", sub.ID, sub.PermitNumber)
		}
	}

	// Каждый чат получил итоговое сообщение
	if tg.countByKind("keyboard") != 2 {
		t.Errorf("success notifications = %d, want 2", tg.countByKind("keyboard"))
	}
}

func TestRedeliverQueuedStopsOnNetworkFailure(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	tg := newFakeTelegram()
	repo := newFakeSubmissionRepo()
	svc := newTestService(t, srv.URL, tg, repo)

	if err := repo.Create(ctx, queuedSubmission(100, "Plumbing")); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, queuedSubmission(200, "Framing")); err != nil {
		t.Fatal(err)
	}

	redelivered, err := svc.RedeliverQueued(ctx)
	if err != nil {
		t.Fatalf("RedeliverQueued: %v", err)
	}
	if redelivered != 0 {
		t.Errorf("redelivered = %d, want 0", redelivered)
	}

	subs := repo.all()
	// Первая заявка получила +1 попытку, проход остановился
	if subs[0].Attempts != 2 {
		t.Errorf("first submission attempts = %d, want 2", subs[0].Attempts)
	}
	if subs[1].Attempts != 1 {
		t.Errorf("second submission attempts = %d, want 1: the pass must stop early", subs[1].Attempts)
	}
	for _, sub := range subs {
		if sub.Status != domain.SubmissionQueued {
			t.Errorf("submission %s status = %s, want queued", sub.ID, sub.Status)
		}
	}
}

func TestHandleStatusUpdateSchedulesAndNotifies(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	tg := newFakeTelegram()
	repo := newFakeSubmissionRepo()
	svc := newTestService(t, srv.URL, tg, repo)

	sub := queuedSubmission(100, "Plumbing")
	sub.Status = domain.SubmissionDelivered
	if err := repo.Create(ctx, sub); err != nil {
		t.Fatal(err)
	}

	update := &domain.StatusUpdate{
		SubmissionID: sub.ID.String(),
		ChatID:       100,
		Status:       "scheduled",
		PermitNumber: strPtr("P-88"),
		Note:         strPtr("Inspector arrives at 9am"),
	}

	if err := svc.HandleStatusUpdate(ctx, sub.ID, update); err != nil {
		t.Fatalf("HandleStatusUpdate: %v", err)
	}

	stored, err := repo.GetByID(ctx, sub.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Status != domain.SubmissionScheduled {
		t.Errorf("status = %s, want scheduled", stored.Status)
	}
	if stored.PermitNumber == nil || *stored.PermitNumber != "P-88" {
		t.Errorf("PermitNumber = %v, want P-88", stored.PermitNumber)
	}

	notification, ok := tg.lastByKind("markdown")
	if !ok {
		t.Fatal("chat was not notified about the status change")
	}
	for _, want := range []string{"Inspection Scheduled", "Plumbing", "P-88", "Inspector arrives at 9am"} {
		if !strings.Contains(notification.text, want) {
			t.Errorf("notification missing %q:\n%s", want, notification.text)
		}
	}
}

func TestHandleStatusUpdateRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	tg := newFakeTelegram()
	repo := newFakeSubmissionRepo()
	svc := newTestService(t, srv.URL, tg, repo)

	sub := queuedSubmission(100, "Plumbing")
	if err := repo.Create(ctx, sub); err != nil {
		t.Fatal(err)
	}

	update := &domain.StatusUpdate{
		SubmissionID: sub.ID.String(),
		Status:       "exploded",
	}

	err := svc.HandleStatusUpdate(ctx, sub.ID, update)
	if err == nil {
		t.Fatal("unknown status must be an error")
	}
	if !domain.IsBusinessError(err) {
		t.Errorf("unknown status should be a business error (no consumer retry), got %v", err)
	}

	stored, getErr := repo.GetByID(ctx, sub.ID)
	if getErr != nil {
		t.Fatal(getErr)
	}
	if stored.Status != domain.SubmissionQueued {
		t.Errorf("status changed to %s on an invalid update", stored.Status)
	}
}

func TestPendingListingShowsQueuedAndDelivered(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	tg := newFakeTelegram()
	repo := newFakeSubmissionRepo()
	svc := newTestService(t, srv.URL, tg, repo)

	queued := queuedSubmission(100, "Plumbing")
	if err := repo.Create(ctx, queued); err != nil {
		t.Fatal(err)
	}
	delivered := queuedSubmission(100, "Framing")
	delivered.Status = domain.SubmissionDelivered
	if err := repo.Create(ctx, delivered); err != nil {
		t.Fatal(err)
	}
	otherChat := queuedSubmission(999, "Electrical - Rough")
	if err := repo.Create(ctx, otherChat); err != nil {
		t.Fatal(err)
	}

	if err := svc.HandleCallback(ctx, leafCallback("inspection_pending", testUser, testChat)); err != nil {
		t.Fatalf("HandleCallback: %v", err)
	}

	listing, ok := tg.lastByKind("keyboard")
	if !ok {
		t.Fatal("no listing sent")
	}
	if !strings.Contains(listing.text, "Plumbing") || !strings.Contains(listing.text, "Framing") {
		t.Errorf("listing missing chat submissions:\n%s", listing.text)
	}
	if strings.Contains(listing.text, "Electrical - Rough") {
		t.Error("listing leaked a submission from another chat")
	}
	if !strings.Contains(listing.text, "awaiting delivery") {
		t.Error("queued submissions should be marked as awaiting delivery")
	}
}

func TestCompletedListingEmptyState(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	tg := newFakeTelegram()
	repo := newFakeSubmissionRepo()
	svc := newTestService(t, srv.URL, tg, repo)

	if err := svc.HandleCallback(ctx, leafCallback("inspection_completed", testUser, testChat)); err != nil {
		t.Fatalf("HandleCallback: %v", err)
	}

	listing, ok := tg.lastByKind("keyboard")
	if !ok || !strings.Contains(listing.text, "No completed inspections") {
		t.Fatalf("expected the empty-state message, got %+v", listing)
	}
}
