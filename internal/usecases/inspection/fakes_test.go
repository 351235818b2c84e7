package inspection_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Trio2/telegram-construction-bot/internal/adapters/secondary/n8n"
	"github.com/Trio2/telegram-construction-bot/internal/adapters/secondary/storage/inmemory"
	"github.com/Trio2/telegram-construction-bot/internal/domain"
	"github.com/Trio2/telegram-construction-bot/internal/ports/cache"
	inspectionUsecase "github.com/Trio2/telegram-construction-bot/internal/usecases/inspection"
)

// sentMessage запись об одном вызове Telegram-клиента
type sentMessage struct {
	kind      string // send, markdown, keyboard, placeholder, edit, editKeyboard, delete, answer
	chatID    int64
	messageID int64
	text      string
	keyboard  map[string]interface{}
}

// fakeTelegram записывает все исходящие вызовы Telegram API
type fakeTelegram struct {
	mu            sync.Mutex
	nextMessageID int64
	sent          []sentMessage
}

func newFakeTelegram() *fakeTelegram {
	return &fakeTelegram{nextMessageID: 1000}
}

func (f *fakeTelegram) record(msg sentMessage) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
}

func (f *fakeTelegram) SendMessage(ctx context.Context, chatID int64, text string) error {
	f.record(sentMessage{kind: "send", chatID: chatID, text: text})
	return nil
}

func (f *fakeTelegram) SendMessageWithMarkdown(ctx context.Context, chatID int64, text string) error {
	f.record(sentMessage{kind: "markdown", chatID: chatID, text: text})
	return nil
}

func (f *fakeTelegram) SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard map[string]interface{}) error {
	f.record(sentMessage{kind: "keyboard", chatID: chatID, text: text, keyboard: keyboard})
	return nil
}

func (f *fakeTelegram) SendMessageForResult(ctx context.Context, chatID int64, text string) (int64, error) {
	f.mu.Lock()
	f.nextMessageID++
	id := f.nextMessageID
	f.mu.Unlock()
	f.record(sentMessage{kind: "placeholder", chatID: chatID, messageID: id, text: text})
	return id, nil
}

func (f *fakeTelegram) EditMessageText(ctx context.Context, chatID int64, messageID int64, text string) error {
	f.record(sentMessage{kind: "edit", chatID: chatID, messageID: messageID, text: text})
	return nil
}

func (f *fakeTelegram) EditMessageWithKeyboard(ctx context.Context, chatID int64, messageID int64, text string, keyboard map[string]interface{}) error {
	f.record(sentMessage{kind: "editKeyboard", chatID: chatID, messageID: messageID, text: text, keyboard: keyboard})
	return nil
}

func (f *fakeTelegram) DeleteMessage(ctx context.Context, chatID int64, messageID int64) error {
	f.record(sentMessage{kind: "delete", chatID: chatID, messageID: messageID})
	return nil
}

func (f *fakeTelegram) AnswerCallbackQuery(ctx context.Context, callbackID string, text string, showAlert bool) error {
	f.record(sentMessage{kind: "answer", text: text})
	return nil
}

// lastByKind возвращает последний вызов указанного вида
func (f *fakeTelegram) lastByKind(kind string) (sentMessage, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.sent) - 1; i >= 0; i-- {
		if f.sent[i].kind == kind {
			return f.sent[i], true
		}
	}
	return sentMessage{}, false
}

func (f *fakeTelegram) countByKind(kind string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, msg := range f.sent {
		if msg.kind == kind {
			count++
		}
	}
	return count
}

// fakeSubmissionRepo журнал заявок в памяти
type fakeSubmissionRepo struct {
	mu          sync.Mutex
	submissions map[uuid.UUID]*domain.Submission
	order       []uuid.UUID
	createErr   error // если задана, Create падает с этой ошибкой
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{submissions: make(map[uuid.UUID]*domain.Submission)}
}

func (r *fakeSubmissionRepo) Create(ctx context.Context, submission *domain.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	copied := *submission
	r.submissions[submission.ID] = &copied
	r.order = append(r.order, submission.ID)
	return nil
}

func (r *fakeSubmissionRepo) Update(ctx context.Context, submission *domain.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.submissions[submission.ID]; !ok {
		return domain.ErrSubmissionNotFound
	}
	copied := *submission
	r.submissions[submission.ID] = &copied
	return nil
}

func (r *fakeSubmissionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	submission, ok := r.submissions[id]
	if !ok {
		return nil, domain.ErrSubmissionNotFound
	}
	copied := *submission
	return &copied, nil
}

func (r *fakeSubmissionRepo) ListQueued(ctx context.Context, limit int) ([]domain.Submission, error) {
	return r.listByStatus(limit, domain.SubmissionQueued), nil
}

func (r *fakeSubmissionRepo) ListPendingByChat(ctx context.Context, chatID int64, limit int) ([]domain.Submission, error) {
	return r.listByChat(chatID, limit, domain.SubmissionQueued, domain.SubmissionDelivered), nil
}

func (r *fakeSubmissionRepo) ListCompletedByChat(ctx context.Context, chatID int64, limit int) ([]domain.Submission, error) {
	return r.listByChat(chatID, limit, domain.SubmissionScheduled, domain.SubmissionCompleted), nil
}

func (r *fakeSubmissionRepo) listByStatus(limit int, statuses ...domain.SubmissionStatus) []domain.Submission {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Submission
	for _, id := range r.order {
		if len(out) >= limit {
			break
		}
		sub := r.submissions[id]
		for _, status := range statuses {
			if sub.Status == status {
				out = append(out, *sub)
				break
			}
		}
	}
	return out
}

func (r *fakeSubmissionRepo) listByChat(chatID int64, limit int, statuses ...domain.SubmissionStatus) []domain.Submission {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Submission
	for _, id := range r.order {
		if len(out) >= limit {
			break
		}
		sub := r.submissions[id]
		if sub.ChatID != chatID {
			continue
		}
		for _, status := range statuses {
			if sub.Status == status {
				out = append(out, *sub)
				break
			}
		}
	}
	return out
}

func (r *fakeSubmissionRepo) all() []domain.Submission {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Submission, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.submissions[id])
	}
	return out
}

// fakeCache кеш списков в памяти, фиксирует удаления ключей
type fakeCache struct {
	mu      sync.Mutex
	entries map[string]string
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	if !ok {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return value, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	c.deleted = append(c.deleted, key)
	return nil
}

func (c *fakeCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok, nil
}

func (c *fakeCache) Close() error { return nil }

func (c *fakeCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// newTestService собирает usecase с фейковым Telegram, фейковым журналом
// и реальным n8n-клиентом, направленным на webhookURL
func newTestService(t *testing.T, webhookURL string, tg *fakeTelegram, repo *fakeSubmissionRepo) *inspectionUsecase.Service {
	t.Helper()
	return newTestServiceWithCache(t, webhookURL, tg, repo, nil)
}

// newTestServiceWithCache то же, но с кешем списков
func newTestServiceWithCache(
	t *testing.T,
	webhookURL string,
	tg *fakeTelegram,
	repo *fakeSubmissionRepo,
	cacheClient cache.Cache,
) *inspectionUsecase.Service {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	workflow := n8n.NewClient(&n8n.Config{WebhookURL: webhookURL, TimeoutSeconds: 2}, log)

	svc, err := inspectionUsecase.New(
		inmemory.NewSessionStore(),
		repo,
		workflow,
		tg,
		nil, // без Kafka
		cacheClient,
		log,
	)
	if err != nil {
		t.Fatalf("failed to build inspection service: %v", err)
	}
	return svc
}

func strPtr(s string) *string {
	return &s
}

// leafCallback собирает callback нажатия кнопки меню
func leafCallback(data string, from *domain.TelegramUser, chat *domain.Chat) *domain.CallbackQuery {
	return &domain.CallbackQuery{
		ID:   "cb-" + data,
		From: from,
		Message: &domain.Message{
			MessageID: 7,
			Chat:      chat,
		},
		Data: strPtr(data),
	}
}
