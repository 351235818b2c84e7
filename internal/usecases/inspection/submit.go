package inspection

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Trio2/telegram-construction-bot/internal/domain"
	"github.com/Trio2/telegram-construction-bot/internal/usecases/inspection/texts"
)

// dispatch отправляет собранную заявку в workflow.
// Сессия удаляется при любом исходе: заявка либо ушла, либо легла
// в журнал со статусом queued и уйдёт джобой редоставки.
func (s *Service) dispatch(ctx context.Context, session *domain.Session) error {
	defer s.Sessions.Delete(session.Key())

	now := time.Now()
	submission := &domain.Submission{
		ID:             uuid.New(),
		TelegramUserID: session.UserID,
		UserName:       session.DisplayName,
		ChatID:         session.ChatID,
		ChatType:       session.ChatType,
		ChatTitle:      session.ChatTitle,
		InspectionType: session.InspectionType,
		Notes:          session.Notes,
		PreferredDate:  session.PreferredDate,
		Status:         domain.SubmissionQueued,
		Attempts:       1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// Сначала журнал: заявка не должна потеряться, даже если дальше всё упадёт.
	// Если записать не удалось, заявку нечем редоставлять - честно сообщаем
	// об ошибке, молча проглатывать заявку нельзя.
	if err := s.Submissions.Create(ctx, submission); err != nil {
		s.Log.Error("failed to journal submission",
			"error", err,
			"chat_id", session.ChatID,
		)
		if sendErr := s.TelegramClient.SendMessage(ctx, session.ChatID, texts.SubmitRejected); sendErr != nil {
			s.Log.Warn("failed to notify chat about journal failure",
				"error", sendErr,
				"chat_id", session.ChatID,
			)
		}
		return fmt.Errorf("failed to journal submission: %w", err)
	}

	placeholderID, err := s.TelegramClient.SendMessageForResult(ctx, session.ChatID, texts.Processing)
	if err != nil {
		s.Log.Warn("failed to send placeholder message",
			"error", err,
			"chat_id", session.ChatID,
		)
		placeholderID = 0
	}

	result, err := s.Workflow.Submit(ctx, submission.ToRequest())

	s.deletePlaceholder(ctx, session.ChatID, placeholderID)

	if err != nil {
		// Сетевой сбой: заявка остаётся queued, честно говорим об этом
		s.Log.Warn("workflow unreachable, submission queued",
			"error", err,
			"submission_id", submission.ID,
		)
		s.invalidateListings(ctx, submission.ChatID)
		s.publishEvent(ctx, submission, "queued")
		return s.TelegramClient.SendMessageWithKeyboard(ctx, session.ChatID,
			texts.FormatSubmitSaved(submission), backToMainMenuKeyboard())
	}

	if !result.OK() {
		return s.markRejected(ctx, submission, result.StatusCode)
	}

	return s.markDelivered(ctx, submission, result)
}

// markDelivered фиксирует успешную доставку и показывает результат
func (s *Service) markDelivered(ctx context.Context, submission *domain.Submission, result *domain.WebhookResult) error {
	submission.Status = domain.SubmissionDelivered
	submission.PermitNumber = result.PermitNumber
	submission.Address = result.Address
	submission.TaskID = result.TaskID
	submission.UpdatedAt = time.Now()

	if err := s.Submissions.Update(ctx, submission); err != nil {
		s.Log.Error("failed to mark submission delivered",
			"error", err,
			"submission_id", submission.ID,
		)
	}

	s.invalidateListings(ctx, submission.ChatID)
	s.publishEvent(ctx, submission, "delivered")

	return s.TelegramClient.SendMessageWithKeyboard(ctx, submission.ChatID,
		texts.FormatSubmitSuccess(submission), backToMainMenuKeyboard())
}

// markRejected фиксирует отказ workflow. Отказ терминален: workflow видел
// заявку и отверг её, повтор той же заявки даст тот же ответ.
func (s *Service) markRejected(ctx context.Context, submission *domain.Submission, statusCode int) error {
	s.Log.Warn("workflow rejected submission",
		"submission_id", submission.ID,
		"status_code", statusCode,
	)

	submission.Status = domain.SubmissionRejected
	submission.UpdatedAt = time.Now()

	if err := s.Submissions.Update(ctx, submission); err != nil {
		s.Log.Error("failed to mark submission rejected",
			"error", err,
			"submission_id", submission.ID,
		)
	}

	s.invalidateListings(ctx, submission.ChatID)
	s.publishEvent(ctx, submission, "rejected")

	return s.TelegramClient.SendMessage(ctx, submission.ChatID, texts.SubmitRejected)
}

// RedeliverQueued пытается доставить заявки, отложенные из-за
// недоступности workflow. Возвращает число доставленных заявок.
// Первый же сетевой сбой прекращает проход: endpoint всё ещё лежит.
func (s *Service) RedeliverQueued(ctx context.Context) (int, error) {
	const batchLimit = 20

	queued, err := s.Submissions.ListQueued(ctx, batchLimit)
	if err != nil {
		return 0, fmt.Errorf("failed to list queued submissions: %w", err)
	}

	redelivered := 0
	for i := range queued {
		submission := &queued[i]

		result, err := s.Workflow.Submit(ctx, submission.ToRequest())
		if err != nil {
			submission.Attempts++
			submission.UpdatedAt = time.Now()
			if updateErr := s.Submissions.Update(ctx, submission); updateErr != nil {
				s.Log.Error("failed to bump submission attempts",
					"error", updateErr,
					"submission_id", submission.ID,
				)
			}
			s.Log.Warn("workflow still unreachable, stopping redelivery pass",
				"error", err,
				"submission_id", submission.ID,
				"attempts", submission.Attempts,
			)
			return redelivered, nil
		}

		submission.Attempts++

		if !result.OK() {
			if err := s.markRejected(ctx, submission, result.StatusCode); err != nil {
				s.Log.Warn("failed to notify chat about rejection",
					"error", err,
					"submission_id", submission.ID,
				)
			}
			continue
		}

		if err := s.markDelivered(ctx, submission, result); err != nil {
			s.Log.Warn("failed to notify chat about delivery",
				"error", err,
				"submission_id", submission.ID,
			)
		}
		redelivered++
	}

	return redelivered, nil
}

// publishEvent публикует событие жизненного цикла заявки, если Kafka включена
func (s *Service) publishEvent(ctx context.Context, submission *domain.Submission, event string) {
	if s.Producer == nil {
		return
	}
	if err := s.Producer.PublishSubmissionEvent(ctx, submission, event); err != nil {
		s.Log.Warn("failed to publish submission event",
			"error", err,
			"submission_id", submission.ID,
			"event", event,
		)
	}
}

// deletePlaceholder удаляет сообщение "обрабатываем...", ошибки не критичны
func (s *Service) deletePlaceholder(ctx context.Context, chatID int64, messageID int64) {
	if messageID == 0 {
		return
	}
	if err := s.TelegramClient.DeleteMessage(ctx, chatID, messageID); err != nil {
		s.Log.Warn("failed to delete placeholder message",
			"error", err,
			"chat_id", chatID,
			"message_id", messageID,
		)
	}
}
