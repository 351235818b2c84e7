package inspection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Trio2/telegram-construction-bot/internal/domain"
	"github.com/Trio2/telegram-construction-bot/internal/usecases/inspection/texts"
)

// HandleStatusUpdate обрабатывает обратную связь workflow: инспекция
// назначена, проведена или отклонена. Обновляет журнал и уведомляет чат.
func (s *Service) HandleStatusUpdate(ctx context.Context, submissionID uuid.UUID, update *domain.StatusUpdate) error {
	submission, err := s.Submissions.GetByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionNotFound) {
			// Неизвестная заявка - чужое или устаревшее сообщение, не ретраим
			s.Log.Warn("status update for unknown submission",
				"submission_id", submissionID,
			)
			return domain.WrapBusinessError(err)
		}
		return fmt.Errorf("failed to load submission %s: %w", submissionID, err)
	}

	status, err := parseStatus(update.Status)
	if err != nil {
		// Неизвестный статус - ошибка интеграции, не ретраим сообщение
		s.Log.Warn("unknown status in update",
			"submission_id", submissionID,
			"status", update.Status,
		)
		return domain.WrapBusinessError(err)
	}

	submission.Status = status
	if update.PermitNumber != nil {
		submission.PermitNumber = update.PermitNumber
	}
	if update.Address != nil {
		submission.Address = update.Address
	}
	if update.TaskID != nil {
		submission.TaskID = update.TaskID
	}
	submission.UpdatedAt = time.Now()

	if err := s.Submissions.Update(ctx, submission); err != nil {
		return fmt.Errorf("failed to update submission %s: %w", submissionID, err)
	}

	s.invalidateListings(ctx, submission.ChatID)

	s.Log.Info("submission status updated",
		"submission_id", submissionID,
		"status", status,
	)

	return s.TelegramClient.SendMessageWithMarkdown(ctx, submission.ChatID,
		texts.FormatStatusUpdate(submission, update.Note))
}

// parseStatus валидирует статус из внешнего сообщения
func parseStatus(raw string) (domain.SubmissionStatus, error) {
	switch domain.SubmissionStatus(raw) {
	case domain.SubmissionScheduled, domain.SubmissionCompleted, domain.SubmissionRejected:
		return domain.SubmissionStatus(raw), nil
	default:
		return "", fmt.Errorf("unknown submission status: %q", raw)
	}
}
