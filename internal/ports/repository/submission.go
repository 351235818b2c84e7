package repository

import (
	"context"

	"github.com/Trio2/telegram-construction-bot/internal/domain"
	"github.com/google/uuid"
)

// ISubmissionRepo журнал заявок на инспекции
type ISubmissionRepo interface {
	Create(ctx context.Context, submission *domain.Submission) error
	Update(ctx context.Context, submission *domain.Submission) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	// ListQueued возвращает заявки, ожидающие редоставки (старые первыми)
	ListQueued(ctx context.Context, limit int) ([]domain.Submission, error)
	// ListPendingByChat заявки чата, ещё не назначенные workflow
	ListPendingByChat(ctx context.Context, chatID int64, limit int) ([]domain.Submission, error)
	// ListCompletedByChat назначенные и проведённые инспекции чата
	ListCompletedByChat(ctx context.Context, chatID int64, limit int) ([]domain.Submission, error)
}
