package submissionRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"log/slog"

	"github.com/google/uuid"

	"github.com/Trio2/telegram-construction-bot/internal/domain"
	"github.com/Trio2/telegram-construction-bot/internal/ports/persistence"
	ports "github.com/Trio2/telegram-construction-bot/internal/ports/repository"
)

type submissionColumns struct {
	TableName      string
	ID             string
	TelegramUserID string
	UserName       string
	ChatID         string
	ChatType       string
	ChatTitle      string
	InspectionType string
	Notes          string
	PreferredDate  string
	Status         string
	Attempts       string
	PermitNumber   string
	Address        string
	TaskID         string
	CreatedAt      string
	UpdatedAt      string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns submissionColumns
}

// New создаёт новый репозиторий журнала заявок
func New(db persistence.Persistence, log *slog.Logger) ports.ISubmissionRepo {
	cols := submissionColumns{
		TableName:      "submissions",
		ID:             "id",
		TelegramUserID: "telegram_user_id",
		UserName:       "user_name",
		ChatID:         "chat_id",
		ChatType:       "chat_type",
		ChatTitle:      "chat_title",
		InspectionType: "inspection_type",
		Notes:          "notes",
		PreferredDate:  "preferred_date",
		Status:         "status",
		Attempts:       "attempts",
		PermitNumber:   "permit_number",
		Address:        "address",
		TaskID:         "task_id",
		CreatedAt:      "created_at",
		UpdatedAt:      "updated_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns возвращает строку со всеми колонками
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.TelegramUserID,
		r.columns.UserName,
		r.columns.ChatID,
		r.columns.ChatType,
		r.columns.ChatTitle,
		r.columns.InspectionType,
		r.columns.Notes,
		r.columns.PreferredDate,
		r.columns.Status,
		r.columns.Attempts,
		r.columns.PermitNumber,
		r.columns.Address,
		r.columns.TaskID,
		r.columns.CreatedAt,
		r.columns.UpdatedAt)
}

// Create создаёт новую запись в журнале заявок
func (r *Repository) Create(ctx context.Context, submission *domain.Submission) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s)
		VALUES (:id, :telegram_user_id, :user_name, :chat_id, :chat_type, :chat_title,
			:inspection_type, :notes, :preferred_date, :status, :attempts,
			:permit_number, :address, :task_id, :created_at, :updated_at)`,
		r.columns.TableName,
		r.allColumns())
	if err := r.db.NamedExec(ctx, query, submission); err != nil {
		r.Log.Error("failed to create submission",
			"error", err,
			"submission_id", submission.ID,
			"chat_id", submission.ChatID)
		return fmt.Errorf("failed to create submission: %w", err)
	}
	r.Log.Debug("submission created",
		"submission_id", submission.ID,
		"inspection_type", submission.InspectionType,
		"status", submission.Status)
	return nil
}

// Update обновляет статус и результаты обработки заявки
func (r *Repository) Update(ctx context.Context, submission *domain.Submission) error {
	query := fmt.Sprintf(`UPDATE %s SET
			%s = :status,
			%s = :attempts,
			%s = :permit_number,
			%s = :address,
			%s = :task_id,
			%s = :updated_at
		WHERE %s = :id`,
		r.columns.TableName,
		r.columns.Status,
		r.columns.Attempts,
		r.columns.PermitNumber,
		r.columns.Address,
		r.columns.TaskID,
		r.columns.UpdatedAt,
		r.columns.ID)
	if err := r.db.NamedExec(ctx, query, submission); err != nil {
		r.Log.Error("failed to update submission",
			"error", err,
			"submission_id", submission.ID)
		return fmt.Errorf("failed to update submission: %w", err)
	}
	r.Log.Debug("submission updated",
		"submission_id", submission.ID,
		"status", submission.Status,
		"attempts", submission.Attempts)
	return nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	var submission domain.Submission
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ID)
	err := r.db.Get(ctx, &submission, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("submission not found", "submission_id", id)
			return nil, fmt.Errorf("%w: %s", domain.ErrSubmissionNotFound, id)
		}
		r.Log.Error("failed to get submission by id",
			"error", err,
			"submission_id", id)
		return nil, fmt.Errorf("failed to get submission by id: %w", err)
	}
	return &submission, nil
}

// ListQueued возвращает заявки, ожидающие редоставки (старые первыми)
func (r *Repository) ListQueued(ctx context.Context, limit int) ([]domain.Submission, error) {
	var submissions []domain.Submission
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC LIMIT $2`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.Status,
		r.columns.CreatedAt)
	err := r.db.Select(ctx, &submissions, query, domain.SubmissionQueued, limit)
	if err != nil {
		r.Log.Error("failed to list queued submissions", "error", err)
		return nil, fmt.Errorf("failed to list queued submissions: %w", err)
	}
	r.Log.Debug("queued submissions retrieved", "count", len(submissions))
	return submissions, nil
}

// ListPendingByChat заявки чата, ещё не назначенные workflow
func (r *Repository) ListPendingByChat(ctx context.Context, chatID int64, limit int) ([]domain.Submission, error) {
	var submissions []domain.Submission
	query := fmt.Sprintf(`SELECT %s FROM %s
		WHERE %s = $1 AND %s IN ('queued', 'delivered')
		ORDER BY %s DESC LIMIT $2`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ChatID,
		r.columns.Status,
		r.columns.CreatedAt)
	err := r.db.Select(ctx, &submissions, query, chatID, limit)
	if err != nil {
		r.Log.Error("failed to list pending submissions",
			"error", err,
			"chat_id", chatID)
		return nil, fmt.Errorf("failed to list pending submissions: %w", err)
	}
	return submissions, nil
}

// ListCompletedByChat назначенные и проведённые инспекции чата
func (r *Repository) ListCompletedByChat(ctx context.Context, chatID int64, limit int) ([]domain.Submission, error) {
	var submissions []domain.Submission
	query := fmt.Sprintf(`SELECT %s FROM %s
		WHERE %s = $1 AND %s IN ('scheduled', 'completed')
		ORDER BY %s DESC LIMIT $2`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ChatID,
		r.columns.Status,
		r.columns.CreatedAt)
	err := r.db.Select(ctx, &submissions, query, chatID, limit)
	if err != nil {
		r.Log.Error("failed to list completed submissions",
			"error", err,
			"chat_id", chatID)
		return nil, fmt.Errorf("failed to list completed submissions: %w", err)
	}
	return submissions, nil
}
