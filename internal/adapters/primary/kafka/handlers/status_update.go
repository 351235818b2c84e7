package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"log/slog"

	"github.com/google/uuid"

	"github.com/Trio2/telegram-construction-bot/internal/domain"
	kafkaPorts "github.com/Trio2/telegram-construction-bot/internal/ports/kafka"
	"github.com/Trio2/telegram-construction-bot/internal/usecases/inspection"
)

// StatusUpdateHandler обрабатывает обновления статусов заявок из n8n
type StatusUpdateHandler struct {
	Inspections *inspection.Service
	Log         *slog.Logger
}

// NewStatusUpdateHandler создаёт новый handler для обновлений статусов
func NewStatusUpdateHandler(inspections *inspection.Service, log *slog.Logger) kafkaPorts.MessageHandler {
	return &StatusUpdateHandler{
		Inspections: inspections,
		Log:         log,
	}
}

// HandleMessage обрабатывает сообщение об изменении статуса заявки
func (h *StatusUpdateHandler) HandleMessage(ctx context.Context, key string, value []byte) error {
	var update domain.StatusUpdate
	if err := json.Unmarshal(value, &update); err != nil {
		return domain.WrapBusinessError(fmt.Errorf("failed to unmarshal status update: %w", err))
	}

	submissionID, err := uuid.Parse(update.SubmissionID)
	if err != nil {
		return domain.WrapBusinessError(fmt.Errorf("invalid submission_id: %w", err))
	}

	if update.Status == "" {
		return domain.WrapBusinessError(fmt.Errorf("status is required in status update"))
	}

	h.Log.Debug("processing status update",
		"submission_id", submissionID,
		"status", update.Status,
		"chat_id", update.ChatID,
	)

	if err := h.Inspections.HandleStatusUpdate(ctx, submissionID, &update); err != nil {
		return fmt.Errorf("failed to handle status update: %w", err)
	}

	return nil
}
