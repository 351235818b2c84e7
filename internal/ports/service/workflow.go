package service

import (
	"context"

	"github.com/Trio2/telegram-construction-bot/internal/domain"
)

// IWorkflowClient клиент внешнего workflow-endpoint (n8n).
// Ошибка возвращается только при сетевом сбое/таймауте; не-200 ответ -
// это валидный WebhookResult, решение принимает вызывающий слой.
type IWorkflowClient interface {
	Submit(ctx context.Context, req domain.InspectionRequest) (*domain.WebhookResult, error)
}
