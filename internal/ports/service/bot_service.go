package service

import (
	"context"

	"github.com/Trio2/telegram-construction-bot/internal/domain"
)

// IBotService интерфейс для бизнес-логики бота
type IBotService interface {
	HandleCommand(ctx context.Context, from *domain.TelegramUser, chat *domain.Chat, command string) error
	HandleText(ctx context.Context, from *domain.TelegramUser, chat *domain.Chat, text string) error
	HandleCallback(ctx context.Context, callback *domain.CallbackQuery) error
}
