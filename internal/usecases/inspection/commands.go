package inspection

import (
	"context"

	"github.com/Trio2/telegram-construction-bot/internal/domain"
	"github.com/Trio2/telegram-construction-bot/internal/usecases/inspection/texts"
)

// HandleCommand обрабатывает команды бота
func (s *Service) HandleCommand(ctx context.Context, from *domain.TelegramUser, chat *domain.Chat, command string) error {
	switch command {
	case "start":
		return s.ShowMainMenu(ctx, chat.ID)
	case "cancel":
		return s.handleCancel(ctx, from, chat)
	default:
		s.Log.Debug("ignoring unknown command",
			"command", command,
			"chat_id", chat.ID,
		)
		return nil
	}
}

// handleCancel прерывает сбор заявки. Сессия удаляется целиком:
// возобновить отменённую заявку нельзя, только начать новую из меню.
func (s *Service) handleCancel(ctx context.Context, from *domain.TelegramUser, chat *domain.Chat) error {
	key := domain.SessionKey{UserID: from.ID, ChatID: chat.ID}
	if _, ok := s.Sessions.Get(key); ok {
		s.Sessions.Delete(key)
		s.Log.Debug("session cancelled",
			"user_id", from.ID,
			"chat_id", chat.ID,
		)
	}

	return s.TelegramClient.SendMessage(ctx, chat.ID, texts.Cancelled)
}
