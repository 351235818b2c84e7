package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/Trio2/telegram-construction-bot/internal/domain"
)

// HandleUpdate основной метод для обработки всех типов обновлений
func (s *Service) HandleUpdate(ctx context.Context, update *domain.Update) error {
	if update == nil {
		return fmt.Errorf("update is nil")
	}

	if update.CallbackQuery != nil {
		return s.handleCallbackQuery(ctx, update.CallbackQuery, update.UpdateID)
	}

	if update.Message != nil {
		return s.handleMessage(ctx, update.Message, update.UpdateID)
	}

	return nil
}

// handleCallbackQuery обрабатывает нажатие inline-кнопки
func (s *Service) handleCallbackQuery(ctx context.Context, callback *domain.CallbackQuery, updateID int64) error {
	if callback.From == nil || callback.From.IsBot {
		s.Log.Debug("ignoring callback from bot", "update_id", updateID)
		return nil
	}

	if callback.Data == nil || *callback.Data == "" {
		s.Log.Debug("ignoring callback without data", "update_id", updateID)
		return nil
	}

	return s.BotService.HandleCallback(ctx, callback)
}

// handleMessage обрабатывает входящее сообщение.
// Бот работает и в личных чатах, и в группах, поэтому чаты не фильтруются по типу.
func (s *Service) handleMessage(ctx context.Context, message *domain.Message, updateID int64) error {
	if message == nil {
		return fmt.Errorf("message is nil")
	}

	if message.From == nil || message.From.IsBot {
		s.Log.Debug("ignoring message from bot", "update_id", updateID)
		return nil
	}

	if message.Chat == nil {
		return fmt.Errorf("message has no chat, update_id=%d", updateID)
	}

	if message.Text == nil {
		s.Log.Debug("ignoring message without text",
			"update_id", updateID,
			"chat_id", message.Chat.ID,
		)
		return nil
	}

	text := *message.Text
	if IsCommand(text) {
		command := ParseCommand(text)
		return s.BotService.HandleCommand(ctx, message.From, message.Chat, command)
	}

	return s.BotService.HandleText(ctx, message.From, message.Chat, text)
}

func ParseCommand(text string) string {
	text = strings.TrimPrefix(text, "/")

	if idx := strings.Index(text, "@"); idx != -1 {
		text = text[:idx]
	}

	if idx := strings.Index(text, " "); idx != -1 {
		text = text[:idx]
	}

	return text
}

func IsCommand(text string) bool {
	return len(text) > 0 && text[0] == '/'
}
