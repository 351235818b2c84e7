package inspection

import (
	"context"
	"fmt"

	"github.com/Trio2/telegram-construction-bot/internal/domain"
)

// HandleCallback обрабатывает нажатие inline-кнопки: навигация по меню,
// кнопки-действия и листы, запускающие сбор заявки
func (s *Service) HandleCallback(ctx context.Context, callback *domain.CallbackQuery) error {
	if callback.From == nil {
		return fmt.Errorf("callback without sender")
	}
	if callback.Message == nil || callback.Message.Chat == nil {
		s.Log.Debug("ignoring callback without message", "callback_id", callback.ID)
		return nil
	}

	// Убираем "часики" на кнопке сразу, до обработки
	if err := s.TelegramClient.AnswerCallbackQuery(ctx, callback.ID, "", false); err != nil {
		s.Log.Warn("failed to answer callback query",
			"error", err,
			"callback_id", callback.ID,
		)
	}

	data := *callback.Data
	chatID := callback.Message.Chat.ID
	messageID := callback.Message.MessageID

	if s.Menu.IsAction(data) {
		return s.handleAction(ctx, callback, data)
	}

	node, ok := s.Menu.Resolve(data)
	if !ok {
		// Кнопка из старой версии меню либо чужое callback_data
		s.Log.Debug("ignoring unknown callback data",
			"data", data,
			"chat_id", chatID,
		)
		return nil
	}

	if node.IsLeaf() {
		return s.startForm(ctx, callback, node)
	}

	return s.renderNode(ctx, chatID, messageID, node)
}

// handleAction обрабатывает кнопки-действия меню
func (s *Service) handleAction(ctx context.Context, callback *domain.CallbackQuery, action string) error {
	chatID := callback.Message.Chat.ID

	switch action {
	case actionPending:
		return s.showPending(ctx, chatID)
	case actionCompleted:
		return s.showCompleted(ctx, chatID)
	default:
		s.Log.Debug("ignoring unknown action", "action", action, "chat_id", chatID)
		return nil
	}
}
