package inspection

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Trio2/telegram-construction-bot/internal/domain"
	"github.com/Trio2/telegram-construction-bot/internal/pkg/dates"
	"github.com/Trio2/telegram-construction-bot/internal/usecases/inspection/texts"
)

// startForm создаёт сессию сбора заявки для выбранного типа инспекции.
// Если у пары (пользователь, чат) уже была незавершённая заявка,
// она молча перезаписывается: актуален всегда последний выбор из меню.
func (s *Service) startForm(ctx context.Context, callback *domain.CallbackQuery, node *domain.MenuNode) error {
	chat := callback.Message.Chat

	var chatTitle *string
	if !chat.IsPrivate() {
		chatTitle = chat.Title
	}

	session := &domain.Session{
		UserID:         callback.From.ID,
		DisplayName:    callback.From.FullName(),
		ChatID:         chat.ID,
		ChatType:       chat.Type,
		ChatTitle:      chatTitle,
		InspectionType: node.Leaf.InspectionType,
		State:          domain.StateAwaitingNotes,
		StartedAt:      time.Now(),
	}
	s.Sessions.Put(session)

	s.Log.Debug("form started",
		"user_id", session.UserID,
		"chat_id", session.ChatID,
		"inspection_type", session.InspectionType,
	)

	// Инструкции заменяют сообщение меню, клавиатура убирается
	return s.TelegramClient.EditMessageText(ctx, chat.ID, callback.Message.MessageID, node.Leaf.Instructions)
}

// HandleText обрабатывает свободный текст: ключевое слово вызова меню
// либо очередной шаг заполнения заявки
func (s *Service) HandleText(ctx context.Context, from *domain.TelegramUser, chat *domain.Chat, text string) error {
	// "bot"/"bots" в любом регистре всегда открывает главное меню,
	// даже посреди заполнения заявки
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "bot" || lowered == "bots" {
		return s.ShowMainMenu(ctx, chat.ID)
	}

	key := domain.SessionKey{UserID: from.ID, ChatID: chat.ID}
	session, ok := s.Sessions.Get(key)
	if !ok {
		// Текст вне диалога заявки бота не касается
		s.Log.Debug("ignoring text without session",
			"user_id", from.ID,
			"chat_id", chat.ID,
		)
		return nil
	}

	switch session.State {
	case domain.StateAwaitingNotes:
		return s.handleNotes(ctx, session, text)
	case domain.StateAwaitingDate:
		return s.handleDate(ctx, session, text)
	default:
		return fmt.Errorf("unknown session state: %s", session.State)
	}
}

// handleNotes сохраняет примечания и переводит сессию на шаг даты
func (s *Service) handleNotes(ctx context.Context, session *domain.Session, notes string) error {
	session.Notes = notes
	session.State = domain.StateAwaitingDate
	s.Sessions.Put(session)

	return s.TelegramClient.SendMessageWithMarkdown(ctx, session.ChatID, texts.AskDate)
}

// handleDate нормализует дату и отправляет заявку в workflow.
// Нераспознанная дата оставляет сессию на шаге даты.
func (s *Service) handleDate(ctx context.Context, session *domain.Session, text string) error {
	normalized, err := dates.Normalize(text)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateFormat) {
			return s.TelegramClient.SendMessage(ctx, session.ChatID, texts.InvalidDate)
		}
		return fmt.Errorf("failed to normalize date: %w", err)
	}

	session.PreferredDate = normalized
	return s.dispatch(ctx, session)
}
