package telegram

import (
	"context"
)

// IClient интерфейс для клиента Telegram API
type IClient interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMarkdown(ctx context.Context, chatID int64, text string) error
	SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard map[string]interface{}) error
	// SendMessageForResult возвращает message_id отправленного сообщения
	// (нужно для последующего удаления плейсхолдера "обрабатываем...")
	SendMessageForResult(ctx context.Context, chatID int64, text string) (int64, error)
	EditMessageText(ctx context.Context, chatID int64, messageID int64, text string) error
	// EditMessageWithKeyboard перерисовывает сообщение меню на месте
	EditMessageWithKeyboard(ctx context.Context, chatID int64, messageID int64, text string, keyboard map[string]interface{}) error
	DeleteMessage(ctx context.Context, chatID int64, messageID int64) error
	AnswerCallbackQuery(ctx context.Context, callbackID string, text string, showAlert bool) error
}
