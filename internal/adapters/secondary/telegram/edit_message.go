package telegram

import (
	"context"
	"fmt"
)

// EditMessageTextRequest запрос на редактирование текста сообщения
type EditMessageTextRequest struct {
	ChatID      int64                  `json:"chat_id"`
	MessageID   int64                  `json:"message_id"`
	Text        string                 `json:"text"`
	ParseMode   string                 `json:"parse_mode,omitempty"`
	ReplyMarkup map[string]interface{} `json:"reply_markup,omitempty"`
}

// EditMessageText заменяет текст уже отправленного сообщения
func (c *Client) EditMessageText(ctx context.Context, chatID int64, messageID int64, text string) error {
	reqBody := EditMessageTextRequest{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
		ParseMode: "Markdown",
	}

	var apiResp APIResponse
	if err := c.postJSON(ctx, "/editMessageText", reqBody, &apiResp); err != nil {
		return err
	}

	if !apiResp.OK {
		c.log.Error("telegram API returned error",
			"error_code", apiResp.ErrorCode,
			"description", apiResp.Description,
			"chat_id", chatID,
			"message_id", messageID,
		)
		return fmt.Errorf("telegram API error: %s (code: %d)", apiResp.Description, apiResp.ErrorCode)
	}

	c.log.Debug("message edited successfully",
		"chat_id", chatID,
		"message_id", messageID,
	)
	return nil
}

// EditMessageWithKeyboard заменяет текст и inline-клавиатуру сообщения.
// Используется для навигации по меню: каждый переход перерисовывает
// то же самое сообщение вместо отправки нового.
func (c *Client) EditMessageWithKeyboard(ctx context.Context, chatID int64, messageID int64, text string, keyboard map[string]interface{}) error {
	reqBody := EditMessageTextRequest{
		ChatID:      chatID,
		MessageID:   messageID,
		Text:        text,
		ParseMode:   "Markdown",
		ReplyMarkup: keyboard,
	}

	var apiResp APIResponse
	if err := c.postJSON(ctx, "/editMessageText", reqBody, &apiResp); err != nil {
		return err
	}

	if !apiResp.OK {
		c.log.Error("telegram API returned error",
			"error_code", apiResp.ErrorCode,
			"description", apiResp.Description,
			"chat_id", chatID,
			"message_id", messageID,
		)
		return fmt.Errorf("telegram API error: %s (code: %d)", apiResp.Description, apiResp.ErrorCode)
	}

	c.log.Debug("message edited successfully",
		"chat_id", chatID,
		"message_id", messageID,
	)
	return nil
}

// DeleteMessageRequest запрос на удаление сообщения
type DeleteMessageRequest struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int64 `json:"message_id"`
}

// DeleteMessage удаляет сообщение (например, плейсхолдер "обрабатываем...")
func (c *Client) DeleteMessage(ctx context.Context, chatID int64, messageID int64) error {
	reqBody := DeleteMessageRequest{
		ChatID:    chatID,
		MessageID: messageID,
	}

	var apiResp APIResponse
	if err := c.postJSON(ctx, "/deleteMessage", reqBody, &apiResp); err != nil {
		return err
	}

	if !apiResp.OK {
		c.log.Error("telegram API returned error",
			"error_code", apiResp.ErrorCode,
			"description", apiResp.Description,
			"chat_id", chatID,
			"message_id", messageID,
		)
		return fmt.Errorf("telegram API error: %s (code: %d)", apiResp.Description, apiResp.ErrorCode)
	}

	c.log.Debug("message deleted successfully",
		"chat_id", chatID,
		"message_id", messageID,
	)
	return nil
}
