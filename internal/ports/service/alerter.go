package service

import "context"

// IAlerterService отправка алертов в служебный Telegram-канал
type IAlerterService interface {
	SendAlert(ctx context.Context, message string) error
}
