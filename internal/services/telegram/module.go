package telegram

import (
	"log/slog"

	"github.com/Trio2/telegram-construction-bot/internal/ports/service"
)

// Service роутит входящие обновления Telegram в usecase бота.
// Не содержит бизнес-логики: только разбор update и выбор обработчика.
type Service struct {
	BotService service.IBotService
	Log        *slog.Logger
}

func New(botService service.IBotService, log *slog.Logger) *Service {
	return &Service{
		BotService: botService,
		Log:        log,
	}
}
