package inspection

import (
	"fmt"

	"log/slog"

	"github.com/Trio2/telegram-construction-bot/internal/domain"
	"github.com/Trio2/telegram-construction-bot/internal/ports/cache"
	"github.com/Trio2/telegram-construction-bot/internal/ports/kafka"
	"github.com/Trio2/telegram-construction-bot/internal/ports/repository"
	"github.com/Trio2/telegram-construction-bot/internal/ports/service"
	"github.com/Trio2/telegram-construction-bot/internal/ports/store"
	"github.com/Trio2/telegram-construction-bot/internal/ports/telegram"
)

// Service бизнес-логика бота заявок на строительные инспекции
type Service struct {
	Sessions       store.ISessionStore
	Submissions    repository.ISubmissionRepo
	Workflow       service.IWorkflowClient
	TelegramClient telegram.IClient
	Producer       kafka.IEventProducer // nil если Kafka не сконфигурирована
	Cache          cache.Cache          // nil если Redis не сконфигурирован
	Menu           *domain.MenuTree
	Log            *slog.Logger
}

// New создаёт сервис бота. Дерево меню строится и валидируется здесь:
// битая конфигурация меню роняет приложение на старте.
func New(
	sessions store.ISessionStore,
	submissions repository.ISubmissionRepo,
	workflow service.IWorkflowClient,
	telegramClient telegram.IClient,
	producer kafka.IEventProducer,
	cacheClient cache.Cache,
	log *slog.Logger,
) (*Service, error) {
	menu, err := buildMenuTree()
	if err != nil {
		return nil, fmt.Errorf("failed to build menu tree: %w", err)
	}

	return &Service{
		Sessions:       sessions,
		Submissions:    submissions,
		Workflow:       workflow,
		TelegramClient: telegramClient,
		Producer:       producer,
		Cache:          cacheClient,
		Menu:           menu,
		Log:            log,
	}, nil
}
