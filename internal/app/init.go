package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	server "github.com/Trio2/telegram-construction-bot/internal/adapters/primary/http"
	healthcheckController "github.com/Trio2/telegram-construction-bot/internal/adapters/primary/http/controllers/healthcheck"
	telegramController "github.com/Trio2/telegram-construction-bot/internal/adapters/primary/http/controllers/telegram"
	kafkaConsumerAdapter "github.com/Trio2/telegram-construction-bot/internal/adapters/primary/kafka"
	kafkaHandlers "github.com/Trio2/telegram-construction-bot/internal/adapters/primary/kafka/handlers"
	alerterAdapter "github.com/Trio2/telegram-construction-bot/internal/adapters/secondary/alerter"
	kafkaAdapter "github.com/Trio2/telegram-construction-bot/internal/adapters/secondary/kafka"
	"github.com/Trio2/telegram-construction-bot/internal/adapters/secondary/n8n"
	"github.com/Trio2/telegram-construction-bot/internal/adapters/secondary/storage/inmemory"
	"github.com/Trio2/telegram-construction-bot/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/Trio2/telegram-construction-bot/internal/adapters/secondary/storage/redis"
	tgAdapter "github.com/Trio2/telegram-construction-bot/internal/adapters/secondary/telegram"
	"github.com/Trio2/telegram-construction-bot/internal/domain"
	"github.com/Trio2/telegram-construction-bot/internal/ports/cache"
	"github.com/Trio2/telegram-construction-bot/internal/ports/kafka"
	"github.com/Trio2/telegram-construction-bot/internal/ports/service"
	submissionRepo "github.com/Trio2/telegram-construction-bot/internal/repository/submission"
	alerterService "github.com/Trio2/telegram-construction-bot/internal/services/alerter"
	jobScheduler "github.com/Trio2/telegram-construction-bot/internal/services/jobs"
	telegramService "github.com/Trio2/telegram-construction-bot/internal/services/telegram"
	inspectionUsecase "github.com/Trio2/telegram-construction-bot/internal/usecases/inspection"
)

type Dependencies struct {
	DB              *sqlx.DB
	HTTPServer      *http.Server
	TelegramService *telegramService.Service
	TelegramClient  *tgAdapter.Client
	TelegramPoller  *tgAdapter.Poller
	KafkaProducers  map[string]*kafkaAdapter.Producer
	KafkaConsumers  map[string]*kafkaConsumerAdapter.Consumer
	Cache           cache.Cache
	JobScheduler    *jobScheduler.Scheduler
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	db, err := a.initPostgres()
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	submissions := submissionRepo.New(pg.NewDB(db), a.Log)

	tgClient, err := a.initTelegram(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram: %w", err)
	}

	if a.Cfg.Workflow == nil || a.Cfg.Workflow.WebhookURL == "" {
		return nil, fmt.Errorf("n8n webhook configuration is required")
	}
	workflow := n8n.NewClient(a.Cfg.Workflow, a.Log)

	external := a.initExternalServices()

	kafkaProducers, err := a.initKafkaProducers()
	if err != nil {
		return nil, fmt.Errorf("failed to init kafka producers: %w", err)
	}

	var eventProducer kafka.IEventProducer
	if prod, ok := kafkaProducers["inspection_events"]; ok {
		eventProducer = prod
	}

	inspections, err := inspectionUsecase.New(
		inmemory.NewSessionStore(),
		submissions,
		workflow,
		tgClient,
		eventProducer, // может быть nil
		external.Cache, // может быть nil
		a.Log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to init inspection usecase: %w", err)
	}

	kafkaConsumers, err := a.initKafkaConsumers(inspections)
	if err != nil {
		return nil, fmt.Errorf("failed to init kafka consumers: %w", err)
	}

	tgService := telegramService.New(inspections, a.Log)

	httpServer := a.initHTTP(db, tgService)

	poller, err := a.initTelegramMode(ctx, tgClient, tgService)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram mode: %w", err)
	}

	scheduler := a.initJobScheduler(external.Alerter, inspections)

	return &Dependencies{
		DB:              db,
		HTTPServer:      httpServer,
		TelegramService: tgService,
		TelegramClient:  tgClient,
		TelegramPoller:  poller,
		KafkaProducers:  kafkaProducers,
		KafkaConsumers:  kafkaConsumers,
		Cache:           external.Cache,
		JobScheduler:    scheduler,
	}, nil
}

// externalServices содержит опциональные внешние сервисы
type externalServices struct {
	Alerter service.IAlerterService
	Cache   cache.Cache
}

// initExternalServices инициализирует Alerter и Redis-кеш
func (a *App) initExternalServices() *externalServices {
	services := &externalServices{}

	// Alerter - опциональный
	if a.Cfg.Alerter != nil && a.Cfg.Alerter.BotToken != "" {
		alerterClient := alerterAdapter.NewClient(a.Cfg.Alerter, a.Log)
		services.Alerter = alerterService.New(alerterClient)
	}

	// Redis Cache - опциональный
	if a.Cfg.Redis != nil {
		redisClient, err := a.Cfg.Redis.NewConnection()
		if err != nil {
			a.Log.Warn("failed to init redis cache, continuing without cache", "error", err)
		} else {
			services.Cache = redisAdapter.NewClient(redisClient)
			a.Log.Info("redis cache connected successfully")
		}
	}

	return services
}

// initTelegram инициализирует Telegram клиент
func (a *App) initTelegram(ctx context.Context) (*tgAdapter.Client, error) {
	if a.Cfg.Telegram == nil || a.Cfg.Telegram.BotToken == "" {
		return nil, fmt.Errorf("telegram bot token is required")
	}

	client := tgAdapter.NewClient(a.Cfg.Telegram.BotToken, a.Log)

	if err := a.registerBotCommands(ctx, client); err != nil {
		a.Log.Warn("failed to register bot commands", "error", err)
	}

	return client, nil
}

// initKafkaProducers инициализирует Kafka producers
func (a *App) initKafkaProducers() (map[string]*kafkaAdapter.Producer, error) {
	producers := make(map[string]*kafkaAdapter.Producer)

	for _, kafkaCfg := range a.Cfg.Kafka.List {
		// Producer: есть topic, но нет consumer group
		if kafkaCfg.Config.Topic != "" && kafkaCfg.Config.ConsumerGroup == "" {
			prod, err := kafkaAdapter.NewProducer(kafkaCfg.Config, a.Log)
			if err != nil {
				a.Log.Warn("failed to create kafka producer", "error", err, "name", kafkaCfg.Name)
				continue
			}
			producers[kafkaCfg.Name] = prod
		}
	}

	return producers, nil
}

// initKafkaConsumers инициализирует Kafka consumers
func (a *App) initKafkaConsumers(
	inspections *inspectionUsecase.Service,
) (map[string]*kafkaConsumerAdapter.Consumer, error) {
	consumers := make(map[string]*kafkaConsumerAdapter.Consumer)

	for _, kafkaCfg := range a.Cfg.Kafka.List {
		if kafkaCfg.Config.ConsumerGroup == "" {
			continue
		}

		handler := a.createHandlerForTopic(kafkaCfg.Name, inspections)
		if handler == nil {
			a.Log.Warn("no handler for kafka topic, skipping consumer", "name", kafkaCfg.Name)
			continue
		}

		consumer, err := kafkaConsumerAdapter.NewConsumer(kafkaCfg.Config, handler, a.Log)
		if err != nil {
			a.Log.Warn("failed to create kafka consumer", "error", err, "name", kafkaCfg.Name)
			continue
		}
		consumers[kafkaCfg.Name] = consumer
	}

	return consumers, nil
}

// createHandlerForTopic создаёт handler для указанного топика Kafka
func (a *App) createHandlerForTopic(
	topicName string,
	inspections *inspectionUsecase.Service,
) kafka.MessageHandler {
	switch topicName {
	case "status_updates":
		return kafkaHandlers.NewStatusUpdateHandler(inspections, a.Log)
	default:
		a.Log.Warn("unknown kafka topic, using default handler", "topic", topicName)
		return nil
	}
}

// initHTTP инициализирует HTTP сервер и контроллеры
func (a *App) initHTTP(
	db *sqlx.DB,
	tgService *telegramService.Service,
) *http.Server {
	controllers := []server.Controller{
		healthcheckController.New(db, a.Log),
		telegramController.New(tgService, a.Cfg.Telegram.WebhookSecret, a.Log),
	}

	return server.NewHTTPServer(a.Cfg.Server, a.Log, controllers...)
}

// initTelegramMode инициализирует режим работы Telegram (webhook или polling)
func (a *App) initTelegramMode(
	ctx context.Context,
	tgClient *tgAdapter.Client,
	tgService *telegramService.Service,
) (*tgAdapter.Poller, error) {
	a.Log.Info("telegram configuration",
		"use_webhook", a.Cfg.Telegram.IsWebhookEnabled(),
		"webhook_url", a.Cfg.Telegram.WebhookURL,
	)

	if a.Cfg.Telegram.IsWebhookEnabled() {
		if err := a.setupWebhook(ctx, tgClient); err != nil {
			return nil, fmt.Errorf("failed to setup webhook: %w", err)
		}
		return nil, nil // webhook режим, poller не нужен
	}

	a.Log.Warn("polling mode enabled - this should only be used for local development")

	handler := func(ctx context.Context, update *domain.Update) error {
		return tgService.HandleUpdate(ctx, update)
	}

	return tgAdapter.NewPoller(tgClient, a.Cfg.Telegram, handler, a.Log), nil
}

// setupWebhook регистрирует webhook бота в Telegram
func (a *App) setupWebhook(ctx context.Context, tgClient *tgAdapter.Client) error {
	if a.Cfg.Telegram.WebhookURL == "" {
		return fmt.Errorf("webhook_url is required when use_webhook is true")
	}
	if a.Cfg.Telegram.WebhookSecret == "" {
		return fmt.Errorf("webhook_secret is required when use_webhook is true")
	}

	webhookURL := fmt.Sprintf("%s/webhook/", a.Cfg.Telegram.WebhookURL)

	if err := tgClient.SetWebhook(ctx, webhookURL, a.Cfg.Telegram.WebhookSecret); err != nil {
		a.Log.Error("failed to set webhook", "error", err, "webhook_url", webhookURL)
		return fmt.Errorf("failed to set webhook: %w", err)
	}

	a.Log.Info("webhook set successfully", "webhook_url", webhookURL)
	return nil
}

// initJobScheduler инициализирует планировщик джоб
func (a *App) initJobScheduler(
	alerterSvc service.IAlerterService,
	inspections *inspectionUsecase.Service,
) *jobScheduler.Scheduler {
	scheduler := jobScheduler.NewScheduler(a.Log, alerterSvc)

	redelivery := jobScheduler.NewRedeliveryJob(inspections, a.Log)
	scheduler.Register(redelivery)
	a.Log.Info("submission redelivery job registered")

	return scheduler
}

// registerBotCommands регистрирует команды бота в Telegram
func (a *App) registerBotCommands(ctx context.Context, client *tgAdapter.Client) error {
	commands := []tgAdapter.BotCommand{
		{Command: "start", Description: "Open the main menu"},
		{Command: "cancel", Description: "Cancel the current request"},
	}

	return client.SetMyCommands(ctx, commands)
}
