package app

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	server "github.com/Trio2/telegram-construction-bot/internal/adapters/primary/http"
	alerterAdapter "github.com/Trio2/telegram-construction-bot/internal/adapters/secondary/alerter"
	kafkaAdapter "github.com/Trio2/telegram-construction-bot/internal/adapters/secondary/kafka"
	"github.com/Trio2/telegram-construction-bot/internal/adapters/secondary/n8n"
	"github.com/Trio2/telegram-construction-bot/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/Trio2/telegram-construction-bot/internal/adapters/secondary/storage/redis"
	"github.com/Trio2/telegram-construction-bot/internal/adapters/secondary/telegram"
	"github.com/Trio2/telegram-construction-bot/internal/pkg/logger"
)

type Config struct {
	Postgres *pg.Config                `envconfig:"POSTGRES"`
	Log      *logger.Config            `envconfig:"LOG"`
	Server   *server.Config            `envconfig:"APISERVER"`
	Telegram *telegram.Config          `envconfig:"TELEGRAM"`
	Workflow *n8n.Config               `envconfig:"N8N"`
	Kafka    kafkaAdapter.KafkaConfigs `envconfig:"KAFKA"`
	Redis    *redisAdapter.Config      `envconfig:"REDIS"`
	Alerter  *alerterAdapter.Config    `envconfig:"ALERTER"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	// Загружаем Kafka конфигурацию вручную
	// (envconfig не умеет автоматически определять размер слайса)
	if err := cfg.Kafka.Load(envPrefix); err != nil {
		return nil, fmt.Errorf("failed to load kafka config: %w", err)
	}

	return cfg, nil
}
