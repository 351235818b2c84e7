package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"log/slog"

	"github.com/IBM/sarama"

	"github.com/Trio2/telegram-construction-bot/internal/domain"
)

// Producer реализация Kafka producer
type Producer struct {
	producer sarama.SyncProducer
	cfg      *Config
	log      *slog.Logger
}

// NewProducer создаёт новый Kafka producer
func NewProducer(cfg *Config, log *slog.Logger) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	// Настройка безопасности (если указано)
	if cfg.SecurityProtocol == "SASL_SSL" || cfg.SecurityProtocol == "SASL_PLAINTEXT" {
		config.Net.SASL.Enable = true
		config.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		if cfg.SASLMechanism == "SCRAM-SHA-256" {
			config.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
		}
		config.Net.SASL.User = cfg.SASLUsername
		config.Net.SASL.Password = cfg.SASLPassword
		// TLS только для SASL_SSL
		if cfg.SecurityProtocol == "SASL_SSL" {
			config.Net.TLS.Enable = true
		}
	}

	producer, err := sarama.NewSyncProducer(cfg.GetBrokers(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Info("kafka producer created",
		"brokers", cfg.Brokers,
		"topic", cfg.Topic,
	)

	return &Producer{
		producer: producer,
		cfg:      cfg,
		log:      log,
	}, nil
}

// submissionEvent тело события по заявке на инспекцию
type submissionEvent struct {
	SubmissionID   string  `json:"submission_id"`
	ChatID         int64   `json:"chat_id"`
	UserID         int64   `json:"telegram_user_id"`
	InspectionType string  `json:"inspection_type"`
	PreferredDate  string  `json:"preferred_date"`
	Status         string  `json:"status"`
	PermitNumber   *string `json:"permit_number,omitempty"`
	Address        *string `json:"address,omitempty"`
}

// PublishSubmissionEvent публикует событие жизненного цикла заявки.
// Тело содержит поля заявки, тип события и идентификаторы уходят в headers.
func (p *Producer) PublishSubmissionEvent(ctx context.Context, sub *domain.Submission, event string) error {
	valueBytes, err := json.Marshal(submissionEvent{
		SubmissionID:   sub.ID.String(),
		ChatID:         sub.ChatID,
		UserID:         sub.TelegramUserID,
		InspectionType: sub.InspectionType,
		PreferredDate:  sub.PreferredDate,
		Status:         string(sub.Status),
		PermitNumber:   sub.PermitNumber,
		Address:        sub.Address,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal submission event: %w", err)
	}

	headers := []sarama.RecordHeader{
		{
			Key:   []byte("submission_id"),
			Value: []byte(sub.ID.String()),
		},
		{
			Key:   []byte("chat_id"),
			Value: []byte(fmt.Sprintf("%d", sub.ChatID)),
		},
		{
			Key:   []byte("event"),
			Value: []byte(event),
		},
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.cfg.Topic,
		Key:     sarama.StringEncoder(sub.ID.String()),
		Value:   sarama.ByteEncoder(valueBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.log.Debug("kafka send failed",
			"error", err,
			"topic", p.cfg.Topic,
			"key", sub.ID.String(),
		)
		return fmt.Errorf("kafka send failed [topic=%s, key=%s]: %w",
			p.cfg.Topic, sub.ID.String(), err)
	}

	p.log.Debug("submission event sent to kafka",
		"topic", p.cfg.Topic,
		"partition", partition,
		"offset", offset,
		"key", sub.ID.String(),
		"event", event,
		"chat_id", sub.ChatID,
	)

	return nil
}

// Close закрывает producer
func (p *Producer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	p.log.Info("kafka producer closed")
	return nil
}
