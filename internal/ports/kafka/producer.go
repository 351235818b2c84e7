package kafka

import (
	"context"

	"github.com/Trio2/telegram-construction-bot/internal/domain"
)

// IEventProducer публикация событий по заявкам во внешний топик
type IEventProducer interface {
	PublishSubmissionEvent(ctx context.Context, submission *domain.Submission, event string) error
	Close() error
}
