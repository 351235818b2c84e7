package jobs

import (
	"context"
	"log/slog"
	"time"

	inspectionUsecase "github.com/Trio2/telegram-construction-bot/internal/usecases/inspection"
)

const redeliveryName = "submission-redelivery"

// RedeliveryJob повторно отправляет в workflow заявки, застрявшие в статусе
// queued из-за недоступности webhook. Запускается каждые 5 минут.
type RedeliveryJob struct {
	inspections *inspectionUsecase.Service
	interval    time.Duration
	log         *slog.Logger
}

// NewRedeliveryJob создаёт джобу редоставки отложенных заявок
func NewRedeliveryJob(inspections *inspectionUsecase.Service, log *slog.Logger) *RedeliveryJob {
	return &RedeliveryJob{
		inspections: inspections,
		interval:    5 * time.Minute,
		log:         log,
	}
}

func (j *RedeliveryJob) Name() string {
	return redeliveryName
}

// NextRun через фиксированный интервал от текущего момента
func (j *RedeliveryJob) NextRun(now time.Time) time.Time {
	return now.Add(j.interval)
}

// Run отправляет очередную пачку отложенных заявок
func (j *RedeliveryJob) Run(ctx context.Context) error {
	redelivered, err := j.inspections.RedeliverQueued(ctx)
	if err != nil {
		return err
	}

	if redelivered > 0 {
		j.log.Info("queued submissions redelivered", "count", redelivered)
	}

	return nil
}
