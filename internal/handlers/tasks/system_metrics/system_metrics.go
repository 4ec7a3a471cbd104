package system_metrics

import (
	"context"
	"time"

	"feecalc/pkg/logger"
)

// CollectorFunc позволяет передать обычную функцию как Collector.
type CollectorFunc func(ctx context.Context) error

func (f CollectorFunc) Collect(ctx context.Context) error {
	return f(ctx)
}

type SystemMetrics struct {
	log       taskLogger
	collector Collector
	interval  time.Duration
}

func NewSystemMetrics(log taskLogger, collector Collector, interval time.Duration) *SystemMetrics {
	return &SystemMetrics{
		log:       log,
		collector: collector,
		interval:  interval,
	}
}

func (s *SystemMetrics) TTL() time.Duration {
	return s.interval
}

// Do не возвращает ошибку сбора: недоступная метрика не должна останавливать сервис на старте.
func (s *SystemMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	err := s.collector.Collect(ctxWithTimeout)
	if err != nil {
		s.log.Warn("system metrics collection failed",
			logger.NewField("error", err),
		)
	}
	return nil
}

func (s *SystemMetrics) Info() string {
	return "system metrics"
}
