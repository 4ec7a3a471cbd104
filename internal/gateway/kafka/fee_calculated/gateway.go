package fee_calculated

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"feecalc/internal/entities"
	"feecalc/pkg/logger"
	"github.com/IBM/sarama"
	"github.com/sony/gobreaker"
)

const (
	resultOK          = "ok"
	resultError       = "error"
	resultBreakerOpen = "breaker_open"
)

const (
	breakerMaxRequests         = 1
	breakerInterval            = time.Minute
	breakerTimeout             = 30 * time.Second
	breakerConsecutiveFailures = 5
)

type Publisher struct {
	log      logger.Logger
	producer producer
	topic    string
	breaker  *gobreaker.CircuitBreaker
}

func New(log logger.Logger, producer producer, topic string) *Publisher {
	publisherLog := log.With(
		logger.NewField("component", "fee-calculated-publisher"),
		logger.NewField("topic", topic),
	)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        topic,
		MaxRequests: breakerMaxRequests,
		Interval:    breakerInterval,
		Timeout:     breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			GatewayBreakerState.WithLabelValues(name).Set(float64(to))
			publisherLog.Warn("circuit breaker state changed",
				logger.NewField("from", from.String()),
				logger.NewField("to", to.String()),
			)
		},
	})
	GatewayBreakerState.WithLabelValues(topic).Set(float64(gobreaker.StateClosed))

	return &Publisher{
		log:      publisherLog,
		producer: producer,
		topic:    topic,
		breaker:  breaker,
	}
}

// PublishFeeCalculated отправляет событие с ключом quote id, чтобы все события одной
// котировки попадали в одну партицию.
func (p *Publisher) PublishFeeCalculated(ctx context.Context, quote entities.FeeQuote) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("publish fee calculated: %w", err)
	}

	payload, err := json.Marshal(toEvent(quote))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(quote.ID),
		Value: sarama.ByteEncoder(payload),
	}

	start := time.Now()
	_, err = p.breaker.Execute(func() (interface{}, error) {
		_, _, err := p.producer.SendMessage(msg)
		return nil, err
	})

	result := resultOK
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = resultBreakerOpen
		err = fmt.Errorf("%w: %w", ErrBreakerOpen, err)
	case err != nil:
		result = resultError
		err = fmt.Errorf("publish fee calculated %s: %w", quote.ID, err)
	}

	GatewayPublishTotal.WithLabelValues(p.topic, result).Inc()
	GatewayPublishDuration.WithLabelValues(p.topic, result).Observe(time.Since(start).Seconds())

	return err
}

// Ready false пока breaker открыт.
func (p *Publisher) Ready() bool {
	return p.breaker.State() != gobreaker.StateOpen
}

// Nop используется HTTP сервисом без Kafka.
type Nop struct{}

func NewNop() Nop {
	return Nop{}
}

func (Nop) PublishFeeCalculated(context.Context, entities.FeeQuote) error {
	return nil
}
