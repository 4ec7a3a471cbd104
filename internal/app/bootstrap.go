package app

import (
	"context"
	"fmt"

	"feecalc/internal/entities"
	"feecalc/internal/gateway/kafka/fee_calculated"
	"feecalc/internal/handlers/rest/healthcheck_head"
	"feecalc/internal/pkg/config"
	"feecalc/internal/pkg/kafka"
	"feecalc/internal/pkg/postgres"
	feeService "feecalc/internal/service/fee"
	"feecalc/pkg/logger"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
)

// LoadFeeConstants возвращает таблицу тарифов из окружения или из активного профиля в БД.
// Соединение с БД нужно только на старте и закрывается сразу после чтения.
func LoadFeeConstants(ctx context.Context, log logger.Logger, cfg *config.Config) (entities.FeeConstants, error) {
	if cfg.Fee.Source != config.FeeSourcePostgres {
		log.Info("fee constants loaded from environment")
		return cfg.Fee.Constants, nil
	}

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return entities.FeeConstants{}, fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	profileApp, err := InitializeFeeProfileApp(ctx, log, pool, pgxv5.DefaultCtxGetter)
	if err != nil {
		return entities.FeeConstants{}, fmt.Errorf("fee profile app: %w", err)
	}

	constants, err := profileApp.ProfileService.LoadConstants(ctx, cfg.Fee.Profile)
	if err != nil {
		return entities.FeeConstants{}, fmt.Errorf("fee constants: %w", err)
	}
	return constants, nil
}

// Publisher издатель события delivery.fee.calculated вместе с его жизненным циклом.
type Publisher struct {
	feeService.EventPublisher

	Close func() error

	readiness *fee_calculated.Publisher
}

// ReadinessCheckers пустой, если публикация необязательна: HTTP сервис отвечает и при недоступной Kafka.
func (p *Publisher) ReadinessCheckers() []healthcheck_head.ReadinessChecker {
	if p.readiness == nil {
		return nil
	}
	return []healthcheck_head.ReadinessChecker{p.readiness}
}

// NewPublisher создает Kafka publisher. При required=false и пустом KAFKA_BROKERS возвращает Nop.
func NewPublisher(ctx context.Context, log logger.Logger, cfg *config.Config, required bool) (*Publisher, error) {
	if !required && !cfg.KafkaEnabled() {
		log.Warn("KAFKA_BROKERS is not set, fee calculated events are disabled")
		return &Publisher{
			EventPublisher: fee_calculated.NewNop(),
			Close:          func() error { return nil },
		}, nil
	}

	err := cfg.ValidateKafkaProducer()
	if err != nil {
		return nil, fmt.Errorf("kafka producer config: %w", err)
	}

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka, cfg.BrokerList())
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}

	return newKafkaPublisher(fee_calculated.New(log, producer, cfg.Kafka.FeeCalculatedTopic), producer.Close, required), nil
}

func newKafkaPublisher(gateway *fee_calculated.Publisher, closeFn func() error, required bool) *Publisher {
	publisher := &Publisher{
		EventPublisher: gateway,
		Close:          closeFn,
	}
	// открытый breaker выводит из ротации только воркер
	if required {
		publisher.readiness = gateway
	}
	return publisher
}
