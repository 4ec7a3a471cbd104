//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"feecalc/internal/entities"
	"feecalc/internal/pkg/config"
	feeProfileRepo "feecalc/internal/repository/fee_profile"
	feeService "feecalc/internal/service/fee"
	feeProfileService "feecalc/internal/service/fee_profile"
	"feecalc/pkg/logger"
	"feecalc/pkg/tx"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
	constants entities.FeeConstants,
	publisher feeService.EventPublisher,
) (*Application, error) {
	wire.Build(
		provideFeeService,

		provideSystemMetricsInterval,
		provideSystemMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceFee), new(*feeService.Fee)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-fee-quote-requested)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	constants entities.FeeConstants,
	publisher feeService.EventPublisher,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideFeeService,

		wire.Struct(new(KafkaWorkerApp), "*"),

		wire.Bind(new(ServiceQuote), new(*feeService.Fee)),
	)
	return nil, nil
}

// InitializeFeeProfileApp для загрузки и публикации профилей тарифов
func InitializeFeeProfileApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) (*FeeProfileApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideFeeProfileRepository,
		provideFeeProfileService,

		wire.Struct(new(FeeProfileApp), "*"),

		wire.Bind(new(feeProfileService.Repository), new(*feeProfileRepo.Repository)),
		wire.Bind(new(feeProfileService.TxManager), new(*tx.Manager)),
	)
	return nil, nil
}
