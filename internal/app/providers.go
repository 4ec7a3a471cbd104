package app

import (
	"context"
	"time"

	"feecalc/internal/entities"
	"feecalc/internal/handlers/tasks/system_metrics"
	"feecalc/internal/pkg/config"
	"feecalc/internal/pkg/metrics"
	feeProfileRepo "feecalc/internal/repository/fee_profile"
	feeService "feecalc/internal/service/fee"
	feeProfileService "feecalc/internal/service/fee_profile"
	"feecalc/pkg/background"
	"feecalc/pkg/logger"
	"feecalc/pkg/querier"
	"feecalc/pkg/tx"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideFeeProfileRepository(querier *querier.Querier) *feeProfileRepo.Repository {
	return feeProfileRepo.New(querier)
}

func provideFeeProfileService(
	log logger.Logger,
	repository feeProfileService.Repository,
	txManager feeProfileService.TxManager,
) *feeProfileService.Profile {
	return feeProfileService.New(log, repository, txManager)
}

func provideFeeService(
	log logger.Logger,
	constants entities.FeeConstants,
	publisher feeService.EventPublisher,
) *feeService.Fee {
	return feeService.New(log, constants, publisher)
}

func provideSystemMetricsInterval(cfg *config.Config) SystemMetricsInterval {
	return SystemMetricsInterval(cfg.Tasks.SystemMetricsInterval)
}

func provideSystemMetricsTask(log logger.Logger, interval SystemMetricsInterval) *system_metrics.SystemMetrics {
	return system_metrics.NewSystemMetrics(
		log,
		system_metrics.CollectorFunc(metrics.CollectSystemMetrics),
		time.Duration(interval),
	)
}

func provideTaskList(
	systemMetricsTask *system_metrics.SystemMetrics,
) []background.Task {
	return []background.Task{
		systemMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
