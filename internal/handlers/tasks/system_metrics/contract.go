//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=system_metrics_test
package system_metrics

import (
	"context"

	"feecalc/pkg/logger"
)

type taskLogger interface {
	Warn(msg string, fields ...logger.Field)
}

type Collector interface {
	Collect(ctx context.Context) error
}
