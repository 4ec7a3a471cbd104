//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fee_test
package fee

import (
	"context"

	"feecalc/internal/entities"
	"feecalc/pkg/logger"
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

type EventPublisher interface {
	PublishFeeCalculated(ctx context.Context, quote entities.FeeQuote) error
}
