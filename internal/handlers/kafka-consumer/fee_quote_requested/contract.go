//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fee_quote_requested_test
package fee_quote_requested

import (
	"context"

	"feecalc/internal/entities"
	"feecalc/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	QuoteDeliveryFee(ctx context.Context, quoteID string, order entities.Order) (*entities.FeeQuote, error)
}
