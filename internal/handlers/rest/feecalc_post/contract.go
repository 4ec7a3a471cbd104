//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=feecalc_post_test
package feecalc_post

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
	CalculateDeliveryFee(ctx context.Context, order entities.Order) (*entities.FeeQuote, error)
}
