//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=openapi_get_test
package openapi_get

import (
	"feecalc/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
