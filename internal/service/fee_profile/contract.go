//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fee_profile_test
package fee_profile

import (
	"context"

	"feecalc/internal/entities"
	"feecalc/pkg/logger"
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
}

type Repository interface {
	GetActive(ctx context.Context, name string) (*entities.FeeProfile, error)
	Deactivate(ctx context.Context, name string) (int64, error)
	Create(ctx context.Context, name string, constants entities.FeeConstants) (*entities.FeeProfile, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
