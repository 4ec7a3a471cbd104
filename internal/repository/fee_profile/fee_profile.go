package fee_profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"feecalc/internal/entities"
	"feecalc/internal/repository"
	"feecalc/internal/service/fee_profile"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const table = "fee_profiles"

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetActive(ctx context.Context, name string) (*entities.FeeProfile, error) {
	query, args, err := qb.
		Select(columns...).
		From(table).
		Where(sq.Eq{"name": name, "active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected fee profile repository get active error: %w", err)
	}

	var profileDB FeeProfileDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(profileDB.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fee_profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("unexpected fee profile repository get active error: %w", err)
	}

	return ToDomain(&profileDB), nil
}

func (r *Repository) Deactivate(ctx context.Context, name string) (int64, error) {
	query, args, err := qb.
		Update(table).
		Set("active", false).
		Where(sq.Eq{"name": name, "active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected fee profile repository deactivate error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected fee profile repository deactivate error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) Create(ctx context.Context, name string, constants entities.FeeConstants) (*entities.FeeProfile, error) {
	// id и created_at проставляет БД
	insertColumns := append([]string{"name"}, columns[2:len(columns)-2]...)
	insertColumns = append(insertColumns, "active")

	values := append([]any{name}, FromDomainConstants(constants)...)
	values = append(values, true)

	query, args, err := qb.
		Insert(table).
		Columns(insertColumns...).
		Values(values...).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected fee profile repository create error: %w", err)
	}

	var profileDB FeeProfileDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(profileDB.scanTargets()...)
	if err != nil {
		switch repository.PgErrorCode(err) {
		case repository.PgErrUniqueViolation:
			return nil, fee_profile.ErrConflict
		case repository.PgErrCheckViolation:
			return nil, fmt.Errorf("%w: %s", fee_profile.ErrInvalidConstants, err.Error())
		}
		return nil, fmt.Errorf("unexpected fee profile repository create error: %w", err)
	}

	return ToDomain(&profileDB), nil
}
