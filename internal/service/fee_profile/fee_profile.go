package fee_profile

import (
	"context"
	"fmt"

	"feecalc/internal/entities"
	"feecalc/pkg/logger"
)

type Profile struct {
	log        serviceLogger
	repository Repository
	txManager  TxManager
}

func New(log serviceLogger, repository Repository, txManager TxManager) *Profile {
	return &Profile{
		log:        log,
		repository: repository,
		txManager:  txManager,
	}
}

// LoadConstants возвращает таблицу тарифов активного профиля. Таблица из БД проверяется так же,
// как из окружения: сломанный профиль не должен попасть в расчет.
func (s *Profile) LoadConstants(ctx context.Context, name string) (entities.FeeConstants, error) {
	if !isValidProfileName(name) {
		return entities.FeeConstants{}, fmt.Errorf("%w: %q", ErrInvalidProfileName, name)
	}

	var profile *entities.FeeProfile
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		profile, err = s.repository.GetActive(ctx, name)
		return err
	})
	if err != nil {
		return entities.FeeConstants{}, fmt.Errorf("load fee profile %s: %w", name, err)
	}

	err = profile.Constants.Validate()
	if err != nil {
		return entities.FeeConstants{}, fmt.Errorf("%w: profile %s (id %d): %w", ErrInvalidConstants, name, profile.ID, err)
	}

	s.log.Info("fee profile loaded",
		logger.NewField("profile", name),
		logger.NewField("profile_id", profile.ID),
	)
	return profile.Constants, nil
}

// PublishConstants сохраняет новую версию профиля и делает ее активной.
func (s *Profile) PublishConstants(ctx context.Context, name string, constants entities.FeeConstants) (*entities.FeeProfile, error) {
	if !isValidProfileName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProfileName, name)
	}

	err := constants.Validate()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConstants, err)
	}

	var (
		created     *entities.FeeProfile
		deactivated int64
	)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		deactivated, err = s.repository.Deactivate(ctx, name)
		if err != nil {
			return fmt.Errorf("deactivate: %w", err)
		}

		created, err = s.repository.Create(ctx, name, constants)
		if err != nil {
			return fmt.Errorf("create: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("publish fee profile %s: %w", name, err)
	}

	s.log.Info("fee profile published",
		logger.NewField("profile", name),
		logger.NewField("profile_id", created.ID),
		logger.NewField("deactivated", deactivated),
	)
	return created, nil
}
