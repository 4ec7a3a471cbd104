package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"feecalc/internal/app"
	"feecalc/internal/pkg/config"
	"feecalc/internal/pkg/dotenv"
	"feecalc/internal/pkg/postgres"
	"feecalc/pkg/logger"
	"feecalc/pkg/logger/zap_adapter"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
)

// fee-profile-publish сохраняет тарифы из FEE_* как новую активную версию профиля.
func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	// os.Exit не выполняет defer
	exit := func(code int) {
		_ = zapLogger.Sync()
		os.Exit(code)
	}

	err = dotenv.Load(".env")
	if err != nil && !errors.Is(err, dotenv.ErrNoEnvFile) {
		mainLog.Error("failed to load .env file", logger.NewField("error", err))
		exit(1)
	}

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	profileFlag := flags.String("profile", "", "Profile name (overrides FEE_PROFILE)")
	err = flags.Parse(os.Args[1:])
	if err != nil {
		exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		exit(1)
	}

	profile := cfg.Fee.Profile
	if *profileFlag != "" {
		profile = *profileFlag
	}

	err = run(context.Background(), appLogger, cfg, profile)
	if err != nil {
		mainLog.Error("publish failed", logger.NewField("error", err))
		exit(1)
	}
}

func run(ctx context.Context, log logger.Logger, cfg *config.Config, profile string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	err := cfg.ValidateDatabase()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// источник тарифов для публикации всегда окружение
	err = cfg.Fee.Constants.Validate()
	if err != nil {
		return fmt.Errorf("FEE_* constants: %w", err)
	}

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	profileApp, err := app.InitializeFeeProfileApp(ctx, log, pool, pgxv5.DefaultCtxGetter)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	created, err := profileApp.ProfileService.PublishConstants(ctx, profile, cfg.Fee.Constants)
	if err != nil {
		return err
	}

	log.Info("fee profile is active",
		logger.NewField("profile", created.Name),
		logger.NewField("profile_id", created.ID),
	)
	return nil
}
