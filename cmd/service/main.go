package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"feecalc/api"
	application "feecalc/internal/app"
	"feecalc/internal/handlers/rest/feecalc_post"
	"feecalc/internal/handlers/rest/healthcheck_head"
	"feecalc/internal/handlers/rest/openapi_get"
	"feecalc/internal/handlers/rest/ping_get"
	"feecalc/internal/pkg/config"
	"feecalc/internal/pkg/dotenv"
	"feecalc/internal/pkg/grpchealth"
	"feecalc/internal/pkg/middlewares/graceful_shutdown"
	"feecalc/internal/pkg/middlewares/metrics"
	"feecalc/internal/pkg/middlewares/rate_limiter"
	"feecalc/internal/pkg/middlewares/timeout"
	"feecalc/pkg/logger"
	"feecalc/pkg/logger/zap_adapter"
	"feecalc/pkg/token_bucket"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "feecalc"

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

	mainLog.Info("starting feecalc application")

	err = dotenv.Load(".env")
	switch {
	case errors.Is(err, dotenv.ErrNoEnvFile):
		mainLog.Warn("No .env file found, using system environment variables")
	case err != nil:
		mainLog.Error("failed to load .env file", logger.NewField("error", err))
		return
	}

	err = dotenv.ApplyFlags(os.Args[0], os.Args[1:])
	if err != nil {
		mainLog.Error("parse flags", logger.NewField("error", err))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = cfg.ValidateHTTPServer()
	if err != nil {
		mainLog.Error("validate config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx наследуются от context.Background() намеренно, это часть graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	constants, err := application.LoadFeeConstants(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("fee constants: %w", err)
	}

	publisher, err := application.NewPublisher(ctx, log, cfg, false)
	if err != nil {
		return fmt.Errorf("publisher: %w", err)
	}
	defer func() {
		err := publisher.Close()
		if err != nil {
			runLog.Error("failed to close Kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	// воркеры фоновых задач живут до отмены workersCtx
	workersCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()

	businessApp, err := application.InitializeApplication(workersCtx, log, cfg, constants, publisher.EventPublisher)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	// gRPC health сервер
	var healthServer *grpchealth.Server
	var healthServerErr chan error
	if cfg.Server.GRPCHealthPort != "" {
		listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Server.GRPCHealthPort))
		if err != nil {
			return fmt.Errorf("grpc health listen: %w", err)
		}

		healthServer = grpchealth.New(log, serviceName)
		healthServerErr = make(chan error, 1)
		go func() {
			defer close(healthServerErr)
			if err := healthServer.Serve(listener); err != nil {
				healthServerErr <- err
			}
		}()
	}
	// gRPC health сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil канал, если pprof выключен
		return fmt.Errorf("pprof server: %w", err)
	case err := <-healthServerErr:
		return fmt.Errorf("grpc health server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	if healthServer != nil {
		healthServer.Shutdown()
	}

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}
	if healthServer != nil {
		healthServer.Stop()
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	stopWorkers()
	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	// емкость бакета - burst, пополнение - QPS
	limiter := token_bucket.NewTokenBucket(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, limiter))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)
	router.Handle("/openapi.yaml", openapi_get.New(log, api.OpenAPI)).Methods(http.MethodGet, http.MethodHead)

	router.Handle("/feecalc", feecalc_post.New(log, app.ServiceFee)).Methods(http.MethodPost)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
