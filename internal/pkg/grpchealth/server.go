package grpchealth

import (
	"errors"
	"fmt"
	"net"
	"time"

	"feecalc/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
)

const (
	KeepaliveTime    = 5 * time.Minute
	KeepaliveTimeout = 3 * time.Second
)

// Server отдает grpc.health.v1 для балансировщиков, которые не умеют HTTP healthcheck.
type Server struct {
	log    logger.Logger
	server *grpc.Server
	health *health.Server
}

func New(log logger.Logger, services ...string) *Server {
	server := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    KeepaliveTime,
			Timeout: KeepaliveTimeout,
		}),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)

	// пустое имя означает состояние сервера целиком
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	for _, service := range services {
		healthServer.SetServingStatus(service, healthpb.HealthCheckResponse_SERVING)
	}

	return &Server{
		log:    log.With(logger.NewField("component", "grpc-health")),
		server: server,
		health: healthServer,
	}
}

// Serve блокируется до Stop.
func (s *Server) Serve(listener net.Listener) error {
	s.log.Info("gRPC health server starting",
		logger.NewField("addr", listener.Addr().String()),
	)

	err := s.server.Serve(listener)
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc health serve: %w", err)
	}
	return nil
}

// Shutdown переводит все сервисы в NOT_SERVING. Соединения остаются открытыми до Stop.
func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.log.Info("gRPC health switched to NOT_SERVING")
}

func (s *Server) Stop() {
	s.server.GracefulStop()
	s.log.Info("gRPC health server stopped")
}
