package grpchealth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"booking/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
)

// ServiceName имя сервиса в grpc.health.v1, пустое имя отвечает за весь сервер.
const ServiceName = "booking"

const (
	keepaliveTime    = 5 * time.Minute
	keepaliveTimeout = 3 * time.Second
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Server отдает статус сервиса по протоколу grpc.health.v1 для оркестратора.
type Server struct {
	log    handlerLogger
	server *grpc.Server
	health *health.Server
}

func New(log handlerLogger) *Server {
	server := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    keepaliveTime,
			Timeout: keepaliveTimeout,
		}),
	)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)

	s := &Server{
		log: log.With(
			logger.NewField("component", "grpc-health"),
		),
		server: server,
		health: healthServer,
	}
	s.SetServing(false)
	return s
}

func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Serve блокируется до Stop.
func (s *Server) Serve(listener net.Listener) error {
	s.log.With(
		logger.NewField("addr", listener.Addr().String()),
	).Info("gRPC health server starting")

	err := s.server.Serve(listener)
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc health serve: %w", err)
	}
	return nil
}

func (s *Server) ListenAndServe(port string) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", port))
	if err != nil {
		return fmt.Errorf("grpc health listen: %w", err)
	}
	return s.Serve(listener)
}

// Stop переводит статус в NOT_SERVING и ждет открытые стримы Watch до отмены ctx.
func (s *Server) Stop(ctx context.Context) {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.log.Warn("gRPC health graceful stop timeout, forcing stop")
		s.server.Stop()
	}
}
