package grpc

import (
	"github.com/campuskit/auth-service/internal/logger"
	"github.com/campuskit/auth-service/internal/service"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the root gRPC transport handler.
//
// The gRPC surface of this service is operational only: it exposes the
// standard health service so orchestration probes can check liveness without
// touching the HTTP API. Business operations stay on the HTTP transport.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// health implements the grpc.health.v1 protocol.
	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches the handler's services to the given gRPC server and
// marks the service as serving.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
}

// Shutdown flips every registered service to NOT_SERVING so in-flight health
// probes observe the draining state.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
