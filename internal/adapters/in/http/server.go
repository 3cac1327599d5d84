// Package http exposes the delivery lifecycle over a JSON API served by echo.
package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"proofparcel/internal/core/application/usecases/commands"
	"proofparcel/internal/core/application/usecases/queries"
	"proofparcel/internal/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const HealthMessage = "ProofParcel service is healthy"

// Handlers groups the use cases the API dispatches to.
type Handlers struct {
	CreateDelivery  commands.CreateDeliveryCommandHandler
	StartDelivery   commands.StartDeliveryCommandHandler
	GenerateOtp     commands.GenerateOtpCommandHandler
	ConfirmDelivery commands.ConfirmDeliveryCommandHandler
	ReleaseEscrow   commands.ReleaseEscrowCommandHandler

	GetDelivery      queries.GetDeliveryQueryHandler
	ListDeliveries   queries.ListDeliveriesQueryHandler
	GetNft           queries.GetNftQueryHandler
	GetNftsByOwner   queries.GetNftsByOwnerQueryHandler
	GetEscrowBalance queries.GetEscrowBalanceQueryHandler
	GetNotifications queries.GetNotificationsQueryHandler
}

// Server maps HTTP requests onto commands and queries.
type Server struct {
	handlers Handlers
	doc      *openapi3.T
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// NewServer accepts nil metrics; gatherer backs GET /metrics.
func NewServer(
	handlers Handlers,
	doc *openapi3.T,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
) *Server {
	return &Server{
		handlers: handlers,
		doc:      doc,
		metrics:  m,
		gatherer: gatherer,
		logger:   logger.With("component", "HTTPServer"),
	}
}

// Register installs every route and the error handler on e.
func (s *Server) Register(e *echo.Echo) {
	e.HTTPErrorHandler = s.errorHandler
	e.Use(s.observe)

	e.GET("/health", s.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	e.GET("/api/openapi.json", s.OpenAPI)
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/api/openapi.json")))

	api := e.Group("/api/v1", s.requireCaller)
	api.POST("/deliveries", s.CreateDelivery)
	api.GET("/deliveries", s.ListDeliveries)
	api.GET("/deliveries/:id", s.GetDelivery)
	api.POST("/deliveries/:id/start", s.StartDelivery)
	api.POST("/deliveries/:id/otp", s.GenerateOtp)
	api.POST("/deliveries/:id/confirm", s.ConfirmDelivery)
	api.POST("/deliveries/:id/release", s.ReleaseEscrow)
	api.GET("/nfts", s.GetNftsByOwner)
	api.GET("/nfts/:id", s.GetNft)
	api.GET("/escrow/balance", s.GetEscrowBalance)
	api.GET("/notifications/:identity", s.GetNotifications)
}

func (s *Server) HealthCheck(c echo.Context) error {
	return c.String(http.StatusOK, HealthMessage)
}

func (s *Server) OpenAPI(c echo.Context) error {
	return c.JSON(http.StatusOK, s.doc)
}

// observe records request latency by route pattern.
func (s *Server) observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		started := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}
		s.metrics.ObserveRequest(
			c.Request().Method,
			c.Path(),
			strconv.Itoa(c.Response().Status),
			time.Since(started).Seconds(),
		)
		return nil
	}
}
