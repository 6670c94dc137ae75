// Package http exposes the portal core over a JSON API served by echo.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/application/workflow"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/session"
	"logistics/internal/core/domain/model/toast"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type (
	SessionService interface {
		Current() session.Session
		Login(ctx context.Context, email, password string) (session.Session, error)
		Register(ctx context.Context, email, password string) error
		Logout(ctx context.Context) error
	}

	ToastBoard interface {
		List() []toast.Toast
		Remove(id toast.ID) bool
	}

	WorkflowRegistry interface {
		Open(hooks workflow.Hooks) (*workflow.Controller, error)
		Get(id uuid.UUID) (*workflow.Controller, error)
		Close(id uuid.UUID) error
	}

	OrderLister interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]*order.Order, error)
	}
)

// Server handles the portal API. It owns no state of its own.
type Server struct {
	sessions  SessionService
	toasts    ToastBoard
	workflows WorkflowRegistry
	orders    OrderLister
	logger    *slog.Logger
}

// NewServer creates a server over the application services.
func NewServer(
	sessions SessionService,
	toasts ToastBoard,
	workflows WorkflowRegistry,
	orders OrderLister,
	logger *slog.Logger,
) (*Server, error) {
	if sessions == nil {
		return nil, errs.NewValueIsRequiredError("sessions")
	}
	if toasts == nil {
		return nil, errs.NewValueIsRequiredError("toasts")
	}
	if workflows == nil {
		return nil, errs.NewValueIsRequiredError("workflows")
	}
	if orders == nil {
		return nil, errs.NewValueIsRequiredError("orders")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Server{
		sessions:  sessions,
		toasts:    toasts,
		workflows: workflows,
		orders:    orders,
		logger:    logger.With("component", "http_server"),
	}, nil
}

// NewEcho builds an echo instance with every portal route registered.
func NewEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Debug("request",
				"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))

	s.RegisterRoutes(e)
	return e
}

// RegisterRoutes mounts the portal routes on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.POST("/session/login", s.Login)
	api.POST("/session/register", s.Register)
	api.DELETE("/session", s.Logout)
	api.GET("/session", s.GetSession)

	api.GET("/toasts", s.ListToasts)
	api.DELETE("/toasts/:id", s.DismissToast)

	authed := api.Group("", s.requireSession)
	authed.GET("/orders", s.ListOrders)
	authed.POST("/workflows", s.OpenWorkflow)
	authed.GET("/workflows/:id", s.GetWorkflow)
	authed.GET("/workflows/:id/classification", s.Classify)
	authed.POST("/workflows/:id/orders", s.SubmitOrder)
	authed.PATCH("/workflows/:id/status", s.UpdateStatus, s.requireAdmin)
	authed.DELETE("/workflows/:id", s.CloseWorkflow)
}
