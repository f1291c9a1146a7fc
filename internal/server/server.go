package server

import (
	"context"
	"fmt"

	"github.com/grachmannico95/accounting-sync/internal/config"
	"github.com/grachmannico95/accounting-sync/internal/handler"
	"github.com/grachmannico95/accounting-sync/internal/middleware"
	"github.com/grachmannico95/accounting-sync/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo              *echo.Echo
	cfg               *config.Config
	logger            *logger.Logger
	accountingHandler *handler.AccountingHandler
	healthHandler     *handler.HealthHandler
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	accountingHandler *handler.AccountingHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:              e,
		cfg:               cfg,
		logger:            log,
		accountingHandler: accountingHandler,
		healthHandler:     healthHandler,
	}
	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	s.echo.Use(middleware.TraceID())
	s.echo.Use(middleware.AccessLog(s.logger))
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler.Check)

	accounting := s.echo.Group("/teams/:team_id/accounting/:provider", middleware.TeamContext())
	accounting.POST("/sync", s.accountingHandler.TriggerSync)
	accounting.GET("/records", s.accountingHandler.ListRecords)
}

func (s *Server) Handler() *echo.Echo {
	return s.echo
}
