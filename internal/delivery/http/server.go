package http

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"hbnb/config"
	"hbnb/internal/delivery"
	deliverymiddleware "hbnb/internal/delivery/http/middleware"
	"hbnb/internal/delivery/http/router"
	"hbnb/internal/delivery/http/validator"
	"hbnb/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config           *config.Config
	Logger           *slog.Logger
	LoggerMiddleware *deliverymiddleware.LoggerMiddleware
	ErrorMiddleware  *deliverymiddleware.ErrorMiddleware
	RouterParams     router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Validator = validator.New()
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	echoServer.Use(middleware.Recover())
	echoServer.Use(middleware.CORS())
	echoServer.Use(params.LoggerMiddleware.Handle)

	timeouts := params.Config.HTTP.Timeouts
	if timeouts.ReadTimeout > 0 {
		echoServer.Server.ReadTimeout = timeouts.ReadTimeout
	}
	if timeouts.ReadHeaderTimeout > 0 {
		echoServer.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	}
	if timeouts.WriteTimeout > 0 {
		echoServer.Server.WriteTimeout = timeouts.WriteTimeout
	}
	if timeouts.IdleTimeout > 0 {
		echoServer.Server.IdleTimeout = timeouts.IdleTimeout
	}

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
