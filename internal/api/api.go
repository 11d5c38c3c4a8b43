// Package api exposes the calculation engines over an HTTP JSON API. The
// surface is deliberately thin: bind, validate, invoke one pure engine
// function, wrap the result in a report envelope.
package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/verdant-labs/greengauge/internal/logging"
)

// Service wraps the echo router and the request-scoped logger.
type Service struct {
	router *echo.Echo
	logger zerolog.Logger
}

// New builds the API service and wires all routes.
func New(logger zerolog.Logger) *Service {
	svc := &Service{
		router: echo.New(),
		logger: logging.ComponentLogger(logger, "api"),
	}

	svc.router.HideBanner = true
	svc.router.Validator = newValidator()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Recover())
	svc.router.Use(svc.requestLogger)

	svc.router.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	v1 := svc.router.Group("/api/v1")

	nec := v1.Group("/nec")
	nec.POST("/check", svc.handleNECCheck)
	nec.POST("/fleet", svc.handleNECFleet)

	hydraulic := v1.Group("/hydraulic")
	hydraulic.POST("/analyze", svc.handleHydraulicAnalyze)

	energy := v1.Group("/energy")
	energy.POST("/demand", svc.handleEnergyDemand)

	nutrient := v1.Group("/nutrient")
	nutrient.POST("/requirements", svc.handleNutrientRequirements)
	nutrient.POST("/diagnosis", svc.handleNutrientDiagnosis)

	return svc
}

// Serve blocks listening on addr until the server stops.
func (s *Service) Serve(addr string) error {
	s.logger.Info().Str("addr", addr).Msg("http server starting")
	return s.router.Start(addr)
}

// Shutdown gracefully stops the server.
func (s *Service) Shutdown(ctx context.Context) error {
	return s.router.Shutdown(ctx)
}

// Router exposes the underlying handler for tests.
func (s *Service) Router() http.Handler {
	return s.router
}

// requestLogger attaches the service logger to the request context and logs
// one line per request.
func (s *Service) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := logging.WithContext(c.Request().Context(), s.logger)
		c.SetRequest(c.Request().WithContext(ctx))

		err := next(c)

		event := s.logger.Info()
		if err != nil {
			event = s.logger.Warn().Err(err)
		}
		event.
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Int("status", c.Response().Status).
			Msg("request")

		return err
	}
}
