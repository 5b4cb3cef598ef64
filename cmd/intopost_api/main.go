// Package main InToPost API
// @title InToPost API
// @version 1.0
// @description Converts infix arithmetic expressions to postfix notation
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/intopost/internal/api/router"
	"github.com/DjordjeVuckovic/intopost/internal/api/server"
	"github.com/DjordjeVuckovic/intopost/internal/convert"
	"github.com/DjordjeVuckovic/intopost/internal/metrics"
	pkgserver "github.com/DjordjeVuckovic/intopost/pkg/server"
)

const (
	probeExpression = "A + B"
	probePostfix    = "A B +"
)

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	converter := convert.New()
	m := metrics.New()

	healthChecker := pkgserver.NewProbeHealthChecker(func(context.Context) bool {
		conv := converter.ConvertLine(probeExpression)
		return !conv.Failed() && conv.PostfixString() == probePostfix
	})

	s := server.New(cfg.Server, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*").
		SetupMetrics("/metrics", m.Registry)

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "InToPost API is running")
	})

	router.NewConvertRouter(s.Echo, converter,
		router.WithMetrics(m),
		router.WithMaxBatchSize(cfg.Server.MaxBatchSize),
	).Bind()

	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
