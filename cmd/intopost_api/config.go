package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/intopost/internal/api/server"
	"github.com/DjordjeVuckovic/intopost/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type ApiConfig struct {
	Server   *server.Config
	LogLevel slog.Level
}

func (as *AppConfig) Load() (*ApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/intopost_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			slog.Warn("Ignoring invalid LOG_LEVEL", "value", v)
			level = slog.LevelInfo
		}
	}

	return &ApiConfig{
		Server:   sCfg,
		LogLevel: level,
	}, nil
}
