package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/intopost/pkg/config/env"
	"github.com/DjordjeVuckovic/intopost/pkg/utils"
)

const (
	DefaultPort         = "8080"
	DefaultMaxBatchSize = 1000
)

type Config struct {
	Port         string
	UseHttp2     bool
	CorsOrigins  []string
	MaxBatchSize int
}

// LoadConfig reads the server settings from the environment. .env files
// must already be loaded by the caller.
func LoadConfig() (*Config, error) {
	useHttp2 := os.Getenv("USE_HTTP2") == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultPort
	}

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := utils.SplitTrimmed(os.Getenv("CORS_ORIGINS"), ",")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	maxBatch := env.IntOr("MAX_BATCH_SIZE", DefaultMaxBatchSize)
	if maxBatch < 1 {
		return nil, fmt.Errorf("invalid MAX_BATCH_SIZE %d: must be positive", maxBatch)
	}

	return &Config{
		Port:         port,
		UseHttp2:     useHttp2,
		CorsOrigins:  origins,
		MaxBatchSize: maxBatch,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
