package config

import (
	"os"
	"strconv"

	"vlr-growth/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	VLRAPIBaseURL string
	ServerPort    string
	LogLevel      string
	PageLimit     int
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		VLRAPIBaseURL: getEnv("VLR_API_BASE_URL", "https://vlr.orlandomm.net/api/v1"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		PageLimit:     getEnvInt("PAGE_LIMIT", constants.DefaultPageLimit),
	}

	logger.Info().
		Str("vlr_api_base_url", cfg.VLRAPIBaseURL).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Int("page_limit", cfg.PageLimit).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

var Module = fx.Provide(Load)
