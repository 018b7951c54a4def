package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port         string
	DatabaseURL  string
	AllowOrigins []string

	LogLevel        string
	LogPretty       bool
	LogstashTCPAddr string

	SessionTTLMinutes    int
	SessionSweepSchedule string
	SessionCookieSecure  bool

	MinIOEndpoint          string
	MinIOAccessKey         string
	MinIOSecretKey         string
	MinIOUseSSL            bool
	MinIOBucketStoryboards string
	MinIOPublicURL         string

	StoryboardImageMaxBytes     int64
	StoryboardImageMaxDimension int
}

// StorageEnabled reports whether object storage for storyboard images is configured.
func (c Config) StorageEnabled() bool {
	return c.MinIOEndpoint != ""
}

// Load reads .env (when present) and the process environment. It fails on
// missing required keys and on malformed numeric values.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg(".env file not loaded")
	}

	cfg := Config{
		Port:                   getenv("PORT", "8080"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		AllowOrigins:           splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogLevel:               getenv("LOG_LEVEL", "info"),
		LogPretty:              getenv("LOG_PRETTY", "false") == "true",
		LogstashTCPAddr:        getenv("LOGSTASH_TCP_ADDR", ""),
		SessionSweepSchedule:   getenv("SESSION_SWEEP_SCHEDULE", "@every 5m"),
		SessionCookieSecure:    getenv("SESSION_COOKIE_SECURE", "false") == "true",
		MinIOEndpoint:          getenv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:         getenv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:         getenv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:            getenv("MINIO_USE_SSL", "false") == "true",
		MinIOBucketStoryboards: getenv("MINIO_BUCKET_STORYBOARDS", "projectboard-storyboards"),
		MinIOPublicURL:         getenv("MINIO_PUBLIC_URL", ""),
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("missing env: DATABASE_URL")
	}

	ttl, err := strconv.Atoi(getenv("SESSION_TTL_MINUTES", "60"))
	if err != nil || ttl <= 0 {
		return Config{}, errors.New("SESSION_TTL_MINUTES must be a positive integer")
	}
	cfg.SessionTTLMinutes = ttl

	maxBytes, err := strconv.ParseInt(getenv("STORYBOARD_IMAGE_MAX_BYTES", "5242880"), 10, 64)
	if err != nil || maxBytes <= 0 {
		return Config{}, errors.New("STORYBOARD_IMAGE_MAX_BYTES must be a positive integer")
	}
	cfg.StoryboardImageMaxBytes = maxBytes

	maxDim, err := strconv.Atoi(getenv("STORYBOARD_IMAGE_MAX_DIMENSION", "3840"))
	if err != nil || maxDim <= 0 {
		return Config{}, errors.New("STORYBOARD_IMAGE_MAX_DIMENSION must be a positive integer")
	}
	cfg.StoryboardImageMaxDimension = maxDim

	if cfg.StorageEnabled() && (cfg.MinIOAccessKey == "" || cfg.MinIOSecretKey == "") {
		return Config{}, errors.New("MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required when MINIO_ENDPOINT is set")
	}
	return cfg, nil
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
