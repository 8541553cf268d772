package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yt-insights/mentions/internal/models"
)

// Config holds the application configuration
type Config struct {
	YouTubeAPIKey string
	DBPath        string
	Port          string
	LogLevel      string
	Environment   string
	CORSOrigins   []string

	RequestTimeout time.Duration
	MaxChannels    int
	RecentVideos   int64

	ShortVideoSeconds      int
	TimestampLeadInSeconds int
}

// Load loads the configuration from environment variables.
// A missing API key is not an error here; requests report it instead.
func Load() (*Config, error) {
	cfg := &Config{
		YouTubeAPIKey: strings.TrimSpace(os.Getenv("YOUTUBE_API_KEY")),
		DBPath:        os.Getenv("DB_PATH"),
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
	}

	var err error
	if cfg.RequestTimeout, err = time.ParseDuration(getEnv("REQUEST_TIMEOUT", "60s")); err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}
	if cfg.MaxChannels, err = getInt("MAX_CHANNELS", 10); err != nil {
		return nil, err
	}
	recent, err := getInt("RECENT_VIDEOS", 20)
	if err != nil {
		return nil, err
	}
	cfg.RecentVideos = int64(recent)
	if cfg.ShortVideoSeconds, err = getInt("SHORT_VIDEO_SECONDS", 300); err != nil {
		return nil, err
	}
	if cfg.TimestampLeadInSeconds, err = getInt("TIMESTAMP_LEAD_IN_SECONDS", 3); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.YouTubeAPIKey == "" {
		return fmt.Errorf("%w: YOUTUBE_API_KEY environment variable is not set", models.ErrMissingAPIKey)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
