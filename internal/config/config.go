// Package config provides configuration management for the news service.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config.yaml"
	DefaultFeedURL    = "http://feeds.bbci.co.uk/news/world/rss.xml"

	BackendTextRank  = "textrank"
	BackendOpenAI    = "openai"
	BackendAnthropic = "anthropic"
)

// Configuration validation errors.
var (
	ErrInvalidDriver    = errors.New("database.driver must be 'sqlite' or 'postgres'")
	ErrMissingDatabase  = errors.New("database.url is required")
	ErrMissingFeedURL   = errors.New("feed.url is required")
	ErrInvalidFeedLimit = errors.New("feed.limit must be at least 1")
	ErrInvalidTimeout   = errors.New("feed.timeout_sec must be at least 1")
	ErrInvalidPort      = errors.New("server.port must be between 1 and 65535")
	ErrInvalidBackend   = errors.New("summarizer.backend must be one of: textrank, openai, anthropic")
	ErrInvalidSentences = errors.New("summarizer.sentences must be at least 1")
	ErrMissingOpenAIKey = errors.New("OPENAI_API_KEY is required for the openai backend")
	ErrMissingClaudeKey = errors.New("ANTHROPIC_API_KEY is required for the anthropic backend")
	ErrInvalidLogLevel  = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete service configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Feed       FeedConfig       `yaml:"feed"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	FrontendURL string `yaml:"frontend_url"`
	Port        int    `yaml:"port"`
}

// DatabaseConfig selects the article store.
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	URL    string `yaml:"url"`
}

// FeedConfig describes the remote RSS feed read at startup.
type FeedConfig struct {
	URL        string `yaml:"url"`
	Limit      int    `yaml:"limit"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// SummarizerConfig selects the summarization engine. API keys only come from
// the environment.
type SummarizerConfig struct {
	Backend         string `yaml:"backend"`
	OpenAIAPIKey    string `yaml:"-"`
	AnthropicAPIKey string `yaml:"-"`
	Sentences       int    `yaml:"sentences"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			URL:    "./news.db",
		},
		Feed: FeedConfig{
			URL:        DefaultFeedURL,
			Limit:      10,
			TimeoutSec: 20,
		},
		Summarizer: SummarizerConfig{
			Backend:   BackendTextRank,
			Sentences: 3,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path and
// environment variables, in increasing precedence. A missing file at the
// default path is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Database.Driver = getenv("DATABASE_DRIVER", c.Database.Driver)
	c.Database.URL = getenv("DATABASE_URL", c.Database.URL)
	c.Feed.URL = getenv("FEED_URL", c.Feed.URL)
	c.Feed.Limit = parseIntEnv("FEED_LIMIT", c.Feed.Limit)
	c.Feed.TimeoutSec = parseIntEnv("FEED_TIMEOUT_SEC", c.Feed.TimeoutSec)
	c.Server.Port = parseIntEnv("PORT", c.Server.Port)
	c.Server.FrontendURL = getenv("FRONTEND_URL", c.Server.FrontendURL)
	c.Summarizer.Backend = strings.ToLower(getenv("SUMMARIZER_BACKEND", c.Summarizer.Backend))
	c.Summarizer.Sentences = parseIntEnv("SUMMARY_SENTENCES", c.Summarizer.Sentences)
	c.Summarizer.OpenAIAPIKey = getenv("OPENAI_API_KEY", c.Summarizer.OpenAIAPIKey)
	c.Summarizer.AnthropicAPIKey = getenv("ANTHROPIC_API_KEY", c.Summarizer.AnthropicAPIKey)
	c.Logging.Level = strings.ToLower(getenv("LOG_LEVEL", c.Logging.Level))
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
		return ErrInvalidDriver
	}

	if c.Database.URL == "" {
		return ErrMissingDatabase
	}

	if c.Feed.URL == "" {
		return ErrMissingFeedURL
	}

	if c.Feed.Limit < 1 {
		return ErrInvalidFeedLimit
	}

	if c.Feed.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return ErrInvalidPort
	}

	if c.Summarizer.Sentences < 1 {
		return ErrInvalidSentences
	}

	switch c.Summarizer.Backend {
	case BackendTextRank:
	case BackendOpenAI:
		if c.Summarizer.OpenAIAPIKey == "" {
			return ErrMissingOpenAIKey
		}
	case BackendAnthropic:
		if c.Summarizer.AnthropicAPIKey == "" {
			return ErrMissingClaudeKey
		}
	default:
		return ErrInvalidBackend
	}

	if _, ok := logLevels[c.Logging.Level]; !ok {
		return ErrInvalidLogLevel
	}

	return nil
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel maps logging.level to a slog level.
func (c *Config) SlogLevel() slog.Level {
	return logLevels[c.Logging.Level]
}

// FeedTimeout returns the HTTP timeout for fetching the feed.
func (c *Config) FeedTimeout() time.Duration {
	return time.Duration(c.Feed.TimeoutSec) * time.Second
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		slog.Warn("invalid integer environment variable, using default", "key", key, "value", v, "default", def)
	}
	return def
}
