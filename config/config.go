package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/sr-ssh/vue-table.api/enums"
)

const (
	EnvDevelopment = "DEV"
	EnvProduction  = "PROD"
)

type AppConfig struct {
	PostgresURL       string
	Port              string
	CORSOrigin        string
	DefaultSearchType enums.SearchType // applied when a query arrives without a searchType
	AppEnv            string           // EnvDevelopment or EnvProduction
	LogLevel          slog.Level
}

var Config AppConfig

func LoadConfig() {
	cfg := AppConfig{}

	cfg.AppEnv = os.Getenv("APP_ENV")
	cfg.PostgresURL = loadRequired("POSTGRES_URL")
	cfg.Port = loadOptional("PORT", "8080")
	cfg.CORSOrigin = loadOptional("CORS_ORIGIN", "*")

	lvlString := loadOptional("LOG_LEVEL", "INFO")
	var err error
	cfg.LogLevel, err = parseLogLevel(lvlString)
	if err != nil {
		slog.Error("Invalid LOG_LEVEL", "error", err)
		cfg.LogLevel = slog.LevelInfo
	}

	searchType := loadOptional("DEFAULT_SEARCH_TYPE", string(enums.SearchTypePartialMatch))
	cfg.DefaultSearchType, err = parseDefaultSearchType(searchType)
	if err != nil {
		slog.Error("Invalid DEFAULT_SEARCH_TYPE", "error", err)
		os.Exit(1)
	}

	if err := checkProduction(cfg); err != nil {
		slog.Error("Invalid production config", "error", err)
		os.Exit(1)
	}

	Config = cfg
}

// checkProduction rejects settings that are only acceptable during development.
func checkProduction(cfg AppConfig) error {
	if cfg.IsProduction() && cfg.CORSOrigin == "*" {
		return errors.New("CORS_ORIGIN must name an origin in production")
	}
	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	var err = level.UnmarshalText([]byte(s))
	return level, err
}

func parseDefaultSearchType(s string) (enums.SearchType, error) {
	st, err := enums.ParseSearchType(s)
	if err != nil {
		return enums.SearchTypeInvalid, errors.Wrap(err, "default search type")
	}
	return st, nil
}

func loadRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Required env var not set", "key", key)
		os.Exit(1)
	}
	return value
}

func loadOptional(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (c AppConfig) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// LogHandler writes JSON in production and human readable text elsewhere.
func (c AppConfig) LogHandler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.IsProduction() {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
