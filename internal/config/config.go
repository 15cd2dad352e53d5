package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime configuration values.
type Config struct {
	HTTPAddr                string
	DataDir                 string
	CitationsFile           string
	AffiliationsFile        string
	DatabasePath            string
	ReloadCron              string
	WatchData               bool
	CORSAllowedOrigins      []string
	MaxConnections          int
	RequestTimeout          time.Duration
	ShutdownTimeout         time.Duration
	RandomSeed              int64
	CitationMinYear         int
	CitationMaxYear         int
	CollaborationPaperLimit int
	Institution             string
	LogLevel                string
}

const (
	defaultHTTPAddr         = "0.0.0.0:5000"
	defaultDataDir          = "."
	defaultCitationsFile    = "refs_yeshiva_cs_20_25.csv"
	defaultAffiliationsFile = "affils_yeshiva_cs_20_25.csv"
	defaultDatabasePath     = ":memory:"
	defaultReloadCron       = "@every 15m"
	defaultWatchData        = true
	defaultCORSOrigins      = "*"
	defaultMaxConnections   = 256
	defaultTimeout          = 30 * time.Second
	defaultShutdownTimeout  = 5 * time.Second
	defaultCitationMinYear  = 2020
	defaultCitationMaxYear  = 2025
	defaultPaperLimit       = 1000
	defaultInstitution      = "Yeshiva University, Computer Science Department"
	defaultLogLevel         = "info"
)

// Load builds a Config from environment variables with sane defaults. A .env
// file in the working directory is applied first when present; variables that
// are already set win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		HTTPAddr:                getenvDefault("HTTP_ADDR", defaultHTTPAddr),
		DataDir:                 getenvDefault("DATA_DIR", defaultDataDir),
		CitationsFile:           getenvDefault("CITATIONS_FILE", defaultCitationsFile),
		AffiliationsFile:        getenvDefault("AFFILIATIONS_FILE", defaultAffiliationsFile),
		DatabasePath:            getenvDefault("DATABASE_PATH", defaultDatabasePath),
		ReloadCron:              lookupDefault("RELOAD_CRON", defaultReloadCron),
		WatchData:               parseBoolDefault("WATCH_DATA", defaultWatchData),
		CORSAllowedOrigins:      splitList(getenvDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)),
		MaxConnections:          parseIntDefault("MAX_CONNECTIONS", defaultMaxConnections),
		RequestTimeout:          parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
		ShutdownTimeout:         parseDurationDefault("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		RandomSeed:              int64(parseIntDefault("RANDOM_SEED", 0)),
		CitationMinYear:         parseIntDefault("CITATION_MIN_YEAR", defaultCitationMinYear),
		CitationMaxYear:         parseIntDefault("CITATION_MAX_YEAR", defaultCitationMaxYear),
		CollaborationPaperLimit: parseIntDefault("COLLABORATION_PAPER_LIMIT", defaultPaperLimit),
		Institution:             getenvDefault("INSTITUTION", defaultInstitution),
		LogLevel:                getenvDefault("LOG_LEVEL", defaultLogLevel),
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports configuration values the service cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if c.CitationMinYear > c.CitationMaxYear {
		return fmt.Errorf("CITATION_MIN_YEAR (%d) is after CITATION_MAX_YEAR (%d)", c.CitationMinYear, c.CitationMaxYear)
	}
	if c.CollaborationPaperLimit <= 0 {
		return fmt.Errorf("COLLABORATION_PAPER_LIMIT must be positive, got %d", c.CollaborationPaperLimit)
	}
	if c.MaxConnections <= 0 {
		return fmt.Errorf("MAX_CONNECTIONS must be positive, got %d", c.MaxConnections)
	}
	return nil
}

// CitationsPath is the full path of the citation export.
func (c *Config) CitationsPath() string {
	return filepath.Join(c.DataDir, c.CitationsFile)
}

// AffiliationsPath is the full path of the authorship export.
func (c *Config) AffiliationsPath() string {
	return filepath.Join(c.DataDir, c.AffiliationsFile)
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// lookupDefault is getenvDefault, except that a variable set to the empty
// string is kept.
func lookupDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(val)
	}
	return fallback
}

func parseIntDefault(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func parseBoolDefault(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
