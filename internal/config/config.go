package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vytor/mathadventures/internal/adaptive"
	"github.com/vytor/mathadventures/internal/logger"
)

type Config struct {
	Addr                string
	DBPath              string
	LogLevel            string
	FastResponseSeconds float64
	PromoteStreak       int
	DemoteStreak        int
	ArchiveWorkerCount  int
	ArchiveQueueSize    int
	AllowedOrigins      []string
	RandomSeed          uint64
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing or unparsable.
func Load() Config {
	// .env is optional outside development.
	_ = godotenv.Load()

	return Config{
		Addr:                envOr("ADDR", ":8000"),
		DBPath:              envOr("DB_PATH", "file:mathadventures?mode=memory&cache=shared"),
		LogLevel:            envOr("LOG_LEVEL", "INFO"),
		FastResponseSeconds: envFloatOr("FAST_RESPONSE_SECONDS", 5.0),
		PromoteStreak:       envIntOr("PROMOTE_STREAK", 2),
		DemoteStreak:        envIntOr("DEMOTE_STREAK", 2),
		ArchiveWorkerCount:  envIntOr("ARCHIVE_WORKER_COUNT", 1),
		ArchiveQueueSize:    envIntOr("ARCHIVE_QUEUE_SIZE", 256),
		AllowedOrigins:      envListOr("ALLOWED_ORIGINS", []string{"*"}),
		RandomSeed:          envUintOr("RANDOM_SEED", 0),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("ADDR cannot be empty"))
	}
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("DB_PATH cannot be empty"))
	}
	if !logger.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be DEBUG, INFO, WARN or ERROR, got %q", c.LogLevel))
	}
	if c.FastResponseSeconds <= 0 {
		errs = append(errs, fmt.Errorf("FAST_RESPONSE_SECONDS must be positive, got %v", c.FastResponseSeconds))
	}
	if c.PromoteStreak < 1 {
		errs = append(errs, fmt.Errorf("PROMOTE_STREAK must be at least 1, got %d", c.PromoteStreak))
	}
	if c.DemoteStreak < 1 {
		errs = append(errs, fmt.Errorf("DEMOTE_STREAK must be at least 1, got %d", c.DemoteStreak))
	}
	if c.ArchiveWorkerCount < 1 {
		errs = append(errs, fmt.Errorf("ARCHIVE_WORKER_COUNT must be at least 1, got %d", c.ArchiveWorkerCount))
	}
	if c.ArchiveQueueSize < 1 {
		errs = append(errs, fmt.Errorf("ARCHIVE_QUEUE_SIZE must be at least 1, got %d", c.ArchiveQueueSize))
	}
	if len(c.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("ALLOWED_ORIGINS cannot be empty"))
	}

	return errors.Join(errs...)
}

// Policy returns the adaptive thresholds.
func (c Config) Policy() adaptive.Policy {
	return adaptive.Policy{
		FastResponseSeconds: c.FastResponseSeconds,
		PromoteStreak:       c.PromoteStreak,
		DemoteStreak:        c.DemoteStreak,
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envUintOr(key string, def uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseUint(v, 10, 64); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s=%q, using default %v", key, v, def)
	}
	return def
}

func envListOr(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
