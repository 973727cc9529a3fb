package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   slog.Level

	QueueCapacity  int
	WorkerInterval time.Duration
	DequeueTimeout time.Duration
	WorkMin        time.Duration
	WorkMax        time.Duration
	FinalizeDelay  time.Duration

	StalePendingAfter        time.Duration
	StalePendingScanInterval time.Duration

	ShutdownTimeout time.Duration
}

// LoadConfig reads the optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}
	return ConfigFromEnv(os.LookupEnv)
}

// ConfigFromEnv builds a Config from lookup, applying defaults for unset
// variables.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	p := envParser{lookup: lookup}

	cfg := Config{
		HTTPPort:   p.stringVar("HTTP_PORT", "8080"),
		DBHost:     p.stringVar("DB_HOST", "localhost"),
		DBPort:     p.stringVar("DB_PORT", "5432"),
		DBUser:     p.stringVar("DB_USER", "postgres"),
		DBPassword: p.stringVar("DB_PASSWORD", ""),
		DBName:     p.stringVar("DB_NAME", "orders"),
		DBSslMode:  p.stringVar("DB_SSLMODE", "disable"),
		LogLevel:   p.levelVar("LOG_LEVEL", slog.LevelInfo),

		QueueCapacity:  p.intVar("ORDER_QUEUE_CAPACITY", 1000),
		WorkerInterval: p.durationVar("ORDER_WORKER_INTERVAL", time.Second),
		DequeueTimeout: p.durationVar("ORDER_DEQUEUE_TIMEOUT", 100*time.Millisecond),
		WorkMin:        p.durationVar("ORDER_WORK_MIN", 2*time.Second),
		WorkMax:        p.durationVar("ORDER_WORK_MAX", 5*time.Second),
		FinalizeDelay:  p.durationVar("ORDER_FINALIZE_DELAY", 2*time.Second),

		StalePendingAfter:        p.durationVar("STALE_PENDING_AFTER", 5*time.Minute),
		StalePendingScanInterval: p.durationVar("STALE_PENDING_SCAN_INTERVAL", time.Minute),

		ShutdownTimeout: p.durationVar("SHUTDOWN_TIMEOUT", 30*time.Second),
	}

	if err := errors.Join(p.errs...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the limits the pipeline relies on.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, d time.Duration) {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", name, d))
		}
	}

	if c.QueueCapacity < 1 {
		errs = append(errs, fmt.Errorf("ORDER_QUEUE_CAPACITY must be at least 1, got %d", c.QueueCapacity))
	}
	positive("ORDER_WORKER_INTERVAL", c.WorkerInterval)
	positive("ORDER_DEQUEUE_TIMEOUT", c.DequeueTimeout)
	positive("STALE_PENDING_AFTER", c.StalePendingAfter)
	positive("STALE_PENDING_SCAN_INTERVAL", c.StalePendingScanInterval)
	positive("SHUTDOWN_TIMEOUT", c.ShutdownTimeout)

	if c.WorkMin < 0 || c.FinalizeDelay < 0 {
		errs = append(errs, errors.New("ORDER_WORK_MIN and ORDER_FINALIZE_DELAY must not be negative"))
	}
	if c.WorkMin > c.WorkMax {
		errs = append(errs, fmt.Errorf("ORDER_WORK_MIN (%s) must not exceed ORDER_WORK_MAX (%s)", c.WorkMin, c.WorkMax))
	}

	return errors.Join(errs...)
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

type envParser struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (p *envParser) raw(key string) (string, bool) {
	v, ok := p.lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (p *envParser) stringVar(key, def string) string {
	if v, ok := p.raw(key); ok {
		return v
	}
	return def
}

func (p *envParser) intVar(key string, def int) int {
	v, ok := p.raw(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (p *envParser) durationVar(key string, def time.Duration) time.Duration {
	v, ok := p.raw(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}

func (p *envParser) levelVar(key string, def slog.Level) slog.Level {
	v, ok := p.raw(key)
	if !ok {
		return def
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return l
}
