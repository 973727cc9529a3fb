package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kashish2310/food-delivery-order-system/cmd"
	"github.com/kashish2310/food-delivery-order-system/internal/adapters/out/postgres/orderrepo"

	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.LogLevel}))
	slog.SetDefault(logger)

	db, err := openDatabase(config)
	if err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(config, db, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(ctx); err != nil {
		return err
	}

	e := app.CreateHTTPServer()
	e.Logger.SetLevel(echoLogLevel(config.LogLevel))

	serverErr := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "HTTP server started", "port", config.HTTPPort)
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
	}()

	serveErr := awaitShutdown(ctx, serverErr, logger)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	return errors.Join(
		serveErr,
		e.Shutdown(shutdownCtx),
		jobManager.StopAll(shutdownCtx),
		closeDatabase(db),
	)
}

// awaitShutdown blocks until ctx is done or the HTTP server exits. It returns
// the server error unless the server was closed on purpose.
func awaitShutdown(ctx context.Context, serverErr <-chan error, logger *slog.Logger) error {
	select {
	case <-ctx.Done():
		logger.InfoContext(ctx, "Shutdown signal received")
		return nil
	case err := <-serverErr:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.ErrorContext(ctx, "HTTP server failed", "error", err)
		return fmt.Errorf("http server: %w", err)
	}
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgresdriver.Open(config.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err = db.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}

func closeDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func echoLogLevel(level slog.Level) log.Lvl {
	switch {
	case level <= slog.LevelDebug:
		return log.DEBUG
	case level <= slog.LevelInfo:
		return log.INFO
	case level <= slog.LevelWarn:
		return log.WARN
	default:
		return log.ERROR
	}
}
