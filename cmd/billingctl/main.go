package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"apartment-be-svc/internal/app"
	"apartment-be-svc/internal/cli"
	"apartment-be-svc/internal/config"
	"apartment-be-svc/internal/database"
	"apartment-be-svc/pkg/logger"
)

func main() {
	load := func() (*app.Services, func(), error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
		}

		appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
		appLogger.SetOutput(os.Stderr)

		db, err := database.NewDatabase(&cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.AutoMigrate(); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
		}

		services, err := app.NewServices(cfg, db.DB, nil, appLogger)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		return services, func() { _ = db.Close() }, nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(load).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
