package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/sulnoorman/expense-tracker-bot/core/config"
	"github.com/sulnoorman/expense-tracker-bot/core/database"
	"github.com/sulnoorman/expense-tracker-bot/core/logger"
	"github.com/sulnoorman/expense-tracker-bot/core/telegram"
	"github.com/sulnoorman/expense-tracker-bot/internal/bot"
	"github.com/sulnoorman/expense-tracker-bot/internal/repository"
	"github.com/sulnoorman/expense-tracker-bot/internal/service"
	"github.com/sulnoorman/expense-tracker-bot/internal/session"
)

const defaultConfigPath = "config/config.yaml"

func main() {
	if err := run(); err != nil {
		logger.Error(logger.Background(), "app", "fatal",
			slog.String("err", err.Error()),
		)
		_ = logger.Shutdown()
		os.Exit(1)
	}
	_ = logger.Shutdown()
}

func run() error {
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if err := logger.Init(cfg); err != nil {
		return err
	}

	if err := database.RunMigrations(cfg.Database); err != nil {
		return err
	}
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	sessions := session.NewStore(cfg.Session.IdleTimeout)
	defer sessions.Close()

	tracker := service.NewTracker(repository.NewPostgres(db))
	app := bot.NewApp(tracker, sessions)
	reg := app.BuildRegistry()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return telegram.Run(ctx, telegram.RunOptions{
		Config:      cfg,
		Registry:    reg,
		Middlewares: app.Middlewares(cfg),
		Routes:      app.Routes(reg),
	})
}
