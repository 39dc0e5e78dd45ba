package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/omarshaarawi/pennantbot/internal/bot"
	"github.com/omarshaarawi/pennantbot/internal/config"
	"github.com/omarshaarawi/pennantbot/internal/engine"
	"github.com/omarshaarawi/pennantbot/internal/repository/memory"
	"github.com/omarshaarawi/pennantbot/internal/scheduler"
	"github.com/omarshaarawi/pennantbot/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}
	setupLogger(cfg.Server.LogLevel)

	repo := memory.NewRepository()
	pennantService := service.NewPennantService(repo, engine.NewSource(cfg.Season.Seed))
	pennantService.NewSeason()

	telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, pennantService)
	if err != nil {
		return err
	}

	sched, err := scheduler.NewScheduler(
		pennantService,
		telegramBot.SendMessage,
		cfg.Season.Timezone,
		cfg.Season.DigestSchedule,
		cfg.Season.AutoAdvanceInterval,
	)
	if err != nil {
		return err
	}
	telegramBot.AttachAutoAdvancer(sched)

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	http.HandleFunc("/", healthCheckHandler)

	go func() {
		if err := http.ListenAndServe(cfg.Server.Addr, nil); err != nil {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := telegramBot.Start(ctx); err != nil {
			slog.Error("Error running telegram bot", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	return nil
}

func setupLogger(level string) {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: l})))
	slog.Info("Logger initialized", "level", l)
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
