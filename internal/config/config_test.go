package config

import (
	"os"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("CHAT_ID", "42")

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TelegramBot.ChatID != 42 {
		t.Errorf("expected chat id 42, got %d", cfg.TelegramBot.ChatID)
	}
	if cfg.Season.AutoAdvanceInterval != 3*time.Second {
		t.Errorf("expected default interval 3s, got %s", cfg.Season.AutoAdvanceInterval)
	}
	if cfg.Season.DigestSchedule != "0 9 * * *" {
		t.Errorf("expected default digest schedule, got %q", cfg.Season.DigestSchedule)
	}
	if cfg.Server.Addr != ":80" || cfg.Server.LogLevel != "info" {
		t.Errorf("unexpected server defaults %+v", cfg.Server)
	}
}

func TestNew_CustomValues(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("CHAT_ID", "7")
	t.Setenv("SEASON_SEED", "1234")
	t.Setenv("AUTO_ADVANCE_INTERVAL", "2s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Season.Seed != 1234 {
		t.Errorf("expected seed 1234, got %d", cfg.Season.Seed)
	}
	if cfg.Season.AutoAdvanceInterval != 2*time.Second {
		t.Errorf("expected interval 2s, got %s", cfg.Season.AutoAdvanceInterval)
	}
	if cfg.Server.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.Server.LogLevel)
	}
}

func TestNew_MissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	os.Unsetenv("TELEGRAM_TOKEN")
	t.Setenv("CHAT_ID", "7")

	if _, err := New(); err == nil {
		t.Error("expected an error without TELEGRAM_TOKEN")
	}
}
