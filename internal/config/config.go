package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	TelegramBot TelegramBot
	Season      Season
	Server      Server
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN" required:"true"`
	ChatID int64  `envconfig:"CHAT_ID" required:"true"`
}

type Season struct {
	Seed                int64         `envconfig:"SEASON_SEED" default:"0"`
	AutoAdvanceInterval time.Duration `envconfig:"AUTO_ADVANCE_INTERVAL" default:"3s"`
	DigestSchedule      string        `envconfig:"DIGEST_SCHEDULE" default:"0 9 * * *"`
	Timezone            string        `envconfig:"TIMEZONE" default:"America/Chicago"`
}

type Server struct {
	Addr     string `envconfig:"HTTP_ADDR" default:":80"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
