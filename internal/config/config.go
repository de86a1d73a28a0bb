package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
)

type Config struct {
	TelegramBot TelegramBot
	ESPNAPI     ESPNAPI
	Reports     Reports
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN" required:"true"`
	ChatID int64  `envconfig:"CHAT_ID" required:"true"`
}

type ESPNAPI struct {
	Year     string `envconfig:"YEAR" required:"true"`
	LeagueID string `envconfig:"LEAGUE_ID" required:"true"`
	SWID     string `envconfig:"SWID" required:"true"`
	ESPNS2   string `envconfig:"ESPN_S2" required:"true"`
}

type Reports struct {
	// AwardsSchedule is a standard five-field cron expression for the
	// weekly awards report.
	AwardsSchedule string `envconfig:"REPORT_SCHEDULE" default:"30 7 * * TUE"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	if _, err := cron.ParseStandard(c.Reports.AwardsSchedule); err != nil {
		return nil, fmt.Errorf("invalid REPORT_SCHEDULE %q: %w", c.Reports.AwardsSchedule, err)
	}
	return &c, nil
}
