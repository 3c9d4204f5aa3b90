package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/replkit/pkg/log"
)

type AppConfig struct {
	Prompt      string `env:"CALC_PROMPT" envDefault:">>> "`
	HistoryFile string `env:"CALC_HISTORY_FILE" envDefault:".calc_history"`
	Debug       bool   `env:"CALC_DEBUG" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse app config")
	}
	return c
}
