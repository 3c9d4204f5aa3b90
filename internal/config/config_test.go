package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppConfig_Defaults(t *testing.T) {
	cfg := NewAppConfig(context.Background())

	assert.Equal(t, ">>> ", cfg.Prompt)
	assert.Equal(t, ".calc_history", cfg.HistoryFile)
	assert.False(t, cfg.Debug)
}

func TestNewAppConfig_Overrides(t *testing.T) {
	t.Setenv("CALC_PROMPT", "calc> ")
	t.Setenv("CALC_HISTORY_FILE", "/tmp/hist")
	t.Setenv("CALC_DEBUG", "true")

	cfg := NewAppConfig(context.Background())

	assert.Equal(t, "calc> ", cfg.Prompt)
	assert.Equal(t, "/tmp/hist", cfg.HistoryFile)
	assert.True(t, cfg.Debug)
}
