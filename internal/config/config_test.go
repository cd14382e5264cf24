package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env here

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NUM_PLAYERS", "2")
	t.Setenv("NUM_DECKS", "1")
	t.Setenv("RESHUFFLE_AT", "10")
	t.Setenv("STARTING_CHIPS", "500")
	t.Setenv("STAKE_STEP", "25")
	t.Setenv("DEAL_INTERVAL", "0s")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Players)
	assert.Equal(t, 1, cfg.Decks)
	assert.Equal(t, 10, cfg.ReshuffleAt)
	assert.Equal(t, int64(500), cfg.StartingChips)
	assert.Equal(t, int64(25), cfg.StakeStep)
	assert.Equal(t, time.Duration(0), cfg.DealInterval)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadRejectsBadValues(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{"too many players", "NUM_PLAYERS", "4"},
		{"no players", "NUM_PLAYERS", "0"},
		{"non-numeric decks", "NUM_DECKS", "six"},
		{"threshold beyond shoe", "RESHUFFLE_AT", "312"},
		{"bad interval", "DEAL_INTERVAL", "fast"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
