package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "zero threshold", mutate: func(c *Config) { c.Navigation.PanThreshold = 0 }},
		{name: "negative threshold", mutate: func(c *Config) { c.Navigation.PanThreshold = -1 }, wantKey: "navigation.pan_threshold"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantKey: "logging.level"},
		{name: "bad action", mutate: func(c *Config) { c.Navigation.PlayPauseAction = "skip" }, wantKey: "navigation.play_pause_action"},
		{name: "zero swipe", mutate: func(c *Config) { c.Remote.SwipeDistance = 0 }, wantKey: "remote.swipe_distance"},
		{name: "no steps", mutate: func(c *Config) { c.Remote.SwipeSteps = 0 }, wantKey: "remote.swipe_steps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantKey == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	assert.True(t, errors.Is(Validate(nil), ErrInvalid))
}
