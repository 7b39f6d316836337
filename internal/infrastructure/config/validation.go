package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// ErrInvalid wraps every configuration validation failure.
var ErrInvalid = errors.New("invalid configuration")

var validPlayPauseActions = []string{"none", "toggles_pan_control", "shifts_focus", "notifies"}

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateNavigation(config)...)
	validationErrors = append(validationErrors, validateRemote(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

// Validate checks cfg the same way Load does.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalid)
	}
	return validateConfig(cfg)
}

func validateLogging(config *Config) []string {
	if _, err := zerolog.ParseLevel(config.Logging.Level); err != nil {
		return []string{fmt.Sprintf("logging.level %q is not a valid level", config.Logging.Level)}
	}
	return nil
}

func validateNavigation(config *Config) []string {
	var validationErrors []string
	if config.Navigation.PanThreshold < 0 {
		validationErrors = append(validationErrors, "navigation.pan_threshold must be non-negative")
	}

	valid := false
	for _, a := range validPlayPauseActions {
		if config.Navigation.PlayPauseAction == a {
			valid = true
			break
		}
	}
	if !valid {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"navigation.play_pause_action must be one of: %s (got %q)",
			strings.Join(validPlayPauseActions, ", "), config.Navigation.PlayPauseAction))
	}
	return validationErrors
}

func validateRemote(config *Config) []string {
	var validationErrors []string
	if config.Remote.SwipeDistance <= 0 {
		validationErrors = append(validationErrors, "remote.swipe_distance must be positive")
	}
	if config.Remote.SwipeSteps < 1 {
		validationErrors = append(validationErrors, "remote.swipe_steps must be at least 1")
	}
	return validationErrors
}
