package config

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	defaultPanThreshold    = 60.0 // points
	defaultPlayPauseAction = "none"

	defaultSwipeDistance = 100.0 // points
	defaultSwipeSteps    = 4
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Navigation: NavigationConfig{
			PanThreshold:       defaultPanThreshold,
			PlayPauseAction:    defaultPlayPauseAction,
			ArmPanOnFirstFocus: true,
		},
		Remote: RemoteConfig{
			SwipeDistance: defaultSwipeDistance,
			SwipeSteps:    defaultSwipeSteps,
		},
		Demo: DemoConfig{
			Scenes: []string{},
		},
	}
}
