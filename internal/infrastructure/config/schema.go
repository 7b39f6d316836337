// Package config loads tvfocus configuration with viper: TOML file, TVFOCUS_
// environment variables and built-in defaults.
package config

// Config is the complete tvfocus configuration.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Navigation NavigationConfig `mapstructure:"navigation" toml:"navigation" json:"navigation"`
	Remote     RemoteConfig     `mapstructure:"remote" toml:"remote" json:"remote"`
	Demo       DemoConfig       `mapstructure:"demo" toml:"demo" json:"demo"`
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=fatal"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File receives logs instead of stderr. The demo always logs to a file
	// because the terminal belongs to the UI.
	File string `mapstructure:"file" toml:"file" json:"file,omitempty"`
}

// NavigationConfig holds defaults for focus managers. Scene files can
// override each of them.
type NavigationConfig struct {
	// PanThreshold is the pan distance accumulated before focus moves.
	PanThreshold float64 `mapstructure:"pan_threshold" toml:"pan_threshold" json:"pan_threshold" jsonschema:"minimum=0"`
	// PlayPauseAction is what the play/pause button does.
	PlayPauseAction string `mapstructure:"play_pause_action" toml:"play_pause_action" json:"play_pause_action" jsonschema:"enum=none,enum=toggles_pan_control,enum=shifts_focus,enum=notifies"`
	// ArmPanOnFirstFocus re-enables pan navigation after a scene focuses
	// its first control.
	ArmPanOnFirstFocus bool `mapstructure:"arm_pan_on_first_focus" toml:"arm_pan_on_first_focus" json:"arm_pan_on_first_focus"`
}

// RemoteConfig shapes the keyboard remote emulation.
type RemoteConfig struct {
	SwipeDistance float64 `mapstructure:"swipe_distance" toml:"swipe_distance" json:"swipe_distance" jsonschema:"exclusiveMinimum=0"`
	SwipeSteps    int     `mapstructure:"swipe_steps" toml:"swipe_steps" json:"swipe_steps" jsonschema:"minimum=1"`
}

// DemoConfig configures the interactive demo.
type DemoConfig struct {
	// Scenes lists scene files; the first one is entered at startup.
	Scenes []string `mapstructure:"scenes" toml:"scenes" json:"scenes"`
	// Watch reloads scene files and the config file when they change.
	Watch bool `mapstructure:"watch" toml:"watch" json:"watch"`
}
