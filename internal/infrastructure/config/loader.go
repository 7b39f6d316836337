package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bnema/tvfocus/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	log       zerolog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*managerOptions)

type managerOptions struct {
	file string
	dirs []string
	log  *zerolog.Logger
}

// WithConfigFile reads configuration from an explicit file instead of
// searching the config directories.
func WithConfigFile(path string) ManagerOption {
	return func(o *managerOptions) {
		o.file = path
	}
}

// WithSearchPaths replaces the directories searched for config.toml.
func WithSearchPaths(dirs ...string) ManagerOption {
	return func(o *managerOptions) {
		o.dirs = dirs
	}
}

// WithLogger sets the logger used for reload diagnostics. The default
// logger is built from the environment.
func WithLogger(log zerolog.Logger) ManagerOption {
	return func(o *managerOptions) {
		o.log = &log
	}
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	var o managerOptions
	for _, opt := range opts {
		opt(&o)
	}

	v := viper.New()
	v.SetConfigType("toml")

	switch {
	case o.file != "":
		v.SetConfigFile(o.file)
	case len(o.dirs) > 0:
		v.SetConfigName("config")
		for _, dir := range o.dirs {
			v.AddConfigPath(dir)
		}
	default:
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.SetConfigName("config")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".") // Current directory for development
	}

	// TVFOCUS_NAVIGATION_PAN_THRESHOLD, TVFOCUS_LOGGING_LEVEL, ...
	v.SetEnvPrefix("TVFOCUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "TVFOCUS_LOG_LEVEL", "TVFOCUS_LOGGING_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TVFOCUS_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TVFOCUS_LOG_FORMAT", "TVFOCUS_LOGGING_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TVFOCUS_LOG_FORMAT: %w", err)
	}

	m := &Manager{viper: v}
	if o.log != nil {
		m.log = *o.log
	} else {
		m.log = logging.NewFromEnv()
	}
	return m, nil
}

// Load reads the configuration file, if any, and environment variables on
// top of the defaults. A missing config file is not an error.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	// An explicit --config path may not exist yet, for example before
	// "config init" writes it.
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		configDir, _ := GetConfigDir()
		configFile = filepath.Join(configDir, "config.toml")
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}

	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}

	config.Navigation.PlayPauseAction = strings.ToLower(strings.TrimSpace(config.Navigation.PlayPauseAction))
	if config.Navigation.PlayPauseAction == "" {
		config.Navigation.PlayPauseAction = defaultPlayPauseAction
	}

	scenes := make([]string, 0, len(config.Demo.Scenes))
	for _, s := range config.Demo.Scenes {
		if s = strings.TrimSpace(s); s != "" {
			scenes = append(scenes, s)
		}
	}
	config.Demo.Scenes = scenes
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Demo.Scenes = slices.Clone(m.config.Demo.Scenes)
	return &configCopy
}

// SetLogger replaces the logger used for reload diagnostics.
func (m *Manager) SetLogger(log zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log = log
}

// ConfigFileUsed returns the path of the configuration file that was read,
// or "" when running on defaults.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)

	m.viper.SetDefault("navigation.pan_threshold", defaults.Navigation.PanThreshold)
	m.viper.SetDefault("navigation.play_pause_action", defaults.Navigation.PlayPauseAction)
	m.viper.SetDefault("navigation.arm_pan_on_first_focus", defaults.Navigation.ArmPanOnFirstFocus)

	m.viper.SetDefault("remote.swipe_distance", defaults.Remote.SwipeDistance)
	m.viper.SetDefault("remote.swipe_steps", defaults.Remote.SwipeSteps)

	m.viper.SetDefault("demo.scenes", defaults.Demo.Scenes)
	m.viper.SetDefault("demo.watch", defaults.Demo.Watch)
}
