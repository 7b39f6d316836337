package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/tvfocus/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionLogging    = "Logging"
	SectionNavigation = "Navigation"
	SectionRemote     = "Remote"
	SectionDemo       = "Demo"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 10)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getNavigationKeys(defaults)...)
	keys = append(keys, p.getRemoteKeys(defaults)...)
	keys = append(keys, p.getDemoKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "fatal"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.file",
			Type:        "string",
			Default:     defaults.Logging.File,
			Description: "Log file path (the demo falls back to the state directory)",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getNavigationKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "navigation.pan_threshold",
			Type:        "float64",
			Default:     strconv.FormatFloat(defaults.Navigation.PanThreshold, 'f', -1, 64),
			Description: "Pan distance in points accumulated before focus moves (0 moves on every pan update)",
			Range:       ">=0",
			Section:     SectionNavigation,
		},
		{
			Key:         "navigation.play_pause_action",
			Type:        "string",
			Default:     defaults.Navigation.PlayPauseAction,
			Description: "What the play/pause button does",
			Values:      validPlayPauseActions,
			Section:     SectionNavigation,
		},
		{
			Key:         "navigation.arm_pan_on_first_focus",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Navigation.ArmPanOnFirstFocus),
			Description: "Re-enable pan navigation after a scene focuses its first control",
			Section:     SectionNavigation,
		},
	}
}

func (*SchemaProvider) getRemoteKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "remote.swipe_distance",
			Type:        "float64",
			Default:     strconv.FormatFloat(defaults.Remote.SwipeDistance, 'f', -1, 64),
			Description: "Pan length of one emulated swipe",
			Range:       ">0",
			Section:     SectionRemote,
		},
		{
			Key:         "remote.swipe_steps",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Remote.SwipeSteps),
			Description: "Pan updates per emulated swipe",
			Range:       ">=1",
			Section:     SectionRemote,
		},
	}
}

func (*SchemaProvider) getDemoKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "demo.scenes",
			Type:        "[]string",
			Default:     "[" + strings.Join(defaults.Demo.Scenes, ", ") + "]",
			Description: "Scene files loaded by the demo; the first one is entered at startup",
			Section:     SectionDemo,
		},
		{
			Key:         "demo.watch",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Demo.Watch),
			Description: "Reload scene files and config when they change",
			Section:     SectionDemo,
		},
	}
}
