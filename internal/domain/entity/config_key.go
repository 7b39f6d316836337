package entity

// ConfigKeyInfo describes a single configuration key for schema documentation.
type ConfigKeyInfo struct {
	// Key is the dotted path, e.g. "navigation.pan_threshold".
	Key string `json:"key"`

	// Type is the Go type name.
	Type string `json:"type"`

	// Default is the default value as a string representation
	Default string `json:"default"`

	Description string `json:"description"`

	// Values lists valid values for string enums.
	Values []string `json:"values,omitempty"`

	// Range describes numeric constraints, e.g. ">=0".
	Range string `json:"range,omitempty"`

	// Section groups related keys, e.g. "Navigation".
	Section string `json:"section"`
}
