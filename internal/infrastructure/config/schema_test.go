package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaProvider_CoversEveryDefaultKey(t *testing.T) {
	keys := NewSchemaProvider().GetSchema()

	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.Key)
		assert.NotEmpty(t, k.Description, k.Key)
		assert.NotEmpty(t, k.Section, k.Key)
	}

	assert.ElementsMatch(t, []string{
		"logging.level", "logging.format", "logging.file",
		"navigation.pan_threshold", "navigation.play_pause_action", "navigation.arm_pan_on_first_focus",
		"remote.swipe_distance", "remote.swipe_steps",
		"demo.scenes", "demo.watch",
	}, names)
}

func TestJSONSchema(t *testing.T) {
	data, err := JSONSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "tvfocus configuration", doc["title"])
	assert.Contains(t, string(data), "play_pause_action")
	assert.Contains(t, string(data), "toggles_pan_control")
	assert.Contains(t, string(data), "swipe_steps")
}
