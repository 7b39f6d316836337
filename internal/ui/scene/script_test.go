package scene

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(`
name = "walk"
scene = "menu"

[[steps]]
action = "swipe"
angle = 90
repeat = 2

[[steps]]
action = "pan"
path = [[0, 0], [0, -40], [0, -80]]

[[steps]]
action = "click"
x = 1
y = 2

[[steps]]
action = "expect"
focused = ""
depth = 1
`))
	require.NoError(t, err)

	assert.Equal(t, "walk", s.Name)
	assert.Equal(t, "menu", s.Scene)
	require.Len(t, s.Steps, 4)
	assert.Equal(t, 2, s.Steps[0].Times())
	assert.Equal(t, 1, s.Steps[1].Times())
	assert.Equal(t, [2]float64{0, -80}, s.Steps[1].Path[2])
	require.NotNil(t, s.Steps[2].X)
	assert.InDelta(t, 1, *s.Steps[2].X, 1e-9)
	require.NotNil(t, s.Steps[3].Focused)
	assert.Empty(t, *s.Steps[3].Focused)
}

func TestParseScript_Errors(t *testing.T) {
	tests := map[string]string{
		"short pan":      "[[steps]]\naction = \"pan\"\npath = [[0, 0]]\n",
		"half click":     "[[steps]]\naction = \"click\"\nx = 3\n",
		"enter no scene": "[[steps]]\naction = \"enter_scene\"\n",
		"empty expect":   "[[steps]]\naction = \"expect\"\n",
		"bad toml":       "[[steps]\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseScript([]byte(data))
			assert.Error(t, err)
		})
	}

	_, err := ParseScript([]byte("[[steps]]\naction = \"moonwalk\"\n"))
	assert.True(t, errors.Is(err, ErrUnknownAction))
}

func TestLoadScript(t *testing.T) {
	s, err := LoadScript("testdata/walk.toml")
	require.NoError(t, err)
	assert.Equal(t, "testdata/walk.toml", s.Path)
	assert.NotEmpty(t, s.Steps)

	_, err = LoadScript("testdata/missing.toml")
	assert.Error(t, err)
}
