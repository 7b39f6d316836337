// Package scene loads scene definitions and manages the scene lifecycle.
//
// A scene is a set of widgets with one focus manager. Entering a scene
// pushes its manager on the focus stack; leaving it pops the manager.
package scene

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/bnema/tvfocus/internal/ui/focus"
	"github.com/bnema/tvfocus/internal/ui/widget"
)

var (
	// ErrUnknownKind is returned for a control with an unsupported kind.
	ErrUnknownKind = errors.New("unknown control kind")
	// ErrDuplicateID is returned when two controls or containers share an id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrUnknownBack is returned when the back id names no control.
	ErrUnknownBack = errors.New("back control not defined")
	// ErrUnknownInitial is returned when the initial id names no control.
	ErrUnknownInitial = errors.New("initial control not defined")
	// ErrUnknownContainer is returned for a control placed in a missing container.
	ErrUnknownContainer = errors.New("container not defined")
	// ErrUnknownScene is returned when a goto or enter names no scene.
	ErrUnknownScene = errors.New("unknown scene")
)

// Definition is the TOML form of a scene.
type Definition struct {
	Name            string   `toml:"name"`
	Back            string   `toml:"back"`
	Initial         string   `toml:"initial"`
	PlayPauseAction string   `toml:"play_pause_action"`
	PanThreshold    *float64 `toml:"pan_threshold"`
	ArmPan          *bool    `toml:"arm_pan"`

	Containers []ContainerDef `toml:"containers"`
	Controls   []ControlDef   `toml:"controls"`

	// Path is the file the definition was loaded from, if any.
	Path string `toml:"-"`
}

// ContainerDef places a container in scene coordinates.
type ContainerDef struct {
	ID string  `toml:"id"`
	X  float64 `toml:"x"`
	Y  float64 `toml:"y"`
	W  float64 `toml:"w"`
	H  float64 `toml:"h"`
}

// ControlDef describes one widget. Coordinates are relative to the
// container when Container is set.
type ControlDef struct {
	ID        string  `toml:"id"`
	Kind      string  `toml:"kind"`
	Label     string  `toml:"label"`
	X         float64 `toml:"x"`
	Y         float64 `toml:"y"`
	W         float64 `toml:"w"`
	H         float64 `toml:"h"`
	Enabled   *bool   `toml:"enabled"`
	Container string  `toml:"container"`
	// Goto names a scene entered when the control is activated.
	Goto string `toml:"goto"`

	Value *float64 `toml:"value"`
	Text  string   `toml:"text"`
}

// Load reads and validates a scene file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	def.Path = path
	return def, nil
}

// Parse decodes and validates a scene definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	md, err := toml.Decode(string(data), &def)
	if err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("parse scene: unknown keys %s", strings.Join(keys, ", "))
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks ids, kinds and references.
func (d *Definition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("scene name is required")
	}
	if _, err := focus.ParsePlayPauseAction(d.PlayPauseAction); err != nil {
		return fmt.Errorf("scene %s: %w", d.Name, err)
	}
	if d.PanThreshold != nil && *d.PanThreshold < 0 {
		return fmt.Errorf("scene %s: pan_threshold must be >= 0, got %v", d.Name, *d.PanThreshold)
	}

	ids := make(map[string]bool, len(d.Controls)+len(d.Containers))
	containers := make(map[string]bool, len(d.Containers))
	for i, c := range d.Containers {
		if c.ID == "" {
			return fmt.Errorf("scene %s: containers[%d]: id is required", d.Name, i)
		}
		if ids[c.ID] {
			return fmt.Errorf("scene %s: %w: %s", d.Name, ErrDuplicateID, c.ID)
		}
		ids[c.ID] = true
		containers[c.ID] = true
	}

	for i, c := range d.Controls {
		if c.ID == "" {
			return fmt.Errorf("scene %s: controls[%d]: id is required", d.Name, i)
		}
		if ids[c.ID] {
			return fmt.Errorf("scene %s: %w: %s", d.Name, ErrDuplicateID, c.ID)
		}
		ids[c.ID] = true
		if _, err := widget.ParseKind(c.Kind); err != nil {
			return fmt.Errorf("scene %s: control %s: %w: %q", d.Name, c.ID, ErrUnknownKind, c.Kind)
		}
		if c.Container != "" && !containers[c.Container] {
			return fmt.Errorf("scene %s: control %s: %w: %s", d.Name, c.ID, ErrUnknownContainer, c.Container)
		}
	}

	if d.Back != "" && !d.hasControl(d.Back) {
		return fmt.Errorf("scene %s: %w: %s", d.Name, ErrUnknownBack, d.Back)
	}
	if d.Initial != "" && !d.hasControl(d.Initial) {
		return fmt.Errorf("scene %s: %w: %s", d.Name, ErrUnknownInitial, d.Initial)
	}
	return nil
}

func (d *Definition) hasControl(id string) bool {
	for _, c := range d.Controls {
		if c.ID == id {
			return true
		}
	}
	return false
}
