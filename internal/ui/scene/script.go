package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Script step actions.
const (
	ActionPan        = "pan"
	ActionSwipe      = "swipe"
	ActionClick      = "click"
	ActionMenu       = "menu"
	ActionPlayPause  = "play_pause"
	ActionEnterScene = "enter_scene"
	ActionExitScene  = "exit_scene"
	ActionExpect     = "expect"
)

// ErrUnknownAction is returned for a script step with an unsupported action.
var ErrUnknownAction = errors.New("unknown script action")

// Script is a recorded sequence of remote input, replayed against scenes.
type Script struct {
	Name string `toml:"name"`
	// Scene is entered before the first step. Empty means the first scene
	// given to the replay.
	Scene string `toml:"scene"`
	Steps []Step `toml:"steps"`

	Path string `toml:"-"`
}

// Step is one script action. Fields apply per action:
//   - pan: Path holds cumulative translations; the first starts the
//     gesture, the last ends it.
//   - swipe: Angle in degrees (0 up, clockwise).
//   - click: X/Y, or the remote's select press when unset.
//   - enter_scene: Scene.
//   - expect: Focused, Scene and/or Depth must match.
//
// Repeat runs the step more than once.
type Step struct {
	Action string       `toml:"action"`
	Path   [][2]float64 `toml:"path"`
	Angle  float64      `toml:"angle"`
	X      *float64     `toml:"x"`
	Y      *float64     `toml:"y"`
	Scene  string       `toml:"scene"`
	Repeat int          `toml:"repeat"`

	Focused *string `toml:"focused"`
	Depth   *int    `toml:"depth"`
}

// Times returns how often the step runs.
func (s Step) Times() int {
	if s.Repeat < 1 {
		return 1
	}
	return s.Repeat
}

// LoadScript reads and validates a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

// ParseScript decodes and validates a script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if _, err := toml.Decode(string(data), &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every step has what its action needs.
func (s *Script) Validate() error {
	for i, step := range s.Steps {
		switch step.Action {
		case ActionPan:
			if len(step.Path) < 2 {
				return fmt.Errorf("steps[%d]: pan needs at least two path points", i)
			}
		case ActionClick:
			if (step.X == nil) != (step.Y == nil) {
				return fmt.Errorf("steps[%d]: click needs both x and y, or neither", i)
			}
		case ActionEnterScene:
			if step.Scene == "" {
				return fmt.Errorf("steps[%d]: enter_scene needs a scene", i)
			}
		case ActionExpect:
			if step.Focused == nil && step.Scene == "" && step.Depth == nil {
				return fmt.Errorf("steps[%d]: expect needs focused, scene or depth", i)
			}
		case ActionSwipe, ActionMenu, ActionPlayPause, ActionExitScene:
		default:
			return fmt.Errorf("steps[%d]: %w: %q", i, ErrUnknownAction, step.Action)
		}
	}
	return nil
}
