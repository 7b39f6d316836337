package focus

import (
	"fmt"
	"strings"

	"github.com/bnema/tvfocus/internal/domain/entity"
)

// Control is the capability every navigable control implements.
// Implementations must be pointer types: managers compare controls by identity.
type Control interface {
	// Enabled reports whether the control can take focus and be activated.
	Enabled() bool
	SetEnabled(enabled bool)

	// Focused reports the visual focus state. The manager calls SetFocused
	// on focus changes and never reads it back.
	Focused() bool
	SetFocused(focused bool)

	// WantsAngleOfTouch declares whether the control is interested in pan
	// deltas while focused.
	WantsAngleOfTouch() bool

	// WantsControlOfTouch is asked once per pan gesture. Returning true
	// suspends directional navigation and streams angles to the control
	// until the gesture ends.
	WantsControlOfTouch() bool

	// ResetFocus restarts any focus animation without changing focus.
	ResetFocus()

	// SetAngleOfTouch delivers the pan direction (0 is up, clockwise) and
	// distance since gesture start. Only sent to a control holding touch.
	SetAngleOfTouch(angle, radius float64, first, last bool)

	// Activate is invoked on click/select.
	Activate()

	// Position is the control's location in the manager's coordinate space.
	Position() entity.Point
}

// PlayPauseNotifiee is implemented by controls that want the play/pause
// button when the manager's action is PlayPauseNotifies.
type PlayPauseNotifiee interface {
	PlayerDidPressPlayPause()
}

// HitTester is implemented by controls with an on-screen area. Clicks
// are routed to the back control only if it contains the click point.
type HitTester interface {
	Contains(p entity.Point) bool
}

// Proxied is implemented by controls that are represented inside a
// manager by a proxy, typically because they sit inside a container.
type Proxied interface {
	Proxy() Control
}

// PlayPauseAction selects what the play/pause button does.
type PlayPauseAction int

const (
	// PlayPauseNone ignores the button.
	PlayPauseNone PlayPauseAction = iota
	// PlayPauseTogglesPanControl flips PanControlActive so the app can take
	// over pan gestures.
	PlayPauseTogglesPanControl
	// PlayPauseShiftsFocus moves focus to the next control.
	PlayPauseShiftsFocus
	// PlayPauseNotifies forwards the press to the focused control.
	PlayPauseNotifies
)

// String returns the config name of the action.
func (a PlayPauseAction) String() string {
	switch a {
	case PlayPauseNone:
		return "none"
	case PlayPauseTogglesPanControl:
		return "toggles_pan_control"
	case PlayPauseShiftsFocus:
		return "shifts_focus"
	case PlayPauseNotifies:
		return "notifies"
	default:
		return "unknown"
	}
}

// ParsePlayPauseAction parses a config name. Empty means none.
func ParsePlayPauseAction(s string) (PlayPauseAction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return PlayPauseNone, nil
	case "toggles_pan_control":
		return PlayPauseTogglesPanControl, nil
	case "shifts_focus":
		return PlayPauseShiftsFocus, nil
	case "notifies":
		return PlayPauseNotifies, nil
	default:
		return PlayPauseNone, fmt.Errorf("unknown play/pause action %q", s)
	}
}
