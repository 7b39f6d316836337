package input

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/bnema/tvfocus/internal/domain/entity"
)

const (
	// DefaultSwipeDistance is the pan length of one emulated swipe.
	DefaultSwipeDistance = 100.0
	// DefaultSwipeSteps is the number of pan moves in one emulated swipe.
	DefaultSwipeSteps = 4
)

// KeyMap binds keyboard keys to remote buttons.
type KeyMap struct {
	// Touch surface
	SwipeUp    key.Binding
	SwipeDown  key.Binding
	SwipeLeft  key.Binding
	SwipeRight key.Binding

	// Buttons
	Select    key.Binding
	Menu      key.Binding
	PlayPause key.Binding
}

// DefaultKeyMap returns the default remote bindings.
var DefaultKeyMap = KeyMap{
	SwipeUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "swipe up"),
	),
	SwipeDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "swipe down"),
	),
	SwipeLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "swipe left"),
	),
	SwipeRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "swipe right"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select"),
	),
	Menu: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "menu"),
	),
	PlayPause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "play/pause"),
	),
}

// ShortHelp returns bindings for the compact help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwipeUp, k.SwipeDown, k.SwipeLeft, k.SwipeRight, k.Select, k.Menu, k.PlayPause}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwipeUp, k.SwipeDown, k.SwipeLeft, k.SwipeRight},
		{k.Select, k.Menu, k.PlayPause},
	}
}

// RemoteOption configures a Remote.
type RemoteOption func(*Remote)

// WithSwipe sets the length and granularity of emulated swipes.
func WithSwipe(distance float64, steps int) RemoteOption {
	return func(r *Remote) {
		if distance > 0 {
			r.swipeDistance = distance
		}
		if steps > 0 {
			r.swipeSteps = steps
		}
	}
}

// WithKeyMap replaces the default bindings.
func WithKeyMap(keys KeyMap) RemoteOption {
	return func(r *Remote) {
		r.keys = keys
	}
}

// Remote emulates a touch remote on a keyboard: arrow keys become swipes,
// other bindings become button presses.
type Remote struct {
	dispatcher    *Dispatcher
	keys          KeyMap
	swipeDistance float64
	swipeSteps    int
	pointer       entity.Point
}

// offscreen is the default pointer: scene coordinates are never negative, so
// select presses at this point never hit the back control.
var offscreen = entity.Point{X: -1, Y: -1}

// NewRemote creates a remote that feeds d.
func NewRemote(d *Dispatcher, opts ...RemoteOption) *Remote {
	r := &Remote{
		dispatcher:    d,
		keys:          DefaultKeyMap,
		swipeDistance: DefaultSwipeDistance,
		swipeSteps:    DefaultSwipeSteps,
		pointer:       offscreen,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Keys returns the remote's bindings.
func (r *Remote) Keys() KeyMap {
	return r.keys
}

// PointAt sets where select presses land.
func (r *Remote) PointAt(p entity.Point) {
	r.pointer = p
}

// SwipeEvents returns the pan sequence of one swipe at angle degrees
// (0 is up, clockwise): a start at the origin, evenly spaced cumulative
// moves and an end at the full distance.
func (r *Remote) SwipeEvents(angle float64) []Event {
	full := entity.VectorFromAngle(angle, r.swipeDistance)

	events := make([]Event, 0, r.swipeSteps+2)
	events = append(events, Event{Kind: EventPanStart})
	for i := 1; i <= r.swipeSteps; i++ {
		f := float64(i) / float64(r.swipeSteps)
		events = append(events, Event{
			Kind:        EventPanMove,
			Translation: entity.Vector{DX: full.DX * f, DY: full.DY * f},
		})
	}
	events = append(events, Event{Kind: EventPanEnd, Translation: full})
	return events
}

// Swipe dispatches one swipe at angle degrees.
func (r *Remote) Swipe(angle float64) {
	for _, ev := range r.SwipeEvents(angle) {
		r.dispatcher.Dispatch(ev)
	}
}

// Select presses the touch surface at the pointer.
func (r *Remote) Select() {
	r.dispatcher.OnClick(r.pointer)
}

// TapAt presses the touch surface at p, leaving the pointer where it is.
func (r *Remote) TapAt(p entity.Point) {
	r.dispatcher.OnClick(p)
}

// Menu presses the menu button.
func (r *Remote) Menu() {
	r.dispatcher.OnMenuButton()
}

// PlayPause presses the play/pause button.
func (r *Remote) PlayPause() {
	r.dispatcher.OnPlayPauseButton()
}

// Press maps a key to a remote action and dispatches it. It reports whether
// the key is bound.
func (r *Remote) Press(k fmt.Stringer) bool {
	switch {
	case key.Matches(k, r.keys.SwipeUp):
		r.Swipe(0)
	case key.Matches(k, r.keys.SwipeRight):
		r.Swipe(90)
	case key.Matches(k, r.keys.SwipeDown):
		r.Swipe(180)
	case key.Matches(k, r.keys.SwipeLeft):
		r.Swipe(270)
	case key.Matches(k, r.keys.Select):
		r.Select()
	case key.Matches(k, r.keys.Menu):
		r.Menu()
	case key.Matches(k, r.keys.PlayPause):
		r.PlayPause()
	default:
		return false
	}
	return true
}
