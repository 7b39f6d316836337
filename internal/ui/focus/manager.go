// Package focus provides focus state management and directional navigation
// for remote-driven scenes.
//
// A Manager owns the focusable controls of one scene, moves focus in
// response to pan gestures and activates controls on click. Managers are
// nested with a Stack; only the top manager is enabled.
//
// Managers are not safe for concurrent use. All calls are expected on the
// UI loop; see the mainloop package for serializing work from elsewhere.
package focus

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/bnema/tvfocus/internal/domain/entity"
	"github.com/bnema/tvfocus/internal/logging"
)

const (
	// ConeDegrees is the half-angle of the acceptance cone around the pan
	// direction. Candidates further off-axis are never selected.
	ConeDegrees = 25.0

	// DefaultPanThreshold is the pan distance, in points, accumulated since
	// the last focus change before directional selection runs.
	DefaultPanThreshold = 60.0
)

// Option configures a Manager.
type Option func(*Manager)

// WithPlayPauseAction sets the play/pause behavior.
func WithPlayPauseAction(action PlayPauseAction) Option {
	return func(m *Manager) {
		m.playPauseAction = action
	}
}

// WithPanThreshold sets the pan distance needed before focus moves.
// Zero re-runs selection on every pan move.
func WithPanThreshold(points float64) Option {
	return func(m *Manager) {
		if points >= 0 {
			m.panThreshold = points
		}
	}
}

// WithBackControl designates the back control at construction.
func WithBackControl(c Control) Option {
	return func(m *Manager) {
		m.back = resolve(c)
	}
}

// Manager is a navigation context: the set of candidate controls of one
// scene, the focused control and the gesture state machine.
type Manager struct {
	id string

	candidates  []Control
	focused     Control
	focusedNode any
	back        Control

	enabled          bool
	panControlActive bool
	playPauseAction  PlayPauseAction
	panThreshold     float64

	state           State
	panOrigin       entity.Vector
	lastTranslation entity.Vector
	touchOwner      Control

	onExternalPan func(PanEvent)
	onFocusChange []func(from, to Control)

	ctx context.Context
}

// NewManager creates an empty, enabled manager.
func NewManager(ctx context.Context, opts ...Option) *Manager {
	id := uuid.NewString()
	m := &Manager{
		id:           id,
		enabled:      true,
		panThreshold: DefaultPanThreshold,
		ctx:          logging.WithManagerID(logging.WithComponent(ctx, "focus"), id),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewManagerWithControls creates a manager populated with controls in
// order. Insertion order drives first/next selection and tie-breaks.
func NewManagerWithControls(ctx context.Context, controls []Control, opts ...Option) *Manager {
	m := NewManager(ctx, opts...)
	for _, c := range controls {
		m.AddControl(c)
	}
	return m
}

// ID returns the manager's unique identifier.
func (m *Manager) ID() string {
	return m.id
}

// AddControl registers a control. Proxied controls are registered through
// their proxy. Nil and duplicate controls are ignored.
func (m *Manager) AddControl(c Control) {
	c = resolve(c)
	if c == nil || m.indexOf(c) >= 0 {
		return
	}
	m.candidates = append(m.candidates, c)
}

// RemoveControl unregisters a control, clearing focus and releasing the
// touch if it held them.
func (m *Manager) RemoveControl(c Control) {
	c = resolve(c)
	idx := m.indexOf(c)
	if idx < 0 {
		return
	}
	if m.touchOwner == c {
		m.releaseTouch()
	}
	m.candidates = slices.Delete(m.candidates, idx, idx+1)
	if m.focused == c {
		m.changeFocus(nil)
	}
}

// Controls returns every registered control in insertion order,
// including the back control if it was registered.
func (m *Manager) Controls() []Control {
	return slices.Clone(m.candidates)
}

// Candidates returns the controls that can currently take focus.
func (m *Manager) Candidates() []Control {
	out := make([]Control, 0, len(m.candidates))
	for _, c := range m.candidates {
		if m.focusable(c) {
			out = append(out, c)
		}
	}
	return out
}

// Enabled reports whether the manager processes gestures.
func (m *Manager) Enabled() bool {
	return m.enabled
}

// SetEnabled enables or disables gesture processing. Disabling ends any
// gesture in progress.
func (m *Manager) SetEnabled(enabled bool) {
	if m.enabled == enabled {
		return
	}
	if !enabled {
		m.endGesture()
	}
	m.enabled = enabled
	logging.FromContext(m.ctx).Debug().Bool("enabled", enabled).Msg("manager enabled state changed")
}

// BackControl returns the designated back control, if any.
func (m *Manager) BackControl() Control {
	return m.back
}

// SetBackControl designates the control activated by the menu button.
// The back control never takes focus; if it is focused, focus is cleared.
func (m *Manager) SetBackControl(c Control) {
	m.back = resolve(c)
	if m.back != nil && m.focused == m.back {
		m.changeFocus(nil)
	}
}

// PlayPauseAction returns the play/pause behavior.
func (m *Manager) PlayPauseAction() PlayPauseAction {
	return m.playPauseAction
}

// SetPlayPauseAction sets the play/pause behavior.
func (m *Manager) SetPlayPauseAction(action PlayPauseAction) {
	m.playPauseAction = action
}

// PanControlActive reports whether pan gestures bypass the manager.
func (m *Manager) PanControlActive() bool {
	return m.panControlActive
}

// SetPanControlActive makes the manager ignore pans (true) or track them.
func (m *Manager) SetPanControlActive(active bool) {
	m.panControlActive = active
}

// PanThreshold returns the pan distance needed before focus moves.
func (m *Manager) PanThreshold() float64 {
	return m.panThreshold
}

// State returns the gesture state.
func (m *Manager) State() State {
	return m.state
}

// SetExternalPanHandler receives pans ignored while PanControlActive.
func (m *Manager) SetExternalPanHandler(fn func(PanEvent)) {
	m.onExternalPan = fn
}

// OnFocusChange registers a callback invoked after every focus change.
func (m *Manager) OnFocusChange(fn func(from, to Control)) {
	if fn != nil {
		m.onFocusChange = append(m.onFocusChange, fn)
	}
}

// FocusedControl returns the focused control, or nil.
func (m *Manager) FocusedControl() Control {
	return m.focused
}

// FocusedNode returns the node holding focus. Focus held through a proxy
// reports the proxied control. A node set with SetFocusedNode that is not
// a managed control is returned as-is.
func (m *Manager) FocusedNode() any {
	return m.focusedNode
}

// SetFocusedNode focuses node. A managed, enabled control (or a control
// represented by a managed proxy) takes focus. Any other non-nil node is
// recorded without managed focus behavior: activation and touch delivery
// become no-ops until focus moves again. Nil clears focus.
func (m *Manager) SetFocusedNode(node any) {
	log := logging.FromContext(m.ctx)
	m.revalidate()

	if node == nil {
		m.changeFocus(nil)
		m.focusedNode = nil
		return
	}

	if c, ok := unwrap(node); ok && m.indexOf(c) >= 0 {
		if !m.focusable(c) {
			log.Debug().Msg("ignoring focus request for disabled or back control")
			return
		}
		m.changeFocus(c)
		m.focusedNode = node
		return
	}

	log.Debug().Type("node", node).Msg("focused node is not a managed control")
	m.changeFocus(nil)
	m.focusedNode = node
}

// changeFocus moves focus to next (nil clears it) and notifies observers.
// The previous control is unfocused before the next is focused. A control
// holding the touch gets its final angle first.
func (m *Manager) changeFocus(next Control) bool {
	prev := m.focused
	if prev == next {
		return false
	}

	if prev != nil && prev == m.touchOwner {
		m.releaseTouch()
	}
	if prev != nil {
		prev.SetFocused(false)
	}
	m.focused = next
	m.focusedNode = nodeFor(next)
	if next != nil {
		next.SetFocused(true)
	}

	logging.FromContext(m.ctx).Debug().
		Int("from", m.indexOf(prev)).
		Int("to", m.indexOf(next)).
		Msg("focus changed")

	for _, fn := range m.onFocusChange {
		fn(prev, next)
	}
	return true
}

// revalidate drops focus from a control that is no longer focusable.
func (m *Manager) revalidate() {
	if m.focused == nil {
		return
	}
	if m.indexOf(m.focused) < 0 || !m.focusable(m.focused) {
		logging.FromContext(m.ctx).Debug().Msg("focused control no longer focusable, clearing focus")
		m.changeFocus(nil)
	}
}

// focusable reports whether c may hold focus.
func (m *Manager) focusable(c Control) bool {
	return c != nil && c != m.back && c.Enabled()
}

func (m *Manager) indexOf(c Control) int {
	if c == nil {
		return -1
	}
	for i, candidate := range m.candidates {
		if candidate == c {
			return i
		}
	}
	return -1
}

// resolve maps a control to the control a manager tracks for it.
func resolve(c Control) Control {
	if c == nil {
		return nil
	}
	if resolved, ok := unwrap(c); ok {
		return resolved
	}
	return c
}

func nodeFor(c Control) any {
	if c == nil {
		return nil
	}
	if p, ok := c.(*Proxy); ok {
		return p.Control()
	}
	return c
}
