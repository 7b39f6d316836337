package focus

import (
	"github.com/bnema/tvfocus/internal/domain/entity"
	"github.com/bnema/tvfocus/internal/logging"
)

// State is the gesture state of a manager.
type State int

const (
	// StateIdle means no pan gesture is being tracked.
	StateIdle State = iota
	// StatePanTracking means pan moves drive directional selection.
	StatePanTracking
	// StateControlHasTouch means the focused control owns the gesture.
	StateControlHasTouch
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePanTracking:
		return "pan-tracking"
	case StateControlHasTouch:
		return "control-has-touch"
	default:
		return "unknown"
	}
}

// PanPhase identifies the step of a pan gesture.
type PanPhase int

const (
	PanBegan PanPhase = iota
	PanChanged
	PanEnded
)

// String returns a human-readable phase name.
func (p PanPhase) String() string {
	switch p {
	case PanBegan:
		return "began"
	case PanChanged:
		return "changed"
	case PanEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// PanEvent is a pan gesture step handed to the external pan handler while
// PanControlActive is set. Translation is cumulative since the gesture began.
type PanEvent struct {
	Phase       PanPhase
	Translation entity.Vector
}

// PanStart begins a pan gesture.
func (m *Manager) PanStart(translation entity.Vector) {
	if !m.acceptGesture("pan start") {
		return
	}
	if m.state != StateIdle {
		// A new gesture implicitly ends one that never saw its end event.
		m.endGesture()
	}
	if m.panControlActive {
		m.forwardPan(PanBegan, translation)
		return
	}

	m.revalidate()
	m.state = StatePanTracking
	m.panOrigin = translation
	m.lastTranslation = translation

	c := m.focused
	if c != nil && c.WantsAngleOfTouch() && c.WantsControlOfTouch() {
		m.state = StateControlHasTouch
		m.touchOwner = c
		c.SetAngleOfTouch(translation.Angle(), translation.Len(), true, false)
	}

	logging.FromContext(m.ctx).Trace().Str("state", m.state.String()).Msg("pan started")
}

// PanMove continues a pan gesture. In PanTracking, focus moves once the
// translation since the last focus change reaches the pan threshold. In
// ControlHasTouch, the owning control receives the angle of touch.
func (m *Manager) PanMove(translation entity.Vector) {
	if !m.acceptGesture("pan move") {
		return
	}

	switch m.state {
	case StateIdle:
		if m.panControlActive {
			m.forwardPan(PanChanged, translation)
		}
	case StateControlHasTouch:
		m.lastTranslation = translation
		if m.touchOwner != nil {
			m.touchOwner.SetAngleOfTouch(translation.Angle(), translation.Len(), false, false)
		}
	case StatePanTracking:
		m.lastTranslation = translation
		dir := translation.Sub(m.panOrigin)
		if dir.IsZero() || dir.Len() < m.panThreshold {
			return
		}
		if m.FocusInDirection(dir) {
			m.panOrigin = translation
		}
	}
}

// PanEnd finishes a pan gesture and returns to Idle.
func (m *Manager) PanEnd(translation entity.Vector) {
	if !m.acceptGesture("pan end") {
		return
	}

	if m.state == StateIdle {
		if m.panControlActive {
			m.forwardPan(PanEnded, translation)
		}
		return
	}

	m.lastTranslation = translation
	m.endGesture()
}

// Click activates the back control when the click lands on it, otherwise
// the focused control.
func (m *Manager) Click(at entity.Point) {
	if !m.acceptGesture("click") {
		return
	}

	if m.back != nil {
		if h, ok := m.back.(HitTester); ok && h.Contains(at) {
			m.activateBack()
			return
		}
	}

	m.revalidate()
	if m.focused != nil {
		logging.FromContext(m.ctx).Debug().Int("control", m.indexOf(m.focused)).Msg("activating focused control")
		m.focused.Activate()
	}
}

// MenuButton activates the back control, if any.
func (m *Manager) MenuButton() {
	if !m.acceptGesture("menu button") {
		return
	}
	m.activateBack()
}

// PlayPauseButton applies the manager's PlayPauseAction.
func (m *Manager) PlayPauseButton() {
	if !m.acceptGesture("play/pause button") {
		return
	}

	switch m.playPauseAction {
	case PlayPauseTogglesPanControl:
		m.panControlActive = !m.panControlActive
		logging.FromContext(m.ctx).Debug().Bool("pan_control_active", m.panControlActive).Msg("toggled pan control")
	case PlayPauseShiftsFocus:
		m.FindNextFocusableControl()
	case PlayPauseNotifies:
		m.revalidate()
		if n, ok := m.focused.(PlayPauseNotifiee); ok {
			n.PlayerDidPressPlayPause()
		}
	case PlayPauseNone:
	}
}

// endGesture returns to Idle, releasing a control that holds the touch
// with its final angle.
func (m *Manager) endGesture() {
	if m.state == StateControlHasTouch && m.touchOwner != nil {
		t := m.lastTranslation
		m.touchOwner.SetAngleOfTouch(t.Angle(), t.Len(), false, true)
	}
	m.state = StateIdle
	m.touchOwner = nil
	m.panOrigin = entity.Vector{}
	m.lastTranslation = entity.Vector{}
}

// releaseTouch ends the owner's touch when focus leaves it mid-gesture.
// The pan carries on as PanTracking from the current translation.
func (m *Manager) releaseTouch() {
	if m.state != StateControlHasTouch || m.touchOwner == nil {
		return
	}
	t := m.lastTranslation
	m.touchOwner.SetAngleOfTouch(t.Angle(), t.Len(), false, true)
	m.touchOwner = nil
	m.state = StatePanTracking
	m.panOrigin = t

	logging.FromContext(m.ctx).Trace().Msg("touch released by focus change")
}

func (m *Manager) activateBack() {
	log := logging.FromContext(m.ctx)
	if m.back == nil {
		return
	}
	if !m.back.Enabled() {
		log.Debug().Msg("back control disabled, ignoring")
		return
	}
	log.Debug().Msg("activating back control")
	m.back.Activate()
}

func (m *Manager) forwardPan(phase PanPhase, translation entity.Vector) {
	if m.onExternalPan != nil {
		m.onExternalPan(PanEvent{Phase: phase, Translation: translation})
	}
}

func (m *Manager) acceptGesture(name string) bool {
	if m.enabled {
		return true
	}
	logging.FromContext(m.ctx).Trace().Str("event", name).Msg("manager disabled, dropping event")
	return false
}
