package focus

import (
	"math"
	"sort"

	"github.com/bnema/tvfocus/internal/domain/entity"
	"github.com/bnema/tvfocus/internal/logging"
)

// navCandidate is a control that survived the direction cone, with the
// values used to rank it.
type navCandidate struct {
	control Control
	index   int
	dist    float64
	delta   float64
}

// FindFirstFocusableControl focuses the first enabled, non-back control in
// insertion order. It also sets PanControlActive, since first focus is not
// gesture-driven; callers re-arm pan tracking explicitly.
func (m *Manager) FindFirstFocusableControl() {
	m.revalidate()
	if c := m.firstFocusable(); c != nil {
		m.changeFocus(c)
	}
	m.panControlActive = true
}

// FindNextFocusableControl focuses the next enabled, non-back control after
// the focused one in insertion order, wrapping around. Without a focused
// control the search starts at the first control.
func (m *Manager) FindNextFocusableControl() {
	m.revalidate()

	n := len(m.candidates)
	if n == 0 {
		return
	}

	start := m.indexOf(m.focused) // -1 when nothing is focused
	for i := 1; i <= n; i++ {
		c := m.candidates[(start+i)%n]
		if c == m.focused {
			continue
		}
		if m.focusable(c) {
			m.changeFocus(c)
			return
		}
	}
}

// FindClosestFocusableControlToPosition focuses the control nearest to p,
// ignoring direction. The focused control is not a candidate. Ties keep
// insertion order.
func (m *Manager) FindClosestFocusableControlToPosition(p entity.Point) {
	m.revalidate()

	var best Control
	bestDist := math.Inf(1)
	for _, c := range m.candidates {
		if c == m.focused || !m.focusable(c) {
			continue
		}
		if d := c.Position().Sub(p).Len(); d < bestDist {
			best, bestDist = c, d
		}
	}

	if best != nil {
		m.changeFocus(best)
	}
}

// FocusInDirection moves focus along dir using the cone-and-distance rule
// and reports whether focus changed. With nothing focused, the first
// focusable control takes focus.
func (m *Manager) FocusInDirection(dir entity.Vector) bool {
	m.revalidate()

	if m.focused == nil {
		c := m.firstFocusable()
		if c == nil {
			return false
		}
		return m.changeFocus(c)
	}

	target := m.selectInDirection(dir)
	if target == nil {
		return false
	}
	return m.changeFocus(target)
}

// selectInDirection returns the nearest control within ConeDegrees of dir
// as seen from the focused control, or nil.
// Ranking: distance, then angular delta, then insertion order.
func (m *Manager) selectInDirection(dir entity.Vector) Control {
	log := logging.FromContext(m.ctx)

	if m.focused == nil || dir.IsZero() {
		return nil
	}

	candidates := m.scoreDirectionalCandidates(m.focused.Position(), dir.Angle())
	if len(candidates) == 0 {
		log.Trace().Float64("angle", dir.Angle()).Msg("no candidates in direction")
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.dist != b.dist {
			return a.dist < b.dist
		}
		if a.delta != b.delta {
			return a.delta < b.delta
		}
		return a.index < b.index
	})

	best := candidates[0]
	log.Debug().
		Float64("angle", dir.Angle()).
		Int("target", best.index).
		Float64("dist", best.dist).
		Float64("delta", best.delta).
		Msg("directional navigation found target")

	return best.control
}

// scoreDirectionalCandidates collects the focusable controls whose bearing
// from origin is within the cone around angle. Controls sitting exactly on
// origin have no bearing and are skipped.
func (m *Manager) scoreDirectionalCandidates(origin entity.Point, angle float64) []navCandidate {
	var candidates []navCandidate

	for i, c := range m.candidates {
		if c == m.focused || !m.focusable(c) {
			continue
		}

		v := c.Position().Sub(origin)
		if v.IsZero() {
			continue
		}

		delta := entity.AngleDelta(v.Angle(), angle)
		if delta > ConeDegrees {
			continue
		}

		candidates = append(candidates, navCandidate{
			control: c,
			index:   i,
			dist:    v.Len(),
			delta:   delta,
		})
	}

	return candidates
}

func (m *Manager) firstFocusable() Control {
	for _, c := range m.candidates {
		if m.focusable(c) {
			return c
		}
	}
	return nil
}
