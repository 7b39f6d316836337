package focus

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tvfocus/internal/domain/entity"
)

func TestFocusInDirection_NearestWithinConeWins(t *testing.T) {
	origin := entity.Point{X: 100, Y: 100}
	start := newFake("start", origin.X, origin.Y)
	far := newFake("far", 0, 0)
	far.pos = at(origin, 0, 10)
	near := newFake("near", 0, 0)
	near.pos = at(origin, 20, 5)

	m := newTestManager(start, far, near)
	m.SetFocusedNode(start)

	changed := m.FocusInDirection(entity.VectorFromAngle(5, 1))

	require.True(t, changed)
	assert.Same(t, near, m.FocusedControl())
	assert.True(t, near.focused)
	assert.False(t, start.focused)
	assert.False(t, far.focused)
}

func TestFocusInDirection_OutsideConeKeepsFocus(t *testing.T) {
	origin := entity.Point{X: 50, Y: 50}
	start := newFake("start", origin.X, origin.Y)
	offAxis := newFake("off-axis", 0, 0)
	offAxis.pos = at(origin, 30, 1)

	m := newTestManager(start, offAxis)
	m.SetFocusedNode(start)

	changed := m.FocusInDirection(entity.VectorFromAngle(0, 1))

	assert.False(t, changed)
	assert.Same(t, start, m.FocusedControl())
	assert.True(t, start.focused)
	assert.False(t, offAxis.focused)
}

func TestFocusInDirection_TieBreaks(t *testing.T) {
	t.Run("equal distance prefers smaller delta", func(t *testing.T) {
		start := newFake("start", 0, 0)
		wide := newFake("wide", 0, -10)  // bearing 0, delta 20
		narrow := newFake("narrow", 6, -8) // bearing ~36.9, delta ~16.9

		m := newTestManager(start, wide, narrow)
		m.SetFocusedNode(start)

		require.True(t, m.FocusInDirection(entity.VectorFromAngle(20, 1)))
		assert.Same(t, narrow, m.FocusedControl())
	})

	t.Run("full tie keeps insertion order", func(t *testing.T) {
		start := newFake("start", 0, 0)
		first := newFake("first", 10, 0)
		second := newFake("second", 10, 0)

		m := newTestManager(start, first, second)
		m.SetFocusedNode(start)

		require.True(t, m.FocusInDirection(entity.VectorFromAngle(90, 1)))
		assert.Same(t, first, m.FocusedControl())
	})
}

func TestFocusInDirection_SkipsBackDisabledAndCoincident(t *testing.T) {
	origin := entity.Point{X: 0, Y: 0}
	start := newFake("start", 0, 0)
	back := newFake("back", 0, 0)
	back.pos = at(origin, 90, 1)
	disabled := newFake("disabled", 0, 0)
	disabled.pos = at(origin, 90, 2)
	disabled.enabled = false
	coincident := newFake("coincident", 0, 0)
	target := newFake("target", 0, 0)
	target.pos = at(origin, 90, 50)

	m := newTestManager(start, back, disabled, coincident, target)
	m.SetBackControl(back)
	m.SetFocusedNode(start)

	require.True(t, m.FocusInDirection(entity.VectorFromAngle(90, 1)))
	assert.Same(t, target, m.FocusedControl())
	assert.False(t, back.focused)
	assert.False(t, disabled.focused)
}

func TestFocusInDirection_NothingFocusedTakesFirst(t *testing.T) {
	a := newFake("a", 0, 0)
	a.enabled = false
	b := newFake("b", 10, 0)

	m := newTestManager(a, b)

	require.True(t, m.FocusInDirection(entity.VectorFromAngle(270, 1)))
	assert.Same(t, b, m.FocusedControl())
	assert.False(t, m.PanControlActive())
}

func TestFocusInDirection_ZeroVectorIsNoop(t *testing.T) {
	a := newFake("a", 0, 0)
	b := newFake("b", 0, -10)
	m := newTestManager(a, b)
	m.SetFocusedNode(a)

	assert.False(t, m.FocusInDirection(entity.Vector{}))
	assert.Same(t, a, m.FocusedControl())
}

func TestFocusInDirection_SelectedAlwaysInsideCone(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		controls := make([]*fakeControl, 0, 8)
		all := make([]Control, 0, 8)
		for i := 0; i < 8; i++ {
			c := newFake("c", rng.Float64()*200, rng.Float64()*200)
			c.enabled = rng.Intn(5) != 0
			controls = append(controls, c)
			all = append(all, c)
		}
		controls[0].enabled = true

		m := newTestManager(all...)
		m.SetFocusedNode(controls[0])
		origin := controls[0].pos

		dir := entity.VectorFromAngle(rng.Float64()*360, 1)
		if m.FocusInDirection(dir) {
			picked := m.FocusedControl()
			delta := entity.AngleDelta(picked.Position().Sub(origin).Angle(), dir.Angle())
			assert.LessOrEqual(t, delta, ConeDegrees, "round %d", round)
			assert.True(t, picked.Enabled())
		}
		assert.LessOrEqual(t, focusedCount(controls...), 1, "round %d", round)
	}
}

func TestFindFirstFocusableControl(t *testing.T) {
	back := newFake("back", 0, 0)
	disabled := newFake("disabled", 10, 0)
	disabled.enabled = false
	first := newFake("first", 20, 0)
	second := newFake("second", 30, 0)

	m := newTestManager(back, disabled, first, second)
	m.SetBackControl(back)

	m.FindFirstFocusableControl()

	assert.Same(t, first, m.FocusedControl())
	assert.True(t, first.focused)
	assert.False(t, back.focused)
	assert.True(t, m.PanControlActive())
}

func TestFindFirstFocusableControl_EmptyOrAllDisabled(t *testing.T) {
	m := newTestManager()
	m.FindFirstFocusableControl()
	assert.Nil(t, m.FocusedControl())

	a := newFake("a", 0, 0)
	a.enabled = false
	m = newTestManager(a)
	m.FindFirstFocusableControl()
	assert.Nil(t, m.FocusedControl())
	assert.Empty(t, a.focusCalls)
}

func TestFindNextFocusableControl_Wraps(t *testing.T) {
	a := newFake("a", 0, 0)
	b := newFake("b", 10, 0)
	b.enabled = false
	c := newFake("c", 20, 0)
	back := newFake("back", 30, 0)

	m := newTestManager(a, b, c, back)
	m.SetBackControl(back)

	m.FindNextFocusableControl()
	assert.Same(t, a, m.FocusedControl(), "starts at first without focus")

	m.FindNextFocusableControl()
	assert.Same(t, c, m.FocusedControl(), "skips disabled")

	m.FindNextFocusableControl()
	assert.Same(t, a, m.FocusedControl(), "skips back control and wraps")
}

func TestFindNextFocusableControl_SingleCandidateNoChange(t *testing.T) {
	a := newFake("a", 0, 0)
	m := newTestManager(a)
	m.SetFocusedNode(a)
	a.focusCalls = nil

	m.FindNextFocusableControl()

	assert.Same(t, a, m.FocusedControl())
	assert.Empty(t, a.focusCalls)
}

func TestFindClosestFocusableControlToPosition(t *testing.T) {
	current := newFake("current", 0, 0)
	near := newFake("near", 100, 0)
	far := newFake("far", 0, 300)
	behind := newFake("behind", -90, 0)
	behind.enabled = false

	m := newTestManager(current, near, far, behind)
	m.SetFocusedNode(current)

	m.FindClosestFocusableControlToPosition(entity.Point{X: -1, Y: 0})

	assert.Same(t, near, m.FocusedControl(), "current and disabled controls are excluded; no cone applies")
}

func TestLazyInvalidationOfDisabledFocus(t *testing.T) {
	a := newFake("a", 0, 0)
	b := newFake("b", 0, -100)
	m := newTestManager(a, b)
	m.SetFocusedNode(a)

	a.enabled = false
	m.FindClosestFocusableControlToPosition(entity.Point{X: 0, Y: 0})

	assert.False(t, a.focused)
	assert.Same(t, b, m.FocusedControl())
}

func TestSelectionNeverCallsResetFocus(t *testing.T) {
	a := newFake("a", 0, 0)
	b := newFake("b", 10, 0)
	m := newTestManager(a, b)

	m.FindFirstFocusableControl()
	m.FindNextFocusableControl()
	m.FindNextFocusableControl()

	assert.Zero(t, a.resets)
	assert.Zero(t, b.resets)
	assert.Equal(t, []bool{true, false, true}, a.focusCalls)
	assert.Equal(t, []bool{true, false}, b.focusCalls)
}

func TestAtMostOneFocused_MixedOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		controls := make([]*fakeControl, 0, 6)
		all := make([]Control, 0, 6)
		for i := 0; i < 6; i++ {
			c := newFake("c", rng.Float64()*300, rng.Float64()*300)
			c.wantsAngle = rng.Intn(3) == 0
			c.wantsTouch = rng.Intn(2) == 0
			controls = append(controls, c)
			all = append(all, c)
		}
		m := NewManagerWithControls(context.Background(), all, WithPlayPauseAction(PlayPauseShiftsFocus))

		var pan entity.Vector
		for step := 0; step < 100; step++ {
			op := rng.Intn(9)
			selects := false
			switch op {
			case 0:
				m.SetFocusedNode(controls[rng.Intn(len(controls))])
				selects = true
			case 1:
				m.FindNextFocusableControl()
				selects = true
			case 2:
				c := controls[rng.Intn(len(controls))]
				c.enabled = !c.enabled
			case 3:
				pan = entity.Vector{}
				m.PanStart(pan)
			case 4:
				d := entity.VectorFromAngle(rng.Float64()*360, rng.Float64()*80)
				pan = entity.Vector{DX: pan.DX + d.DX, DY: pan.DY + d.DY}
				m.PanMove(pan)
			case 5:
				m.PanEnd(pan)
			case 6:
				m.FocusInDirection(entity.VectorFromAngle(rng.Float64()*360, 1))
				selects = true
			case 7:
				m.PlayPauseButton()
			case 8:
				m.SetEnabled(!m.Enabled())
			}

			require.LessOrEqual(t, focusedCount(controls...), 1, "round %d step %d op %d", round, step, op)
			if fc := m.FocusedControl(); fc != nil {
				require.True(t, fc.Focused(), "round %d step %d", round, step)
				if selects {
					require.True(t, fc.Enabled(), "round %d step %d", round, step)
				}
			} else {
				require.Zero(t, focusedCount(controls...))
			}

			open := 0
			for _, c := range controls {
				firsts := 0
				for _, call := range c.angles {
					if call.first {
						firsts++
					}
				}
				pending := firsts - countLast(c.angles)
				require.True(t, pending == 0 || pending == 1,
					"round %d step %d: %d touches started, %d ended", round, step, firsts, countLast(c.angles))
				open += pending
			}
			if m.State() == StateControlHasTouch {
				require.Equal(t, 1, open, "round %d step %d", round, step)
			} else {
				require.Zero(t, open, "round %d step %d: touch left without a final angle", round, step)
			}
		}
	}
}
