package focus

import (
	"context"
	"testing"

	"github.com/bnema/tvfocus/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_PushPop(t *testing.T) {
	ctx := context.Background()
	s := NewStack(ctx)
	a := NewManager(ctx)
	b := NewManager(ctx)

	assert.Nil(t, s.Current())
	assert.Nil(t, s.Pop(), "pop on empty stack")

	s.Push(a)
	s.Push(b)

	assert.False(t, a.Enabled())
	assert.True(t, b.Enabled())
	assert.Same(t, b, s.Current())
	assert.Equal(t, 2, s.Len())

	popped := s.Pop()
	require.NotNil(t, popped)
	assert.Same(t, b, popped)
	assert.False(t, b.Enabled(), "popped manager must not stay enabled")
	assert.True(t, a.Enabled())
	assert.Same(t, a, s.Current())

	assert.Same(t, a, s.Pop())
	assert.Nil(t, s.Current())
	assert.Zero(t, s.Len())
}

func TestStack_PopDuringTouchReleasesControl(t *testing.T) {
	ctx := context.Background()
	s := NewStack(ctx)

	slider := newFake("slider", 0, 0)
	slider.wantsAngle = true
	slider.wantsTouch = true
	below := NewManager(ctx)
	top := newTestManager(slider)
	top.SetFocusedNode(slider)

	s.Push(below)
	s.Push(top)

	top.PanStart(entity.Vector{})
	top.PanMove(entity.Vector{DX: 10})
	require.Equal(t, StateControlHasTouch, top.State())

	popped := s.Pop()
	require.Same(t, top, popped)
	assert.False(t, popped.Enabled())
	assert.Equal(t, StateIdle, popped.State())
	assert.True(t, below.Enabled())

	lasts := 0
	for _, call := range slider.angles {
		if call.last {
			lasts++
		}
	}
	assert.Equal(t, 1, lasts, "touch must end exactly once")
	assert.True(t, slider.angles[len(slider.angles)-1].last)

	// Late events for the popped manager go nowhere.
	n := len(slider.angles)
	popped.PanMove(entity.Vector{DX: 20})
	popped.PanEnd(entity.Vector{DX: 20})
	assert.Len(t, slider.angles, n)
}

func TestStack_AtMostOneEnabled(t *testing.T) {
	ctx := context.Background()
	s := NewStack(ctx)
	managers := []*Manager{NewManager(ctx), NewManager(ctx), NewManager(ctx)}

	for _, m := range managers {
		s.Push(m)
	}

	enabled := 0
	for _, m := range managers {
		if m.Enabled() {
			enabled++
		}
	}
	assert.Equal(t, 1, enabled)
	assert.True(t, managers[2].Enabled())
}

func TestStack_PushEnablesDisabledManager(t *testing.T) {
	ctx := context.Background()
	s := NewStack(ctx)
	m := NewManager(ctx)
	m.SetEnabled(false)

	s.Push(m)
	s.Push(nil)

	assert.True(t, m.Enabled())
	assert.Equal(t, 1, s.Len())
}

func TestSharedStack_IsSingleton(t *testing.T) {
	assert.Same(t, SharedStack(), SharedStack())
}
