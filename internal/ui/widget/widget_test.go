package widget

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tvfocus/internal/domain/entity"
	"github.com/bnema/tvfocus/internal/ui/focus"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "button", want: KindButton},
		{in: " Slider ", want: KindSlider},
		{in: "TEXTFIELD", want: KindTextField},
		{in: "knob", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestButton(t *testing.T) {
	b := NewButton("ok", "OK", entity.Rect{X: 10, Y: 20, W: 40, H: 10})

	assert.True(t, b.Enabled())
	assert.Equal(t, entity.Point{X: 30, Y: 25}, b.Position())
	assert.True(t, b.Contains(entity.Point{X: 11, Y: 21}))
	assert.False(t, b.Contains(entity.Point{X: 0, Y: 0}))
	assert.Nil(t, b.Proxy())

	called := 0
	b.OnActivate(func() { called++ })
	b.Activate()
	assert.Equal(t, 1, b.Presses())
	assert.Equal(t, 1, called)

	b.ResetFocus()
	assert.Equal(t, 1, b.FocusPulses())
}

func TestSlider_EditingTakesTouch(t *testing.T) {
	s := NewSlider("vol", "Volume", entity.Rect{W: 20, H: 4})

	assert.True(t, s.WantsAngleOfTouch())
	assert.False(t, s.WantsControlOfTouch())

	s.Activate()
	assert.True(t, s.Editing())
	assert.True(t, s.WantsControlOfTouch())

	s.SetAngleOfTouch(90, 20, true, false)
	assert.InDelta(t, 60, s.Value(), 1e-9)
	s.SetAngleOfTouch(270, 40, false, true)
	assert.InDelta(t, 30, s.Value(), 1e-9)

	s.SetAngleOfTouch(90, 1000, true, true)
	assert.InDelta(t, 100, s.Value(), 1e-9, "clamped to range")

	s.SetFocused(false)
	assert.False(t, s.Editing(), "losing focus ends editing")
}

func TestSlider_DrivenByManager(t *testing.T) {
	s := NewSlider("vol", "Volume", entity.Rect{W: 20, H: 4})
	other := NewButton("b", "B", entity.Rect{X: 100, W: 20, H: 4})

	m := focus.NewManagerWithControls(context.Background(), []focus.Control{s, other}, focus.WithPanThreshold(10))
	m.SetFocusedNode(s)
	m.Click(entity.Point{X: -1, Y: -1})
	require.True(t, s.Editing())

	m.PanStart(entity.Vector{})
	require.Equal(t, focus.StateControlHasTouch, m.State())
	m.PanMove(entity.Vector{DX: 40})
	m.PanEnd(entity.Vector{DX: 40})

	assert.InDelta(t, 70, s.Value(), 1e-9)
	assert.Same(t, s, m.FocusedNode())
	assert.False(t, other.Focused())
}

func TestTextField(t *testing.T) {
	f := NewTextField("name", "Name", entity.Rect{W: 30, H: 1})

	f.Type("ignored")
	assert.Empty(t, f.Text(), "typing requires editing")

	f.Activate()
	f.Type("héllo")
	f.Backspace()
	assert.Equal(t, "héll", f.Text())

	f.PlayerDidPressPlayPause()
	assert.Empty(t, f.Text())

	f.SetFocused(true)
	f.SetFocused(false)
	assert.False(t, f.Editing())
}

func TestContainer_NestedWidgetsUseProxies(t *testing.T) {
	c := NewContainer("panel", entity.Rect{X: 100, Y: 50, W: 200, H: 100})
	b := NewButton("inner", "Inner", entity.Rect{X: 10, Y: 10, W: 20, H: 10})
	f := NewTextField("field", "Field", entity.Rect{X: 10, Y: 40, W: 20, H: 10})

	pb, err := c.Add(b)
	require.NoError(t, err)
	pf, err := c.Add(f)
	require.NoError(t, err)

	assert.Same(t, pb, b.Proxy())
	assert.Same(t, pf, ProxyForTextField(f), "proxy is reused")
	assert.Equal(t, entity.Point{X: 120, Y: 65}, b.Position(), "offset by container origin")
	assert.Equal(t, b.Position(), pb.Position())
	assert.Len(t, c.Children(), 2)

	m := focus.NewManager(context.Background(), focus.WithPlayPauseAction(focus.PlayPauseNotifies))
	m.AddControl(b)
	m.AddControl(f)
	require.Equal(t, []focus.Control{pb, pf}, m.Controls())

	m.SetFocusedNode(f)
	assert.Same(t, pf, m.FocusedControl())
	assert.Same(t, f, m.FocusedNode())
	assert.True(t, f.Focused())

	f.SetText("abc")
	m.PlayPauseButton()
	assert.Empty(t, f.Text(), "play/pause reaches the field through its proxy")

	require.True(t, m.FocusInDirection(entity.VectorFromAngle(0, 1)))
	assert.Same(t, b, m.FocusedNode())
}

func TestContainer_RejectsReparenting(t *testing.T) {
	a := NewContainer("a", entity.Rect{})
	other := NewContainer("b", entity.Rect{})
	s := NewSlider("s", "S", entity.Rect{})

	_, err := a.Add(s)
	require.NoError(t, err)
	_, err = other.Add(s)
	assert.Error(t, err)
}
