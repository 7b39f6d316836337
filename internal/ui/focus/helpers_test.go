package focus

import (
	"context"

	"github.com/bnema/tvfocus/internal/domain/entity"
)

type angleCall struct {
	angle, radius float64
	first, last   bool
}

// fakeControl records every call the manager makes.
type fakeControl struct {
	name       string
	pos        entity.Point
	enabled    bool
	focused    bool
	wantsAngle bool
	wantsTouch bool

	activations int
	resets      int
	focusCalls  []bool
	angles      []angleCall
}

func newFake(name string, x, y float64) *fakeControl {
	return &fakeControl{name: name, pos: entity.Point{X: x, Y: y}, enabled: true}
}

func (f *fakeControl) Enabled() bool { return f.enabled }
func (f *fakeControl) SetEnabled(enabled bool) { f.enabled = enabled }
func (f *fakeControl) Focused() bool { return f.focused }
func (f *fakeControl) WantsAngleOfTouch() bool { return f.wantsAngle }
func (f *fakeControl) WantsControlOfTouch() bool { return f.wantsTouch }
func (f *fakeControl) ResetFocus() { f.resets++ }
func (f *fakeControl) Activate() { f.activations++ }
func (f *fakeControl) Position() entity.Point { return f.pos }

func (f *fakeControl) SetFocused(focused bool) {
	f.focused = focused
	f.focusCalls = append(f.focusCalls, focused)
}

func (f *fakeControl) SetAngleOfTouch(angle, radius float64, first, last bool) {
	f.angles = append(f.angles, angleCall{angle: angle, radius: radius, first: first, last: last})
}

// notifyingControl also listens for play/pause.
type notifyingControl struct {
	*fakeControl
	playPauses int
}

func (n *notifyingControl) PlayerDidPressPlayPause() { n.playPauses++ }

// areaControl has an on-screen area for click hit testing.
type areaControl struct {
	*fakeControl
	rect entity.Rect
}

func (a *areaControl) Contains(p entity.Point) bool { return a.rect.Contains(p) }

// nestedControl is represented in managers by a proxy.
type nestedControl struct {
	*fakeControl
	proxy *Proxy
}

func (n *nestedControl) Proxy() Control {
	if n.proxy == nil {
		return nil
	}
	return n.proxy
}

// at returns the position at angle degrees and distance dist from origin.
func at(origin entity.Point, angle, dist float64) entity.Point {
	return origin.Add(entity.VectorFromAngle(angle, dist))
}

func newTestManager(controls ...Control) *Manager {
	return NewManagerWithControls(context.Background(), controls)
}

func focusedCount(controls ...*fakeControl) int {
	n := 0
	for _, c := range controls {
		if c.focused {
			n++
		}
	}
	return n
}
