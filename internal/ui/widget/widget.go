// Package widget provides focusable controls for remote-driven scenes.
package widget

import (
	"fmt"
	"strings"

	"github.com/bnema/tvfocus/internal/domain/entity"
	"github.com/bnema/tvfocus/internal/ui/focus"
)

// Kind identifies a widget type in scene files.
type Kind string

const (
	KindButton    Kind = "button"
	KindSlider    Kind = "slider"
	KindTextField Kind = "textfield"
)

// ParseKind parses a scene-file widget kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindButton, KindSlider, KindTextField:
		return k, nil
	default:
		return "", fmt.Errorf("unknown widget kind %q", s)
	}
}

// Widget is a focusable control with an identity and an on-screen area.
type Widget interface {
	focus.Control
	focus.HitTester
	focus.Proxied

	ID() string
	Kind() Kind
	Label() string
	Bounds() entity.Rect
	OnActivate(fn func())
}

// Base holds the state shared by every widget. Widgets embed it and
// override the capability methods they care about.
type Base struct {
	id     string
	label  string
	bounds entity.Rect

	enabled bool
	focused bool
	// Focus animation restarts, bumped by ResetFocus.
	pulses int

	parent     *Container
	proxy      *focus.Proxy
	onActivate func()
}

func newBase(id, label string, bounds entity.Rect) Base {
	return Base{id: id, label: label, bounds: bounds, enabled: true}
}

// ID returns the widget identifier.
func (b *Base) ID() string {
	return b.id
}

// Label returns the display text.
func (b *Base) Label() string {
	return b.label
}

// SetLabel changes the display text.
func (b *Base) SetLabel(label string) {
	b.label = label
}

// Bounds returns the widget area in scene coordinates. Widgets inside a
// container are offset by the container origin.
func (b *Base) Bounds() entity.Rect {
	r := b.bounds
	if b.parent != nil {
		r.X += b.parent.bounds.X
		r.Y += b.parent.bounds.Y
	}
	return r
}

func (b *Base) Enabled() bool {
	return b.enabled
}

func (b *Base) SetEnabled(enabled bool) {
	b.enabled = enabled
}

func (b *Base) Focused() bool {
	return b.focused
}

func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

func (b *Base) WantsAngleOfTouch() bool {
	return false
}

func (b *Base) WantsControlOfTouch() bool {
	return false
}

// ResetFocus restarts the focus animation.
func (b *Base) ResetFocus() {
	b.pulses++
}

// FocusPulses returns how many times the focus animation was restarted.
func (b *Base) FocusPulses() int {
	return b.pulses
}

func (b *Base) SetAngleOfTouch(_, _ float64, _, _ bool) {}

// Activate runs the activation callback.
func (b *Base) Activate() {
	if b.onActivate != nil {
		b.onActivate()
	}
}

// OnActivate sets the activation callback.
func (b *Base) OnActivate(fn func()) {
	b.onActivate = fn
}

// Position is the center of the widget bounds.
func (b *Base) Position() entity.Point {
	return b.Bounds().Center()
}

// Contains reports whether p lies inside the widget bounds.
func (b *Base) Contains(p entity.Point) bool {
	return b.Bounds().Contains(p)
}

// Proxy returns the attached proxy. The result is a nil interface when
// none is attached.
func (b *Base) Proxy() focus.Control {
	if b.proxy == nil {
		return nil
	}
	return b.proxy
}
