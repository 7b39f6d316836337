package widget

import (
	"math"

	"github.com/bnema/tvfocus/internal/domain/entity"
)

// Slider holds a value in [min, max]. Select toggles editing; while
// editing, the slider takes over pan gestures and the horizontal component
// of the pan moves the value.
type Slider struct {
	Base

	value    float64
	min, max float64
	// Value change per point of horizontal pan.
	scale float64

	editing    bool
	touchStart float64
}

// NewSlider creates a slider over [0, 100] starting at 50.
func NewSlider(id, label string, bounds entity.Rect) *Slider {
	return &Slider{
		Base:  newBase(id, label, bounds),
		value: 50,
		min:   0,
		max:   100,
		scale: 0.5,
	}
}

func (s *Slider) Kind() Kind {
	return KindSlider
}

// Value returns the current value.
func (s *Slider) Value() float64 {
	return s.value
}

// SetValue sets the value, clamped to the slider range.
func (s *Slider) SetValue(v float64) {
	s.value = math.Max(s.min, math.Min(s.max, v))
}

// Range returns the slider bounds.
func (s *Slider) Range() (lo, hi float64) {
	return s.min, s.max
}

// Editing reports whether the slider owns pan gestures.
func (s *Slider) Editing() bool {
	return s.editing
}

// Activate toggles editing.
func (s *Slider) Activate() {
	s.editing = !s.editing
	s.Base.Activate()
}

// SetFocused also ends editing when focus leaves.
func (s *Slider) SetFocused(focused bool) {
	s.Base.SetFocused(focused)
	if !focused {
		s.editing = false
	}
}

func (s *Slider) WantsAngleOfTouch() bool {
	return true
}

func (s *Slider) WantsControlOfTouch() bool {
	return s.editing
}

// SetAngleOfTouch moves the value by the horizontal part of the pan since
// the gesture began: rightward increases, leftward decreases.
func (s *Slider) SetAngleOfTouch(angle, radius float64, first, _ bool) {
	if first {
		s.touchStart = s.value
	}
	dx := math.Sin(angle*math.Pi/180) * radius
	s.SetValue(s.touchStart + dx*s.scale)
}

var _ Widget = (*Slider)(nil)
