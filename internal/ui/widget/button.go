package widget

import "github.com/bnema/tvfocus/internal/domain/entity"

// Button is a pressable widget.
type Button struct {
	Base
	presses int
}

// NewButton creates an enabled button.
func NewButton(id, label string, bounds entity.Rect) *Button {
	return &Button{Base: newBase(id, label, bounds)}
}

func (b *Button) Kind() Kind {
	return KindButton
}

// Activate counts the press and runs the activation callback.
func (b *Button) Activate() {
	b.presses++
	b.Base.Activate()
}

// Presses returns how many times the button was activated.
func (b *Button) Presses() int {
	return b.presses
}

var _ Widget = (*Button)(nil)
