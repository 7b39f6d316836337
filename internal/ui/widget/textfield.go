package widget

import "github.com/bnema/tvfocus/internal/domain/entity"

// TextField is an editable single-line text widget. Play/pause clears it.
type TextField struct {
	Base
	text    string
	editing bool
}

// NewTextField creates an empty text field.
func NewTextField(id, label string, bounds entity.Rect) *TextField {
	return &TextField{Base: newBase(id, label, bounds)}
}

func (t *TextField) Kind() Kind {
	return KindTextField
}

// Text returns the field contents.
func (t *TextField) Text() string {
	return t.text
}

// SetText replaces the field contents.
func (t *TextField) SetText(s string) {
	t.text = s
}

// Editing reports whether typed text goes into the field.
func (t *TextField) Editing() bool {
	return t.editing
}

// Type appends s while editing.
func (t *TextField) Type(s string) {
	if t.editing {
		t.text += s
	}
}

// Backspace removes the last rune while editing.
func (t *TextField) Backspace() {
	if !t.editing || t.text == "" {
		return
	}
	r := []rune(t.text)
	t.text = string(r[:len(r)-1])
}

// Activate toggles editing.
func (t *TextField) Activate() {
	t.editing = !t.editing
	t.Base.Activate()
}

// SetFocused also ends editing when focus leaves.
func (t *TextField) SetFocused(focused bool) {
	t.Base.SetFocused(focused)
	if !focused {
		t.editing = false
	}
}

// PlayerDidPressPlayPause clears the field.
func (t *TextField) PlayerDidPressPlayPause() {
	t.text = ""
}

var _ Widget = (*TextField)(nil)
