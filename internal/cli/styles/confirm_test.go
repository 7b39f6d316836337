package styles_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/tvfocus/internal/cli/styles"
)

func press(m styles.ConfirmModel, msgs ...tea.KeyMsg) (styles.ConfirmModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(styles.ConfirmModel)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirm(t *testing.T) {
	theme := styles.NewTheme()

	t.Run("defaults to no", func(t *testing.T) {
		m, cmd := press(styles.NewConfirm(theme, "Overwrite?"), tea.KeyMsg{Type: tea.KeyEnter})

		assert.True(t, m.Done())
		assert.False(t, m.Result())
		assert.NotNil(t, cmd)
	})

	t.Run("yes then enter", func(t *testing.T) {
		m, _ := press(styles.NewConfirm(theme, "Overwrite?"), runes("y"), tea.KeyMsg{Type: tea.KeyEnter})
		assert.True(t, m.Result())
	})

	t.Run("toggle", func(t *testing.T) {
		m, _ := press(styles.NewConfirm(theme, "Overwrite?"), tea.KeyMsg{Type: tea.KeyTab})
		assert.True(t, m.Yes)
		assert.False(t, m.Done())
	})

	t.Run("escape cancels", func(t *testing.T) {
		m, _ := press(styles.NewConfirm(theme, "Overwrite?"), runes("y"), tea.KeyMsg{Type: tea.KeyEsc})

		assert.True(t, m.Canceled)
		assert.False(t, m.Result())
		assert.Empty(t, m.View())
	})

	t.Run("view shows message", func(t *testing.T) {
		assert.Contains(t, styles.NewConfirm(theme, "Overwrite?").View(), "Overwrite?")
	})
}
