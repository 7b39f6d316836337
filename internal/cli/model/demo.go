package model

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/tvfocus/internal/cli/styles"
	"github.com/bnema/tvfocus/internal/domain/entity"
	"github.com/bnema/tvfocus/internal/ui/input"
	"github.com/bnema/tvfocus/internal/ui/mainloop"
	"github.com/bnema/tvfocus/internal/ui/scene"
	"github.com/bnema/tvfocus/internal/ui/widget"
)

// canvasTop is the number of rows above the scene canvas: the breadcrumb
// and a blank line. Mouse rows are shifted by it.
const canvasTop = 2

// StatusMsg replaces the demo's status line, e.g. after a scene reload.
type StatusMsg string

// DemoModel is the Bubble Tea model for the interactive demo. It owns the
// scene director: every focus manager is only touched from Update.
type DemoModel struct {
	// UI components
	help     help.Model
	keys     styles.DemoKeyMap
	renderer *styles.SceneRenderer

	// Input
	director   *scene.Director
	dispatcher *input.Dispatcher
	remote     *input.Remote

	// State
	lastEvent string
	status    string
	width     int
	height    int
	quitting  bool

	theme *styles.Theme
}

// NewDemoModel creates a demo over director. Remote input goes to the
// top of the director's focus stack.
func NewDemoModel(ctx context.Context, theme *styles.Theme, director *scene.Director, opts ...input.RemoteOption) *DemoModel {
	m := &DemoModel{
		help:     styles.NewStyledHelp(theme),
		renderer: styles.NewSceneRenderer(theme),
		director: director,
		theme:    theme,
		width:    80,
		height:   24,
	}

	m.dispatcher = input.NewDispatcher(ctx, input.StackResolver(director.Stack()))
	m.dispatcher.SetOnDispatch(func(ev input.Event) {
		m.lastEvent = ev.String()
	})
	m.remote = input.NewRemote(m.dispatcher, opts...)
	m.keys = styles.DefaultDemoKeyMap(m.remote.Keys())

	return m
}

// Init implements tea.Model.
func (m *DemoModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if mainloop.Run(msg) {
		return m, m.quitWhenEmpty()
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case StatusMsg:
		m.status = string(msg)

	case tea.KeyMsg:
		if m.handleKey(msg) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	return m, m.quitWhenEmpty()
}

// handleKey routes a key press and reports whether the demo should quit.
func (m *DemoModel) handleKey(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyCtrlC {
		return true
	}

	// An editing text field takes typing; enter and esc still reach the remote.
	if tf := m.editingTextField(); tf != nil {
		switch msg.Type {
		case tea.KeyRunes:
			tf.Type(string(msg.Runes))
			return false
		case tea.KeySpace:
			tf.Type(" ")
			return false
		case tea.KeyBackspace:
			tf.Backspace()
			return false
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		m.remote.Press(msg)
	}
	return false
}

func (m *DemoModel) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		m.remote.TapAt(entity.Point{
			X: float64(msg.X) + 0.5,
			Y: float64(msg.Y-canvasTop) + 0.5,
		})
	case tea.MouseButtonWheelUp:
		m.remote.Swipe(0)
	case tea.MouseButtonWheelDown:
		m.remote.Swipe(180)
	}
}

func (m *DemoModel) editingTextField() *widget.TextField {
	s := m.director.Current()
	if s == nil {
		return nil
	}
	w, ok := s.Widget(s.FocusedID())
	if !ok {
		return nil
	}
	tf, ok := w.(*widget.TextField)
	if !ok || !tf.Editing() {
		return nil
	}
	return tf
}

// quitWhenEmpty ends the program once the last scene has exited.
func (m *DemoModel) quitWhenEmpty() tea.Cmd {
	if m.director.Depth() > 0 {
		return nil
	}
	m.quitting = true
	return tea.Quit
}

// SetStatus replaces the status line. Call it from the update loop, e.g.
// inside a posted task.
func (m *DemoModel) SetStatus(status string) {
	m.status = status
}

// Quitting reports whether the demo has finished.
func (m *DemoModel) Quitting() bool {
	return m.quitting
}

// View implements tea.Model.
func (m *DemoModel) View() string {
	if m.quitting {
		return ""
	}

	current := m.director.Current()

	var b strings.Builder
	b.WriteString(m.renderer.RenderBreadcrumb(m.director.Path()))
	b.WriteString("\n\n")
	b.WriteString(m.renderer.Render(current))
	b.WriteString("\n\n")
	b.WriteString(m.renderer.RenderStatus(current, m.lastEvent))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Subtle.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}
