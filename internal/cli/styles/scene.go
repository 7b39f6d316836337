package styles

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tvfocus/internal/domain/entity"
	"github.com/bnema/tvfocus/internal/ui/scene"
	"github.com/bnema/tvfocus/internal/ui/widget"
)

const sliderBarWidth = 10

type cellStyle int

const (
	cellPlain cellStyle = iota
	cellContainer
	cellControl
	cellFocused
	cellEditing
	cellDisabled
	cellBack
)

type border struct {
	tl, tr, bl, br, h, v rune
}

var (
	lightBorder  = border{'┌', '┐', '└', '┘', '─', '│'}
	doubleBorder = border{'╔', '╗', '╚', '╝', '═', '║'}
)

// SceneRenderer draws a built scene on a character grid, one cell per
// scene unit.
type SceneRenderer struct {
	theme *Theme
}

// NewSceneRenderer creates a new SceneRenderer.
func NewSceneRenderer(theme *Theme) *SceneRenderer {
	return &SceneRenderer{theme: theme}
}

// Render draws containers, then widgets. The focused widget gets a double
// border so it stays visible without colors.
func (r *SceneRenderer) Render(s *scene.Scene) string {
	if s == nil {
		return r.theme.Subtle.Render("no scene")
	}

	c := newCanvas(sceneExtent(s))
	for _, ct := range s.Containers() {
		c.box(cellRect(ct.Bounds()), lightBorder, cellContainer, ct.ID())
	}

	focused := s.FocusedID()
	for _, w := range s.Widgets() {
		style := widgetStyle(s, w, focused)
		rect := cellRect(w.Bounds())
		text := ControlText(w)

		if rect.h < 3 || rect.w < 3 {
			if w.ID() == focused {
				text = "»" + text + "«"
			} else {
				text = "[" + text + "]"
			}
			c.text(rect.x, rect.y, rect.w, text, style)
			continue
		}

		b := lightBorder
		if w.ID() == focused {
			b = doubleBorder
		}
		c.box(rect, b, style, "")
		c.centered(rect.x+1, rect.y+rect.h/2, rect.w-2, text, style)
	}

	return c.render(r.styleFor)
}

// RenderBreadcrumb renders the scene path, current scene last.
func (r *SceneRenderer) RenderBreadcrumb(path []string) string {
	if len(path) == 0 {
		return r.theme.Subtle.Render("no scene")
	}
	parts := make([]string, len(path))
	for i, name := range path {
		if i == len(path)-1 {
			parts[i] = r.theme.Highlight.Render(name)
		} else {
			parts[i] = r.theme.Subtle.Render(name)
		}
	}
	sep := lipgloss.NewStyle().Foreground(r.theme.Border).Render(" " + IconArrow + " ")
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconTV)
	return icon + " " + strings.Join(parts, sep)
}

// RenderStatus renders the manager state line under the canvas.
func (r *SceneRenderer) RenderStatus(s *scene.Scene, lastEvent string) string {
	if s == nil {
		return ""
	}
	m := s.Manager()
	parts := []string{
		r.theme.BadgeMuted.Render(m.State().String()),
		r.theme.BadgeMuted.Render("play/pause: " + m.PlayPauseAction().String()),
	}
	if m.PanControlActive() {
		parts = append(parts, r.theme.Badge.Render("pan control"))
	}
	if lastEvent != "" {
		parts = append(parts, r.theme.Subtle.Render(lastEvent))
	}
	return strings.Join(parts, " ")
}

// ControlText is the text shown inside a widget.
func ControlText(w widget.Widget) string {
	label := w.Label()
	if label == "" {
		label = w.ID()
	}

	switch v := w.(type) {
	case *widget.Slider:
		lo, hi := v.Range()
		filled := 0
		if hi > lo {
			filled = int(math.Round((v.Value() - lo) / (hi - lo) * sliderBarWidth))
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", sliderBarWidth-filled)
		return fmt.Sprintf("%s %s %.0f", label, bar, v.Value())
	case *widget.TextField:
		text := v.Text()
		if v.Editing() {
			text += "_"
		}
		return label + ": " + text
	default:
		return label
	}
}

func widgetStyle(s *scene.Scene, w widget.Widget, focused string) cellStyle {
	editing := false
	if e, ok := w.(interface{ Editing() bool }); ok {
		editing = e.Editing()
	}

	switch {
	case !w.Enabled():
		return cellDisabled
	case editing:
		return cellEditing
	case w.ID() == focused:
		return cellFocused
	case s.IsBack(w):
		return cellBack
	default:
		return cellControl
	}
}

func (r *SceneRenderer) styleFor(c cellStyle) (lipgloss.Style, bool) {
	switch c {
	case cellContainer:
		return r.theme.Container, true
	case cellControl:
		return r.theme.Control, true
	case cellFocused:
		return r.theme.ControlFocused, true
	case cellEditing:
		return r.theme.ControlEditing, true
	case cellDisabled:
		return r.theme.ControlDisabled, true
	case cellBack:
		return r.theme.ControlBack, true
	default:
		return lipgloss.Style{}, false
	}
}

type rect struct {
	x, y, w, h int
}

func cellRect(b entity.Rect) rect {
	return rect{
		x: int(math.Round(b.X)),
		y: int(math.Round(b.Y)),
		w: max(1, int(math.Round(b.W))),
		h: max(1, int(math.Round(b.H))),
	}
}

func sceneExtent(s *scene.Scene) (w, h int) {
	grow := func(b entity.Rect) {
		r := cellRect(b)
		w = max(w, r.x+r.w)
		h = max(h, r.y+r.h)
	}
	for _, ct := range s.Containers() {
		grow(ct.Bounds())
	}
	for _, wd := range s.Widgets() {
		grow(wd.Bounds())
	}
	return w, h
}

type canvas struct {
	w, h   int
	runes  [][]rune
	styles [][]cellStyle
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, runes: make([][]rune, h), styles: make([][]cellStyle, h)}
	for y := 0; y < h; y++ {
		c.runes[y] = []rune(strings.Repeat(" ", w))
		c.styles[y] = make([]cellStyle, w)
	}
	return c
}

func (c *canvas) set(x, y int, r rune, s cellStyle) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.runes[y][x] = r
	c.styles[y][x] = s
}

func (c *canvas) box(rc rect, b border, s cellStyle, title string) {
	right, bottom := rc.x+rc.w-1, rc.y+rc.h-1
	for x := rc.x + 1; x < right; x++ {
		c.set(x, rc.y, b.h, s)
		c.set(x, bottom, b.h, s)
	}
	for y := rc.y + 1; y < bottom; y++ {
		c.set(rc.x, y, b.v, s)
		c.set(right, y, b.v, s)
	}
	c.set(rc.x, rc.y, b.tl, s)
	c.set(right, rc.y, b.tr, s)
	c.set(rc.x, bottom, b.bl, s)
	c.set(right, bottom, b.br, s)

	if title != "" && rc.w > 4 {
		c.text(rc.x+1, rc.y, rc.w-2, " "+title+" ", s)
	}
}

// text writes s from x, clipped to width cells.
func (c *canvas) text(x, y, width int, s string, style cellStyle) {
	for i, r := range []rune(s) {
		if i >= width {
			return
		}
		c.set(x+i, y, r, style)
	}
}

func (c *canvas) centered(x, y, width int, s string, style cellStyle) {
	n := len([]rune(s))
	if n < width {
		x += (width - n) / 2
	}
	c.text(x, y, width, s, style)
}

// render joins rows, styling runs of equal cell style together.
func (c *canvas) render(styleFor func(cellStyle) (lipgloss.Style, bool)) string {
	lines := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var sb strings.Builder
		row, styles := c.runes[y], c.styles[y]
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && styles[end] == styles[start] {
				end++
			}
			run := string(row[start:end])
			if st, ok := styleFor(styles[start]); ok {
				run = st.Render(run)
			}
			sb.WriteString(run)
			start = end
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return strings.Join(lines, "\n")
}
