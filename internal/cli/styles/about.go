package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tvfocus/internal/domain/build"
	"github.com/bnema/tvfocus/internal/ui/focus"
)

// AboutRenderer renders build info and the navigation constants next to
// a small logo.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new AboutRenderer.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders the about screen.
func (r *AboutRenderer) Render(info build.Info) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderLogo(), "   ", r.renderInfoLines(info))
}

func (r *AboutRenderer) renderLogo() string {
	logo := `┌───────┐
│ ▶     │
│       │
└───┬───┘
  ──┴──`

	return lipgloss.NewStyle().
		Foreground(r.theme.Accent).
		Bold(true).
		Margin(1, 0, 0, 2).
		Render(logo)
}

func (r *AboutRenderer) renderInfoLines(info build.Info) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	row := func(glyph, key, value string) string {
		key = r.theme.Subtle.Render(fmt.Sprintf("%-8s", key))
		return icon.Render(glyph) + " " + key + " " + r.theme.Highlight.Render(value)
	}

	return strings.Join([]string{
		icon.Render(IconTV) + " " + r.theme.Title.Render("tvfocus"),
		row(IconVersion, "Version", info.Version),
		row(IconGitBranch, "Commit", info.Commit),
		row(IconCalendar, "Built", info.BuildDate),
		row(IconGo, "Go", info.GoVersion),
		row(IconArrow, "Cone", fmt.Sprintf("%g\u00b0 either side", focus.ConeDegrees)),
		row(IconArrow, "Pan", fmt.Sprintf("%g points per step", focus.DefaultPanThreshold)),
		"",
		icon.Render(IconGithub) + " " + r.theme.Subtle.Render(build.RepoURL()),
	}, "\n")
}
