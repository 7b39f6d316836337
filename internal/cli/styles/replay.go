package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tvfocus/internal/application/usecase"
)

// ReplayRenderer renders the outcome of a gesture replay.
type ReplayRenderer struct {
	theme *Theme
}

// NewReplayRenderer creates a new ReplayRenderer.
func NewReplayRenderer(theme *Theme) *ReplayRenderer {
	return &ReplayRenderer{theme: theme}
}

// Render renders the trace, the final state and the verdict.
func (r *ReplayRenderer) Render(name string, out *usecase.ReplayOutput) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	parts := []string{
		fmt.Sprintf("%s %s", iconStyle.Render(IconTV), r.theme.Title.Render("Replay "+name)),
		"",
	}

	for _, e := range out.Trace {
		parts = append(parts, r.renderEntry(e))
	}

	parts = append(parts, "", r.renderFinal(out))

	if out.Passed() {
		parts = append(parts, r.theme.SuccessStyle.Render(IconCheck+" all expectations met"))
	} else {
		for _, f := range out.Failures {
			parts = append(parts, r.theme.ErrorStyle.Render(IconX+" "+f))
		}
	}

	return strings.Join(parts, "\n")
}

// RenderJSON renders the replay output as JSON.
func (*ReplayRenderer) RenderJSON(out *usecase.ReplayOutput) (string, error) {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal replay: %w", err)
	}
	return string(data), nil
}

func (r *ReplayRenderer) renderEntry(e usecase.TraceEntry) string {
	step := r.theme.Subtle.Render(fmt.Sprintf("%3d %-11s", e.Step, e.Action))
	sceneName := r.theme.Normal.Render(e.Scene)

	var what string
	switch e.Kind {
	case usecase.TraceFocus:
		what = fmt.Sprintf("%s %s %s", orDash(e.From), IconArrow, r.theme.Highlight.Render(orDash(e.To)))
	case usecase.TraceActivate:
		what = r.theme.WarningStyle.Render("activate " + e.To)
	case usecase.TraceScene:
		what = r.theme.Subtle.Render(strings.TrimSpace("scene " + e.Detail + " " + focusNote(e.To)))
	case usecase.TraceExpect:
		if e.Detail == "ok" {
			what = r.theme.SuccessStyle.Render("expect ok")
		} else {
			what = r.theme.ErrorStyle.Render(e.Detail)
		}
	}

	return fmt.Sprintf("%s %s %s", step, r.theme.BadgeMuted.Render(string(e.Kind)), strings.TrimSpace(sceneName+" "+what))
}

func (r *ReplayRenderer) renderFinal(out *usecase.ReplayOutput) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	return fmt.Sprintf(
		"%s %s  %s %s  %s %d",
		keyStyle.Render("scene"), valStyle.Render(orDash(out.Scene)),
		keyStyle.Render("focused"), valStyle.Render(orDash(out.Focused)),
		keyStyle.Render("depth"), out.Depth,
	)
}

func focusNote(id string) string {
	if id == "" {
		return ""
	}
	return "focused=" + id
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
