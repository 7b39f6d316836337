package styles

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tvfocus/internal/domain/entity"
)

// sectionOrder is the display order of config sections. Unknown sections
// are appended in first-seen order.
var sectionOrder = []string{
	"Logging",
	"Navigation",
	"Remote",
	"Demo",
}

// ConfigSchemaRenderer renders configuration schema information.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render renders the configuration schema in styled format.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	sections, order := groupBySection(keys)

	parts := []string{r.renderHeader(), ""}
	for _, section := range order {
		parts = append(parts, r.renderSection(section, sections[section]), "")
	}

	return strings.Join(parts, "\n")
}

// RenderJSON renders the configuration schema as JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

// RenderConfigFile renders the path of the active config file.
func (r *ConfigSchemaRenderer) RenderConfigFile(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	if path == "" {
		return fmt.Sprintf("%s %s", iconStyle.Render(IconConfig), r.theme.Subtle.Render("no config file, using defaults"))
	}
	return fmt.Sprintf("%s %s", iconStyle.Render(IconConfig), r.theme.Normal.Render(path))
}

// RenderWritten confirms a written config file.
func (r *ConfigSchemaRenderer) RenderWritten(path string) string {
	return fmt.Sprintf("%s %s %s", r.theme.SuccessStyle.Render(IconCheck), r.theme.Normal.Render("wrote"), r.theme.Highlight.Render(path))
}

// RenderError renders an error line.
func (r *ConfigSchemaRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}

func (r *ConfigSchemaRenderer) renderHeader() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s", iconStyle.Render(IconConfig), r.theme.Title.Render("Config Schema Reference"))
}

func groupBySection(keys []entity.ConfigKeyInfo) (map[string][]entity.ConfigKeyInfo, []string) {
	sections := make(map[string][]entity.ConfigKeyInfo)
	var seen []string
	for _, key := range keys {
		if _, ok := sections[key.Section]; !ok {
			seen = append(seen, key.Section)
		}
		sections[key.Section] = append(sections[key.Section], key)
	}

	order := make([]string, 0, len(seen))
	for _, s := range sectionOrder {
		if _, ok := sections[s]; ok {
			order = append(order, s)
		}
	}
	for _, s := range seen {
		if !slices.Contains(sectionOrder, s) {
			order = append(order, s)
		}
	}
	return sections, order
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []entity.ConfigKeyInfo) string {
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, r.renderKey(key))
	}

	boxContent := r.theme.Highlight.Render(name) + "\n" + strings.Join(lines, "\n")
	return r.theme.Box.PaddingTop(0).Render(boxContent)
}

func (r *ConfigSchemaRenderer) renderKey(key entity.ConfigKeyInfo) string {
	keyStyle := r.theme.Normal.Bold(true)
	typeStyle := r.theme.Subtle
	defaultStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	descStyle := r.theme.Subtle
	valuesStyle := r.theme.Normal

	// Line 1: key name, type, default
	result := fmt.Sprintf(
		"%s  %s  %s",
		keyStyle.Render(key.Key),
		typeStyle.Render(key.Type),
		defaultStyle.Render(key.Default),
	)

	// Line 2: description (indented)
	result += "\n  " + descStyle.Render(key.Description)

	// Line 3 (optional): values or range
	if len(key.Values) > 0 {
		result += "\n  " + valuesStyle.Render("Values: "+strings.Join(key.Values, ", "))
	} else if key.Range != "" {
		result += "\n  " + valuesStyle.Render("Range: "+key.Range)
	}

	return result
}
