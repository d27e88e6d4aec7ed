package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo contains information to display in the header.
type HeaderInfo struct {
	Version string   // e.g. "v0.1.0"
	Tagline string   // Optional tagline
	Details []Detail // Optional label/value rows under the divider
}

// Detail is one label/value row of a header.
type Detail struct {
	Label string
	Value string
}

// HeaderWidth is the minimum width of the header divider.
const HeaderWidth = 50

// RenderHeader renders "triage <version>", an optional tagline, a divider as
// wide as the widest row, and the detail rows with aligned labels.
func RenderHeader(info HeaderInfo) string {
	titleStyle := lipgloss.NewStyle().Foreground(ColorNeonPink).Bold(true)
	versionStyle := lipgloss.NewStyle().Foreground(ColorNeonCyan)
	taglineStyle := lipgloss.NewStyle().Foreground(ColorSecondary)
	dividerStyle := lipgloss.NewStyle().Foreground(ColorGlassBorder)
	labelStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	title := titleStyle.Render("triage")
	if info.Version != "" {
		title += " " + versionStyle.Render(info.Version)
	}
	lines := []string{title}
	if info.Tagline != "" {
		lines = append(lines, taglineStyle.Render(info.Tagline))
	}

	labelWidth := 0
	for _, d := range info.Details {
		labelWidth = max(labelWidth, lipgloss.Width(d.Label)+1)
	}
	details := make([]string, 0, len(info.Details))
	for _, d := range info.Details {
		details = append(details, labelStyle.Render(padRight(d.Label+":", labelWidth))+" "+d.Value)
	}

	width := HeaderWidth
	for _, l := range append(append([]string{}, lines...), details...) {
		width = max(width, lipgloss.Width(l))
	}

	lines = append(lines, dividerStyle.Render(strings.Repeat("━", width)))
	lines = append(lines, details...)
	return strings.Join(lines, "\n") + "\n"
}
