package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bar glyphs.
const (
	filledGlyph = "█"
	emptyGlyph  = "░"
)

// Severity thresholds for percentage bars.
const (
	WarningThreshold  = 70.0
	CriticalThreshold = 90.0
)

// Palette colors used by the bar renderers. The dashboard shares them so bars
// match the surrounding chrome.
var (
	ColorHealthy  = lipgloss.Color("#39FF14")
	ColorWarning  = lipgloss.Color("#FFAA00")
	ColorCritical = lipgloss.Color("#FF0055")
	ColorEmpty    = lipgloss.Color("#6B6B8D")
	ColorLabel    = lipgloss.Color("#B4B4D0")
	ColorValue    = lipgloss.Color("#FFFFFF")

	// ColorReceived and ColorTransmitted tell the two network bars apart.
	ColorReceived    = lipgloss.Color("#8884D8")
	ColorTransmitted = lipgloss.Color("#82CA9D")
)

// Options controls bar chart layout.
type Options struct {
	// Width is the total line width including label and value columns.
	Width int
	// Color fills the bars of value charts.
	Color lipgloss.Color
	// Format renders a raw value for the value column. Defaults to %d.
	Format func(uint64) string
}

func (o Options) format(v uint64) string {
	if o.Format == nil {
		return fmt.Sprintf("%d", v)
	}
	return o.Format(v)
}

// SeverityColor returns the color for a percentage: green below 70, amber below 90, red above.
func SeverityColor(percent float64) lipgloss.Color {
	switch {
	case percent >= CriticalThreshold:
		return ColorCritical
	case percent >= WarningThreshold:
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// Bar renders a single horizontal bar of the given width filled to fraction (0-1).
func Bar(width int, fraction float64, color lipgloss.Color) string {
	if width < 1 {
		width = 1
	}
	filled := cells(width, fraction)

	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(filledGlyph, filled)) +
		lipgloss.NewStyle().Foreground(ColorEmpty).Render(strings.Repeat(emptyGlyph, width-filled))
}

// cells converts a fraction into a filled cell count in [0, width].
// Any non-zero fraction fills at least one cell so small values stay visible.
func cells(width int, fraction float64) int {
	if fraction <= 0 {
		return 0
	}
	if fraction >= 1 {
		return width
	}
	n := int(fraction * float64(width))
	if n == 0 {
		n = 1
	}
	return n
}

// fraction returns v/peak, or 0 when peak is zero.
func fraction(v, peak uint64) float64 {
	if peak == 0 {
		return 0
	}
	return float64(v) / float64(peak)
}

// RenderValueBars renders one bar per entry, scaled to the largest value.
func RenderValueBars(entries []ValueEntry, opts Options) string {
	if len(entries) == 0 {
		return ""
	}

	var peak uint64
	labels := make([]string, len(entries))
	values := make([]string, len(entries))
	for i, e := range entries {
		if e.Value > peak {
			peak = e.Value
		}
		labels[i] = e.Label
		values[i] = opts.format(e.Value)
	}

	labelW, valueW := widest(labels), widest(values)
	barW := barWidth(opts.Width, labelW, valueW)

	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		lines = append(lines, row(labels[i], labelW,
			Bar(barW, fraction(e.Value, peak), opts.Color), values[i], valueW))
	}
	return strings.Join(lines, "\n")
}

// RenderUsageBars renders percentage bars on a fixed 0-100 scale, colored by severity.
func RenderUsageBars(entries []UsageEntry, width int) string {
	if len(entries) == 0 {
		return ""
	}

	labels := make([]string, len(entries))
	values := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
		if labels[i] == "" {
			labels[i] = "CPU"
		}
		values[i] = fmt.Sprintf("%.1f%%", e.Usage)
	}

	labelW, valueW := widest(labels), widest(values)
	barW := barWidth(width, labelW, valueW)

	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		lines = append(lines, row(labels[i], labelW,
			Bar(barW, e.Usage/100, SeverityColor(e.Usage)), values[i], valueW))
	}
	return strings.Join(lines, "\n")
}

// RenderTrafficBars renders a received and a transmitted bar per interface.
// Both bars share one scale: the largest counter across all interfaces.
func RenderTrafficBars(entries []TrafficEntry, opts Options) string {
	if len(entries) == 0 {
		return ""
	}

	var peak uint64
	labels := make([]string, 0, len(entries)*2)
	values := make([]string, 0, len(entries)*2)
	for _, e := range entries {
		if e.Received > peak {
			peak = e.Received
		}
		if e.Transmitted > peak {
			peak = e.Transmitted
		}
		labels = append(labels, e.Label+" rx", e.Label+" tx")
		values = append(values, opts.format(e.Received), opts.format(e.Transmitted))
	}

	labelW, valueW := widest(labels), widest(values)
	barW := barWidth(opts.Width, labelW, valueW)

	lines := make([]string, 0, len(labels))
	for i, e := range entries {
		lines = append(lines,
			row(labels[2*i], labelW, Bar(barW, fraction(e.Received, peak), ColorReceived), values[2*i], valueW),
			row(labels[2*i+1], labelW, Bar(barW, fraction(e.Transmitted, peak), ColorTransmitted), values[2*i+1], valueW),
		)
	}
	return strings.Join(lines, "\n")
}

func row(label string, labelW int, bar, value string, valueW int) string {
	labelStyle := lipgloss.NewStyle().Foreground(ColorLabel).Width(labelW)
	valueStyle := lipgloss.NewStyle().Foreground(ColorValue).Width(valueW).Align(lipgloss.Right)
	return labelStyle.Render(label) + " " + bar + " " + valueStyle.Render(value)
}

func widest(items []string) int {
	w := 0
	for _, s := range items {
		if sw := lipgloss.Width(s); sw > w {
			w = sw
		}
	}
	return w
}

// barWidth is what remains of the line after label, value and two separators.
func barWidth(total, labelW, valueW int) int {
	w := total - labelW - valueW - 2
	if w < 1 {
		w = 1
	}
	return w
}
