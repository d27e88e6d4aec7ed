package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/triage/internal/controller"
)

// HelpBinding represents a single keyboard shortcut entry.
type HelpBinding struct {
	Key  string
	Desc string
	// Unavailable returns why the action can't run in state s, or "".
	Unavailable func(s controller.ViewState) string
}

// helpBindings defines all keyboard shortcuts shown in the help overlay.
var helpBindings = []HelpBinding{
	{Key: KeyRefresh, Desc: "Refresh metrics", Unavailable: func(s controller.ViewState) string {
		if s.Refreshing {
			return "refresh in progress"
		}
		return ""
	}},
	{Key: KeyExport, Desc: "Export snapshot", Unavailable: func(s controller.ViewState) string {
		if !s.CanExport() {
			return "no snapshot yet"
		}
		return ""
	}},
	{Key: "1-6", Desc: "Jump to panel"},
	{Key: "tab / l", Desc: "Next panel"},
	{Key: "shift+tab / h", Desc: "Previous panel"},
	{Key: "up / down", Desc: "Scroll panel"},
	{Key: "?", Desc: "Toggle this help"},
	{Key: "q / Ctrl+C", Desc: "Quit"},
}

var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Background(ColorSurfaceBg).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			MarginBottom(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true).
			Width(16)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)
)

// renderHelpOverlay renders a centered help box with keyboard shortcuts.
func (m Model) renderHelpOverlay() string {
	lines := []string{helpTitleStyle.Render("Keyboard Shortcuts"), ""}
	for _, binding := range helpBindings {
		desc := helpDescStyle.Render(binding.Desc)
		if binding.Unavailable != nil {
			if why := binding.Unavailable(m.state); why != "" {
				desc = DisabledHintStyle.Render(binding.Desc) + LabelStyle.Render(" ("+why+")")
			}
		}
		lines = append(lines, helpKeyStyle.Render(binding.Key)+desc)
	}
	lines = append(lines, "", LabelStyle.Render("Press ? or Esc to close"))

	helpBox := helpBoxStyle.Render(strings.Join(lines, "\n"))

	width, height := m.width, m.height
	if width <= 0 || height <= 0 {
		return helpBox
	}
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		helpBox,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(ColorDarkBg),
	)
}
