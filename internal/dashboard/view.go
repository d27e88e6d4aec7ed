package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/triage/internal/controller"
	"github.com/rileyhilliard/triage/internal/errors"
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.viewportReady {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.renderBody())
	}
	b.WriteString("\n")

	b.WriteString(m.renderToast())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader shows the host and when its snapshot was fetched.
func (m Model) renderHeader() string {
	title := TitleStyle.Render("triage")

	var parts []string
	if s := m.state.Snapshot; s != nil {
		parts = append(parts, s.Hostname)
	}
	if m.state.LastFetchedLabel != "" {
		fetched := "last fetched " + m.state.LastFetchedLabel
		if m.state.LastError != nil && m.state.Snapshot != nil {
			fetched = StaleStyle.Render(fetched + " (stale)")
		}
		parts = append(parts, fetched)
	}
	if m.state.Refreshing {
		parts = append(parts, m.spinner.View()+" refreshing")
	}

	stats := ""
	if len(parts) > 0 {
		stats = LabelStyle.Render(" | " + strings.Join(parts, " | "))
	}
	return HeaderStyle.Render(title + stats)
}

// renderTabs renders one tab per panel, numbered by its shortcut.
func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(controller.Panels()))
	for i, p := range controller.Panels() {
		label := string(rune('1'+i)) + " " + p.String()
		if p == m.state.ActivePanel {
			tabs = append(tabs, ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderBody renders the area inside the viewport for the current status.
func (m Model) renderBody() string {
	switch m.state.Status() {
	case controller.StatusLoading:
		return "  " + m.spinner.View() + " " + LabelStyle.Render("Collecting system metrics...")
	case controller.StatusFailed:
		return m.renderFailed()
	default:
		return m.renderPanel(m.state.ActivePanel, m.state.Snapshot, m.contentWidth())
	}
}

// renderFailed is shown when the first fetch failed and nothing is loaded.
func (m Model) renderFailed() string {
	lines := []string{
		"  " + ErrorStyle.Render("✗ Couldn't load system information"),
		"",
		"  " + LabelStyle.Render(errors.Summary(m.state.LastError)),
		"",
		"  " + MutedStyle.Render("Press ") + KeyHintStyle.Render(KeyRefresh) + MutedStyle.Render(" to retry"),
	}
	return strings.Join(lines, "\n")
}

// renderToast renders the active notification, or an empty line.
func (m Model) renderToast() string {
	n := m.state.Notification
	if n == nil {
		return ""
	}

	color, symbol := ToastInfoColor, "•"
	switch n.Kind {
	case controller.KindSuccess:
		color, symbol = ToastSuccessColor, "✓"
	case controller.KindError:
		color, symbol = ToastErrorColor, "✗"
	}
	return toastBaseStyle.Foreground(color).Render(symbol + " " + n.Message)
}

// renderFooter lists the shortcuts. Export is shown disabled until a snapshot exists.
func (m Model) renderFooter() string {
	hint := func(key, desc string) string {
		return KeyHintStyle.Render(key) + " " + MutedStyle.Render(desc)
	}

	export := hint(KeyExport, "export")
	if !m.state.CanExport() {
		export = DisabledHintStyle.Render(KeyExport + " export")
	}

	hints := []string{
		hint(KeyRefresh, "refresh"),
		export,
		hint("1-6", "panels"),
		hint("tab", "next"),
		hint(KeyToggleHelp, "help"),
		hint(KeyQuit, "quit"),
	}
	return FooterStyle.Render(strings.Join(hints, MutedStyle.Render(" · ")))
}
