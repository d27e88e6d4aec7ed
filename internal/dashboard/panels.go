package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/triage/internal/chart"
	"github.com/rileyhilliard/triage/internal/controller"
	"github.com/rileyhilliard/triage/internal/snapshot"
	"github.com/rileyhilliard/triage/internal/ui"
)

// systemLabelWidth aligns the key/value rows of the system panel.
const systemLabelWidth = 12

// renderPanel renders the body of panel p for snapshot s.
func (m Model) renderPanel(p controller.Panel, s *snapshot.Snapshot, width int) string {
	var body string
	switch p {
	case controller.PanelCPU:
		body = renderCPU(s, width)
	case controller.PanelMemory:
		body = renderMemory(s, width)
	case controller.PanelDisks:
		body = renderDisks(s, width)
	case controller.PanelNetwork:
		body = renderNetwork(s, width)
	case controller.PanelProcesses:
		body = renderProcesses(s, width)
	default:
		body = renderSystem(s)
	}
	return lipgloss.NewStyle().PaddingLeft(2).Render(PanelTitleStyle.Render(p.String()) + "\n" + body)
}

func keyValue(label, value string) string {
	return LabelStyle.Width(systemLabelWidth).Render(label) + ValueStyle.Render(value)
}

func renderSystem(s *snapshot.Snapshot) string {
	return strings.Join([]string{
		keyValue("Hostname", s.Hostname),
		keyValue("OS", s.OSVersion),
		keyValue("Kernel", s.KernelVersion),
		keyValue("Uptime", s.Uptime),
		keyValue("CPU", s.CPUName),
		keyValue("Cores", fmt.Sprintf("%d", s.CPUCores)),
		keyValue("Memory", ui.UsageLine(s.UsedMemory, s.TotalMemory, s.MemoryPercent())),
		keyValue("Swap", ui.UsageLine(s.UsedSwap, s.TotalSwap, s.SwapPercent())),
	}, "\n")
}

func renderCPU(s *snapshot.Snapshot, width int) string {
	return chart.RenderUsageBars(chart.CPUSeries(s), width) + "\n\n" +
		keyValue("Cores", fmt.Sprintf("%d", s.CPUCores))
}

func renderMemory(s *snapshot.Snapshot, width int) string {
	bars := chart.RenderValueBars(chart.MemorySeries(s), chart.Options{
		Width:  width,
		Color:  ColorGraph,
		Format: humanize.IBytes,
	})
	return bars + "\n\n" +
		keyValue("Memory", fmt.Sprintf("%.1f%% used", s.MemoryPercent())) + "\n" +
		keyValue("Swap", fmt.Sprintf("%.1f%% used", s.SwapPercent()))
}

func renderDisks(s *snapshot.Snapshot, width int) string {
	if len(s.DiskInfo) == 0 {
		return MutedStyle.Render("No disks reported")
	}
	usage := make([]chart.UsageEntry, 0, len(s.DiskInfo))
	for _, d := range s.DiskInfo {
		usage = append(usage, chart.UsageEntry{Label: d.MountPoint, Usage: d.UsedPercent()})
	}
	return chart.RenderUsageBars(usage, width) + "\n\n" +
		ui.RenderTable(ui.DiskColumns, ui.DiskRows(s.DiskInfo), width)
}

func renderNetwork(s *snapshot.Snapshot, width int) string {
	if len(s.NetworkInfo) == 0 {
		return MutedStyle.Render("No network interfaces reported")
	}
	return chart.RenderTrafficBars(chart.NetworkSeries(s), chart.Options{
		Width:  width,
		Format: humanize.IBytes,
	})
}

func renderProcesses(s *snapshot.Snapshot, width int) string {
	if len(s.TopProcesses) == 0 {
		return MutedStyle.Render("No processes reported")
	}
	return ui.RenderTable(ui.ProcessColumns, ui.ProcessRows(s.TopProcesses), width)
}
