package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/triage/internal/snapshot"
)

// reportLabelWidth aligns the key/value rows of the system section.
const reportLabelWidth = 10

// RenderReport renders a snapshot as titled plain-text sections for
// non-interactive output. fetched is shown next to the hostname when set.
func RenderReport(s *snapshot.Snapshot, fetched string) string {
	if s == nil {
		return lipgloss.NewStyle().Foreground(ColorMuted).Render("No snapshot available") + "\n"
	}

	titleStyle := lipgloss.NewStyle().Foreground(ColorNeonPink).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	var b strings.Builder

	title := titleStyle.Render(s.Hostname)
	if fetched != "" {
		title += labelStyle.Render("  fetched " + fetched)
	}
	b.WriteString(title + "\n\n")

	kv := func(label, value string) {
		b.WriteString("  " + labelStyle.Render(padRight(label, reportLabelWidth)) + value + "\n")
	}
	kv("OS", s.OSVersion)
	kv("Kernel", s.KernelVersion)
	kv("Uptime", s.Uptime)
	kv("CPU", fmt.Sprintf("%s (%d cores)", s.CPUName, s.CPUCores))
	kv("CPU use", fmt.Sprintf("%.1f%%", s.CPUUsage))
	kv("Memory", UsageLine(s.UsedMemory, s.TotalMemory, s.MemoryPercent()))
	kv("Swap", UsageLine(s.UsedSwap, s.TotalSwap, s.SwapPercent()))

	if len(s.DiskInfo) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Disks") + "\n")
		b.WriteString(RenderTable(DiskColumns, DiskRows(s.DiskInfo), 0))
		b.WriteString("\n")
	}

	if len(s.NetworkInfo) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Network") + "\n")
		b.WriteString(RenderTable(NetworkColumns, NetworkRows(s.NetworkInfo), 0))
		b.WriteString("\n")
	}

	if len(s.TopProcesses) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Top processes") + "\n")
		b.WriteString(RenderTable(ProcessColumns, ProcessRows(s.TopProcesses), 0))
		b.WriteString("\n")
	}

	return b.String()
}

// UsageLine renders "used / total (pct%)" with IEC byte units.
func UsageLine(used, total uint64, percent float64) string {
	return fmt.Sprintf("%s / %s (%.1f%%)", humanize.IBytes(used), humanize.IBytes(total), percent)
}

// Column layouts shared by the report and the dashboard tables.
var (
	DiskColumns = []TableColumn{
		{Title: "Device", Width: 18},
		{Title: "Mount", Width: 18},
		{Title: "Used", Width: 10, AlignRight: true},
		{Title: "Total", Width: 10, AlignRight: true},
		{Title: "Use%", Width: 6, AlignRight: true},
	}
	NetworkColumns = []TableColumn{
		{Title: "Interface", Width: 14},
		{Title: "Received", Width: 12, AlignRight: true},
		{Title: "Transmitted", Width: 12, AlignRight: true},
	}
	ProcessColumns = []TableColumn{
		{Title: "PID", Width: 8, AlignRight: true},
		{Title: "Name", Width: 20},
		{Title: "CPU%", Width: 7, AlignRight: true},
		{Title: "Memory", Width: 10, AlignRight: true},
		{Title: "Status", Width: 12},
	}
)

// DiskRows formats disks for DiskColumns.
func DiskRows(disks []snapshot.DiskStat) [][]string {
	rows := make([][]string, 0, len(disks))
	for _, d := range disks {
		rows = append(rows, []string{
			d.Name,
			d.MountPoint,
			humanize.IBytes(d.UsedSpace()),
			humanize.IBytes(d.TotalSpace),
			fmt.Sprintf("%.0f%%", d.UsedPercent()),
		})
	}
	return rows
}

// NetworkRows formats interfaces for NetworkColumns.
func NetworkRows(ifaces []snapshot.NetworkStat) [][]string {
	rows := make([][]string, 0, len(ifaces))
	for _, n := range ifaces {
		rows = append(rows, []string{
			n.Interface,
			humanize.IBytes(n.Received),
			humanize.IBytes(n.Transmitted),
		})
	}
	return rows
}

// ProcessRows formats processes for ProcessColumns.
func ProcessRows(procs []snapshot.ProcessStat) [][]string {
	rows := make([][]string, 0, len(procs))
	for _, p := range procs {
		rows = append(rows, []string{
			strconv.Itoa(p.PID),
			p.Name,
			fmt.Sprintf("%.1f", p.CPUUsage),
			humanize.IBytes(p.Memory),
			p.Status,
		})
	}
	return rows
}
