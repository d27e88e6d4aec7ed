package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/triage/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	DisableColors()
}

func reportFixture() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Hostname:      "build-01",
		OSVersion:     "Ubuntu 24.04 LTS",
		KernelVersion: "6.8.0-45-generic",
		Uptime:        "3d 4h 12m",
		CPUName:       "AMD EPYC 7763",
		CPUUsage:      42.5,
		CPUCores:      8,
		UsedMemory:    4 << 30,
		TotalMemory:   16 << 30,
		DiskInfo: []snapshot.DiskStat{
			{Name: "/dev/nvme0n1p2", MountPoint: "/", TotalSpace: 100 << 30, AvailableSpace: 25 << 30},
		},
		NetworkInfo: []snapshot.NetworkStat{
			{Interface: "eth0", Received: 1 << 20, Transmitted: 2048},
		},
		TopProcesses: []snapshot.ProcessStat{
			{Name: "postgres", PID: 812, CPUUsage: 12.3, Memory: 256 << 20, Status: "Sleep"},
		},
	}
}

func TestRenderReport(t *testing.T) {
	out := RenderReport(reportFixture(), "14:03:22")

	for _, want := range []string{
		"build-01", "fetched 14:03:22",
		"Ubuntu 24.04 LTS", "6.8.0-45-generic", "3d 4h 12m",
		"AMD EPYC 7763 (8 cores)", "42.5%",
		"4.0 GiB / 16 GiB (25.0%)",
		"Disks", "/dev/nvme0n1p2", "75 GiB", "100 GiB", "75%",
		"Network", "eth0", "1.0 MiB", "2.0 KiB",
		"Top processes", "812", "postgres", "12.3", "256 MiB", "Sleep",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderReport_OmitsEmptySections(t *testing.T) {
	s := reportFixture()
	s.DiskInfo = nil
	s.NetworkInfo = nil
	s.TopProcesses = nil

	out := RenderReport(s, "")

	assert.NotContains(t, out, "Disks")
	assert.NotContains(t, out, "Network")
	assert.NotContains(t, out, "Top processes")
	assert.NotContains(t, out, "fetched")
	assert.Contains(t, out, "0 B / 0 B (0.0%)", "zero swap renders without dividing by zero")
}

func TestRenderReport_Nil(t *testing.T) {
	assert.Contains(t, RenderReport(nil, ""), "No snapshot available")
}

func TestRows(t *testing.T) {
	s := reportFixture()

	disks := DiskRows(s.DiskInfo)
	require.Len(t, disks, 1)
	assert.Len(t, disks[0], len(DiskColumns))

	net := NetworkRows(s.NetworkInfo)
	require.Len(t, net, 1)
	assert.Len(t, net[0], len(NetworkColumns))

	procs := ProcessRows(s.TopProcesses)
	require.Len(t, procs, 1)
	assert.Equal(t, []string{"812", "postgres", "12.3", "256 MiB", "Sleep"}, procs[0])
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader(HeaderInfo{Version: "v0.1.0", Tagline: "System telemetry at a glance"})

	assert.Contains(t, out, "triage v0.1.0")
	assert.Contains(t, out, "System telemetry at a glance")
	assert.Contains(t, out, "━━━")
}

func TestRenderHeader_Details(t *testing.T) {
	out := RenderHeader(HeaderInfo{
		Version: "dev",
		Details: []Detail{
			{Label: "go", Value: "go1.24.11"},
			{Label: "os/arch", Value: "linux/amd64"},
		},
	})

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "go:      go1.24.11", lines[2])
	assert.Equal(t, "os/arch: linux/amd64", lines[3])
	assert.Equal(t, HeaderWidth, lipgloss.Width(lines[1]))
}
