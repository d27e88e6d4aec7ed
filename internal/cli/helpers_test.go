package cli

import (
	"context"
	"os"
	"testing"

	"github.com/rileyhilliard/triage/internal/collector"
	"github.com/rileyhilliard/triage/internal/snapshot"
)

// isolate points HOME, XDG_DATA_HOME and the working directory at temp dirs
// and clears --config, returning the data directory exports land in.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	data := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)
	chdir(t, t.TempDir())

	prev := cfgFile
	cfgFile = ""
	t.Cleanup(func() { cfgFile = prev })
	return data
}

func fixtureSnapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Hostname:      "ci-runner",
		OSVersion:     "Debian GNU/Linux 12 (bookworm)",
		KernelVersion: "6.1.0-18-amd64",
		Uptime:        "12h 3m",
		CPUName:       "Intel Xeon",
		CPUUsage:      12.5,
		CPUCores:      4,
		UsedMemory:    1 << 30,
		TotalMemory:   4 << 30,
		DiskInfo: []snapshot.DiskStat{
			{Name: "/dev/vda1", MountPoint: "/", TotalSpace: 40 << 30, AvailableSpace: 30 << 30},
		},
		NetworkInfo: []snapshot.NetworkStat{
			{Interface: "eth0", Received: 1024, Transmitted: 512},
		},
		TopProcesses: []snapshot.ProcessStat{
			{Name: "dockerd", PID: 911, CPUUsage: 3.2, Memory: 96 << 20, Status: "Sleep"},
		},
	}
}

func fixtureCollector() collector.Func {
	return func(context.Context) (*snapshot.Snapshot, error) {
		return fixtureSnapshot(), nil
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
