package dashboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/triage/internal/controller"
	"github.com/rileyhilliard/triage/internal/snapshot"
	"github.com/rileyhilliard/triage/internal/store"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

var epoch = time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)

const dataDir = "/data/triage"

func testSnapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Hostname:      "devbox",
		OSVersion:     "Ubuntu 22.04.3 LTS",
		KernelVersion: "6.5.0",
		Uptime:        "3d 4h 12m",
		CPUName:       "AMD Ryzen 9",
		CPUUsage:      42.5,
		CPUCores:      16,
		UsedMemory:    4 << 30,
		TotalMemory:   8 << 30,
		TotalSwap:     2 << 30,
		DiskInfo: []snapshot.DiskStat{
			{Name: "/dev/sda1", MountPoint: "/", TotalSpace: 100 << 30, AvailableSpace: 25 << 30},
		},
		NetworkInfo: []snapshot.NetworkStat{
			{Interface: "eth0", Received: 100 << 20, Transmitted: 50 << 20},
			{Interface: "wlan0", Received: 10 << 20, Transmitted: 5 << 20},
		},
		TopProcesses: []snapshot.ProcessStat{
			{Name: "firefox", PID: 4242, CPUUsage: 55.5, Memory: 512 << 20, Status: "Run"},
		},
	}
}

// switchableCollector fails while failing is set.
type switchableCollector struct {
	failing atomic.Bool
}

func (c *switchableCollector) Collect(context.Context) (*snapshot.Snapshot, error) {
	if c.failing.Load() {
		return nil, errCollect
	}
	return testSnapshot(), nil
}

var errCollect = errors.New("ps: command not found")

type harness struct {
	ctrl  *controller.Controller
	clock *clocktesting.FakeClock
	fs    afero.Fs
	coll  *switchableCollector
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		clock: clocktesting.NewFakeClock(epoch),
		fs:    afero.NewMemMapFs(),
		coll:  &switchableCollector{},
	}
	ctrl, err := controller.New(controller.Options{
		Collector: h.coll,
		Store:     store.New(h.fs, dataDir),
		Clock:     h.clock,
	})
	require.NoError(t, err)
	t.Cleanup(ctrl.Close)
	h.ctrl = ctrl
	return h
}

func (h *harness) model(t *testing.T) Model {
	t.Helper()
	m := NewModel(context.Background(), h.ctrl, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	return updated.(Model)
}

// receive applies the newest state the controller has published.
func receive(t *testing.T, m Model) Model {
	t.Helper()
	msg := waitForState(m.states)()
	require.NotNil(t, msg, "state channel closed")
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// run executes cmd, feeds its message back into m and then applies the newest state.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	updated, _ := m.Update(cmd())
	return receive(t, updated.(Model))
}

func press(m Model, key string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch key {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// started returns a model whose initial fetch has completed.
func started(t *testing.T, h *harness) Model {
	t.Helper()
	m := h.model(t)
	return run(t, m, m.startCmd())
}
