package dashboard

import (
	"testing"

	"github.com/rileyhilliard/triage/internal/controller"
	"github.com/stretchr/testify/assert"
)

func TestPanelKeys(t *testing.T) {
	tests := []struct {
		key   string
		panel controller.Panel
		want  []string
	}{
		{"1", controller.PanelSystem, []string{"Hostname", "devbox", "3d 4h 12m", "6.5.0"}},
		{"2", controller.PanelCPU, []string{"AMD Ryzen 9", "42.5%", "16"}},
		{"3", controller.PanelMemory, []string{"Used Memory", "Total Memory", "Used Swap", "Total Swap", "8.0 GiB", "50.0% used"}},
		{"4", controller.PanelDisks, []string{"/dev/sda1", "75 GiB", "75.0%"}},
		{"5", controller.PanelNetwork, []string{"eth0 rx", "eth0 tx", "wlan0 rx", "100 MiB"}},
		{"6", controller.PanelProcesses, []string{"firefox", "4242", "55.5", "512 MiB", "Run"}},
	}

	for _, tt := range tests {
		t.Run(tt.panel.String(), func(t *testing.T) {
			h := newHarness(t)
			m := started(t, h)

			m, cmd := press(m, tt.key)

			assert.Nil(t, cmd)
			assert.Equal(t, tt.panel, m.State().ActivePanel)
			assert.Equal(t, tt.panel, h.ctrl.State().ActivePanel)
			view := m.View()
			for _, w := range tt.want {
				assert.Contains(t, view, w)
			}
		})
	}
}

func TestSelectPanel_DisksThenCPU(t *testing.T) {
	h := newHarness(t)
	m := started(t, h)

	m, _ = press(m, "4")
	m, _ = press(m, "2")

	assert.Equal(t, controller.PanelCPU, m.State().ActivePanel)
	assert.Contains(t, m.View(), "AMD Ryzen 9")
}

func TestPanelNavigation(t *testing.T) {
	h := newHarness(t)
	m := started(t, h)

	for _, key := range []string{KeyNextPanel, KeyNextRight, KeyNextL} {
		m, _ = press(m, key)
	}
	assert.Equal(t, controller.PanelDisks, m.State().ActivePanel)

	for _, key := range []string{KeyPrevPanel, KeyPrevLeft, KeyPrevH, KeyPrevH} {
		m, _ = press(m, key)
	}
	assert.Equal(t, controller.PanelProcesses, m.State().ActivePanel, "previous wraps around")

	m, _ = press(m, KeyNextPanel)
	assert.Equal(t, controller.PanelSystem, m.State().ActivePanel, "next wraps around")
}

func TestTabs(t *testing.T) {
	h := newHarness(t)
	m := started(t, h)

	tabs := m.renderTabs()
	for _, want := range []string{"1 System", "2 CPU", "3 Memory", "4 Disks", "5 Network", "6 Processes"} {
		assert.Contains(t, tabs, want)
	}
}

func TestHelpOverlay(t *testing.T) {
	h := newHarness(t)
	m := started(t, h)

	m, _ = press(m, KeyToggleHelp)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")
	assert.Contains(t, m.View(), "Export snapshot")

	m, _ = press(m, KeyClose)
	assert.NotContains(t, m.View(), "Keyboard Shortcuts")

	m, _ = press(m, KeyToggleHelp)
	m, _ = press(m, KeyToggleHelp)
	assert.NotContains(t, m.View(), "Keyboard Shortcuts")
}

func TestHelpOverlay_NoSize(t *testing.T) {
	assert.Contains(t, Model{}.renderHelpOverlay(), "Keyboard Shortcuts")
}

func TestHelpOverlay_MarksUnavailableActions(t *testing.T) {
	empty := Model{state: controller.ViewState{Refreshing: true}}
	out := empty.renderHelpOverlay()
	assert.Contains(t, out, "(no snapshot yet)")
	assert.Contains(t, out, "(refresh in progress)")

	h := newHarness(t)
	loaded := started(t, h)
	out = loaded.renderHelpOverlay()
	assert.NotContains(t, out, "no snapshot yet")
	assert.NotContains(t, out, "refresh in progress")
}

func TestFooter(t *testing.T) {
	h := newHarness(t)
	m := h.model(t)

	footer := m.renderFooter()
	for _, want := range []string{"r refresh", "e export", "1-6 panels", "? help", "q quit"} {
		assert.Contains(t, footer, want)
	}
}

func TestToast(t *testing.T) {
	tests := []struct {
		kind controller.Kind
		want string
	}{
		{controller.KindInfo, "• Collecting"},
		{controller.KindSuccess, "✓ Collecting"},
		{controller.KindError, "✗ Collecting"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			m := Model{state: controller.ViewState{
				Notification: &controller.Notification{Message: "Collecting", Kind: tt.kind},
			}}
			assert.Contains(t, m.renderToast(), tt.want)
		})
	}

	assert.Empty(t, Model{}.renderToast())
}

func TestEmptySections(t *testing.T) {
	s := testSnapshot()
	s.DiskInfo = nil
	s.NetworkInfo = nil
	s.TopProcesses = nil

	assert.Contains(t, renderDisks(s, 80), "No disks reported")
	assert.Contains(t, renderNetwork(s, 80), "No network interfaces reported")
	assert.Contains(t, renderProcesses(s, 80), "No processes reported")
}
