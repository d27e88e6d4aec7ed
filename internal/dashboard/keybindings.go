package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/triage/internal/controller"
)

// Key bindings as constants for consistency.
const (
	KeyQuit       = "q"
	KeyQuitAlt    = "ctrl+c"
	KeyRefresh    = "r"
	KeyExport     = "e"
	KeyNextPanel  = "tab"
	KeyNextRight  = "right"
	KeyNextL      = "l"
	KeyPrevPanel  = "shift+tab"
	KeyPrevLeft   = "left"
	KeyPrevH      = "h"
	KeyToggleHelp = "?"
	KeyClose      = "esc"
)

// panelKeys maps the number keys to panels in tab order.
var panelKeys = map[string]controller.Panel{
	"1": controller.PanelSystem,
	"2": controller.PanelCPU,
	"3": controller.PanelMemory,
	"4": controller.PanelDisks,
	"5": controller.PanelNetwork,
	"6": controller.PanelProcesses,
}

// HandleKeyMsg processes keyboard input. Returns true if the key was handled;
// unhandled keys fall through to the viewport for scrolling.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}
	if m.showHelp && key == KeyClose {
		m.showHelp = false
		return true, nil
	}

	if p, ok := panelKeys[key]; ok {
		m.ctrl.SelectPanel(p)
		m.applyState(m.ctrl.State())
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
		return true, tea.Quit

	case KeyRefresh:
		if m.state.Refreshing {
			return true, nil
		}
		return true, m.refreshCmd()

	case KeyExport:
		if !m.state.CanExport() {
			return true, nil
		}
		return true, m.exportCmd()

	case KeyNextPanel, KeyNextRight, KeyNextL:
		m.ctrl.NextPanel()
		m.applyState(m.ctrl.State())
		return true, nil

	case KeyPrevPanel, KeyPrevLeft, KeyPrevH:
		m.ctrl.PrevPanel()
		m.applyState(m.ctrl.State())
		return true, nil
	}

	return false, nil
}
