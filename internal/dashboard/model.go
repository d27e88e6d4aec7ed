package dashboard

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/triage/internal/controller"
	"github.com/rileyhilliard/triage/internal/logger"
)

// Controller is the subset of *controller.Controller the dashboard drives.
type Controller interface {
	Start(ctx context.Context) error
	Refresh(ctx context.Context) error
	Export(ctx context.Context) (string, error)
	SelectPanel(p controller.Panel)
	NextPanel()
	PrevPanel()
	State() controller.ViewState
	Subscribe() (<-chan controller.ViewState, func())
}

// Rows taken by everything around the panel body: header, tabs with their
// margin, toast line and footer.
const chromeHeight = 6

// defaultWidth is used until the first WindowSizeMsg arrives.
const defaultWidth = 80

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	ctx         context.Context
	ctrl        Controller
	log         logger.Logger
	states      <-chan controller.ViewState
	unsubscribe func()

	state     controller.ViewState
	lastPanel controller.Panel

	spinner       spinner.Model
	viewport      viewport.Model
	viewportReady bool

	width    int
	height   int
	showHelp bool
	quitting bool
}

// stateMsg carries a ViewState published by the controller.
type stateMsg controller.ViewState

// actionDoneMsg reports the outcome of a controller call run as a command.
// Outcomes that matter to the user already arrive as state; this only feeds
// the debug log.
type actionDoneMsg struct {
	action string
	err    error
}

// NewModel subscribes to ctrl and returns a model mirroring its state.
// ctx bounds every controller call the dashboard makes.
func NewModel(ctx context.Context, ctrl Controller, log logger.Logger) Model {
	if log == nil {
		log = logger.Noop()
	}
	states, unsubscribe := ctrl.Subscribe()

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(ColorGraph)

	st := ctrl.State()
	return Model{
		ctx:         ctx,
		ctrl:        ctrl,
		log:         log,
		states:      states,
		unsubscribe: unsubscribe,
		state:       st,
		lastPanel:   st.ActivePanel,
		spinner:     s,
	}
}

// Init fetches the first snapshot and starts listening for state changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		waitForState(m.states),
		m.startCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}
		if m.viewportReady {
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		viewportHeight := m.height - chromeHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}
		if !m.viewportReady {
			m.viewport = viewport.New(m.width, viewportHeight)
			m.viewportReady = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.state.Snapshot == nil || m.state.Refreshing {
			m.updateViewportContent()
		}
		return m, cmd

	case stateMsg:
		m.applyState(controller.ViewState(msg))
		return m, waitForState(m.states)

	case actionDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, controller.ErrRefreshInFlight) && !errors.Is(msg.err, controller.ErrClosed) {
			m.log.Debug("%s: %v", msg.action, msg.err)
		}
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderDashboard()
}

// State returns the view state the model last received.
func (m Model) State() controller.ViewState {
	return m.state
}

// applyState mirrors st and re-renders the panel body. Switching panels
// scrolls back to the top.
func (m *Model) applyState(st controller.ViewState) {
	m.state = st
	if st.ActivePanel != m.lastPanel {
		m.lastPanel = st.ActivePanel
		if m.viewportReady {
			m.viewport.GotoTop()
		}
	}
	m.updateViewportContent()
}

func (m *Model) updateViewportContent() {
	if !m.viewportReady {
		return
	}
	m.viewport.SetContent(m.renderBody())
}

// contentWidth is the usable width for panel content.
func (m Model) contentWidth() int {
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}
	w -= 4
	if w < 20 {
		w = 20
	}
	return w
}

// waitForState blocks until the controller publishes a state. A closed
// channel ends the loop.
func waitForState(ch <-chan controller.ViewState) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-ch
		if !ok {
			return nil
		}
		return stateMsg(st)
	}
}

func (m Model) startCmd() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return actionDoneMsg{action: "start", err: ctrl.Start(ctx)}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return actionDoneMsg{action: "refresh", err: ctrl.Refresh(ctx)}
	}
}

func (m Model) exportCmd() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		_, err := ctrl.Export(ctx)
		return actionDoneMsg{action: "export", err: err}
	}
}
