package cli

import (
	"context"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/triage/internal/dashboard"
	"github.com/rileyhilliard/triage/internal/errors"
	"github.com/rileyhilliard/triage/internal/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// debugLogFile receives log output while the dashboard owns the terminal.
const debugLogFile = "triage-debug.log"

// dashboardCmd is an explicit alias for running triage with no subcommand.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"ui"},
	Short:   "Open the interactive dashboard",
	Long: `Open the interactive dashboard. This is what 'triage' runs by default.

Keys: r refresh, e export, 1-6 or tab to switch panels, ? help, q quit.
When stdout isn't a terminal the current snapshot is printed instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

// dashboardCommand runs the TUI, or falls back to a printed report when
// stdout isn't a terminal.
func dashboardCommand(ctx context.Context) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return snapshotCommand(ctx, os.Stdout, nil, "")
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	// Anything logged while the alternate screen is up would corrupt it.
	restore, err := redirectLog()
	if err != nil {
		return err
	}
	defer restore()

	ctrl, err := a.newController(nil)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	ctx, cancel := signalContext(ctx)
	defer cancel()

	model := dashboard.NewModel(ctx, ctrl, logger.NewEnvLogger("[dashboard]"))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return errors.WrapWithCode(err, errors.ErrExec,
			"Dashboard stopped unexpectedly",
			"Run 'triage snapshot' for a non-interactive view")
	}
	return nil
}

// redirectLog points the standard logger at debugLogFile when TRIAGE_DEBUG is
// set, and discards it otherwise. The returned func restores stderr.
func redirectLog() (func(), error) {
	restore := func() { log.SetOutput(os.Stderr) }

	if !logger.DebugEnabled() {
		log.SetOutput(io.Discard)
		return restore, nil
	}

	f, err := tea.LogToFile(debugLogFile, "triage")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't open "+debugLogFile,
			"Unset "+logger.DebugEnvVar+" or check write permissions in this directory")
	}
	return func() {
		f.Close()
		restore()
	}, nil
}
