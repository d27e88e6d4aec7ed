package cli

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/rileyhilliard/triage/internal/errors"
	"github.com/spf13/cobra"
)

// Global flags
var cfgFile string

// rootCmd opens the dashboard when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "triage",
	Short: "Local system telemetry at a glance",
	Long: `triage shows a snapshot of this machine's health: system info, CPU, memory,
disks, network and the busiest processes. Press r to refresh and e to export the
current snapshot to the application data directory.

Examples:
  triage
  triage snapshot --format json
  triage export`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./.triage.yaml, then ~/.config/triage/config.yaml)")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError renders structured errors as-is and wraps everything else so
// the output always follows the "✗ what / why / fix" layout.
func formatError(err error) string {
	var triageErr *errors.Error
	if stderrors.As(err, &triageErr) {
		return triageErr.Error()
	}
	if isUnknownCommandError(err) {
		suggestion := "Run 'triage --help' to see available commands"
		if name := extractUnknownCommand(err); name != "" {
			suggestion = fmt.Sprintf("'%s' isn't a triage command. Run 'triage --help' to see available commands", name)
		}
		return errors.New(errors.ErrConfig, err.Error(), suggestion).Error()
	}
	return errors.Wrap(err, "Command failed").Error()
}

// isUnknownCommandError reports whether cobra rejected the command line.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the quoted command name out of cobra's
// `unknown command "foo" for "triage"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
