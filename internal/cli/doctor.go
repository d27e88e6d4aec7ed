package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	jsoniter "github.com/json-iterator/go"
	"github.com/rileyhilliard/triage/internal/collector"
	"github.com/rileyhilliard/triage/internal/config"
	"github.com/rileyhilliard/triage/internal/doctor"
	"github.com/rileyhilliard/triage/internal/store"
	"github.com/rileyhilliard/triage/internal/ui"
	"github.com/spf13/cobra"
	"k8s.io/utils/clock"
)

var (
	doctorJSON bool
	doctorFix  bool
)

// doctorCmd diagnoses collection and export problems
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that triage can collect and export",
	Long: `Run diagnostic checks: config, the commands the collector shells out to,
the data directory exports are written to, and one real collection.

Examples:
  triage doctor
  triage doctor --fix
  triage doctor --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand(cmd.Context(), cmd.OutOrStdout(), doctorOptions{JSON: doctorJSON, Fix: doctorFix}, nil)
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "attempt automatic fixes where possible")
	rootCmd.AddCommand(doctorCmd)
}

type doctorOptions struct {
	JSON bool
	Fix  bool
}

// DoctorOutput represents the JSON output for doctor command.
type DoctorOutput struct {
	Categories []doctor.Group `json:"categories"`
	Summary    SummaryOutput  `json:"summary"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	Fixable  int  `json:"fixable"`
	AllClear bool `json:"all_clear"`
}

// doctorCommand runs every check and reports to out. coll may be nil to use
// the local collector.
func doctorCommand(ctx context.Context, out io.Writer, opts doctorOptions, coll doctor.Collector) error {
	ctx, cancel := signalContext(ctx)
	defer cancel()

	checks := collectChecks(coll)
	results := doctor.RunAll(ctx, checks)

	if opts.Fix {
		results = doctor.FixAll(ctx, checks, results)
	}

	if opts.JSON {
		return outputDoctorJSON(out, checks, results)
	}
	outputDoctorText(out, checks, results, opts.Fix)
	return nil
}

// collectChecks gathers the checks. A broken config still gets the other
// checks, run against the defaults.
func collectChecks(coll doctor.Collector) []doctor.Check {
	cfg, _, err := config.LoadOrDefault(cfgFile)
	if err != nil || config.Validate(cfg) != nil {
		cfg = config.DefaultConfig()
	}
	a := &app{cfg: cfg, clock: clock.RealClock{}}
	if coll == nil {
		coll = a.newCollector()
	}

	dir := cfg.Store.Dir
	if dir == "" {
		dir, _ = store.DefaultDir()
	}

	var checks []doctor.Check
	checks = append(checks, doctor.NewConfigChecks(cfgFile)...)
	checks = append(checks, doctor.NewToolChecks(collector.CurrentPlatform())...)
	checks = append(checks, doctor.NewStorageChecks(dir, cfg.ExportFormat())...)
	checks = append(checks, &doctor.CollectCheck{
		Collector: coll,
		Timeout:   cfg.Dashboard.RefreshTimeout,
		Clock:     a.clock,
	})
	return checks
}

func outputDoctorJSON(out io.Writer, checks []doctor.Check, results []doctor.CheckResult) error {
	counts := doctor.CountByStatus(results)
	output := DoctorOutput{
		Categories: doctor.GroupResults(checks, results),
		Summary: SummaryOutput{
			Pass:     counts[doctor.StatusPass],
			Warn:     counts[doctor.StatusWarn],
			Fail:     counts[doctor.StatusFail],
			Fixable:  doctor.FixableCount(results),
			AllClear: !doctor.HasIssues(results),
		},
	}

	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputDoctorText(out io.Writer, checks []doctor.Check, results []doctor.CheckResult, fixed bool) {
	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ui.ColorError)
	warnStyle := lipgloss.NewStyle().Foreground(ui.ColorWarning)
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Fprintln(out)
	fmt.Fprintln(out, headerStyle.Render("triage diagnostic report"))
	fmt.Fprintln(out)

	for _, group := range doctor.GroupResults(checks, results) {
		fmt.Fprintln(out, headerStyle.Render(group.Name))
		for _, result := range group.Results {
			symbol, style := ui.SymbolComplete, successStyle
			switch result.Status {
			case doctor.StatusWarn:
				style = warnStyle
			case doctor.StatusFail:
				symbol, style = ui.SymbolFail, errorStyle
			}

			fmt.Fprintf(out, "  %s %s\n", style.Render(symbol), result.Message)
			if result.Suggestion != "" && result.Status != doctor.StatusPass {
				for _, line := range strings.Split(result.Suggestion, "\n") {
					fmt.Fprintf(out, "    %s\n", mutedStyle.Render(line))
				}
			}
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, strings.Repeat("━", 60))
	fmt.Fprintln(out)

	if !doctor.HasIssues(results) {
		fmt.Fprintf(out, "%s %s\n", successStyle.Render(ui.SymbolSuccess), doctor.Summary(results))
	} else {
		fmt.Fprintf(out, "%s %s\n", errorStyle.Render(ui.SymbolFail), doctor.Summary(results))
		if doctor.FixableCount(results) > 0 && !fixed {
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  Run with %s to attempt automatic fixes where possible.\n",
				mutedStyle.Render("--fix"))
		}
	}
	fmt.Fprintln(out)
}
