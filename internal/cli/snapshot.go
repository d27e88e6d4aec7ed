package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rileyhilliard/triage/internal/controller"
	"github.com/rileyhilliard/triage/internal/errors"
	"github.com/rileyhilliard/triage/internal/snapshot"
	"github.com/rileyhilliard/triage/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var snapshotFormatFlag string

// snapshotCmd collects once and prints the result
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Collect once and print the snapshot",
	Long: `Collect system metrics once and print them.

Without --format a readable report is printed. With --format json or yaml the
canonical export document is written to stdout instead, so it can be piped.

Examples:
  triage snapshot
  triage snapshot --format json | jq .cpu_usage`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return snapshotCommand(cmd.Context(), cmd.OutOrStdout(), nil, snapshotFormatFlag)
	},
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotFormatFlag, "format", "",
		"output format: "+strings.Join(snapshot.SupportedFormats(), ", ")+" (default: readable report)")
	rootCmd.AddCommand(snapshotCmd)
}

// snapshotCommand collects one snapshot with coll (nil means the local
// collector) and writes it to out as a report, or encoded when format is set.
func snapshotCommand(ctx context.Context, out io.Writer, coll controller.Collector, format string) error {
	var f snapshot.Format
	if format != "" {
		var err error
		if f, err = snapshot.ParseFormat(format); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Unknown format %q", format),
				"Use one of: "+strings.Join(snapshot.SupportedFormats(), ", "))
		}
	}

	a, err := loadApp()
	if err != nil {
		return err
	}
	if coll == nil {
		coll = a.newCollector()
	}

	ctx, cancel := signalContext(ctx)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, a.cfg.Dashboard.RefreshTimeout)
	defer cancelTimeout()

	var spin *ui.Spinner
	if format == "" && term.IsTerminal(int(os.Stderr.Fd())) {
		spin = ui.NewSpinner("Collecting system metrics", os.Stderr)
		spin.Start()
	}

	snap, err := coll.Collect(ctx)
	if err == nil && snap == nil {
		err = errors.New(errors.ErrCollect, "Collector returned no snapshot", "")
	}
	if err != nil {
		if spin != nil {
			spin.Fail()
		}
		if errors.IsCode(err, errors.ErrCollect) {
			return err
		}
		return errors.WrapWithCode(err, errors.ErrCollect,
			"Couldn't collect system metrics",
			"Set TRIAGE_DEBUG=1 and try again for details")
	}
	if spin != nil {
		spin.Success()
	}

	if format == "" {
		label := a.clock.Now().Format(controller.LabelLayout)
		_, err = io.WriteString(out, ui.RenderReport(snap, label))
		return err
	}

	data, err := snapshot.Marshal(snap, f)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrExec, "Couldn't encode the snapshot", "")
	}
	_, err = out.Write(data)
	return err
}
