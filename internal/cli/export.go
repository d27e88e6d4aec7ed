package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rileyhilliard/triage/internal/controller"
	"github.com/rileyhilliard/triage/internal/errors"
	"github.com/rileyhilliard/triage/internal/snapshot"
	"github.com/spf13/cobra"
)

var exportFormatFlag string

// exportCmd collects once and writes the export file without opening the dashboard
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Collect once and write the export file",
	Long: `Collect system metrics once and write them to the export file in the
application data directory, exactly as pressing e in the dashboard does.
An existing export is overwritten.

Examples:
  triage export
  triage export --format yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportCommand(cmd.Context(), cmd.OutOrStdout(), nil, exportFormatFlag)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormatFlag, "format", "",
		"export format: "+strings.Join(snapshot.SupportedFormats(), ", ")+" (default from config)")
	rootCmd.AddCommand(exportCmd)
}

// exportCommand runs one refresh and one export through a controller and
// prints where the file landed.
func exportCommand(ctx context.Context, out io.Writer, coll controller.Collector, format string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	if format != "" {
		if _, err := snapshot.ParseFormat(format); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Unknown format %q", format),
				"Use one of: "+strings.Join(snapshot.SupportedFormats(), ", "))
		}
		a.cfg.Store.Format = format
	}

	ctrl, err := a.newController(coll)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	ctx, cancel := signalContext(ctx)
	defer cancel()

	if err := ctrl.Start(ctx); err != nil {
		return err
	}
	path, err := ctrl.Export(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "%s Exported to %s\n", successMark(), path)
	return err
}
