package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/triage/internal/config"
	"github.com/rileyhilliard/triage/internal/errors"
	"github.com/rileyhilliard/triage/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	configInitForce  bool
	configInitGlobal bool
)

// configCmd groups config file subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the triage config file",
	Long: `Create, inspect and edit the triage config file.

Config is read from --config, then ./.triage.yaml, then
~/.config/triage/config.yaml. Every key can also be set with a TRIAGE_
environment variable, e.g. TRIAGE_STORE_FORMAT=yaml.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the defaults",
	Long: `Write a config file populated with the default settings.

Examples:
  triage config init
  triage config init --global
  triage config init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(".", config.ConfigFileName)
		if configInitGlobal {
			path = config.GlobalPath()
		}
		if cfgFile != "" {
			path = cfgFile
		}
		return configInitCommand(cmd.OutOrStdout(), path, configInitForce, promptOverwrite)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one config setting",
	Long: `Change one setting in the active config file, keeping its comments.
The file is created if there is none yet.

Keys: ` + strings.Join(config.Keys(), ", ") + `

Examples:
  triage config set store.format yaml
  triage config set dashboard.toast_duration 5s`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return configSetCommand(cmd.OutOrStdout(), args[0], args[1])
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShowCommand(cmd.OutOrStdout())
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config without asking")
	configInitCmd.Flags().BoolVar(&configInitGlobal, "global", false, "write ~/.config/triage/config.yaml instead of ./.triage.yaml")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

// confirmFunc asks a yes/no question.
type confirmFunc func(question string) (bool, error)

// promptOverwrite asks with a huh form, refusing when stdin isn't a terminal.
func promptOverwrite(question string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, errors.New(errors.ErrConfig,
			"Config file already exists",
			"Use --force to overwrite")
	}

	var overwrite bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Value(&overwrite),
		),
	)
	if err := form.Run(); err != nil {
		return false, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Try running with --force to overwrite")
	}
	return overwrite, nil
}

// configInitCommand writes the default config to path. An existing file is
// only replaced when force is set or confirm agrees.
func configInitCommand(out io.Writer, path string, force bool, confirm confirmFunc) error {
	if path == "" {
		return errors.New(errors.ErrConfig,
			"Couldn't work out where to write the config",
			"Pass a path with --config")
	}

	if _, err := os.Stat(path); err == nil && !force {
		overwrite, err := confirm(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path))
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	if err := config.WriteDefault(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s Wrote %s\n", successMark(), path)
	return nil
}

// configSetCommand updates key in the active config file, or ./.triage.yaml
// when there is none.
func configSetCommand(out io.Writer, key, value string) error {
	path, err := config.Find(cfgFile)
	if err != nil {
		return err
	}
	if path == "" {
		path = filepath.Join(".", config.ConfigFileName)
	}

	if err := config.Set(path, key, value); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s Set %s = %s in %s\n", successMark(), key, value, path)
	return nil
}

// configShowCommand prints the merged config (file, defaults and environment).
func configShowCommand(out io.Writer) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	data, err := config.Marshal(a.cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Couldn't render the config", "")
	}

	source := "defaults (no config file found)"
	if a.cfgPath != "" {
		source = a.cfgPath
	}
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}

func successMark() string {
	return lipgloss.NewStyle().Foreground(ui.ColorSuccess).Render(ui.SymbolSuccess)
}
