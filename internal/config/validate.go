package config

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/triage/internal/controller"
	"github.com/rileyhilliard/triage/internal/errors"
	"github.com/rileyhilliard/triage/internal/snapshot"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but triage only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade triage, or lower the version in your config")
	}

	if err := validateDashboard(cfg.Dashboard); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'dashboard' section in your config.")
	}

	if cfg.Collector.TopProcesses < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("collector.top_processes must be at least 1, got %d", cfg.Collector.TopProcesses),
			"Check the 'collector' section in your config.")
	}

	if _, err := snapshot.ParseFormat(cfg.Store.Format); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("store.format %q isn't supported", cfg.Store.Format),
			"Use one of: "+strings.Join(snapshot.SupportedFormats(), ", "))
	}

	return nil
}

func validateDashboard(d DashboardConfig) error {
	if d.ToastDuration <= 0 {
		return fmt.Errorf("dashboard.toast_duration must be positive, got %s", d.ToastDuration)
	}
	if d.RefreshTimeout <= 0 {
		return fmt.Errorf("dashboard.refresh_timeout must be positive, got %s", d.RefreshTimeout)
	}
	if _, err := controller.ParsePanel(d.DefaultPanel); err != nil {
		return fmt.Errorf("dashboard.default_panel: %w", err)
	}
	return nil
}

// Panel returns the configured default panel, or System if it doesn't parse.
func (c *Config) Panel() controller.Panel {
	p, err := controller.ParsePanel(c.Dashboard.DefaultPanel)
	if err != nil {
		return controller.PanelSystem
	}
	return p
}

// ExportFormat returns the configured export format, or JSON if it doesn't parse.
func (c *Config) ExportFormat() snapshot.Format {
	f, err := snapshot.ParseFormat(c.Store.Format)
	if err != nil {
		return snapshot.FormatJSON
	}
	return f
}
