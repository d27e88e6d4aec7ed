package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete triage configuration file.
type Config struct {
	Version   int             `yaml:"version" mapstructure:"version"`
	Dashboard DashboardConfig `yaml:"dashboard" mapstructure:"dashboard"`
	Collector CollectorConfig `yaml:"collector" mapstructure:"collector"`
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
}

// DashboardConfig controls the interactive dashboard.
type DashboardConfig struct {
	// ToastDuration is how long export and error notifications stay visible.
	ToastDuration time.Duration `yaml:"toast_duration" mapstructure:"toast_duration"`

	// RefreshTimeout bounds a single metrics collection.
	RefreshTimeout time.Duration `yaml:"refresh_timeout" mapstructure:"refresh_timeout"`

	// DefaultPanel is the tab shown on startup: system, cpu, memory, disks, network or processes.
	DefaultPanel string `yaml:"default_panel" mapstructure:"default_panel"`
}

// CollectorConfig controls metric collection.
type CollectorConfig struct {
	// TopProcesses is how many processes, sorted by CPU, a snapshot keeps.
	TopProcesses int `yaml:"top_processes" mapstructure:"top_processes"`
}

// StoreConfig controls where and how exports are written.
type StoreConfig struct {
	// Dir overrides the application data directory. Supports ~ and ${HOME}.
	Dir string `yaml:"dir" mapstructure:"dir"`

	// Format of the export file: json or yaml.
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Dashboard: DashboardConfig{
			ToastDuration:  3 * time.Second,
			RefreshTimeout: 30 * time.Second,
			DefaultPanel:   "system",
		},
		Collector: CollectorConfig{
			TopProcesses: 10,
		},
		Store: StoreConfig{
			Dir:    "",
			Format: "json",
		},
	}
}

// defaults flattens DefaultConfig into viper keys. The key set is also the
// list of keys `triage config set` accepts.
func defaults() map[string]interface{} {
	d := DefaultConfig()
	return map[string]interface{}{
		"version":                   d.Version,
		"dashboard.toast_duration":  d.Dashboard.ToastDuration.String(),
		"dashboard.refresh_timeout": d.Dashboard.RefreshTimeout.String(),
		"dashboard.default_panel":   d.Dashboard.DefaultPanel,
		"collector.top_processes":   d.Collector.TopProcesses,
		"store.dir":                 d.Store.Dir,
		"store.format":              d.Store.Format,
	}
}
