package doctor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/triage/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noConfig isolates the config search from the real HOME and working dir.
func noConfig(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())
	return home
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfigFileCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit path missing", func(t *testing.T) {
		noConfig(t)
		check := &ConfigFileCheck{ConfigPath: filepath.Join(t.TempDir(), "nonexistent.yaml")}
		result := check.Run(ctx)

		assert.Equal(t, StatusFail, result.Status)
		assert.Contains(t, result.Message, "nonexistent.yaml")
	})

	t.Run("no config uses defaults", func(t *testing.T) {
		noConfig(t)
		result := (&ConfigFileCheck{}).Run(ctx)

		assert.Equal(t, StatusWarn, result.Status)
		assert.True(t, result.Fixable)
	})

	t.Run("config found", func(t *testing.T) {
		noConfig(t)
		path := writeFile(t, t.TempDir(), "triage.yaml", "version: 1\n")
		result := (&ConfigFileCheck{ConfigPath: path}).Run(ctx)

		assert.Equal(t, StatusPass, result.Status, result.Message)
		assert.Contains(t, result.Message, path)
	})

	t.Run("fix writes defaults to the global path", func(t *testing.T) {
		home := noConfig(t)
		check := &ConfigFileCheck{}

		require.NoError(t, check.Fix())

		assert.FileExists(t, filepath.Join(home, config.GlobalConfigDir, config.GlobalConfigFile))
		assert.Equal(t, StatusPass, check.Run(ctx).Status)
	})

	t.Run("fix honours FixPath", func(t *testing.T) {
		noConfig(t)
		target := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, (&ConfigFileCheck{FixPath: target}).Fix())
		assert.FileExists(t, target)
	})

	t.Run("name and category", func(t *testing.T) {
		check := &ConfigFileCheck{}
		assert.Equal(t, "config_file", check.Name())
		assert.Equal(t, CategoryConfig, check.Category())
	})
}

func TestConfigSchemaCheck(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		content string
		status  CheckStatus
		message string
	}{
		{
			name:    "valid schema",
			content: "version: 1\nstore:\n  format: yaml\n",
			status:  StatusPass,
			message: "Schema valid",
		},
		{
			name:    "invalid yaml",
			content: "version: [1\n",
			status:  StatusFail,
			message: "Failed to load config",
		},
		{
			name:    "invalid value",
			content: "version: 1\nstore:\n  format: xml\n",
			status:  StatusFail,
			message: "Schema error",
		},
		{
			name:    "future version",
			content: "version: 99\n",
			status:  StatusFail,
			message: "Schema error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			noConfig(t)
			path := writeFile(t, t.TempDir(), "triage.yaml", tc.content)

			result := (&ConfigSchemaCheck{ConfigPath: path}).Run(ctx)

			assert.Equal(t, tc.status, result.Status, result.Message)
			assert.Contains(t, result.Message, tc.message)
		})
	}

	t.Run("defaults are valid", func(t *testing.T) {
		noConfig(t)
		result := (&ConfigSchemaCheck{}).Run(ctx)

		assert.Equal(t, StatusPass, result.Status)
		assert.Contains(t, result.Message, "defaults")
	})
}

func TestNewConfigChecks(t *testing.T) {
	checks := NewConfigChecks("x.yaml")
	require.Len(t, checks, 2)
	for _, c := range checks {
		assert.Equal(t, CategoryConfig, c.Category())
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
