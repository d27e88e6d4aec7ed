package cli

import (
	"errors"
	"testing"

	triageerrors "github.com/rileyhilliard/triage/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsUnknownCommandError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unknown command error",
			err:  errors.New(`unknown command "foo" for "triage"`),
			want: true,
		},
		{
			name: "unknown flag error",
			err:  errors.New(`unknown flag: --foo`),
			want: true,
		},
		{
			name: "unknown shorthand",
			err:  errors.New(`unknown shorthand flag: 'z' in -z`),
			want: true,
		},
		{
			name: "other error",
			err:  errors.New("collection failed"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUnknownCommandError(tt.err))
		})
	}
}

func TestExtractUnknownCommand(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "standard cobra format",
			err:  errors.New(`unknown command "foo" for "triage"`),
			want: "foo",
		},
		{
			name: "command with hyphen",
			err:  errors.New(`unknown command "top-procs" for "triage"`),
			want: "top-procs",
		},
		{
			name: "no quotes returns empty",
			err:  errors.New("unknown command foo"),
			want: "",
		},
		{
			name: "single quote returns empty",
			err:  errors.New(`unknown command "foo`),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractUnknownCommand(tt.err))
		})
	}
}

func TestFormatError(t *testing.T) {
	t.Run("structured error passes through", func(t *testing.T) {
		err := triageerrors.New(triageerrors.ErrPersist, "Couldn't export system_report.json", "Check free disk space")
		assert.Equal(t, err.Error(), formatError(err))
	})

	t.Run("wrapped structured error", func(t *testing.T) {
		inner := triageerrors.New(triageerrors.ErrCollect, "Couldn't collect system metrics", "Press r to retry")
		out := formatError(errors.Join(inner))
		assert.Contains(t, out, "✗ Couldn't collect system metrics")
	})

	t.Run("unknown command gets a hint", func(t *testing.T) {
		out := formatError(errors.New(`unknown command "stats" for "triage"`))
		assert.Contains(t, out, "✗ unknown command")
		assert.Contains(t, out, "'stats' isn't a triage command")
	})

	t.Run("plain error is wrapped", func(t *testing.T) {
		out := formatError(errors.New("boom"))
		assert.Contains(t, out, "✗ Command failed")
		assert.Contains(t, out, "boom")
	})
}

func TestRootCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"dashboard", "snapshot", "export", "config", "version", "completion"} {
		assert.True(t, names[want], "missing command %q", want)
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
}
