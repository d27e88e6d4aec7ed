package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStatus_String(t *testing.T) {
	tests := []struct {
		status   CheckStatus
		expected string
	}{
		{StatusPass, "pass"},
		{StatusWarn, "warn"},
		{StatusFail, "fail"},
		{CheckStatus(99), "unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestCheckStatus_MarshalText(t *testing.T) {
	b, err := StatusWarn.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "warn", string(b))
}

// mockCheck is a test implementation of Check.
type mockCheck struct {
	name     string
	category string
	result   CheckResult
	fixed    CheckResult // returned by Run once Fix succeeded
	fixErr   error
	fixCalls int
}

func (m *mockCheck) Name() string     { return m.name }
func (m *mockCheck) Category() string { return m.category }
func (m *mockCheck) Run(context.Context) CheckResult {
	if m.fixCalls > 0 && m.fixErr == nil {
		return m.fixed
	}
	return m.result
}
func (m *mockCheck) Fix() error {
	m.fixCalls++
	return m.fixErr
}

func TestRunAll(t *testing.T) {
	checks := []Check{
		&mockCheck{name: "check1", category: "TEST", result: CheckResult{Name: "check1", Status: StatusPass, Message: "OK"}},
		&mockCheck{name: "check2", category: "TEST", result: CheckResult{Name: "check2", Status: StatusFail, Message: "Failed"}},
	}

	results := RunAll(context.Background(), checks)

	require.Len(t, results, 2)
	assert.Equal(t, StatusPass, results[0].Status)
	assert.Equal(t, StatusFail, results[1].Status)
}

func TestRunAllParallel(t *testing.T) {
	checks := []Check{
		&mockCheck{name: "check1", category: "TEST", result: CheckResult{Name: "check1", Status: StatusPass}},
		&mockCheck{name: "check2", category: "TEST", result: CheckResult{Name: "check2", Status: StatusWarn}},
		&mockCheck{name: "check3", category: "TEST", result: CheckResult{Name: "check3", Status: StatusFail}},
	}

	results := RunAllParallel(context.Background(), checks)

	// Order follows the checks, not completion
	require.Len(t, results, 3)
	assert.Equal(t, StatusPass, results[0].Status)
	assert.Equal(t, StatusWarn, results[1].Status)
	assert.Equal(t, StatusFail, results[2].Status)
}

func TestFixAll(t *testing.T) {
	fixable := &mockCheck{
		name:   "fixable",
		result: CheckResult{Status: StatusWarn, Fixable: true},
		fixed:  CheckResult{Status: StatusPass, Message: "fixed"},
	}
	broken := &mockCheck{
		name:   "broken",
		result: CheckResult{Status: StatusFail, Fixable: true, Message: "still broken"},
		fixErr: errors.New("nope"),
	}
	manual := &mockCheck{name: "manual", result: CheckResult{Status: StatusFail}}
	passing := &mockCheck{name: "passing", result: CheckResult{Status: StatusPass, Fixable: true}}

	checks := []Check{fixable, broken, manual, passing}
	results := FixAll(context.Background(), checks, RunAll(context.Background(), checks))

	assert.Equal(t, "fixed", results[0].Message)
	assert.Equal(t, "still broken", results[1].Message)
	assert.Equal(t, 1, fixable.fixCalls)
	assert.Equal(t, 1, broken.fixCalls)
	assert.Zero(t, manual.fixCalls, "not fixable")
	assert.Zero(t, passing.fixCalls, "already passing")
}

func TestGroupResults(t *testing.T) {
	checks := []Check{
		&mockCheck{name: "c1", category: CategoryStorage},
		&mockCheck{name: "c2", category: "CUSTOM"},
		&mockCheck{name: "c3", category: CategoryConfig},
		&mockCheck{name: "c4", category: CategoryStorage},
	}
	results := []CheckResult{{Name: "c1"}, {Name: "c2"}, {Name: "c3"}, {Name: "c4"}}

	groups := GroupResults(checks, results)

	require.Len(t, groups, 3)
	assert.Equal(t, CategoryConfig, groups[0].Name)
	assert.Equal(t, CategoryStorage, groups[1].Name)
	assert.Equal(t, []CheckResult{{Name: "c1"}, {Name: "c4"}}, groups[1].Results)
	assert.Equal(t, "CUSTOM", groups[2].Name)
}

func TestCountByStatus(t *testing.T) {
	results := []CheckResult{
		{Status: StatusPass},
		{Status: StatusPass},
		{Status: StatusWarn},
		{Status: StatusFail},
	}

	counts := CountByStatus(results)

	assert.Equal(t, 2, counts[StatusPass])
	assert.Equal(t, 1, counts[StatusWarn])
	assert.Equal(t, 1, counts[StatusFail])
}

func TestHasFailuresAndIssues(t *testing.T) {
	tests := []struct {
		name     string
		results  []CheckResult
		failures bool
		issues   bool
	}{
		{
			name:    "all pass",
			results: []CheckResult{{Status: StatusPass}, {Status: StatusPass}},
		},
		{
			name:    "with warn only",
			results: []CheckResult{{Status: StatusPass}, {Status: StatusWarn}},
			issues:  true,
		},
		{
			name:     "with fail",
			results:  []CheckResult{{Status: StatusPass}, {Status: StatusFail}},
			failures: true,
			issues:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.failures, HasFailures(tc.results))
			assert.Equal(t, tc.issues, HasIssues(tc.results))
		})
	}
}

func TestFixableCount(t *testing.T) {
	results := []CheckResult{
		{Status: StatusPass, Fixable: true},  // Pass, not counted
		{Status: StatusFail, Fixable: true},  // Counted
		{Status: StatusFail, Fixable: false}, // Not counted
		{Status: StatusWarn, Fixable: true},  // Counted
	}

	assert.Equal(t, 2, FixableCount(results))
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name    string
		results []CheckResult
		want    string
	}{
		{name: "all good", results: []CheckResult{{Status: StatusPass}}, want: "Everything looks good"},
		{name: "one issue", results: []CheckResult{{Status: StatusFail}}, want: "1 issue found"},
		{name: "multiple issues", results: []CheckResult{{Status: StatusFail}, {Status: StatusWarn}}, want: "2 issues found"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Summary(tc.results))
		})
	}
}
