package doctor

import (
	"context"
	"fmt"
	osexec "os/exec"
	"regexp"
	"strings"

	"github.com/rileyhilliard/triage/internal/collector"
	"github.com/rileyhilliard/triage/internal/exec"
	"github.com/spf13/afero"
)

// validToolName matches safe tool names: alphanumeric, hyphens, underscores, and periods.
var validToolName = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._+-]*$`)

// Tool is a command the collector shells out to.
type Tool struct {
	Name string
	// Optional tools have a fallback; missing ones only warn.
	Optional bool
}

// ToolsFor lists the commands the batched metrics command runs on platform.
func ToolsFor(platform collector.Platform) []Tool {
	switch platform {
	case collector.PlatformDarwin:
		return []Tool{
			{Name: "top"},
			{Name: "vm_stat"},
			{Name: "sysctl"},
			{Name: "netstat"},
			{Name: "df"},
			{Name: "ps"},
			{Name: "head"},
			{Name: "hostname"},
			{Name: "uname"},
			{Name: "sw_vers", Optional: true},
		}
	default:
		return []Tool{
			{Name: "cat"},
			{Name: "df", Optional: true},
			{Name: "ps", Optional: true},
			{Name: "head"},
			{Name: "hostname", Optional: true},
			{Name: "uname"},
			{Name: "grep", Optional: true},
		}
	}
}

// LookPathFunc resolves a command name to its path.
type LookPathFunc func(name string) (string, error)

// ToolCheck verifies a collector command is on PATH.
type ToolCheck struct {
	Tool     Tool
	LookPath LookPathFunc // Defaults to exec.LookPath
}

func (c *ToolCheck) Name() string     { return "tool_" + c.Tool.Name }
func (c *ToolCheck) Category() string { return CategoryTools }

func (c *ToolCheck) Run(_ context.Context) CheckResult {
	if !validToolName.MatchString(c.Tool.Name) {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: fmt.Sprintf("Invalid tool name %q", c.Tool.Name),
		}
	}

	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = osexec.LookPath
	}

	path, err := lookPath(c.Tool.Name)
	if err != nil {
		status := StatusFail
		msg := fmt.Sprintf("%s not found", c.Tool.Name)
		if c.Tool.Optional {
			status = StatusWarn
			msg += " (optional, some fields will be empty)"
		}
		return CheckResult{
			Name:       c.Name(),
			Status:     status,
			Message:    msg,
			Suggestion: fmt.Sprintf("Install %s or add it to PATH", c.Tool.Name),
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%s (%s)", c.Tool.Name, path),
	}
}

func (c *ToolCheck) Fix() error {
	return nil // System package installation is out of scope
}

// ShellCheck verifies the shell that runs the batched command exists.
type ShellCheck struct {
	Fs afero.Fs // Defaults to the OS filesystem
}

func (c *ShellCheck) Name() string     { return "tool_shell" }
func (c *ShellCheck) Category() string { return CategoryTools }

func (c *ShellCheck) Run(_ context.Context) CheckResult {
	fs := c.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	info, err := fs.Stat(exec.Shell)
	if err != nil || info.IsDir() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s not found", exec.Shell),
			Suggestion: "triage runs its collector commands through a POSIX shell",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Shell: %s", exec.Shell),
	}
}

func (c *ShellCheck) Fix() error {
	return nil
}

// procFiles are read on every Linux collection.
var procFiles = []string{"/proc/stat", "/proc/meminfo", "/proc/net/dev", "/proc/uptime"}

// ProcCheck verifies the /proc files the Linux collector reads.
type ProcCheck struct {
	Fs afero.Fs // Defaults to the OS filesystem
}

func (c *ProcCheck) Name() string     { return "proc_files" }
func (c *ProcCheck) Category() string { return CategoryTools }

func (c *ProcCheck) Run(_ context.Context) CheckResult {
	fs := c.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	var missing []string
	for _, p := range procFiles {
		f, err := fs.Open(p)
		if err != nil {
			missing = append(missing, p)
			continue
		}
		_ = f.Close()
	}

	if len(missing) > 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Can't read %s", strings.Join(missing, ", ")),
			Suggestion: "Mount procfs, or run triage outside a restricted sandbox",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%d /proc files readable", len(procFiles)),
	}
}

func (c *ProcCheck) Fix() error {
	return nil
}

// NewToolChecks creates the checks for the given platform.
func NewToolChecks(platform collector.Platform) []Check {
	checks := []Check{&ShellCheck{}}
	if platform != collector.PlatformDarwin {
		checks = append(checks, &ProcCheck{})
	}
	for _, tool := range ToolsFor(platform) {
		checks = append(checks, &ToolCheck{Tool: tool})
	}
	return checks
}
