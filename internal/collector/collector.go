package collector

import (
	"context"
	"fmt"
	"strings"
	"sync"

	triageerrors "github.com/rileyhilliard/triage/internal/errors"
	"github.com/rileyhilliard/triage/internal/exec"
	"github.com/rileyhilliard/triage/internal/logger"
	"github.com/rileyhilliard/triage/internal/snapshot"
	"k8s.io/utils/clock"
)

// Func adapts a plain function to the collector contract.
type Func func(ctx context.Context) (*snapshot.Snapshot, error)

// Collect calls f.
func (f Func) Collect(ctx context.Context) (*snapshot.Snapshot, error) {
	return f(ctx)
}

// Runner executes a shell command and captures its output.
type Runner func(ctx context.Context, command string) (*exec.Result, error)

// ShellRunner runs commands through the local shell.
func ShellRunner(ctx context.Context, command string) (*exec.Result, error) {
	return exec.CaptureContext(ctx, command, "")
}

// Options configures a Local collector. Zero values pick sensible defaults.
type Options struct {
	// TopProcesses limits the process list. Defaults to 10.
	TopProcesses int
	// Platform overrides runtime detection.
	Platform Platform
	// Runner overrides how the batched command is executed.
	Runner Runner
	// Clock is used to derive uptime from boot time on macOS.
	Clock  clock.PassiveClock
	Logger logger.Logger
}

// Local collects snapshots of the machine it runs on.
type Local struct {
	platform Platform
	topN     int
	run      Runner
	clock    clock.PassiveClock
	log      logger.Logger

	mu      sync.Mutex // Protects prevCPU
	prevCPU cpuJiffies
	hasPrev bool
}

// NewLocal creates a collector for the local host.
func NewLocal(opts Options) *Local {
	c := &Local{
		platform: opts.Platform,
		topN:     opts.TopProcesses,
		run:      opts.Runner,
		clock:    opts.Clock,
		log:      opts.Logger,
	}
	if c.platform == "" {
		c.platform = CurrentPlatform()
	}
	if c.topN < 1 {
		c.topN = DefaultTopProcesses
	}
	if c.run == nil {
		c.run = ShellRunner
	}
	if c.clock == nil {
		c.clock = clock.RealClock{}
	}
	if c.log == nil {
		c.log = logger.Noop()
	}
	return c
}

// Platform returns the platform the collector builds commands for.
func (c *Local) Platform() Platform {
	return c.platform
}

// Collect runs the batched metrics command once and parses its output.
// A failing or silent command is a collection failure; individual sections
// that do not parse are left at zero values.
func (c *Local) Collect(ctx context.Context) (*snapshot.Snapshot, error) {
	if c.platform == PlatformUnknown {
		return nil, triageerrors.New(triageerrors.ErrCollect,
			"This platform isn't supported by the local collector",
			"triage collects metrics on Linux and macOS")
	}

	cmd := BuildCommand(c.platform, c.topN)
	c.log.Debug("collecting metrics for %s", c.platform)

	res, err := c.run(ctx, cmd)
	if err != nil {
		return nil, triageerrors.WrapWithCode(err, triageerrors.ErrCollect,
			"Couldn't run the metrics command",
			"Press r to retry")
	}

	output := string(res.Stdout)
	if strings.TrimSpace(output) == "" {
		cause := fmt.Errorf("exit code %d", res.ExitCode)
		if stderr := firstLine(string(res.Stderr)); stderr != "" {
			cause = fmt.Errorf("exit code %d: %s", res.ExitCode, stderr)
		}
		return nil, triageerrors.WrapWithCode(cause, triageerrors.ErrCollect,
			"The metrics command produced no output",
			"Make sure /bin/sh and the standard system tools are available")
	}

	sections := splitSections(output)
	if c.platform == PlatformDarwin {
		return c.parseDarwin(sections), nil
	}
	return c.parseLinux(sections), nil
}

func (c *Local) parseLinux(sections []string) *snapshot.Snapshot {
	s := &snapshot.Snapshot{
		Hostname:      firstLine(section(sections, 5)),
		KernelVersion: firstLine(section(sections, 6)),
		OSVersion:     parseOSRelease(section(sections, 7)),
		CPUName:       parseCPUModel(section(sections, 9)),
	}

	if cur, cores, err := parseProcStat(section(sections, 0)); err != nil {
		c.log.Debug("cpu: %v", err)
	} else {
		s.CPUCores = cores
		c.mu.Lock()
		var prev *cpuJiffies
		if c.hasPrev {
			p := c.prevCPU
			prev = &p
		}
		c.prevCPU, c.hasPrev = cur, true
		c.mu.Unlock()
		s.CPUUsage = cpuPercent(cur, prev)
	}

	if mem, err := parseLinuxMemory(section(sections, 1)); err != nil {
		c.log.Debug("memory: %v", err)
	} else {
		s.UsedMemory, s.TotalMemory = mem.used, mem.total
		s.UsedSwap, s.TotalSwap = mem.usedSwap, mem.totalSwap
	}

	s.NetworkInfo = c.network(parseLinuxNetwork(section(sections, 2)))
	s.DiskInfo = c.disks(parseDiskFree(section(sections, 3)))
	s.TopProcesses = c.processes(parseProcesses(section(sections, 4), c.topN))

	if secs, err := parseProcUptime(section(sections, 8)); err != nil {
		c.log.Debug("uptime: %v", err)
	} else {
		s.Uptime = FormatUptime(secs)
	}

	return s
}

func (c *Local) parseDarwin(sections []string) *snapshot.Snapshot {
	s := &snapshot.Snapshot{
		Hostname:      firstLine(section(sections, 6)),
		KernelVersion: firstLine(section(sections, 7)),
		OSVersion:     parseSwVers(section(sections, 8)),
	}
	s.CPUName, s.CPUCores = parseDarwinCPUInfo(section(sections, 10))

	if usage, err := parseDarwinCPU(section(sections, 0)); err != nil {
		c.log.Debug("cpu: %v", err)
	} else {
		s.CPUUsage = usage
	}

	if used, total, err := parseDarwinMemory(section(sections, 1)); err != nil {
		c.log.Debug("memory: %v", err)
	} else {
		s.UsedMemory, s.TotalMemory = used, total
	}
	s.UsedSwap, s.TotalSwap = parseDarwinSwap(section(sections, 2))

	s.NetworkInfo = c.network(parseDarwinNetwork(section(sections, 3)))
	s.DiskInfo = c.disks(parseDiskFree(section(sections, 4)))
	s.TopProcesses = c.processes(parseProcesses(section(sections, 5), c.topN))

	if secs, err := parseBootTime(section(sections, 9), c.clock.Now()); err != nil {
		c.log.Debug("uptime: %v", err)
	} else {
		s.Uptime = FormatUptime(secs)
	}

	return s
}

func (c *Local) network(n []snapshot.NetworkStat, err error) []snapshot.NetworkStat {
	if err != nil {
		c.log.Debug("network: %v", err)
		return []snapshot.NetworkStat{}
	}
	return n
}

func (c *Local) disks(d []snapshot.DiskStat, err error) []snapshot.DiskStat {
	if err != nil {
		c.log.Debug("disks: %v", err)
		return []snapshot.DiskStat{}
	}
	return d
}

func (c *Local) processes(p []snapshot.ProcessStat, err error) []snapshot.ProcessStat {
	if err != nil {
		c.log.Debug("processes: %v", err)
		return []snapshot.ProcessStat{}
	}
	return p
}
