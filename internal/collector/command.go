package collector

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform represents the operating system type of the local host.
type Platform string

const (
	// PlatformLinux indicates a Linux host.
	PlatformLinux Platform = "linux"
	// PlatformDarwin indicates a macOS host.
	PlatformDarwin Platform = "darwin"
	// PlatformUnknown indicates an unsupported platform.
	PlatformUnknown Platform = "unknown"
)

// OutputSeparator splits batched command output into sections.
const OutputSeparator = "---"

// DefaultTopProcesses is how many processes a snapshot keeps.
const DefaultTopProcesses = 10

// CurrentPlatform maps runtime.GOOS to a Platform.
func CurrentPlatform() Platform {
	return ParsePlatform(runtime.GOOS)
}

// ParsePlatform converts a GOOS value or uname -s output to a Platform.
func ParsePlatform(name string) Platform {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linux":
		return PlatformLinux
	case "darwin":
		return PlatformDarwin
	default:
		return PlatformUnknown
	}
}

// BuildCommand returns the batched metrics command for the platform.
// topN limits the process list; values below 1 use DefaultTopProcesses.
func BuildCommand(platform Platform, topN int) string {
	if topN < 1 {
		topN = DefaultTopProcesses
	}
	switch platform {
	case PlatformDarwin:
		return buildDarwinCommand(topN)
	default:
		// Linux command is the fallback, it fails gracefully elsewhere
		return buildLinuxCommand(topN)
	}
}

// Linux sections:
// 0=/proc/stat 1=/proc/meminfo 2=/proc/net/dev 3=df 4=ps 5=hostname
// 6=uname -r 7=/etc/os-release 8=/proc/uptime 9=cpu model name
func buildLinuxCommand(topN int) string {
	return joinSections(
		"cat /proc/stat",
		"cat /proc/meminfo",
		"cat /proc/net/dev",
		"df -kP 2>/dev/null || true",
		linuxProcessCommand(topN),
		"hostname 2>/dev/null || cat /proc/sys/kernel/hostname",
		"uname -r",
		"cat /etc/os-release 2>/dev/null || true",
		"cat /proc/uptime",
		"grep -m1 'model name' /proc/cpuinfo 2>/dev/null || true",
	)
}

// linuxProcessCommand lists the busiest processes. A pipeline's status is
// head's, so support for --sort (missing from busybox ps) is checked up
// front. The fallback prints every process and parseProcesses picks the
// top ones.
func linuxProcessCommand(topN int) string {
	return fmt.Sprintf("if ps aux --sort=-%%cpu >/dev/null 2>&1; then ps aux --sort=-%%cpu | head -%d; else ps aux 2>/dev/null; fi", topN+1)
}

// macOS sections:
// 0=top 1=vm_stat+hw.memsize 2=vm.swapusage 3=netstat 4=df 5=ps 6=hostname
// 7=uname -r 8=sw_vers 9=kern.boottime 10=cpu brand + ncpu
func buildDarwinCommand(topN int) string {
	return joinSections(
		"top -l 1 -n 0 2>/dev/null",
		"vm_stat; sysctl hw.memsize 2>/dev/null",
		"sysctl vm.swapusage 2>/dev/null || true",
		"netstat -ib",
		"df -kP 2>/dev/null || true",
		fmt.Sprintf("ps aux -r 2>/dev/null | head -%d", topN+1),
		"hostname",
		"uname -r",
		"sw_vers 2>/dev/null || true",
		"sysctl -n kern.boottime 2>/dev/null || true",
		"sysctl -n machdep.cpu.brand_string 2>/dev/null || true; sysctl -n hw.ncpu 2>/dev/null || true",
	)
}

// joinSections runs each part in turn with a separator line in between.
// The leading echo guarantees the separator starts on its own line.
func joinSections(parts ...string) string {
	sep := fmt.Sprintf(`; echo; echo "%s"; `, OutputSeparator)
	return strings.Join(parts, sep)
}

// splitSections splits batched output into trimmed sections.
func splitSections(output string) []string {
	raw := strings.Split(output, "\n"+OutputSeparator+"\n")
	sections := make([]string, len(raw))
	for i, s := range raw {
		sections[i] = strings.TrimSpace(s)
	}
	return sections
}

// section returns the i-th section or "" when the output was short.
func section(sections []string, i int) string {
	if i < len(sections) {
		return sections[i]
	}
	return ""
}
