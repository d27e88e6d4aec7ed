package collector

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/rileyhilliard/triage/internal/snapshot"
)

// cpuJiffies stores aggregate CPU jiffies for delta calculation.
type cpuJiffies struct {
	total int64
	idle  int64
}

// parseProcStat reads the aggregate cpu line and counts per-core lines.
func parseProcStat(procStat string) (cpuJiffies, int, error) {
	var j cpuJiffies
	cores := 0
	found := false

	scanner := bufio.NewScanner(strings.NewReader(procStat))
	for scanner.Scan() {
		line := scanner.Text()

		// Individual cores: cpu0, cpu1, ...
		if strings.HasPrefix(line, "cpu") && len(line) > 3 && line[3] >= '0' && line[3] <= '9' {
			cores++
			continue
		}

		if !strings.HasPrefix(line, "cpu ") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 5 {
			return j, 0, fmt.Errorf("invalid /proc/stat cpu line: %s", line)
		}

		// Fields: cpu user nice system idle iowait irq softirq steal guest guest_nice
		for i := 1; i < len(fields); i++ {
			val, err := strconv.ParseInt(fields[i], 10, 64)
			if err != nil {
				return j, 0, fmt.Errorf("failed to parse cpu field %d: %w", i, err)
			}
			j.total += val
			// idle is index 4, iowait is index 5
			if i == 4 || i == 5 {
				j.idle += val
			}
		}
		found = true
	}

	if err := scanner.Err(); err != nil {
		return j, 0, fmt.Errorf("error scanning /proc/stat: %w", err)
	}
	if !found {
		return j, 0, fmt.Errorf("no aggregate cpu line in /proc/stat")
	}

	return j, cores, nil
}

// cpuPercent returns busy time as a percentage. With a previous sample the
// delta is used, otherwise the average since boot.
func cpuPercent(cur cpuJiffies, prev *cpuJiffies) float64 {
	total, idle := cur.total, cur.idle
	if prev != nil && cur.total > prev.total {
		total = cur.total - prev.total
		idle = cur.idle - prev.idle
	}
	if total <= 0 {
		return 0
	}
	return clampPercent(float64(total-idle) / float64(total) * 100)
}

// memInfo holds the /proc/meminfo fields a snapshot needs.
type memInfo struct {
	used, total         uint64
	usedSwap, totalSwap uint64
}

// parseLinuxMemory parses memory and swap from /proc/meminfo output.
func parseLinuxMemory(procMeminfo string) (memInfo, error) {
	var m memInfo
	var memTotal, memFree, memAvailable, buffers, cached, swapTotal, swapFree uint64
	hasAvailable := false
	found := 0

	scanner := bufio.NewScanner(strings.NewReader(procMeminfo))
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}

		key := strings.TrimSuffix(parts[0], ":")
		val, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			continue
		}
		// Values in /proc/meminfo are in kB
		val *= 1024

		switch key {
		case "MemTotal":
			memTotal = val
			found++
		case "MemFree":
			memFree = val
			found++
		case "MemAvailable":
			memAvailable = val
			hasAvailable = true
		case "Buffers":
			buffers = val
		case "Cached":
			cached = val
		case "SwapTotal":
			swapTotal = val
		case "SwapFree":
			swapFree = val
		}
	}

	if err := scanner.Err(); err != nil {
		return m, fmt.Errorf("error scanning /proc/meminfo: %w", err)
	}
	if found < 2 {
		return m, fmt.Errorf("insufficient memory info found in /proc/meminfo")
	}

	m.total = memTotal
	if hasAvailable {
		m.used = saturatingSub(memTotal, memAvailable)
	} else {
		m.used = saturatingSub(memTotal, memFree+buffers+cached)
	}
	m.totalSwap = swapTotal
	m.usedSwap = saturatingSub(swapTotal, swapFree)

	return m, nil
}

// parseLinuxNetwork parses per-interface byte counters from /proc/net/dev.
func parseLinuxNetwork(procNetDev string) ([]snapshot.NetworkStat, error) {
	interfaces := []snapshot.NetworkStat{}
	scanner := bufio.NewScanner(strings.NewReader(procNetDev))

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		// Two header lines
		if lineNum <= 2 {
			continue
		}

		// "  iface: bytes packets errs drop fifo frame compressed multicast | bytes packets..."
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		name := strings.TrimSpace(parts[0])
		fields := strings.Fields(parts[1])
		if len(fields) < 16 {
			continue
		}

		received, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse received bytes for %s: %w", name, err)
		}
		transmitted, err := strconv.ParseUint(fields[8], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse transmitted bytes for %s: %w", name, err)
		}

		interfaces = append(interfaces, snapshot.NetworkStat{
			Interface:   name,
			Received:    received,
			Transmitted: transmitted,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning /proc/net/dev: %w", err)
	}

	return interfaces, nil
}

// parseOSRelease returns PRETTY_NAME from /etc/os-release, falling back to
// NAME and VERSION.
func parseOSRelease(osRelease string) string {
	values := make(map[string]string)
	for _, line := range strings.Split(osRelease, "\n") {
		key, val, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		values[key] = strings.Trim(val, `"'`)
	}

	if pretty := values["PRETTY_NAME"]; pretty != "" {
		return pretty
	}
	return strings.TrimSpace(values["NAME"] + " " + values["VERSION"])
}

// parseProcUptime returns whole seconds since boot from /proc/uptime.
func parseProcUptime(procUptime string) (uint64, error) {
	fields := strings.Fields(procUptime)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty /proc/uptime")
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse /proc/uptime: %w", err)
	}
	if secs < 0 {
		return 0, nil
	}
	return uint64(secs), nil
}

// parseCPUModel extracts the value of a "model name : ..." cpuinfo line.
func parseCPUModel(cpuinfo string) string {
	_, val, ok := strings.Cut(cpuinfo, ":")
	if !ok {
		return ""
	}
	return strings.TrimSpace(firstLine(val))
}
