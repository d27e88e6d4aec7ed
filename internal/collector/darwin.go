package collector

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rileyhilliard/triage/internal/snapshot"
)

// parseDarwinCPU returns 100 minus idle from top's CPU usage line:
// "CPU usage: 5.26% user, 10.52% sys, 84.21% idle"
func parseDarwinCPU(topOutput string) (float64, error) {
	scanner := bufio.NewScanner(strings.NewReader(topOutput))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "CPU usage:") {
			continue
		}
		for _, part := range strings.Split(line, ",") {
			part = strings.TrimSpace(part)
			if !strings.Contains(part, "idle") {
				continue
			}
			fields := strings.Fields(part)
			if len(fields) == 0 {
				continue
			}
			idle, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], "%"), 64)
			if err != nil {
				return 0, fmt.Errorf("failed to parse idle percentage: %w", err)
			}
			return clampPercent(100 - idle), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("error scanning top output: %w", err)
	}
	return 0, fmt.Errorf("no CPU usage line in top output")
}

// parseDarwinMemory parses vm_stat output followed by "hw.memsize: N".
// Without hw.memsize the total is approximated from the page counts.
func parseDarwinMemory(output string) (used, total uint64, err error) {
	// 16KB pages on Apple Silicon, 4KB on Intel; vm_stat states the real size
	pageSize := uint64(16384)
	var active, wired, inactive, speculative, free, compressed, purgeable uint64
	var memsize uint64

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()

		// "Mach Virtual Memory Statistics: (page size of 16384 bytes)"
		if idx := strings.Index(line, "page size of"); idx >= 0 {
			fields := strings.Fields(line[idx+len("page size of"):])
			if len(fields) > 0 {
				if size, perr := strconv.ParseUint(fields[0], 10, 64); perr == nil {
					pageSize = size
				}
			}
			continue
		}

		key, valStr, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		val, perr := strconv.ParseUint(strings.TrimSuffix(strings.TrimSpace(valStr), "."), 10, 64)
		if perr != nil {
			continue
		}

		switch strings.TrimSpace(key) {
		case "hw.memsize":
			memsize = val
		case "Pages active":
			active = val
		case "Pages wired down":
			wired = val
		case "Pages inactive":
			inactive = val
		case "Pages speculative":
			speculative = val
		case "Pages free":
			free = val
		case "Pages occupied by compressor":
			compressed = val
		case "Pages purgeable":
			purgeable = val
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, fmt.Errorf("error scanning vm_stat output: %w", err)
	}

	usedPages := active + wired + compressed + speculative
	if usedPages == 0 && memsize == 0 {
		return 0, 0, fmt.Errorf("no memory statistics in vm_stat output")
	}

	used = usedPages * pageSize
	total = memsize
	if total == 0 {
		total = (usedPages + free + inactive + purgeable) * pageSize
	}
	return used, total, nil
}

// parseDarwinSwap parses "vm.swapusage: total = 2048.00M  used = 1024.50M  free = ...".
func parseDarwinSwap(output string) (used, total uint64) {
	fields := strings.Fields(output)
	for i := 0; i+2 < len(fields); i++ {
		if fields[i+1] != "=" {
			continue
		}
		switch fields[i] {
		case "total":
			total = parseSizeSuffix(fields[i+2])
		case "used":
			used = parseSizeSuffix(fields[i+2])
		}
	}
	return used, total
}

// parseSizeSuffix parses sysctl sizes like "1024.50M" into bytes.
func parseSizeSuffix(s string) uint64 {
	if s == "" {
		return 0
	}
	mult := 1.0
	switch s[len(s)-1] {
	case 'K', 'k':
		mult = 1 << 10
	case 'M', 'm':
		mult = 1 << 20
	case 'G', 'g':
		mult = 1 << 30
	case 'T', 't':
		mult = 1 << 40
	}
	if mult != 1 {
		s = s[:len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return uint64(v * mult)
}

// parseDarwinNetwork parses link-level rows from netstat -ib output:
//
//	Name  Mtu   Network   Address            Ipkts Ierrs     Ibytes    Opkts Oerrs     Obytes  Coll
//	en0   1500  <Link#4>  xx:xx:xx:xx:xx:xx  12345     0   12345678    67890     0    9876543     0
func parseDarwinNetwork(netstatOutput string) ([]snapshot.NetworkStat, error) {
	interfaces := []snapshot.NetworkStat{}
	seen := make(map[string]bool)
	headerSkipped := false

	scanner := bufio.NewScanner(strings.NewReader(netstatOutput))
	for scanner.Scan() {
		line := scanner.Text()
		if !headerSkipped {
			if strings.HasPrefix(line, "Name") {
				headerSkipped = true
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 7 {
			continue
		}

		name := fields[0]
		if seen[name] || !strings.HasPrefix(fields[2], "<Link#") {
			continue
		}

		// Counters are the trailing columns; interfaces without a MAC address
		// (lo0, utun*) omit the Address column, so index from the end.
		// ... Ipkts Ierrs Ibytes Opkts Oerrs Obytes Coll
		n := len(fields)
		received, err := strconv.ParseUint(fields[n-5], 10, 64)
		if err != nil {
			continue
		}
		transmitted, err := strconv.ParseUint(fields[n-2], 10, 64)
		if err != nil {
			continue
		}

		seen[name] = true
		interfaces = append(interfaces, snapshot.NetworkStat{
			Interface:   name,
			Received:    received,
			Transmitted: transmitted,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning netstat output: %w", err)
	}
	return interfaces, nil
}

// parseSwVers builds "macOS 14.2.1" from sw_vers output.
func parseSwVers(output string) string {
	var name, version string
	for _, line := range strings.Split(output, "\n") {
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ProductName":
			name = strings.TrimSpace(val)
		case "ProductVersion":
			version = strings.TrimSpace(val)
		}
	}
	return strings.TrimSpace(name + " " + version)
}

// parseBootTime returns seconds since boot from kern.boottime output:
// "{ sec = 1700000000, usec = 123456 } Tue Nov 14 22:13:20 2023"
func parseBootTime(output string, now time.Time) (uint64, error) {
	idx := strings.Index(output, "sec =")
	if idx < 0 {
		return 0, fmt.Errorf("no boot time in %q", output)
	}
	rest := strings.TrimSpace(output[idx+len("sec ="):])
	end := strings.IndexAny(rest, ", }")
	if end >= 0 {
		rest = rest[:end]
	}
	sec, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse boot time: %w", err)
	}
	elapsed := now.Unix() - sec
	if elapsed < 0 {
		return 0, nil
	}
	return uint64(elapsed), nil
}

// parseDarwinCPUInfo parses the brand string line followed by hw.ncpu.
func parseDarwinCPUInfo(output string) (name string, cores int) {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if n, err := strconv.Atoi(line); err == nil {
			cores = n
			continue
		}
		if name == "" {
			name = line
		}
	}
	return name, cores
}
