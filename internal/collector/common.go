package collector

import (
	"bufio"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rileyhilliard/triage/internal/snapshot"
)

// parseProcesses parses ps aux output, sorts by CPU descending and keeps topN.
// Works for both Linux and macOS:
// USER PID %CPU %MEM VSZ RSS TTY STAT START TIME COMMAND
func parseProcesses(output string, topN int) ([]snapshot.ProcessStat, error) {
	procs := []snapshot.ProcessStat{}
	seen := make(map[int]bool)

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 11 {
			continue
		}

		// Header line has "PID" here
		pid, err := strconv.Atoi(fields[1])
		if err != nil || seen[pid] {
			continue
		}

		cpu, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			cpu = 0
		}

		// RSS is reported in KB
		rss, err := strconv.ParseUint(fields[5], 10, 64)
		if err != nil {
			rss = 0
		}

		seen[pid] = true
		procs = append(procs, snapshot.ProcessStat{
			Name:     processName(fields[10]),
			PID:      pid,
			CPUUsage: cpu,
			Memory:   rss * 1024,
			Status:   processStatus(fields[7]),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning ps output: %w", err)
	}

	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].CPUUsage > procs[j].CPUUsage
	})
	if topN > 0 && len(procs) > topN {
		procs = procs[:topN]
	}
	return procs, nil
}

// processName strips the directory from an executable path.
// Kernel threads like "[kworker/0:1]" are kept as is.
func processName(command string) string {
	if strings.HasPrefix(command, "[") {
		return command
	}
	return filepath.Base(command)
}

// processStatus maps the first STAT character to a status label.
func processStatus(stat string) string {
	if stat == "" {
		return "Unknown"
	}
	switch stat[0] {
	case 'R':
		return "Run"
	case 'S':
		return "Sleep"
	case 'I':
		return "Idle"
	case 'D', 'U':
		return "UninterruptibleDiskSleep"
	case 'T':
		return "Stop"
	case 't':
		return "Tracing"
	case 'Z':
		return "Zombie"
	case 'X':
		return "Dead"
	default:
		return "Unknown"
	}
}

// parseDiskFree parses POSIX df -kP output:
// Filesystem 1024-blocks Used Available Capacity Mounted on
// Only device-backed filesystems and the root mount are kept.
func parseDiskFree(output string) ([]snapshot.DiskStat, error) {
	disks := []snapshot.DiskStat{}
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 6 {
			continue
		}

		total, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			// Header line
			continue
		}
		available, err := strconv.ParseUint(fields[3], 10, 64)
		if err != nil {
			continue
		}

		name := fields[0]
		mount := strings.Join(fields[5:], " ")
		if total == 0 || seen[mount] {
			continue
		}
		if !strings.HasPrefix(name, "/dev/") && mount != "/" {
			continue
		}

		seen[mount] = true
		disks = append(disks, snapshot.DiskStat{
			Name:           name,
			MountPoint:     mount,
			TotalSpace:     total * 1024,
			AvailableSpace: available * 1024,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning df output: %w", err)
	}
	return disks, nil
}

// FormatUptime renders seconds as "3d 4h 12m", "4h 12m" or "12m".
func FormatUptime(secs uint64) string {
	days := secs / 86400
	hours := (secs % 86400) / 3600
	minutes := (secs % 3600) / 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return s
}
