// Package snapshot defines the point-in-time system report shown by the dashboard
// and its canonical serialized form.
//
// A Snapshot is treated as an immutable value once collected: the controller
// replaces it wholesale on every refresh and never edits it in place. JSON keys
// are snake_case and follow struct field order, which is the canonical key order
// of an exported report.
package snapshot

// Snapshot is one point-in-time capture of host metrics.
type Snapshot struct {
	Hostname      string `json:"hostname" yaml:"hostname"`
	OSVersion     string `json:"os_version" yaml:"os_version"`
	KernelVersion string `json:"kernel_version" yaml:"kernel_version"`
	Uptime        string `json:"uptime" yaml:"uptime"`

	CPUName  string  `json:"cpu_name" yaml:"cpu_name"`
	CPUUsage float64 `json:"cpu_usage" yaml:"cpu_usage"` // percent, 0-100
	CPUCores int     `json:"cpu_cores" yaml:"cpu_cores"`

	// Memory and swap in bytes. Used <= Total is the collector's contract.
	UsedMemory  uint64 `json:"used_memory" yaml:"used_memory"`
	TotalMemory uint64 `json:"total_memory" yaml:"total_memory"`
	UsedSwap    uint64 `json:"used_swap" yaml:"used_swap"`
	TotalSwap   uint64 `json:"total_swap" yaml:"total_swap"`

	DiskInfo     []DiskStat    `json:"disk_info" yaml:"disk_info"`
	NetworkInfo  []NetworkStat `json:"network_info" yaml:"network_info"`
	TopProcesses []ProcessStat `json:"top_processes" yaml:"top_processes"`
}

// DiskStat describes one mounted filesystem.
type DiskStat struct {
	Name           string `json:"name" yaml:"name"`
	MountPoint     string `json:"mount_point" yaml:"mount_point"`
	TotalSpace     uint64 `json:"total_space" yaml:"total_space"`
	AvailableSpace uint64 `json:"available_space" yaml:"available_space"`
}

// UsedSpace returns TotalSpace minus AvailableSpace, floored at zero.
func (d DiskStat) UsedSpace() uint64 {
	if d.AvailableSpace >= d.TotalSpace {
		return 0
	}
	return d.TotalSpace - d.AvailableSpace
}

// UsedPercent returns the used share of the disk as a percentage.
func (d DiskStat) UsedPercent() float64 {
	if d.TotalSpace == 0 {
		return 0
	}
	return float64(d.UsedSpace()) / float64(d.TotalSpace) * 100
}

// NetworkStat holds cumulative byte counters for one interface.
// Interface names are unique within a snapshot.
type NetworkStat struct {
	Interface   string `json:"interface" yaml:"interface"`
	Received    uint64 `json:"received" yaml:"received"`
	Transmitted uint64 `json:"transmitted" yaml:"transmitted"`
}

// ProcessStat is one entry of the collector's top-process list.
// PIDs are unique within a snapshot.
type ProcessStat struct {
	Name     string  `json:"name" yaml:"name"`
	PID      int     `json:"pid" yaml:"pid"`
	CPUUsage float64 `json:"cpu_usage" yaml:"cpu_usage"`
	Memory   uint64  `json:"memory" yaml:"memory"` // resident bytes
	Status   string  `json:"status" yaml:"status"`
}

// MemoryPercent returns used memory as a percentage of total memory.
func (s *Snapshot) MemoryPercent() float64 {
	if s == nil || s.TotalMemory == 0 {
		return 0
	}
	return float64(s.UsedMemory) / float64(s.TotalMemory) * 100
}

// SwapPercent returns used swap as a percentage of total swap.
func (s *Snapshot) SwapPercent() float64 {
	if s == nil || s.TotalSwap == 0 {
		return 0
	}
	return float64(s.UsedSwap) / float64(s.TotalSwap) * 100
}

// Clone returns a deep copy so callers can never alias the controller's snapshot.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	c := *s
	if s.DiskInfo != nil {
		c.DiskInfo = append([]DiskStat(nil), s.DiskInfo...)
	}
	if s.NetworkInfo != nil {
		c.NetworkInfo = append([]NetworkStat(nil), s.NetworkInfo...)
	}
	if s.TopProcesses != nil {
		c.TopProcesses = append([]ProcessStat(nil), s.TopProcesses...)
	}
	return &c
}
