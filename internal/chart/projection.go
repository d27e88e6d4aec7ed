package chart

import "github.com/rileyhilliard/triage/internal/snapshot"

// Memory series labels, in plotting order.
const (
	LabelUsedMemory  = "Used Memory"
	LabelTotalMemory = "Total Memory"
	LabelUsedSwap    = "Used Swap"
	LabelTotalSwap   = "Total Swap"
)

// ValueEntry is a labelled byte count.
type ValueEntry struct {
	Label string
	Value uint64
}

// UsageEntry is a labelled percentage.
type UsageEntry struct {
	Label string
	Usage float64
}

// TrafficEntry pairs received and transmitted byte counters for one interface.
type TrafficEntry struct {
	Label       string
	Received    uint64
	Transmitted uint64
}

// MemorySeries projects memory and swap counters into exactly four entries:
// Used Memory, Total Memory, Used Swap, Total Swap. Values are copied verbatim.
func MemorySeries(s *snapshot.Snapshot) []ValueEntry {
	if s == nil {
		s = &snapshot.Snapshot{}
	}
	return []ValueEntry{
		{Label: LabelUsedMemory, Value: s.UsedMemory},
		{Label: LabelTotalMemory, Value: s.TotalMemory},
		{Label: LabelUsedSwap, Value: s.UsedSwap},
		{Label: LabelTotalSwap, Value: s.TotalSwap},
	}
}

// CPUSeries projects the CPU into a single-entry series so it shares the bar
// chart rendering path with the other panels.
func CPUSeries(s *snapshot.Snapshot) []UsageEntry {
	if s == nil {
		s = &snapshot.Snapshot{}
	}
	return []UsageEntry{{Label: s.CPUName, Usage: s.CPUUsage}}
}

// NetworkSeries projects one entry per network interface, preserving order.
func NetworkSeries(s *snapshot.Snapshot) []TrafficEntry {
	if s == nil {
		return []TrafficEntry{}
	}
	out := make([]TrafficEntry, 0, len(s.NetworkInfo))
	for _, n := range s.NetworkInfo {
		out = append(out, TrafficEntry{
			Label:       n.Interface,
			Received:    n.Received,
			Transmitted: n.Transmitted,
		})
	}
	return out
}
