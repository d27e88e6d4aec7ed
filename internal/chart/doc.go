// Package chart turns a snapshot into the series each dashboard panel plots,
// and renders those series as horizontal terminal bar charts.
//
// Projections are pure: the same snapshot always yields the same series, no
// entry is dropped, reordered, or aggregated, and inputs are never modified.
// Filtering or sorting is a presentation decision made by the caller.
//
//	MemorySeries  - Used Memory, Total Memory, Used Swap, Total Swap (always 4)
//	CPUSeries     - one entry: CPU name and usage percent
//	NetworkSeries - one entry per interface, in collector order
//
// The Disks and Processes panels read the snapshot directly and have no projection.
package chart
