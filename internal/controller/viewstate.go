package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/triage/internal/snapshot"
)

// Panel identifies one of the dashboard's tabs.
type Panel int

const (
	PanelSystem Panel = iota
	PanelCPU
	PanelMemory
	PanelDisks
	PanelNetwork
	PanelProcesses
)

var panelNames = [...]string{"System", "CPU", "Memory", "Disks", "Network", "Processes"}

// Panels returns every panel in tab order.
func Panels() []Panel {
	return []Panel{PanelSystem, PanelCPU, PanelMemory, PanelDisks, PanelNetwork, PanelProcesses}
}

// Valid reports whether p is a known panel.
func (p Panel) Valid() bool {
	return p >= PanelSystem && p <= PanelProcesses
}

// String returns the tab title.
func (p Panel) String() string {
	if !p.Valid() {
		return panelNames[PanelSystem]
	}
	return panelNames[p]
}

// Key returns the lowercase name used in config files.
func (p Panel) Key() string {
	return strings.ToLower(p.String())
}

// Next returns the following panel, wrapping around.
func (p Panel) Next() Panel {
	if !p.Valid() {
		return PanelSystem
	}
	return Panel((int(p) + 1) % len(panelNames))
}

// Prev returns the preceding panel, wrapping around.
func (p Panel) Prev() Panel {
	if !p.Valid() {
		return PanelSystem
	}
	return Panel((int(p) + len(panelNames) - 1) % len(panelNames))
}

// ParsePanel parses a panel name case-insensitively.
func ParsePanel(name string) (Panel, error) {
	for _, p := range Panels() {
		if strings.EqualFold(strings.TrimSpace(name), p.Key()) {
			return p, nil
		}
	}
	keys := make([]string, 0, len(panelNames))
	for _, p := range Panels() {
		keys = append(keys, p.Key())
	}
	return PanelSystem, fmt.Errorf("unknown panel %q (expected one of: %s)", name, strings.Join(keys, ", "))
}

// Kind classifies a notification.
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a transient message shown to the user.
// Token identifies the Show call that produced it.
type Notification struct {
	Message string
	Kind    Kind
	Token   uint64
}

// Status is the availability of data derived from a ViewState.
type Status int

const (
	// StatusLoading means no snapshot yet and no failure to report.
	StatusLoading Status = iota
	// StatusFailed means no snapshot and the last attempt failed.
	StatusFailed
	// StatusLoaded means a snapshot is available.
	StatusLoaded
)

func (s Status) String() string {
	switch s {
	case StatusFailed:
		return "failed"
	case StatusLoaded:
		return "loaded"
	default:
		return "loading"
	}
}

// LabelLayout formats LastFetchedLabel.
const LabelLayout = "15:04:05"

// ViewState is a consistent copy of everything a view renders.
// Snapshot and LastFetchedAt always come from the same refresh.
type ViewState struct {
	Snapshot         *snapshot.Snapshot
	LastFetchedAt    time.Time
	LastFetchedLabel string
	Notification     *Notification
	ActivePanel      Panel
	Refreshing       bool
	LastError        error
}

// Status derives the availability of data.
func (v ViewState) Status() Status {
	switch {
	case v.Snapshot != nil:
		return StatusLoaded
	case v.LastError != nil && !v.Refreshing:
		return StatusFailed
	default:
		return StatusLoading
	}
}

// CanExport reports whether there is a snapshot to export.
func (v ViewState) CanExport() bool {
	return v.Snapshot != nil
}
