package controller

import (
	"errors"
	"testing"

	"github.com/rileyhilliard/triage/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanel_String(t *testing.T) {
	tests := []struct {
		panel Panel
		want  string
		key   string
	}{
		{PanelSystem, "System", "system"},
		{PanelCPU, "CPU", "cpu"},
		{PanelMemory, "Memory", "memory"},
		{PanelDisks, "Disks", "disks"},
		{PanelNetwork, "Network", "network"},
		{PanelProcesses, "Processes", "processes"},
		{Panel(42), "System", "system"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.panel.String())
			assert.Equal(t, tt.key, tt.panel.Key())
		})
	}
}

func TestPanels(t *testing.T) {
	panels := Panels()
	require.Len(t, panels, 6)
	for i, p := range panels {
		assert.Equal(t, Panel(i), p)
		assert.True(t, p.Valid())
	}
	assert.False(t, Panel(-1).Valid())
	assert.False(t, Panel(6).Valid())
}

func TestPanel_NextPrev(t *testing.T) {
	assert.Equal(t, PanelCPU, PanelSystem.Next())
	assert.Equal(t, PanelSystem, PanelProcesses.Next())
	assert.Equal(t, PanelProcesses, PanelSystem.Prev())
	assert.Equal(t, PanelDisks, PanelNetwork.Prev())
	assert.Equal(t, PanelSystem, Panel(99).Next())
	assert.Equal(t, PanelSystem, Panel(-3).Prev())

	// A full cycle returns to the start.
	p := PanelMemory
	for range Panels() {
		p = p.Next()
	}
	assert.Equal(t, PanelMemory, p)
}

func TestParsePanel(t *testing.T) {
	tests := []struct {
		input   string
		want    Panel
		wantErr bool
	}{
		{"system", PanelSystem, false},
		{"CPU", PanelCPU, false},
		{" Memory ", PanelMemory, false},
		{"disks", PanelDisks, false},
		{"network", PanelNetwork, false},
		{"processes", PanelProcesses, false},
		{"gpu", PanelSystem, true},
		{"", PanelSystem, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePanel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "system, cpu, memory, disks, network, processes")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "info", KindInfo.String())
	assert.Equal(t, "success", KindSuccess.String())
	assert.Equal(t, "error", KindError.String())
}

func TestViewState_Status(t *testing.T) {
	snap := &snapshot.Snapshot{Hostname: "h"}
	fail := errors.New("boom")

	tests := []struct {
		name  string
		state ViewState
		want  Status
	}{
		{"initial", ViewState{}, StatusLoading},
		{"first refresh in flight", ViewState{Refreshing: true}, StatusLoading},
		{"first refresh failed", ViewState{LastError: fail}, StatusFailed},
		{"retrying after failure", ViewState{LastError: fail, Refreshing: true}, StatusLoading},
		{"loaded", ViewState{Snapshot: snap}, StatusLoaded},
		{"loaded with later failure", ViewState{Snapshot: snap, LastError: fail}, StatusLoaded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Status())
			assert.Equal(t, tt.state.Snapshot != nil, tt.state.CanExport())
		})
	}

	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "loaded", StatusLoaded.String())
}
