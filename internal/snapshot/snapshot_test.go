package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStat_Usage(t *testing.T) {
	tests := []struct {
		name        string
		disk        DiskStat
		wantUsed    uint64
		wantPercent float64
	}{
		{"half used", DiskStat{TotalSpace: 100, AvailableSpace: 50}, 50, 50},
		{"empty disk", DiskStat{TotalSpace: 100, AvailableSpace: 100}, 0, 0},
		{"zero total", DiskStat{}, 0, 0},
		{"available above total", DiskStat{TotalSpace: 10, AvailableSpace: 20}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantUsed, tt.disk.UsedSpace())
			assert.InDelta(t, tt.wantPercent, tt.disk.UsedPercent(), 0.001)
		})
	}
}

func TestSnapshot_Percentages(t *testing.T) {
	s := sampleSnapshot()
	assert.InDelta(t, 50.0, s.MemoryPercent(), 0.001)
	assert.InDelta(t, 0.0, s.SwapPercent(), 0.001)

	var nilSnap *Snapshot
	assert.Zero(t, nilSnap.MemoryPercent())
	assert.Zero(t, (&Snapshot{}).SwapPercent())
}

func TestSnapshot_Clone(t *testing.T) {
	orig := sampleSnapshot()
	c := orig.Clone()

	require.Equal(t, orig, c)

	c.DiskInfo[0].Name = "changed"
	c.NetworkInfo[0].Received = 999
	c.TopProcesses[0].PID = 1
	c.Hostname = "other"

	assert.Equal(t, "/dev/nvme0n1p2", orig.DiskInfo[0].Name)
	assert.Equal(t, uint64(100), orig.NetworkInfo[0].Received)
	assert.Equal(t, 4242, orig.TopProcesses[0].PID)
	assert.Equal(t, "triage-box", orig.Hostname)

	var nilSnap *Snapshot
	assert.Nil(t, nilSnap.Clone())
}
