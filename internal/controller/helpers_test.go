package controller

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rileyhilliard/triage/internal/collector"
	"github.com/rileyhilliard/triage/internal/snapshot"
	"github.com/rileyhilliard/triage/internal/store"
	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"
)

var epoch = time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)

func testSnapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Hostname:      "devbox",
		OSVersion:     "Ubuntu 22.04.3 LTS",
		KernelVersion: "6.5.0",
		Uptime:        "3d 4h 12m",
		CPUName:       "AMD Ryzen 9",
		CPUUsage:      42.5,
		CPUCores:      16,
		UsedMemory:    4096,
		TotalMemory:   8192,
		UsedSwap:      0,
		TotalSwap:     2048,
		DiskInfo: []snapshot.DiskStat{
			{Name: "/dev/sda1", MountPoint: "/", TotalSpace: 1000, AvailableSpace: 250},
		},
		NetworkInfo: []snapshot.NetworkStat{
			{Interface: "eth0", Received: 100, Transmitted: 50},
			{Interface: "wlan0", Received: 10, Transmitted: 5},
		},
		TopProcesses: []snapshot.ProcessStat{
			{Name: "firefox", PID: 4242, CPUUsage: 55.5, Memory: 2048, Status: "Run"},
		},
	}
}

// countingCollector returns the queued results in order and counts calls.
type countingCollector struct {
	mu      sync.Mutex
	calls   int
	results []result
}

type result struct {
	snap *snapshot.Snapshot
	err  error
}

func (c *countingCollector) Collect(context.Context) (*snapshot.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	r := c.results[0]
	if len(c.results) > 1 {
		c.results = c.results[1:]
	}
	return r.snap, r.err
}

func (c *countingCollector) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// fakeStore records writes in memory.
type fakeStore struct {
	mu    sync.Mutex
	dir   string
	err   error
	calls int
	files map[string][]byte
	names []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{dir: "/data/triage", files: make(map[string][]byte)}
}

func (s *fakeStore) Write(_ context.Context, name string, data []byte, scope store.Scope) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	if scope != store.ScopeAppData {
		panic("unexpected scope " + scope)
	}
	s.files[name] = append([]byte(nil), data...)
	s.names = append(s.names, name)
	return s.dir + "/" + name, nil
}

func (s *fakeStore) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestController(t *testing.T, coll Collector, st Store, opts ...func(*Options)) (*Controller, *clocktesting.FakeClock) {
	t.Helper()
	clk := clocktesting.NewFakeClock(epoch)
	o := Options{Collector: coll, Store: st, Clock: clk}
	for _, fn := range opts {
		fn(&o)
	}
	c, err := New(o)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c, clk
}

func okCollector(s *snapshot.Snapshot) collector.Func {
	return func(context.Context) (*snapshot.Snapshot, error) { return s, nil }
}
