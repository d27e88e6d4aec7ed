package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/rileyhilliard/triage/internal/errors"
	"github.com/rileyhilliard/triage/internal/snapshot"
	"k8s.io/utils/clock"
)

// Collector produces one snapshot.
type Collector interface {
	Collect(ctx context.Context) (*snapshot.Snapshot, error)
}

// CollectCheck runs one collection end to end and reports what came back.
type CollectCheck struct {
	Collector Collector
	Timeout   time.Duration
	Clock     clock.PassiveClock // Defaults to the real clock
}

func (c *CollectCheck) Name() string     { return "collect" }
func (c *CollectCheck) Category() string { return CategoryCollect }

func (c *CollectCheck) Run(ctx context.Context) CheckResult {
	clk := c.Clock
	if clk == nil {
		clk = clock.RealClock{}
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	start := clk.Now()
	snap, err := c.Collector.Collect(ctx)
	took := clk.Since(start).Round(time.Millisecond)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Collection failed: %s", errors.Summary(err)),
			Suggestion: "Run with TRIAGE_DEBUG=1 for collector output",
		}
	}

	var empty []string
	if snap.TotalMemory == 0 {
		empty = append(empty, "memory")
	}
	if len(snap.DiskInfo) == 0 {
		empty = append(empty, "disks")
	}
	if len(snap.NetworkInfo) == 0 {
		empty = append(empty, "network")
	}
	if len(snap.TopProcesses) == 0 {
		empty = append(empty, "processes")
	}

	msg := fmt.Sprintf("Collected %s in %s: %d disk%s, %d interface%s, %d process%s",
		snap.Hostname, took,
		len(snap.DiskInfo), pluralize(len(snap.DiskInfo)),
		len(snap.NetworkInfo), pluralize(len(snap.NetworkInfo)),
		len(snap.TopProcesses), pluralizeES(len(snap.TopProcesses)))

	if len(empty) > 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    msg,
			Suggestion: fmt.Sprintf("No data for: %v. Check the TOOLS section above", empty),
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: msg,
	}
}

func (c *CollectCheck) Fix() error {
	return nil
}

func pluralizeES(n int) string {
	if n == 1 {
		return ""
	}
	return "es"
}
