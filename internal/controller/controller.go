package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	triageerrors "github.com/rileyhilliard/triage/internal/errors"
	"github.com/rileyhilliard/triage/internal/logger"
	"github.com/rileyhilliard/triage/internal/snapshot"
	"github.com/rileyhilliard/triage/internal/store"
	"k8s.io/utils/clock"
)

// DefaultRefreshTimeout bounds a single collection.
const DefaultRefreshTimeout = 30 * time.Second

var (
	// ErrNothingToExport is returned by Export before the first successful refresh.
	ErrNothingToExport = errors.New("nothing to export yet")
	// ErrRefreshInFlight is returned by Refresh while another refresh runs.
	ErrRefreshInFlight = errors.New("a refresh is already in progress")
	// ErrClosed is returned by Refresh and Export after Close.
	ErrClosed = errors.New("controller is closed")
)

// Collector produces snapshots.
type Collector interface {
	Collect(ctx context.Context) (*snapshot.Snapshot, error)
}

// Store persists export artifacts and returns where they landed.
type Store interface {
	Write(ctx context.Context, name string, data []byte, scope store.Scope) (string, error)
}

// Options configures a Controller. Collector and Store are required.
type Options struct {
	Collector      Collector
	Store          Store
	Clock          clock.WithDelayedExecution
	ExportFormat   snapshot.Format
	ToastDuration  time.Duration
	RefreshTimeout time.Duration
	InitialPanel   Panel
	Logger         logger.Logger
}

// Controller owns the ViewState and every transition on it.
type Controller struct {
	collector Collector
	store     Store
	clock     clock.WithDelayedExecution
	format    snapshot.Format
	timeout   time.Duration
	log       logger.Logger
	notifier  *Notifier
	startOnce sync.Once

	mu           sync.Mutex
	snap         *snapshot.Snapshot
	fetchedAt    time.Time
	fetchedLabel string
	panel        Panel
	refreshing   bool
	lastErr      error
	subs         map[int]chan ViewState
	nextSub      int
	closed       bool
}

// New creates a controller with no snapshot. Call Start to fetch the first one.
func New(opts Options) (*Controller, error) {
	if opts.Collector == nil {
		return nil, triageerrors.New(triageerrors.ErrConfig, "Controller needs a collector", "")
	}
	if opts.Store == nil {
		return nil, triageerrors.New(triageerrors.ErrConfig, "Controller needs a store", "")
	}

	c := &Controller{
		collector: opts.Collector,
		store:     opts.Store,
		clock:     opts.Clock,
		format:    opts.ExportFormat,
		timeout:   opts.RefreshTimeout,
		log:       opts.Logger,
		panel:     opts.InitialPanel,
		subs:      make(map[int]chan ViewState),
	}
	if c.clock == nil {
		c.clock = clock.RealClock{}
	}
	if c.format == "" {
		c.format = snapshot.FormatJSON
	}
	if c.timeout <= 0 {
		c.timeout = DefaultRefreshTimeout
	}
	if c.log == nil {
		c.log = logger.Noop()
	}
	if !c.panel.Valid() {
		c.panel = PanelSystem
	}
	c.notifier = NewNotifier(c.clock, opts.ToastDuration, c.broadcast)

	return c, nil
}

// Start issues the initial refresh. Only the first call does anything;
// later calls return nil immediately.
func (c *Controller) Start(ctx context.Context) error {
	var err error
	c.startOnce.Do(func() {
		c.log.Debug("initial refresh")
		err = c.Refresh(ctx)
	})
	return err
}

// Refresh fetches a new snapshot. On success the snapshot and its fetch time
// are replaced together. On failure the previous snapshot is kept, an error
// notification is shown and a COLLECT error is returned.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.refreshing {
		c.mu.Unlock()
		return ErrRefreshInFlight
	}
	c.refreshing = true
	c.mu.Unlock()
	c.broadcast()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := c.clock.Now()
	snap, err := c.collector.Collect(ctx)
	if err == nil && snap == nil {
		err = errors.New("collector returned no snapshot")
	}

	// A collection that outlives Close is dropped.
	c.mu.Lock()
	if c.closed {
		c.refreshing = false
		c.mu.Unlock()
		c.log.Debug("refresh finished after close, result dropped")
		return ErrClosed
	}
	c.mu.Unlock()

	if err != nil {
		cerr := collectError(err)
		c.log.Warn("refresh failed after %s: %s", c.clock.Since(start).Round(time.Millisecond), triageerrors.Summary(err))

		c.mu.Lock()
		c.refreshing = false
		c.lastErr = cerr
		c.mu.Unlock()

		c.notifier.Show("Refresh failed: "+triageerrors.Summary(err), KindError)
		c.broadcast()
		return cerr
	}

	owned := snap.Clone()
	now := c.clock.Now()

	c.mu.Lock()
	c.snap = owned
	c.fetchedAt = now
	c.fetchedLabel = now.Local().Format(LabelLayout)
	c.lastErr = nil
	c.refreshing = false
	c.mu.Unlock()

	c.log.Debug("refreshed snapshot for %s in %s", owned.Hostname, now.Sub(start).Round(time.Millisecond))
	c.broadcast()
	return nil
}

// Export writes the current snapshot to the store and shows the outcome.
// Without a snapshot it returns ErrNothingToExport and touches nothing.
func (c *Controller) Export(ctx context.Context) (string, error) {
	c.mu.Lock()
	snap, closed := c.snap, c.closed
	c.mu.Unlock()

	if closed {
		return "", ErrClosed
	}

	if snap == nil {
		c.log.Debug("export ignored: no snapshot")
		return "", ErrNothingToExport
	}

	name := snapshot.FileName(c.format)
	data, err := snapshot.Marshal(snap, c.format)
	if err == nil {
		var path string
		path, err = c.store.Write(ctx, name, data, store.ScopeAppData)
		if err == nil {
			c.log.Info("exported snapshot to %s", path)
			c.notifier.Show("Exported to "+path, KindSuccess)
			c.broadcast()
			return path, nil
		}
	}

	c.log.Error("export failed: %s", triageerrors.Summary(err))
	c.notifier.Show("Export failed: "+triageerrors.Summary(err), KindError)
	c.broadcast()
	return "", persistError(err, name)
}

// SelectPanel makes p the active panel. Unknown panels select System.
func (c *Controller) SelectPanel(p Panel) {
	if !p.Valid() {
		p = PanelSystem
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.panel = p
	c.mu.Unlock()
	c.broadcast()
}

// NextPanel activates the panel after the current one.
func (c *Controller) NextPanel() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.panel = c.panel.Next()
	c.mu.Unlock()
	c.broadcast()
}

// PrevPanel activates the panel before the current one.
func (c *Controller) PrevPanel() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.panel = c.panel.Prev()
	c.mu.Unlock()
	c.broadcast()
}

// CanExport reports whether a snapshot is available.
func (c *Controller) CanExport() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap != nil
}

// ExportFormat returns the format Export writes.
func (c *Controller) ExportFormat() snapshot.Format {
	return c.format
}

// State returns a consistent copy of the view state.
func (c *Controller) State() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Subscribe returns a channel that receives the state after every change,
// starting with the current one. A slow subscriber only ever sees the newest
// state. The returned func unsubscribes and closes the channel. After Close
// the channel holds the final state and is already closed.
func (c *Controller) Subscribe() (<-chan ViewState, func()) {
	ch := make(chan ViewState, 1)

	c.mu.Lock()
	if c.closed {
		ch <- c.stateLocked()
		close(ch)
		c.mu.Unlock()
		return ch, func() {}
	}
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	ch <- c.stateLocked()
	c.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if _, ok := c.subs[id]; ok {
				delete(c.subs, id)
				close(ch)
			}
		})
	}
}

// Close cancels the pending notification expiry and closes every subscription.
// Afterwards Refresh and Export return ErrClosed, panel changes are ignored
// and no notification is shown. Close is idempotent.
func (c *Controller) Close() {
	c.notifier.Close()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	for id, ch := range c.subs {
		delete(c.subs, id)
		close(ch)
	}
}

// stateLocked builds a ViewState. c.mu must be held.
func (c *Controller) stateLocked() ViewState {
	return ViewState{
		Snapshot:         c.snap.Clone(),
		LastFetchedAt:    c.fetchedAt,
		LastFetchedLabel: c.fetchedLabel,
		Notification:     c.notifier.Current(),
		ActivePanel:      c.panel,
		Refreshing:       c.refreshing,
		LastError:        c.lastErr,
	}
}

// broadcast pushes the current state to every subscriber without blocking.
// A full buffer is drained first so the newest state wins.
func (c *Controller) broadcast() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.subs) == 0 {
		return
	}

	st := c.stateLocked()
	for _, ch := range c.subs {
		select {
		case ch <- st:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- st:
		default:
		}
	}
}

func collectError(err error) error {
	if triageerrors.IsCode(err, triageerrors.ErrCollect) {
		return err
	}
	return triageerrors.WrapWithCode(err, triageerrors.ErrCollect,
		"Couldn't collect system metrics",
		"Press r to retry")
}

func persistError(err error, name string) error {
	if triageerrors.IsCode(err, triageerrors.ErrPersist) {
		return err
	}
	return triageerrors.WrapWithCode(err, triageerrors.ErrPersist,
		"Couldn't export "+name,
		"Check the store.dir setting and free disk space")
}
