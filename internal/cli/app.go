package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rileyhilliard/triage/internal/collector"
	"github.com/rileyhilliard/triage/internal/config"
	"github.com/rileyhilliard/triage/internal/controller"
	"github.com/rileyhilliard/triage/internal/logger"
	"github.com/rileyhilliard/triage/internal/store"
	"k8s.io/utils/clock"
)

// app holds the wiring shared by every command that collects or exports.
type app struct {
	cfg     *config.Config
	cfgPath string
	clock   clock.WithDelayedExecution
}

// loadApp resolves and validates the config selected by --config.
func loadApp() (*app, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return &app{cfg: cfg, cfgPath: path, clock: clock.RealClock{}}, nil
}

func (a *app) newCollector() *collector.Local {
	return collector.NewLocal(collector.Options{
		TopProcesses: a.cfg.Collector.TopProcesses,
		Clock:        a.clock,
		Logger:       logger.NewEnvLogger("[collector]"),
	})
}

func (a *app) newStore() (*store.FileStore, error) {
	st, err := store.NewOS(a.cfg.Store.Dir)
	if err != nil {
		return nil, err
	}
	return st.WithLogger(logger.NewEnvLogger("[store]")), nil
}

// newController wires a controller from config. coll may be nil to use the
// local collector.
func (a *app) newController(coll controller.Collector) (*controller.Controller, error) {
	if coll == nil {
		coll = a.newCollector()
	}
	st, err := a.newStore()
	if err != nil {
		return nil, err
	}
	return controller.New(controller.Options{
		Collector:      coll,
		Store:          st,
		Clock:          a.clock,
		ExportFormat:   a.cfg.ExportFormat(),
		ToastDuration:  a.cfg.Dashboard.ToastDuration,
		RefreshTimeout: a.cfg.Dashboard.RefreshTimeout,
		InitialPanel:   a.cfg.Panel(),
		Logger:         logger.NewEnvLogger("[controller]"),
	})
}

// signalContext returns ctx cancelled on SIGINT or SIGTERM.
func signalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
