package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/dailytasks/backend/internal/state"
	"github.com/dailytasks/backend/repository"
)

// MirrorConfig controls how frequently dirty state is flushed to storage.
type MirrorConfig struct {
	Interval time.Duration
}

// Mirror persists the in-memory state container to the storage collaborator.
// Persistence is fire-and-forget: mutations only mark the mirror dirty, and
// a scheduled flush writes the snapshot out. Write failures are logged and
// retried on the next tick, never surfaced to the pipeline.
type Mirror struct {
	store     repository.Store
	container *state.Container
	logger    *zap.Logger
	cron      *cron.Cron
	dirty     atomic.Bool
}

func NewMirror(store repository.Store, container *state.Container, logger *zap.Logger, cfg MirrorConfig) *Mirror {
	if cfg.Interval <= 0 {
		cfg.Interval = 2 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Mirror{
		store:     store,
		container: container,
		logger:    logger,
		cron:      cron.New(cron.WithSeconds()),
	}

	container.Subscribe(func(uint64) { m.dirty.Store(true) })

	schedule := fmt.Sprintf("@every %ds", max(1, int(cfg.Interval.Seconds())))
	_, _ = m.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		m.flushIfDirty(ctx)
	})

	return m
}

// Start launches the flush scheduler.
func (m *Mirror) Start() {
	if m == nil || m.cron == nil {
		return
	}
	m.cron.Start()
}

// Stop halts the scheduler and performs a final flush so no mutation is lost
// on shutdown.
func (m *Mirror) Stop(ctx context.Context) error {
	if m == nil || m.cron == nil {
		return nil
	}
	stopCtx := m.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	return m.Flush(ctx)
}

// Flush writes the current snapshot to storage unconditionally. The dirty
// flag clears before the snapshot is taken: a mutation landing in between
// re-marks it, so state missing from this flush is caught on the next tick.
func (m *Mirror) Flush(ctx context.Context) error {
	m.dirty.Store(false)
	snap := m.container.Snapshot()

	if err := m.store.SaveTasks(ctx, snap.Tasks); err != nil {
		m.dirty.Store(true)
		return fmt.Errorf("mirror tasks: %w", err)
	}
	if err := m.store.SaveLists(ctx, snap.Lists); err != nil {
		m.dirty.Store(true)
		return fmt.Errorf("mirror lists: %w", err)
	}

	m.logger.Debug("state mirrored",
		zap.Uint64("revision", snap.Revision),
		zap.Int("tasks", len(snap.Tasks)),
		zap.Int("lists", len(snap.Lists)),
	)
	return nil
}

// Dirty reports whether there are unmirrored mutations.
func (m *Mirror) Dirty() bool {
	return m != nil && m.dirty.Load()
}

func (m *Mirror) flushIfDirty(ctx context.Context) {
	if !m.dirty.Load() {
		return
	}
	if err := m.Flush(ctx); err != nil {
		m.logger.Error("mirror flush failed", zap.Error(err))
	}
}
