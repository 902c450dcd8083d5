package monitor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	boltstore "github.com/dailytasks/backend/repository/bolt"
)

// MirrorState exposes the mirror service's pending-write flag.
type MirrorState interface {
	Dirty() bool
}

// Monitor periodically checks the local store file and reports whether the
// mirror has unsaved state, feeding the health endpoint.
type Monitor struct {
	store  *boltstore.Store
	mirror MirrorState

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(store *boltstore.Store, mirror MirrorState, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		store:    store,
		mirror:   mirror,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

// IsOnline reports whether the store file is reachable.
func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Store
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	storeOK, tasks, lists := m.checkStore()
	status := Status{
		Store:       storeOK,
		StoredTasks: tasks,
		StoredLists: lists,
		LastCheck:   time.Now(),
	}
	if m.mirror != nil {
		status.Dirty = m.mirror.Dirty()
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

func (m *Monitor) checkStore() (bool, int, int) {
	if m.store == nil {
		return false, 0, 0
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := m.store.Ping(ctx); err != nil {
		m.logger.Warn("store ping failed", zap.Error(err))
		return false, 0, 0
	}
	tasks, lists, err := m.store.Counts()
	if err != nil {
		m.logger.Warn("store count check failed", zap.Error(err))
		return false, 0, 0
	}
	return true, tasks, lists
}
