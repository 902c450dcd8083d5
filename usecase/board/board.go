package board

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dailytasks/backend/domain"
	"github.com/dailytasks/backend/internal/state"
	"github.com/dailytasks/backend/pipeline"
	appLogger "github.com/dailytasks/backend/pkg/logger"
)

// View is one derived board: the visible tasks for the active view and
// filters, plus the collection-wide stats and sidebar counts.
type View struct {
	View     string            `json:"view"`
	Tasks    []domain.Task     `json:"tasks"`
	Lists    []domain.TaskList `json:"lists"`
	Stats    domain.Stats      `json:"stats"`
	Counts   domain.Counts     `json:"counts"`
	Revision uint64            `json:"revision"`
}

// UseCase runs the derivation pipeline over container snapshots. Derivation
// is pure, so results are memoized on (revision, view, filters): repeated
// queries between mutations return the cached view.
type UseCase struct {
	container *state.Container
	pipe      *pipeline.Pipeline
	logger    *zap.Logger
	now       func() time.Time

	mu   sync.Mutex
	memo *memoEntry
}

type memoEntry struct {
	revision uint64
	view     string
	filters  domain.Filters
	// day pins the cached derivation to the calendar day it was computed
	// on; the today/upcoming predicates shift at midnight.
	day    time.Time
	result View
}

func New(container *state.Container, pipe *pipeline.Pipeline, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		container: container,
		pipe:      pipe,
		logger:    logger,
		now:       time.Now,
	}
}

// Query derives the board for the given view selector and filter record.
func (uc *UseCase) Query(ctx context.Context, view string, filters domain.Filters) View {
	snap := uc.container.Snapshot()
	now := uc.now()
	day := uc.pipe.Calendar().StartOfDay(now)

	uc.mu.Lock()
	if m := uc.memo; m != nil && m.revision == snap.Revision && m.view == view &&
		m.day.Equal(day) && filtersEqual(m.filters, filters) {
		result := m.result
		uc.mu.Unlock()
		return result
	}
	uc.mu.Unlock()

	out := uc.pipe.Derive(pipeline.Input{
		Tasks:   snap.Tasks,
		Lists:   snap.Lists,
		View:    view,
		Filters: filters,
		Now:     now,
	})

	result := View{
		View:     view,
		Tasks:    out.Tasks,
		Lists:    snap.Lists,
		Stats:    out.Stats,
		Counts:   out.Counts,
		Revision: snap.Revision,
	}

	uc.mu.Lock()
	uc.memo = &memoEntry{revision: snap.Revision, view: view, filters: filters, day: day, result: result}
	uc.mu.Unlock()

	appLogger.WithRequestID(ctx, uc.logger).Debug("board derived",
		zap.String("view", view),
		zap.Uint64("revision", snap.Revision),
		zap.Int("visible", len(result.Tasks)),
	)
	return result
}

// Tasks returns the raw, unfiltered collection for collaborators that want
// the full feed.
func (uc *UseCase) Tasks() []domain.Task {
	return uc.container.Snapshot().Tasks
}

// Lists returns the current list collection.
func (uc *UseCase) Lists() []domain.TaskList {
	return uc.container.Snapshot().Lists
}

// filtersEqual compares filter records field by field; Tags is a slice and
// keeps Filters from being comparable with ==.
func filtersEqual(a, b domain.Filters) bool {
	return a.Search == b.Search &&
		a.Priority == b.Priority &&
		a.Status == b.Status &&
		a.ListID == b.ListID &&
		a.SortBy == b.SortBy &&
		a.SortOrder == b.SortOrder &&
		slices.Equal(a.Tags, b.Tags)
}
