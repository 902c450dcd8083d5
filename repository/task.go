package repository

import (
	"context"

	"github.com/dailytasks/backend/domain"
)

// TaskStore mirrors the task collection to durable storage. Load returns the
// collection in its persisted order; a missing or unreadable store yields an
// empty slice, never an error the caller has to branch on per task.
type TaskStore interface {
	LoadTasks(ctx context.Context) ([]domain.Task, error)
	SaveTasks(ctx context.Context, tasks []domain.Task) error
}
