package repository

import (
	"context"

	"github.com/dailytasks/backend/domain"
)

// ListStore mirrors the list collection. LoadLists seeds and persists the
// default lists when nothing is stored yet.
type ListStore interface {
	LoadLists(ctx context.Context) ([]domain.TaskList, error)
	SaveLists(ctx context.Context, lists []domain.TaskList) error
}

// Store is the full storage collaborator surface.
type Store interface {
	TaskStore
	ListStore
}
