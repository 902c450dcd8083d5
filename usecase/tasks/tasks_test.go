package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dailytasks/backend/domain"
	"github.com/dailytasks/backend/internal/state"
	appLogger "github.com/dailytasks/backend/pkg/logger"
)

func newTestUseCase() (*UseCase, *state.Container) {
	container := state.NewContainer()
	container.ReplaceAll(nil, domain.DefaultLists())
	uc := New(container, nil)
	uc.now = func() time.Time {
		return time.Date(2026, time.March, 11, 15, 30, 0, 0, time.UTC)
	}
	return uc, container
}

func TestCreateAssignsIdentityFields(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	first, err := uc.Create(ctx, CreateTaskInput{Title: "Write report", Priority: domain.PriorityHigh, ListID: "work"})
	require.NoError(t, err)
	second, err := uc.Create(ctx, CreateTaskInput{Title: "Buy milk"})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, 0, first.Order)
	assert.Equal(t, 1, second.Order)
	assert.Equal(t, domain.DefaultListID, second.ListID)
	assert.Equal(t, domain.PriorityNone, second.Priority)
}

func TestCreateRejectsBlankTitle(t *testing.T) {
	uc, container := newTestUseCase()

	_, err := uc.Create(context.Background(), CreateTaskInput{Title: "   "})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Zero(t, container.TaskCount())
}

func TestCreateRejectsUnknownList(t *testing.T) {
	uc, container := newTestUseCase()

	_, err := uc.Create(context.Background(), CreateTaskInput{Title: "stray", ListID: "no-such-list"})
	assert.ErrorIs(t, err, domain.ErrListNotFound)
	assert.Zero(t, container.TaskCount())
}

func TestCreateNormalizesUnknownPriority(t *testing.T) {
	uc, _ := newTestUseCase()

	task, err := uc.Create(context.Background(), CreateTaskInput{Title: "odd", Priority: "blazing"})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityNone, task.Priority)
}

func TestUpdatePreservesIdentity(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()
	created, err := uc.Create(ctx, CreateTaskInput{Title: "before", ListID: "work"})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, created.ID, UpdateTaskInput{
		Title:    "after",
		Priority: domain.PriorityLow,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, created.Order, updated.Order)
	assert.Equal(t, "after", updated.Title)
	// Blank list id keeps the current list.
	assert.Equal(t, "work", updated.ListID)
}

func TestUpdateRejectsUnknownList(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()
	created, err := uc.Create(ctx, CreateTaskInput{Title: "stay put", ListID: "work"})
	require.NoError(t, err)

	_, err = uc.Update(ctx, created.ID, UpdateTaskInput{Title: "moved", ListID: "no-such-list"})
	assert.ErrorIs(t, err, domain.ErrListNotFound)
}

func TestUpdateMissingTask(t *testing.T) {
	uc, _ := newTestUseCase()
	_, err := uc.Update(context.Background(), "missing", UpdateTaskInput{Title: "x"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestToggleInvariant(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()
	created, err := uc.Create(ctx, CreateTaskInput{Title: "flip me"})
	require.NoError(t, err)

	done, err := uc.Toggle(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)

	reopened, err := uc.Toggle(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, reopened.Completed)
	assert.Nil(t, reopened.CompletedAt)
}

func TestDelete(t *testing.T) {
	uc, container := newTestUseCase()
	ctx := context.Background()
	created, err := uc.Create(ctx, CreateTaskInput{Title: "doomed"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.Zero(t, container.TaskCount())
	assert.ErrorIs(t, uc.Delete(ctx, created.ID), domain.ErrTaskNotFound)
}

func TestCreateList(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	list, err := uc.CreateList(ctx, CreateListInput{Name: "  Errands  "})
	require.NoError(t, err)
	assert.Equal(t, "Errands", list.Name)
	assert.Equal(t, defaultListIcon, list.Icon)
	assert.Equal(t, defaultListColor, list.Color)
	assert.Equal(t, 4, list.Order)

	_, err = uc.CreateList(ctx, CreateListInput{Name: ""})
	assert.ErrorIs(t, err, domain.ErrEmptyListName)
}

func TestMutationLogsCarryRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	container := state.NewContainer()
	container.ReplaceAll(nil, domain.DefaultLists())
	uc := New(container, zap.New(core))

	ctx := appLogger.ContextWithRequestID(context.Background(), "req-7")
	_, err := uc.Create(ctx, CreateTaskInput{Title: "traced"})
	require.NoError(t, err)

	entries := logs.FilterMessage("task created").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-7", entries[0].ContextMap()["request_id"])
}
