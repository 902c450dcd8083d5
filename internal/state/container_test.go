package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailytasks/backend/domain"
)

func TestContainerAddTaskAssignsOrder(t *testing.T) {
	c := NewContainer()

	first := c.AddTask(domain.Task{ID: "1", Title: "first"})
	second := c.AddTask(domain.Task{ID: "2", Title: "second"})

	assert.Equal(t, 0, first.Order)
	assert.Equal(t, 1, second.Order)
}

func TestContainerOrderSurvivesDeletion(t *testing.T) {
	c := NewContainer()
	c.AddTask(domain.Task{ID: "1"})
	c.AddTask(domain.Task{ID: "2"})
	c.AddTask(domain.Task{ID: "3"})

	require.NoError(t, c.DeleteTask("2"))

	snap := c.Snapshot()
	require.Len(t, snap.Tasks, 2)
	assert.Equal(t, 0, snap.Tasks[0].Order)
	assert.Equal(t, 2, snap.Tasks[1].Order)
}

func TestContainerUpdateTask(t *testing.T) {
	c := NewContainer()
	c.AddTask(domain.Task{ID: "1", Title: "before"})

	updated, err := c.UpdateTask("1", func(task *domain.Task) {
		task.Title = "after"
	})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Title)

	_, err = c.UpdateTask("missing", func(task *domain.Task) {})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestContainerDeleteMissingTask(t *testing.T) {
	c := NewContainer()
	assert.ErrorIs(t, c.DeleteTask("nope"), domain.ErrTaskNotFound)
}

func TestContainerRevisionAndNotification(t *testing.T) {
	c := NewContainer()
	var seen []uint64
	c.Subscribe(func(rev uint64) { seen = append(seen, rev) })

	c.AddTask(domain.Task{ID: "1"})
	_, err := c.UpdateTask("1", func(task *domain.Task) { task.Completed = true })
	require.NoError(t, err)
	require.NoError(t, c.DeleteTask("1"))

	assert.Equal(t, []uint64{1, 2, 3}, seen)
	assert.Equal(t, uint64(3), c.Revision())
}

func TestContainerFailedMutationDoesNotNotify(t *testing.T) {
	c := NewContainer()
	calls := 0
	c.Subscribe(func(uint64) { calls++ })

	_ = c.DeleteTask("missing")
	assert.Zero(t, calls)
}

func TestContainerSnapshotIsolation(t *testing.T) {
	c := NewContainer()
	c.AddTask(domain.Task{ID: "1", Title: "original"})

	snap := c.Snapshot()
	snap.Tasks[0].Title = "mutated copy"

	fresh := c.Snapshot()
	assert.Equal(t, "original", fresh.Tasks[0].Title)
	assert.Equal(t, snap.Revision, fresh.Revision)
}

func TestContainerAddListRejectsDuplicates(t *testing.T) {
	c := NewContainer()
	c.ReplaceAll(nil, domain.DefaultLists())

	_, err := c.AddList(domain.TaskList{ID: "work", Name: "Work again"})
	assert.ErrorIs(t, err, domain.ErrListExists)

	added, err := c.AddList(domain.TaskList{ID: "errands", Name: "Errands"})
	require.NoError(t, err)
	assert.Equal(t, 4, added.Order)
}
