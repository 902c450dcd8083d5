// Package state owns the in-memory task and list collections. It is the
// single state owner of the application: handlers mutate it, the derivation
// pipeline reads immutable snapshots of it, and the mirror service persists
// it. The container itself never derives anything.
package state

import (
	"slices"
	"sync"

	"github.com/dailytasks/backend/domain"
)

// Snapshot is a point-in-time copy of both collections. Revision increases
// monotonically with every mutation, so equal revisions imply identical
// collections.
type Snapshot struct {
	Tasks    []domain.Task
	Lists    []domain.TaskList
	Revision uint64
}

// Listener is notified after every mutation with the new revision. Listeners
// run synchronously on the mutating goroutine and must not call back into
// the container's write methods.
type Listener func(revision uint64)

// Container holds the collections behind a RWMutex. The logical model is a
// single writer, but the HTTP layer may read and write from any goroutine.
type Container struct {
	mu        sync.RWMutex
	tasks     []domain.Task
	lists     []domain.TaskList
	revision  uint64
	listeners []Listener
}

func NewContainer() *Container {
	return &Container{}
}

// Subscribe registers a change listener. There is no unsubscribe; listeners
// live as long as the container.
func (c *Container) Subscribe(fn Listener) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Snapshot returns copies of both collections with the current revision.
func (c *Container) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		Tasks:    slices.Clone(c.tasks),
		Lists:    slices.Clone(c.lists),
		Revision: c.revision,
	}
}

// ReplaceAll installs freshly loaded collections, e.g. at startup.
func (c *Container) ReplaceAll(tasks []domain.Task, lists []domain.TaskList) {
	c.mu.Lock()
	c.tasks = slices.Clone(tasks)
	c.lists = slices.Clone(lists)
	rev, listeners := c.bump()
	c.mu.Unlock()
	notify(listeners, rev)
}

// AddTask appends the task, assigning its manual-order slot as the current
// collection length. Returns the stored value.
func (c *Container) AddTask(task domain.Task) domain.Task {
	c.mu.Lock()
	task.Order = len(c.tasks)
	c.tasks = append(c.tasks, task)
	rev, listeners := c.bump()
	c.mu.Unlock()
	notify(listeners, rev)
	return task
}

// UpdateTask applies mutate to the task with the given id in place and
// returns the updated value. The task's identity fields are the caller's
// responsibility to leave alone.
func (c *Container) UpdateTask(id string, mutate func(*domain.Task)) (domain.Task, error) {
	c.mu.Lock()
	idx := c.taskIndex(id)
	if idx < 0 {
		c.mu.Unlock()
		return domain.Task{}, domain.ErrTaskNotFound
	}
	mutate(&c.tasks[idx])
	updated := c.tasks[idx]
	rev, listeners := c.bump()
	c.mu.Unlock()
	notify(listeners, rev)
	return updated, nil
}

// DeleteTask removes the task with the given id. Remaining tasks keep their
// positions and their Order values; order slots are never reassigned.
func (c *Container) DeleteTask(id string) error {
	c.mu.Lock()
	idx := c.taskIndex(id)
	if idx < 0 {
		c.mu.Unlock()
		return domain.ErrTaskNotFound
	}
	c.tasks = slices.Delete(c.tasks, idx, idx+1)
	rev, listeners := c.bump()
	c.mu.Unlock()
	notify(listeners, rev)
	return nil
}

// AddList appends a list, rejecting duplicate ids.
func (c *Container) AddList(list domain.TaskList) (domain.TaskList, error) {
	c.mu.Lock()
	for i := range c.lists {
		if c.lists[i].ID == list.ID {
			c.mu.Unlock()
			return domain.TaskList{}, domain.ErrListExists
		}
	}
	list.Order = len(c.lists)
	c.lists = append(c.lists, list)
	rev, listeners := c.bump()
	c.mu.Unlock()
	notify(listeners, rev)
	return list, nil
}

// HasList reports whether a list with the given id exists.
func (c *Container) HasList(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.lists {
		if c.lists[i].ID == id {
			return true
		}
	}
	return false
}

// TaskCount returns the current number of tasks.
func (c *Container) TaskCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tasks)
}

// Revision returns the current revision without copying the collections.
func (c *Container) Revision() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.revision
}

func (c *Container) taskIndex(id string) int {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// bump must be called with the write lock held.
func (c *Container) bump() (uint64, []Listener) {
	c.revision++
	return c.revision, slices.Clone(c.listeners)
}

func notify(listeners []Listener, revision uint64) {
	for _, fn := range listeners {
		fn(revision)
	}
}
