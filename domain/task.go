package domain

import "time"

// Priority classifies how urgent a task is. Unknown values are tolerated
// by the derivation pipeline and rank after PriorityNone.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
	PriorityNone   Priority = "none"
)

// Valid reports whether p is one of the four recognized priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow, PriorityNone:
		return true
	}
	return false
}

// Subtask is an independent checklist entry under a task. Its completion
// state never rolls up into the parent's Completed flag.
type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Task is a single unit of work owned by exactly one list.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	ListID      string     `json:"list_id"`
	Subtasks    []Subtask  `json:"subtasks,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	// CompletedAt is set exactly when Completed flips to true and cleared
	// when it flips back.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Order is the append position assigned at creation. It is persisted
	// for manual ordering but never consulted by the sort engine.
	Order int `json:"order"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Completed
}

// HasDueDate reports whether the task carries a due date.
func (t *Task) HasDueDate() bool {
	return t != nil && t.DueDate != nil && !t.DueDate.IsZero()
}
