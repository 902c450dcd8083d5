package transport

import (
	"time"

	"github.com/dailytasks/backend/domain"
)

// TaskRequest is the create/update payload for a task. DueDate accepts
// RFC 3339 or a bare calendar date.
type TaskRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Priority    string           `json:"priority"`
	DueDate     string           `json:"due_date"`
	Tags        []string         `json:"tags"`
	ListID      string           `json:"list_id"`
	Subtasks    []domain.Subtask `json:"subtasks"`
}

// ParseDueDate resolves the optional due date field. A blank value means no
// due date; an unparseable one is reported to the caller instead of being
// silently dropped.
func (r TaskRequest) ParseDueDate() (*time.Time, error) {
	if r.DueDate == "" {
		return nil, nil
	}
	if parsed, err := time.Parse(time.RFC3339, r.DueDate); err == nil {
		return &parsed, nil
	}
	parsed, err := time.Parse("2006-01-02", r.DueDate)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// ListRequest is the create payload for a list.
type ListRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}
