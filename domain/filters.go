package domain

// SortKey selects the comparator used by the sort engine.
type SortKey string

const (
	SortManual    SortKey = "manual"
	SortDueDate   SortKey = "dueDate"
	SortPriority  SortKey = "priority"
	SortCreatedAt SortKey = "createdAt"
	SortTitle     SortKey = "title"
)

// SortOrder is the comparator direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FilterAll is the wildcard value for the priority, status and list filters.
const FilterAll = "all"

// Status values accepted by the status filter.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Filters is the query record narrowing and ordering the visible task set.
// It is never persisted. Blank Priority, Status and ListID behave like
// FilterAll; callers should still use DefaultFilters as a base.
type Filters struct {
	Search    string    `json:"search"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	ListID    string    `json:"list_id"`
	Tags      []string  `json:"tags,omitempty"`
	SortBy    SortKey   `json:"sort_by"`
	SortOrder SortOrder `json:"sort_order"`
}

// DefaultFilters matches everything and keeps manual ordering.
func DefaultFilters() Filters {
	return Filters{
		Priority:  FilterAll,
		Status:    FilterAll,
		ListID:    FilterAll,
		SortBy:    SortManual,
		SortOrder: SortAsc,
	}
}
