package domain

// TaskList is a named grouping of tasks. Color and Icon are display hints
// passed through untouched by the backend.
type TaskList struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Order int    `json:"order"`
}

// Reserved smart-view tokens. Any other view value is treated as a list id.
const (
	ViewToday     = "today"
	ViewUpcoming  = "upcoming"
	ViewAll       = "all"
	ViewCompleted = "completed"
)

// DefaultListID is the list new tasks fall into when none is given.
const DefaultListID = "personal"

// DefaultLists returns the built-in lists seeded on first run. The slice is
// freshly allocated so callers may persist or mutate it.
func DefaultLists() []TaskList {
	return []TaskList{
		{ID: "personal", Name: "Personal", Color: "#3b82f6", Icon: "👤", Order: 0},
		{ID: "work", Name: "Work", Color: "#8b5cf6", Icon: "💼", Order: 1},
		{ID: "shopping", Name: "Shopping", Color: "#10b981", Icon: "🛒", Order: 2},
		{ID: "health", Name: "Health", Color: "#f59e0b", Icon: "💪", Order: 3},
	}
}
