package domain

// Stats is the aggregate dashboard record derived from the full task
// collection. It is recomputed on every read and never persisted.
type Stats struct {
	Total             int `json:"total"`
	Completed         int `json:"completed"`
	Active            int `json:"active"`
	CompletedToday    int `json:"completed_today"`
	CompletedThisWeek int `json:"completed_this_week"`
	Overdue           int `json:"overdue"`
	DueToday          int `json:"due_today"`
	DueThisWeek       int `json:"due_this_week"`
	// CompletionRate is an integer percentage in [0, 100]; 0 when Total is 0.
	CompletionRate int `json:"completion_rate"`
}

// Counts maps each smart-view token and each list id to its sidebar badge
// count. Counts are always taken over the full collection, independent of
// the active view and filters.
type Counts map[string]int
