package monitor

import "time"

type Status struct {
	Store       bool      `json:"store"`
	StoredTasks int       `json:"stored_tasks"`
	StoredLists int       `json:"stored_lists"`
	Dirty       bool      `json:"dirty"`
	LastCheck   time.Time `json:"last_check"`
}
