package pipeline

import (
	"strings"
	"time"

	"github.com/dailytasks/backend/domain"
)

// Filter narrows the full task collection down to the subsequence matching
// the active view and every set filter, preserving input order. The input
// slice is never mutated.
func Filter(tasks []domain.Task, view string, f domain.Filters, now time.Time, cal Calendar) []domain.Task {
	matchView := viewPredicate(view, now, cal)
	search := strings.ToLower(f.Search)

	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if !matchView(&t) {
			continue
		}
		if search != "" && !matchesSearch(&t, search) {
			continue
		}
		if f.Priority != "" && f.Priority != domain.FilterAll && string(t.Priority) != f.Priority {
			continue
		}
		if f.Status != "" && f.Status != domain.FilterAll && t.Completed != (f.Status == domain.StatusCompleted) {
			continue
		}
		if f.ListID != "" && f.ListID != domain.FilterAll && t.ListID != f.ListID {
			continue
		}
		out = append(out, t)
	}
	return out
}

// viewPredicate resolves the single view branch: one of the reserved smart
// views, or exact list-id membership for anything else.
func viewPredicate(view string, now time.Time, cal Calendar) func(*domain.Task) bool {
	switch view {
	case domain.ViewToday:
		return func(t *domain.Task) bool {
			return !t.Completed && t.HasDueDate() && cal.SameDay(*t.DueDate, now)
		}
	case domain.ViewUpcoming:
		return func(t *domain.Task) bool {
			return !t.Completed && t.HasDueDate() && !cal.BeforeDay(*t.DueDate, now)
		}
	case domain.ViewAll:
		return func(t *domain.Task) bool { return !t.Completed }
	case domain.ViewCompleted:
		return func(t *domain.Task) bool { return t.Completed }
	default:
		return func(t *domain.Task) bool { return t.ListID == view }
	}
}

// matchesSearch does a case-insensitive substring match against title and
// description. A missing description never matches.
func matchesSearch(t *domain.Task, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(t.Title), loweredQuery) {
		return true
	}
	return t.Description != "" && strings.Contains(strings.ToLower(t.Description), loweredQuery)
}
