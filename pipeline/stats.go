package pipeline

import (
	"math"
	"time"

	"github.com/dailytasks/backend/domain"
)

// Aggregator derives dashboard statistics and sidebar counts from the full
// task collection. It never looks at the active view or filters.
type Aggregator struct {
	cal Calendar
}

func NewAggregator(cal Calendar) *Aggregator {
	return &Aggregator{cal: cal}
}

// Stats computes the aggregate record for the collection relative to now.
func (a *Aggregator) Stats(tasks []domain.Task, now time.Time) domain.Stats {
	var s domain.Stats
	s.Total = len(tasks)

	for i := range tasks {
		t := &tasks[i]
		if t.Completed {
			s.Completed++
			if t.CompletedAt != nil {
				if a.cal.SameDay(*t.CompletedAt, now) {
					s.CompletedToday++
				}
				if a.cal.InWeekOf(*t.CompletedAt, now) {
					s.CompletedThisWeek++
				}
			}
			continue
		}

		s.Active++
		if !t.HasDueDate() {
			continue
		}
		due := *t.DueDate
		switch {
		case a.cal.SameDay(due, now):
			s.DueToday++
		case a.cal.BeforeDay(due, now):
			s.Overdue++
		}
		if a.cal.InWeekOf(due, now) {
			s.DueThisWeek++
		}
	}

	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}

// Counts computes the sidebar badge map: one entry per smart view plus one
// per list. Smart-view entries reuse the filter engine's view predicates;
// list entries count non-completed tasks only.
func (a *Aggregator) Counts(tasks []domain.Task, lists []domain.TaskList, now time.Time) domain.Counts {
	counts := make(domain.Counts, len(lists)+4)
	for _, view := range []string{domain.ViewToday, domain.ViewUpcoming, domain.ViewAll, domain.ViewCompleted} {
		match := viewPredicate(view, now, a.cal)
		n := 0
		for i := range tasks {
			if match(&tasks[i]) {
				n++
			}
		}
		counts[view] = n
	}

	for _, list := range lists {
		n := 0
		for i := range tasks {
			if !tasks[i].Completed && tasks[i].ListID == list.ID {
				n++
			}
		}
		counts[list.ID] = n
	}
	return counts
}
