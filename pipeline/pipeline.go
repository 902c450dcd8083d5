// Package pipeline implements the pure derivation core of the application:
// given the raw task and list collections plus the active view and filter
// record, it produces the visible task sequence, the aggregate statistics
// and the sidebar counts. Every function is deterministic and free of side
// effects; state ownership and persistence live elsewhere.
package pipeline

import (
	"time"

	"golang.org/x/text/language"

	"github.com/dailytasks/backend/domain"
)

// Input is one complete snapshot of everything a derivation depends on.
type Input struct {
	Tasks   []domain.Task
	Lists   []domain.TaskList
	View    string
	Filters domain.Filters
	Now     time.Time
}

// Output carries the three derived products. Stats and Counts are always
// taken over the full unfiltered collection.
type Output struct {
	Tasks  []domain.Task `json:"tasks"`
	Stats  domain.Stats  `json:"stats"`
	Counts domain.Counts `json:"counts"`
}

// Pipeline composes the filter and sort engines with the aggregator.
type Pipeline struct {
	cal    Calendar
	sorter *Sorter
	agg    *Aggregator
}

// New builds a pipeline using the given calendar rules and collation language.
func New(cal Calendar, tag language.Tag) *Pipeline {
	return &Pipeline{
		cal:    cal,
		sorter: NewSorter(tag),
		agg:    NewAggregator(cal),
	}
}

// Derive runs the full pipeline over one input snapshot.
func (p *Pipeline) Derive(in Input) Output {
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	visible := Filter(in.Tasks, in.View, in.Filters, now, p.cal)
	visible = p.sorter.Sort(visible, in.Filters.SortBy, in.Filters.SortOrder)

	return Output{
		Tasks:  visible,
		Stats:  p.agg.Stats(in.Tasks, now),
		Counts: p.agg.Counts(in.Tasks, in.Lists, now),
	}
}

// Calendar exposes the pipeline's calendar rules to collaborators that need
// matching day/week boundaries.
func (p *Pipeline) Calendar() Calendar {
	return p.cal
}
