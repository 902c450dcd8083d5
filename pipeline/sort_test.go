package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/dailytasks/backend/domain"
)

func newTestSorter() *Sorter { return NewSorter(language.English) }

func TestSortPriorityAscending(t *testing.T) {
	tasks := []domain.Task{
		{ID: "low", Priority: domain.PriorityLow},
		{ID: "high", Priority: domain.PriorityHigh},
		{ID: "none", Priority: domain.PriorityNone},
		{ID: "medium", Priority: domain.PriorityMedium},
	}

	got := newTestSorter().Sort(tasks, domain.SortPriority, domain.SortAsc)
	assert.Equal(t, []string{"high", "medium", "low", "none"}, taskIDs(got))
}

func TestSortPriorityUnknownValueRanksLast(t *testing.T) {
	tasks := []domain.Task{
		{ID: "bogus", Priority: "urgent-ish"},
		{ID: "none", Priority: domain.PriorityNone},
		{ID: "high", Priority: domain.PriorityHigh},
	}

	got := newTestSorter().Sort(tasks, domain.SortPriority, domain.SortAsc)
	assert.Equal(t, []string{"high", "none", "bogus"}, taskIDs(got))
}

func TestSortDueDateMissingValues(t *testing.T) {
	tasks := []domain.Task{
		{ID: "undated"},
		{ID: "tomorrow", DueDate: dayOffset(1)},
		{ID: "yesterday", DueDate: dayOffset(-1)},
	}
	s := newTestSorter()

	asc := s.Sort(tasks, domain.SortDueDate, domain.SortAsc)
	assert.Equal(t, []string{"yesterday", "tomorrow", "undated"}, taskIDs(asc))

	// Negating the raw comparator moves undated tasks to the front.
	desc := s.Sort(tasks, domain.SortDueDate, domain.SortDesc)
	assert.Equal(t, []string{"undated", "tomorrow", "yesterday"}, taskIDs(desc))
}

func TestSortDueDateDescendingUndatedFirst(t *testing.T) {
	tasks := []domain.Task{
		{ID: "undated"},
		{ID: "tomorrow", DueDate: dayOffset(1)},
	}

	got := newTestSorter().Sort(tasks, domain.SortDueDate, domain.SortDesc)
	assert.Equal(t, []string{"undated", "tomorrow"}, taskIDs(got))
}

func TestSortStability(t *testing.T) {
	due := dayOffset(2)
	tasks := []domain.Task{
		{ID: "first", DueDate: due},
		{ID: "second", DueDate: due},
		{ID: "third", DueDate: due},
	}
	s := newTestSorter()

	for _, order := range []domain.SortOrder{domain.SortAsc, domain.SortDesc} {
		got := s.Sort(tasks, domain.SortDueDate, order)
		assert.Equal(t, []string{"first", "second", "third"}, taskIDs(got), "order %s", order)
	}
}

func TestSortCreatedAt(t *testing.T) {
	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		{ID: "newest", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "oldest", CreatedAt: base},
		{ID: "middle", CreatedAt: base.Add(time.Hour)},
	}
	s := newTestSorter()

	asc := s.Sort(tasks, domain.SortCreatedAt, domain.SortAsc)
	assert.Equal(t, []string{"oldest", "middle", "newest"}, taskIDs(asc))

	desc := s.Sort(tasks, domain.SortCreatedAt, domain.SortDesc)
	assert.Equal(t, []string{"newest", "middle", "oldest"}, taskIDs(desc))
}

func TestSortTitleLocaleAware(t *testing.T) {
	tasks := []domain.Task{
		{ID: "b", Title: "banana"},
		{ID: "A", Title: "Apple"},
		{ID: "a", Title: "apricot"},
	}

	got := newTestSorter().Sort(tasks, domain.SortTitle, domain.SortAsc)
	// Case differences must not split the alphabet the way byte comparison would.
	assert.Equal(t, []string{"A", "a", "b"}, taskIDs(got))
}

func TestSortManualIsIdentity(t *testing.T) {
	tasks := []domain.Task{
		{ID: "c", Order: 2}, {ID: "a", Order: 0}, {ID: "b", Order: 1},
	}

	// Manual relies on collection position; the Order field is not consulted.
	got := newTestSorter().Sort(tasks, domain.SortManual, domain.SortDesc)
	assert.Equal(t, []string{"c", "a", "b"}, taskIDs(got))
}

func TestSortUnknownKeyKeepsOrder(t *testing.T) {
	tasks := []domain.Task{{ID: "x"}, {ID: "y"}}

	got := newTestSorter().Sort(tasks, "velocity", domain.SortAsc)
	assert.Equal(t, []string{"x", "y"}, taskIDs(got))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	tasks := []domain.Task{
		{ID: "late", DueDate: dayOffset(5)},
		{ID: "early", DueDate: dayOffset(1)},
	}

	_ = newTestSorter().Sort(tasks, domain.SortDueDate, domain.SortAsc)
	assert.Equal(t, []string{"late", "early"}, taskIDs(tasks))
}
