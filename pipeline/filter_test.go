package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailytasks/backend/domain"
)

var testCal = Calendar{Location: time.UTC, WeekStart: time.Sunday}

// Wednesday, 2026-03-11. The surrounding Sunday-start week is Mar 8 - Mar 14.
var testNow = time.Date(2026, time.March, 11, 15, 30, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func dayOffset(days int) *time.Time {
	return datePtr(testNow.AddDate(0, 0, days))
}

func TestFilterViewBranches(t *testing.T) {
	tasks := []domain.Task{
		{ID: "due-today", ListID: "work", DueDate: dayOffset(0)},
		{ID: "due-tomorrow", ListID: "work", DueDate: dayOffset(1)},
		{ID: "due-yesterday", ListID: "personal", DueDate: dayOffset(-1)},
		{ID: "undated", ListID: "personal"},
		{ID: "done", ListID: "work", Completed: true, DueDate: dayOffset(0)},
	}

	cases := []struct {
		view string
		want []string
	}{
		{domain.ViewToday, []string{"due-today"}},
		{domain.ViewUpcoming, []string{"due-today", "due-tomorrow"}},
		{domain.ViewAll, []string{"due-today", "due-tomorrow", "due-yesterday", "undated"}},
		{domain.ViewCompleted, []string{"done"}},
		{"work", []string{"due-today", "due-tomorrow", "done"}},
		{"no-such-list", nil},
	}

	for _, tc := range cases {
		t.Run(tc.view, func(t *testing.T) {
			got := Filter(tasks, tc.view, domain.DefaultFilters(), testNow, testCal)
			assert.Equal(t, tc.want, taskIDs(got))
		})
	}
}

func TestFilterViewContainment(t *testing.T) {
	// today ⊆ upcoming ⊆ all, and completed is disjoint from all three.
	tasks := []domain.Task{
		{ID: "a", DueDate: dayOffset(0)},
		{ID: "b", DueDate: dayOffset(3)},
		{ID: "c", DueDate: dayOffset(-2)},
		{ID: "d"},
		{ID: "e", Completed: true, DueDate: dayOffset(0)},
	}
	f := domain.DefaultFilters()

	today := taskIDs(Filter(tasks, domain.ViewToday, f, testNow, testCal))
	upcoming := taskIDs(Filter(tasks, domain.ViewUpcoming, f, testNow, testCal))
	all := taskIDs(Filter(tasks, domain.ViewAll, f, testNow, testCal))
	completed := taskIDs(Filter(tasks, domain.ViewCompleted, f, testNow, testCal))

	assert.Subset(t, upcoming, today)
	assert.Subset(t, all, upcoming)
	for _, id := range completed {
		assert.NotContains(t, all, id)
		assert.NotContains(t, upcoming, id)
		assert.NotContains(t, today, id)
	}
}

func TestFilterSearch(t *testing.T) {
	tasks := []domain.Task{
		{ID: "title-hit", Title: "Write REPORT draft"},
		{ID: "desc-hit", Title: "Misc", Description: "attach the report figures"},
		{ID: "no-desc", Title: "Misc"},
		{ID: "miss", Title: "Groceries", Description: "milk"},
	}
	f := domain.DefaultFilters()
	f.Search = "Report"

	got := Filter(tasks, domain.ViewAll, f, testNow, testCal)
	assert.Equal(t, []string{"title-hit", "desc-hit"}, taskIDs(got))
}

func TestFilterPriorityStatusList(t *testing.T) {
	tasks := []domain.Task{
		{ID: "1", Priority: domain.PriorityHigh, ListID: "work"},
		{ID: "2", Priority: domain.PriorityLow, ListID: "work", Completed: true},
		{ID: "3", Priority: domain.PriorityHigh, ListID: "personal"},
		{ID: "4", Priority: "bogus", ListID: "work"},
	}

	f := domain.DefaultFilters()
	f.Priority = "high"
	got := Filter(tasks, "work", f, testNow, testCal)
	assert.Equal(t, []string{"1"}, taskIDs(got))

	f = domain.DefaultFilters()
	f.Status = domain.StatusCompleted
	got = Filter(tasks, "work", f, testNow, testCal)
	assert.Equal(t, []string{"2"}, taskIDs(got))

	f = domain.DefaultFilters()
	f.Status = domain.StatusActive
	got = Filter(tasks, "work", f, testNow, testCal)
	assert.Equal(t, []string{"1", "4"}, taskIDs(got))

	// The list filter composes with a list view instead of replacing it.
	f = domain.DefaultFilters()
	f.ListID = "personal"
	got = Filter(tasks, "work", f, testNow, testCal)
	assert.Empty(t, got)
}

func TestFilterIdempotence(t *testing.T) {
	tasks := []domain.Task{
		{ID: "1", Title: "alpha", Priority: domain.PriorityHigh, ListID: "work", DueDate: dayOffset(0)},
		{ID: "2", Title: "beta", Priority: domain.PriorityLow, ListID: "work", DueDate: dayOffset(0)},
		{ID: "3", Title: "alpha two", Priority: domain.PriorityHigh, ListID: "personal"},
	}
	f := domain.DefaultFilters()
	f.Search = "alpha"

	once := Filter(tasks, domain.ViewAll, f, testNow, testCal)
	twice := Filter(once, domain.ViewAll, f, testNow, testCal)
	assert.Equal(t, once, twice)
}

func TestFilterScenarioTodaySearch(t *testing.T) {
	tasks := []domain.Task{
		{ID: "active", Title: "Write report", DueDate: dayOffset(0)},
		{ID: "done", Title: "Write report", DueDate: dayOffset(0), Completed: true},
	}
	f := domain.DefaultFilters()
	f.Search = "report"

	got := Filter(tasks, domain.ViewToday, f, testNow, testCal)
	require.Len(t, got, 1)
	assert.Equal(t, "active", got[0].ID)
}

func TestFilterPreservesInputOrderAndInput(t *testing.T) {
	tasks := []domain.Task{
		{ID: "z"}, {ID: "a", Completed: true}, {ID: "m"}, {ID: "b"},
	}
	snapshot := taskIDs(tasks)

	got := Filter(tasks, domain.ViewAll, domain.DefaultFilters(), testNow, testCal)
	assert.Equal(t, []string{"z", "m", "b"}, taskIDs(got))
	assert.Equal(t, snapshot, taskIDs(tasks))
}

func taskIDs(tasks []domain.Task) []string {
	if len(tasks) == 0 {
		return nil
	}
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}
