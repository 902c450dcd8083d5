package pipeline

import (
	"slices"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dailytasks/backend/domain"
)

// priorityRank orders recognized priorities most-urgent first. Unrecognized
// values sort after everything instead of failing.
func priorityRank(p domain.Priority) int {
	switch p {
	case domain.PriorityHigh:
		return 0
	case domain.PriorityMedium:
		return 1
	case domain.PriorityLow:
		return 2
	case domain.PriorityNone:
		return 3
	default:
		return 4
	}
}

// Sorter orders task sequences with locale-aware title comparison.
type Sorter struct {
	mu  sync.Mutex
	col *collate.Collator
}

// NewSorter builds a Sorter collating titles for the given language tag.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{col: collate.New(tag)}
}

// Sort returns a newly ordered copy of tasks. Manual ordering is the
// identity: the input sequence (collection insertion order) is returned
// as-is. Descending negates the raw comparator uniformly, which also moves
// undated tasks to the front of a dueDate sort.
func (s *Sorter) Sort(tasks []domain.Task, key domain.SortKey, order domain.SortOrder) []domain.Task {
	out := slices.Clone(tasks)
	if key == domain.SortManual || key == "" {
		return out
	}

	cmp := s.comparator(key)
	if order == domain.SortDesc {
		inner := cmp
		cmp = func(a, b *domain.Task) int { return -inner(a, b) }
	}

	// The collator is stateful, so a concurrent Sort over the title key
	// must be serialized.
	s.mu.Lock()
	defer s.mu.Unlock()
	slices.SortStableFunc(out, func(a, b domain.Task) int { return cmp(&a, &b) })
	return out
}

func (s *Sorter) comparator(key domain.SortKey) func(a, b *domain.Task) int {
	switch key {
	case domain.SortDueDate:
		return compareDueDate
	case domain.SortPriority:
		return func(a, b *domain.Task) int {
			return priorityRank(a.Priority) - priorityRank(b.Priority)
		}
	case domain.SortCreatedAt:
		return func(a, b *domain.Task) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	case domain.SortTitle:
		return func(a, b *domain.Task) int {
			return s.col.CompareString(a.Title, b.Title)
		}
	default:
		// Unknown key behaves like manual: every pair ties, the stable
		// sort keeps input order.
		return func(a, b *domain.Task) int { return 0 }
	}
}

// compareDueDate places undated tasks after every dated task; dated tasks
// compare by timestamp ascending.
func compareDueDate(a, b *domain.Task) int {
	switch {
	case !a.HasDueDate() && !b.HasDueDate():
		return 0
	case !a.HasDueDate():
		return 1
	case !b.HasDueDate():
		return -1
	default:
		return a.DueDate.Compare(*b.DueDate)
	}
}
