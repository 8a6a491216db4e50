// Handles summations over commits.
package tally

import (
	"cmp"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Aggregate holds the running totals for one author.
//
// The touched-file set is the union of the per-commit file sets, so its size
// can be less than the sum of the per-commit file counts. Delta is always
// derived from the added and removed totals, never stored.
type Aggregate struct {
	Author  string
	Commits int
	Added   int
	Removed int
	files   map[string]struct{}
}

func (a *Aggregate) Delta() int {
	return a.Added - a.Removed
}

func (a *Aggregate) Files() int {
	return len(a.files)
}

func (a *Aggregate) touch(path string) {
	if a.files == nil {
		a.files = map[string]struct{}{}
	}

	a.files[path] = struct{}{}
}

// Table maps author identities to their aggregates. Iteration order is
// determined solely by the active sort spec.
type Table struct {
	aggregates map[string]*Aggregate
	spec       Spec
}

func NewTable() *Table {
	return &Table{
		aggregates: map[string]*Aggregate{},
		spec:       DefaultSpec,
	}
}

// GetOrCreate returns the aggregate for the given author, creating an empty
// one if the author has not been seen. Lookups never create entries through
// any other path.
func (t *Table) GetOrCreate(author string) *Aggregate {
	agg, ok := t.aggregates[author]
	if !ok {
		agg = &Aggregate{Author: author}
		t.aggregates[author] = agg
	}

	return agg
}

func (t *Table) Len() int {
	return len(t.aggregates)
}

// Merge combines two tables into a new one. Per author, line totals sum,
// commit counts sum, and file sets union; authors present on only one side
// pass through unchanged. Merge is commutative and associative in every
// total, so tables from multiple repositories can combine in any order.
func (t *Table) Merge(other *Table) *Table {
	merged := NewTable()
	merged.spec = t.spec

	for _, side := range []*Table{t, other} {
		for author, agg := range side.aggregates {
			into := merged.GetOrCreate(author)
			into.Commits += agg.Commits
			into.Added += agg.Added
			into.Removed += agg.Removed

			for path := range agg.files {
				into.touch(path)
			}
		}
	}

	return merged
}

// SortBy sets the active sort spec. It affects only future iteration order,
// never the stored totals.
func (t *Table) SortBy(spec Spec) {
	t.spec = spec
}

// Authors iterates over the aggregates in the order implied by the active
// sort spec. Ties on the primary key break by author identity, ascending,
// so output is deterministic.
func (t *Table) Authors() iter.Seq[*Aggregate] {
	sorted := slices.SortedFunc(maps.Values(t.aggregates), t.compare)

	return func(yield func(*Aggregate) bool) {
		for _, agg := range sorted {
			if !yield(agg) {
				return
			}
		}
	}
}

func (t *Table) compare(a, b *Aggregate) int {
	var c int
	switch t.spec.Field {
	case ByAuthor:
		c = strings.Compare(a.Author, b.Author)
	case ByFiles:
		c = cmp.Compare(a.Files(), b.Files())
	case ByCommits:
		c = cmp.Compare(a.Commits, b.Commits)
	case ByAdded:
		c = cmp.Compare(a.Added, b.Added)
	case ByRemoved:
		c = cmp.Compare(a.Removed, b.Removed)
	default:
		c = cmp.Compare(a.Delta(), b.Delta())
	}

	if !t.spec.Ascending {
		c = -c
	}

	if c == 0 {
		c = strings.Compare(a.Author, b.Author)
	}

	return c
}
