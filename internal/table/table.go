// Package table provides the in-memory record table the analysis pipeline
// is built on. A Table is an ordered collection of rows sharing one schema.
// Tables are treated as immutable: every transformation returns a new table
// and never modifies the one it was given.
package table

// Table is an ordered, schema-uniform collection of rows.
// Row order is insertion order unless a caller explicitly re-sorts a
// derived result.
type Table[R any] struct {
	rows []R
}

// New creates a table from the given rows. The slice is copied so later
// mutation of the caller's slice cannot reach into the table.
func New[R any](rows []R) *Table[R] {
	t := &Table[R]{rows: make([]R, len(rows))}
	copy(t.rows, rows)
	return t
}

// Len returns the number of rows.
func (t *Table[R]) Len() int {
	return len(t.rows)
}

// Row returns the row at index i.
func (t *Table[R]) Row(i int) R {
	return t.rows[i]
}

// Rows returns a copy of all rows in order.
func (t *Table[R]) Rows() []R {
	out := make([]R, len(t.rows))
	copy(out, t.rows)
	return out
}

// Filter returns a new table holding only the rows for which keep returns
// true. The result is a subsequence of the input: relative order is
// preserved and no row is duplicated or synthesized.
func (t *Table[R]) Filter(keep func(R) bool) *Table[R] {
	out := &Table[R]{}
	for _, r := range t.rows {
		if keep(r) {
			out.rows = append(out.rows, r)
		}
	}
	return out
}

// Group is one partition of a table produced by GroupBy.
type Group[K comparable, R any] struct {
	Key  K
	Rows []R
}

// GroupBy partitions a table by the key extractor. Groups are returned in
// first-appearance order of their keys, and rows within a group keep their
// input order. Every aggregator is built on this single primitive.
func GroupBy[K comparable, R any](t *Table[R], key func(R) K) []Group[K, R] {
	index := make(map[K]int)
	var groups []Group[K, R]

	for _, r := range t.rows {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, R]{Key: k})
		}
		groups[i].Rows = append(groups[i].Rows, r)
	}
	return groups
}

// Sum reduces rows to the total of a numeric measure.
func Sum[R any](rows []R, measure func(R) float64) float64 {
	var total float64
	for _, r := range rows {
		total += measure(r)
	}
	return total
}

// Mean reduces rows to the arithmetic mean of a numeric measure.
// An empty group yields 0.
func Mean[R any](rows []R, measure func(R) float64) float64 {
	if len(rows) == 0 {
		return 0
	}
	return Sum(rows, measure) / float64(len(rows))
}

// DistinctCount counts the distinct values of a key across rows.
func DistinctCount[R any, K comparable](rows []R, key func(R) K) int {
	seen := make(map[K]struct{}, len(rows))
	for _, r := range rows {
		seen[key(r)] = struct{}{}
	}
	return len(seen)
}
