package report

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// GroupSpec describes how rows are bucketed. rows with the same values in
// every By column land in the same group.
type GroupSpec[T any] struct {
	By         []Column[T]
	Sum        []Column[T]
	DistinctBy *Column[T]
	DateBy     *Column[T]
}

type Group[T any] struct {
	Key      []string
	Count    int
	Sums     []decimal.Decimal
	Distinct int
	// First and Last are the earliest and latest non-empty DateBy values.
	First string
	Last  string
	Rows  []T
}

func (g Group[T]) Label() string {
	parts := make([]string, len(g.Key))
	for i, k := range g.Key {
		if k == "" {
			k = "(blank)"
		}
		parts[i] = k
	}
	return strings.Join(parts, " / ")
}

type groupAcc[T any] struct {
	group    *Group[T]
	distinct map[string]struct{}
}

// GroupBy buckets rows by the composite key of spec.By. groups are
// ordered by key and every input row belongs to exactly one group.
func GroupBy[T any](rows []T, spec GroupSpec[T]) []Group[T] {
	index := make(map[string]*groupAcc[T])
	var order []*groupAcc[T]

	for _, row := range rows {
		key := make([]string, len(spec.By))
		for i, col := range spec.By {
			key[i] = col.StringOf(row)
		}
		id := strings.Join(key, "\x00")

		acc, ok := index[id]
		if !ok {
			acc = &groupAcc[T]{
				group: &Group[T]{
					Key:  key,
					Sums: make([]decimal.Decimal, len(spec.Sum)),
				},
				distinct: make(map[string]struct{}),
			}
			index[id] = acc
			order = append(order, acc)
		}

		g := acc.group
		g.Count++
		g.Rows = append(g.Rows, row)
		for i, col := range spec.Sum {
			g.Sums[i] = g.Sums[i].Add(col.DecimalOf(row))
		}
		if spec.DistinctBy != nil {
			v := spec.DistinctBy.StringOf(row)
			if v != "" {
				acc.distinct[v] = struct{}{}
			}
		}
		if spec.DateBy != nil {
			date := spec.DateBy.StringOf(row)
			if date != "" {
				if g.First == "" || date < g.First {
					g.First = date
				}
				if g.Last == "" || date > g.Last {
					g.Last = date
				}
			}
		}
	}

	out := make([]Group[T], len(order))
	for i, acc := range order {
		acc.group.Distinct = len(acc.distinct)
		out[i] = *acc.group
	}
	slices.SortStableFunc(out, func(a, b Group[T]) int {
		return slices.Compare(a.Key, b.Key)
	})
	return out
}
