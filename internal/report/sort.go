package report

import (
	"cmp"
	"slices"
	"strings"
)

// SortState is the column a table is sorted by. an empty Column means
// the rows keep the order they were loaded in.
type SortState struct {
	Column string
	Desc   bool
}

// Toggle flips the direction when `column` is already sorted on,
// otherwise it starts sorting `column` ascending.
func (s SortState) Toggle(column string) SortState {
	if s.Column == column {
		return SortState{Column: column, Desc: !s.Desc}
	}
	return SortState{Column: column}
}

func compareRows[T any](col Column[T], a, b T) int {
	if col.Kind == KindNumber {
		return cmp.Compare(col.Number(a), col.Number(b))
	}
	return strings.Compare(strings.ToLower(col.Text(a)), strings.ToLower(col.Text(b)))
}

// Sort returns a sorted copy of rows. the sort is stable so rows that
// compare equal keep their relative order in both directions.
func Sort[T any](rows []T, col Column[T], desc bool) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	slices.SortStableFunc(out, func(a, b T) int {
		c := compareRows(col, a, b)
		if desc {
			return -c
		}
		return c
	})
	return out
}
