package report

import (
	"fmt"
	"strings"
)

// View is the state of one table: the loaded rows plus the search term and
// sort chosen by the user. what is displayed is always recomputed from the
// loaded rows.
type View[T any] struct {
	Schema *Schema[T]
	Search string
	Sort   SortState

	loaded []T
}

func NewView[T any](schema *Schema[T], rows []T) *View[T] {
	return &View[T]{
		Schema: schema,
		Sort:   schema.DefaultSort,
		loaded: rows,
	}
}

func (v *View[T]) Loaded() []T {
	return v.loaded
}

// SetSort validates the column before switching to it.
func (v *View[T]) SetSort(state SortState) error {
	if state.Column != "" {
		_, ok := v.Schema.Column(state.Column)
		if !ok {
			return fmt.Errorf(
				"unknown column %q, expected one of: %s",
				state.Column, strings.Join(v.Schema.ColumnIDs(), ", "),
			)
		}
	}
	v.Sort = state
	return nil
}

// Toggle is what clicking a column header does.
func (v *View[T]) Toggle(column string) error {
	return v.SetSort(v.Sort.Toggle(column))
}

// Rows is the filtered and sorted table, uncapped.
func (v *View[T]) Rows() []T {
	rows := Filter(v.loaded, v.Search, v.Schema.Searchable())
	if v.Sort.Column == "" {
		return rows
	}
	col, ok := v.Schema.Column(v.Sort.Column)
	if !ok {
		return rows
	}
	return Sort(rows, col, v.Sort.Desc)
}

// Window is Rows with the table's row cap applied.
func (v *View[T]) Window() Window[T] {
	return Limit(v.Rows(), v.Schema.RowLimit)
}

// Cards are computed over every loaded row, the search term does not
// change them.
func (v *View[T]) Cards() []Card {
	return v.Schema.CardsFor(v.loaded)
}

// Groups buckets the filtered rows by the dimensions in `by`.
func (v *View[T]) Groups(by []string) ([]Group[T], GroupSpec[T], error) {
	spec, err := v.Schema.GroupSpec(by)
	if err != nil {
		return nil, GroupSpec[T]{}, err
	}
	return GroupBy(Filter(v.loaded, v.Search, v.Schema.Searchable()), spec), spec, nil
}
