package report

import (
	"fmt"
	"strings"
)

// Schema describes one dashboard table over rows of type T.
type Schema[T any] struct {
	Name  string
	Title string

	Columns      []Column[T]
	SearchFields []string
	DefaultSort  SortState
	// RowLimit caps the number of displayed rows, zero means no cap.
	RowLimit int

	// Dimensions are the columns rows can be grouped by, they may include
	// derived columns that are not displayed (ex. the month of a date).
	Dimensions    []Column[T]
	Measures      []string
	DistinctBy    string
	DistinctLabel string
	DateBy        string

	Cards func(rows []T) []Card
}

// Column looks up a displayed column or a dimension by id.
func (s *Schema[T]) Column(id string) (Column[T], bool) {
	col, ok := findColumn(s.Columns, id)
	if ok {
		return col, true
	}
	return findColumn(s.Dimensions, id)
}

func (s *Schema[T]) ColumnIDs() []string {
	ids := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		ids[i] = c.ID
	}
	return ids
}

func (s *Schema[T]) DimensionIDs() []string {
	ids := make([]string, len(s.Dimensions))
	for i, c := range s.Dimensions {
		ids[i] = c.ID
	}
	return ids
}

func (s *Schema[T]) Searchable() []Column[T] {
	out := make([]Column[T], 0, len(s.SearchFields))
	for _, id := range s.SearchFields {
		col, ok := s.Column(id)
		if ok {
			out = append(out, col)
		}
	}
	return out
}

func (s *Schema[T]) CanGroup() bool {
	return len(s.Dimensions) > 0
}

func (s *Schema[T]) CardsFor(rows []T) []Card {
	if s.Cards == nil {
		return nil
	}
	return s.Cards(rows)
}

// GroupSpec builds the grouping of this table by the dimensions in `by`.
func (s *Schema[T]) GroupSpec(by []string) (GroupSpec[T], error) {
	if !s.CanGroup() {
		return GroupSpec[T]{}, fmt.Errorf("%s cannot be grouped", s.Name)
	}
	if len(by) == 0 {
		return GroupSpec[T]{}, fmt.Errorf("no grouping fields selected")
	}

	var spec GroupSpec[T]
	for _, id := range by {
		col, ok := findColumn(s.Dimensions, id)
		if !ok {
			return GroupSpec[T]{}, fmt.Errorf(
				"unknown grouping field %q, expected one of: %s",
				id, strings.Join(s.DimensionIDs(), ", "),
			)
		}
		spec.By = append(spec.By, col)
	}
	for _, id := range s.Measures {
		col, ok := s.Column(id)
		if ok && col.Kind == KindNumber {
			spec.Sum = append(spec.Sum, col)
		}
	}
	if col, ok := s.Column(s.DistinctBy); ok {
		spec.DistinctBy = &col
	}
	if col, ok := s.Column(s.DateBy); ok {
		spec.DateBy = &col
	}
	return spec, nil
}
