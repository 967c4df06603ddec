// Package report turns the rows the api returns into the tables the
// dashboard shows: search, sort, row caps, grouping and summary cards.
package report

import (
	"homehealth-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindDate
)

type Format int

const (
	FormatPlain Format = iota
	FormatCurrency
	FormatPercent
	FormatCount
)

// Column is one field of a row type. text and date columns set Text,
// number columns set Number.
type Column[T any] struct {
	ID     string
	Label  string
	Kind   Kind
	Format Format
	Text   func(T) string
	Number func(T) float64
}

func TextColumn[T any](id, label string, get func(T) models.Text) Column[T] {
	return Column[T]{
		ID:    id,
		Label: label,
		Kind:  KindText,
		Text:  func(row T) string { return get(row).String() },
	}
}

func DateColumn[T any](id, label string, get func(T) models.Date) Column[T] {
	return Column[T]{
		ID:    id,
		Label: label,
		Kind:  KindDate,
		Text:  func(row T) string { return get(row).String() },
	}
}

func NumberColumn[T any](id, label string, format Format, get func(T) models.Number) Column[T] {
	return Column[T]{
		ID:     id,
		Label:  label,
		Kind:   KindNumber,
		Format: format,
		Number: func(row T) float64 { return get(row).Float() },
	}
}

// StringOf is the raw text of a cell, numbers are printed without
// formatting.
func (c Column[T]) StringOf(row T) string {
	if c.Kind == KindNumber {
		return decimal.NewFromFloat(c.Number(row)).String()
	}
	return c.Text(row)
}

// DecimalOf is the value of a number column, zero for anything else.
func (c Column[T]) DecimalOf(row T) decimal.Decimal {
	if c.Kind != KindNumber {
		return decimal.Zero
	}
	return decimal.NewFromFloat(c.Number(row))
}

// Display is the cell as it is shown in a table.
func (c Column[T]) Display(row T) string {
	if c.Kind == KindNumber {
		return FormatValue(c.Format, c.DecimalOf(row))
	}
	return c.Text(row)
}

func findColumn[T any](columns []Column[T], id string) (Column[T], bool) {
	for _, c := range columns {
		if c.ID == id {
			return c, true
		}
	}
	return Column[T]{}, false
}
