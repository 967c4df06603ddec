package report

import (
	"homehealth-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// Card is one summary metric shown above a table.
type Card struct {
	Label  string
	Value  decimal.Decimal
	Format Format
}

func (c Card) Display() string {
	return FormatValue(c.Format, c.Value)
}

// Sum adds up a number accessor over rows.
func Sum[T any](rows []T, get func(T) float64) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(decimal.NewFromFloat(get(row)))
	}
	return total
}

// Average is the mean of get over rows, zero for no rows.
func Average[T any](rows []T, get func(T) float64) decimal.Decimal {
	if len(rows) == 0 {
		return decimal.Zero
	}
	return Sum(rows, get).Div(decimal.NewFromInt(int64(len(rows))))
}

// AverageWhere is Average over the rows where keep is true.
func AverageWhere[T any](rows []T, get func(T) float64, keep func(T) bool) decimal.Decimal {
	var kept []T
	for _, row := range rows {
		if keep(row) {
			kept = append(kept, row)
		}
	}
	return Average(kept, get)
}

// Distinct counts the different non-empty values of get.
func Distinct[T any](rows []T, get func(T) string) int {
	seen := make(map[string]struct{})
	for _, row := range rows {
		v := get(row)
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen)
}

func Count(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

func Decimal(n models.Number) decimal.Decimal {
	return decimal.NewFromFloat(n.Float())
}
