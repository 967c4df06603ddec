package report

import "strings"

// Filter keeps the rows where any of `fields` contains `term`, ignoring
// case. order is preserved and an empty term keeps everything.
func Filter[T any](rows []T, term string, fields []Column[T]) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		out := make([]T, len(rows))
		copy(out, rows)
		return out
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f.StringOf(row)), term) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}
