package report

import "fmt"

// Window is the part of a table that is actually displayed.
type Window[T any] struct {
	Rows  []T
	Shown int
	Total int
}

// Limit caps rows at n, n <= 0 means no cap.
func Limit[T any](rows []T, n int) Window[T] {
	if n <= 0 || len(rows) <= n {
		return Window[T]{Rows: rows, Shown: len(rows), Total: len(rows)}
	}
	return Window[T]{Rows: rows[:n], Shown: n, Total: len(rows)}
}

func (w Window[T]) Truncated() bool {
	return w.Shown < w.Total
}

// Notice is "Showing N of M" for a truncated window and empty otherwise.
func (w Window[T]) Notice() string {
	if !w.Truncated() {
		return ""
	}
	return fmt.Sprintf("Showing %d of %d", w.Shown, w.Total)
}
