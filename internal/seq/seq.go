// Package seq computes the demonstration integer sequence: squares of even
// numbers, formatted in bracketed list form.
package seq

import (
	"fmt"
	"strings"
)

// EvenSquares returns the squares of the even integers in [0, limit).
//
// EvenSquares(10) == [0 4 16 36 64]. A limit <= 0 yields an empty
// (non-nil) slice. The result is freshly allocated on every call.
func EvenSquares(limit int) []int {
	squares := []int{}
	for i := 0; i < limit; i++ {
		if i%2 == 0 {
			squares = append(squares, i*i)
		}
	}
	return squares
}

// FormatInts renders values in bracketed, comma-separated form,
// e.g. "[0, 4, 16, 36, 64]". An empty slice renders as "[]".
func FormatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
