// Package calc implements the pair calculator: a stateless checked sum over
// two integers.
//
// The calculator carries no instance state, so it is exposed as a free
// function rather than a method on a constructed value.
package calc

import (
	"fmt"
	"io"
)

// Sum validates and adds a pair of integers.
//
// If both x and y are strictly positive, Sum writes "Result: {x+y}" to w as
// an observable side effect and returns the sum. If either input is <= 0 it
// returns a *DomainError with the message "Both values must be positive"
// and writes nothing.
//
// Sum is deterministic and has no state, so there are no retry semantics:
// the same inputs always produce the same outcome.
func Sum(w io.Writer, x, y int) (int, error) {
	if x <= 0 || y <= 0 {
		return 0, newNonPositiveError(x, y)
	}

	result := x + y
	fmt.Fprintf(w, "Result: %d\n", result)
	return result, nil
}
