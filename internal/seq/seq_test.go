package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvenSquares(t *testing.T) {
	assert.Equal(t, []int{0, 4, 16, 36, 64}, EvenSquares(10))
}

func TestEvenSquaresBounds(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  []int
	}{
		{"zero limit", 0, []int{}},
		{"negative limit", -5, []int{}},
		{"limit one", 1, []int{0}},
		{"limit excludes upper bound", 11, []int{0, 4, 16, 36, 64, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvenSquares(tt.limit))
		})
	}
}

func TestEvenSquaresFreshSlice(t *testing.T) {
	first := EvenSquares(10)
	first[0] = 99
	assert.Equal(t, []int{0, 4, 16, 36, 64}, EvenSquares(10))
}

func TestFormatInts(t *testing.T) {
	assert.Equal(t, "[0, 4, 16, 36, 64]", FormatInts([]int{0, 4, 16, 36, 64}))
	assert.Equal(t, "[]", FormatInts(nil))
	assert.Equal(t, "[]", FormatInts([]int{}))
	assert.Equal(t, "[-1]", FormatInts([]int{-1}))
}
