package calc

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumPositiveInputs(t *testing.T) {
	buf := &bytes.Buffer{}

	result, err := Sum(buf, 5, 3)
	require.NoError(t, err)

	assert.Equal(t, 8, result)
	assert.Equal(t, "Result: 8\n", buf.String())
}

func TestSumPositiveInputsTable(t *testing.T) {
	tests := []struct {
		x, y int
	}{
		{1, 1},
		{5, 3},
		{100, 250},
		{1, 999999},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d+%d", tt.x, tt.y), func(t *testing.T) {
			buf := &bytes.Buffer{}
			result, err := Sum(buf, tt.x, tt.y)
			require.NoError(t, err)
			assert.Equal(t, tt.x+tt.y, result)
			assert.Equal(t, fmt.Sprintf("Result: %d\n", tt.x+tt.y), buf.String())
		})
	}
}

func TestSumNonPositiveInputs(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 3},
		{"negative y", 5, -3},
		{"zero x", 0, 3},
		{"zero y", 5, 0},
		{"both non-positive", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			result, err := Sum(buf, tt.x, tt.y)

			require.Error(t, err)
			assert.Equal(t, 0, result)
			// The error branch must not print anything.
			assert.Empty(t, buf.String())

			de := AsDomainError(err)
			require.NotNil(t, de)
			assert.Equal(t, ErrCodeNonPositive, de.Code)
			assert.Equal(t, "Both values must be positive", de.Message)
			assert.Equal(t, tt.x, de.X)
			assert.Equal(t, tt.y, de.Y)
		})
	}
}

func TestIsDomainError(t *testing.T) {
	buf := &bytes.Buffer{}
	_, err := Sum(buf, -1, 3)

	assert.True(t, IsDomainError(err))
	assert.False(t, IsDomainError(fmt.Errorf("unrelated")))
	assert.False(t, IsDomainError(nil))
}

func TestIsDomainErrorWrapped(t *testing.T) {
	buf := &bytes.Buffer{}
	_, err := Sum(buf, 0, 0)

	wrapped := fmt.Errorf("step failed: %w", err)
	assert.True(t, IsDomainError(wrapped))
	require.NotNil(t, AsDomainError(wrapped))
}
