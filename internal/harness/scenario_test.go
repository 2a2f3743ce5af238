package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/calc_basic.yaml")
	require.NoError(t, err)

	assert.Equal(t, "calc_basic", s.Name)
	require.Len(t, s.Steps, 2)
	assert.Equal(t, 5, s.Steps[0].X)
	assert.Equal(t, 3, s.Steps[0].Y)
	require.NotNil(t, s.Steps[0].Expect)
	require.NotNil(t, s.Steps[0].Expect.Sum)
	assert.Equal(t, 8, *s.Steps[0].Expect.Sum)
	require.NotNil(t, s.Steps[1].Expect)
	assert.Equal(t, "Both values must be positive", s.Steps[1].Expect.Error)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario("testdata/scenarios/does_not_exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading scenario")
}

func TestLoadScenarioRejectsUnknownFields(t *testing.T) {
	path := writeScenario(t, `
name: typo
steps:
  - x: 1
    y: 2
    expekt:
      sum: 3
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing scenario")
}

func TestLoadScenarioValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing name",
			yaml:    "steps:\n  - x: 1\n    y: 2\n",
			wantErr: "name is required",
		},
		{
			name:    "no steps",
			yaml:    "name: empty\n",
			wantErr: "at least one step is required",
		},
		{
			name:    "both sum and error",
			yaml:    "name: both\nsteps:\n  - x: 1\n    y: 2\n    expect:\n      sum: 3\n      error: \"boom\"\n",
			wantErr: "cannot set both sum and error",
		},
		{
			name:    "empty expect",
			yaml:    "name: neither\nsteps:\n  - x: 1\n    y: 2\n    expect: {}\n",
			wantErr: "must set sum or error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// writeScenario writes a scenario YAML into a temp dir and returns its path.
func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
