package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a calculator conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. It is used as the run token
	// in the recorded trace and as the golden file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Steps are executed in order against the calculator.
	Steps []CalcStep `yaml:"steps"`
}

// CalcStep is a single calculator invocation with an optional expectation.
type CalcStep struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`

	// Expect specifies the expected outcome. If nil, the step runs without
	// validation (it still contributes trace events).
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the expected calculator outcome.
// Exactly one of Sum or Error should be set.
type ExpectClause struct {
	// Sum is the expected result for the success branch.
	Sum *int `yaml:"sum,omitempty"`

	// Error is the expected domain-error message for the failure branch.
	Error string `yaml:"error,omitempty"`
}

// LoadScenario reads and validates a scenario from a YAML file.
// Unknown YAML fields are rejected to catch scenario typos early.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}

	return &s, nil
}

// validate checks the structural invariants of a scenario.
func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("at least one step is required")
	}
	for i, step := range s.Steps {
		if step.Expect == nil {
			continue
		}
		if step.Expect.Sum != nil && step.Expect.Error != "" {
			return fmt.Errorf("step %d: expect cannot set both sum and error", i)
		}
		if step.Expect.Sum == nil && step.Expect.Error == "" {
			return fmt.Errorf("step %d: expect must set sum or error", i)
		}
	}
	return nil
}
