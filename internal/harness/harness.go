package harness

import (
	"bytes"
	"context"
	"fmt"

	"github.com/roach88/specimen/internal/calc"
	"github.com/roach88/specimen/internal/trace"
)

// Trace event types recorded for each calculator step.
const (
	EventInvoke   = "invoke"
	EventComplete = "complete"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success.
	// True when every expect clause and printed side effect matched.
	Pass bool `json:"pass"`

	// Trace contains the recorded step events in order.
	// Used for golden comparison.
	Trace []trace.StepEvent `json:"trace"`

	// Errors contains validation error messages. Empty when Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// addError records a validation failure and marks the result as failed.
func (r *Result) addError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Pass = false
}

// Run executes a scenario and returns the result.
//
// Each scenario runs against a fresh in-memory trace recorder with the
// scenario name as run token and a logical step sequence, so repeated runs
// produce identical traces.
func Run(scenario *Scenario) (*Result, error) {
	rec, err := trace.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to create trace recorder: %w", err)
	}
	defer rec.Close()

	ctx := context.Background()
	result := &Result{Pass: true, Errors: []string{}}

	var seq int64
	record := func(step, detail string) error {
		seq++
		return rec.Record(ctx, trace.StepEvent{
			RunToken: scenario.Name,
			Seq:      seq,
			Step:     step,
			Detail:   detail,
		})
	}

	for i, step := range scenario.Steps {
		if err := record(EventInvoke, fmt.Sprintf("x=%d y=%d", step.X, step.Y)); err != nil {
			return nil, err
		}

		buf := &bytes.Buffer{}
		sum, calcErr := calc.Sum(buf, step.X, step.Y)

		detail := validateStep(result, i, step, buf.String(), sum, calcErr)
		if err := record(EventComplete, detail); err != nil {
			return nil, err
		}
	}

	events, err := rec.List(ctx, scenario.Name)
	if err != nil {
		return nil, err
	}
	result.Trace = events

	return result, nil
}

// validateStep checks a single calculator outcome against its expect clause
// and the printed-output contract. Returns the completion trace detail.
func validateStep(result *Result, idx int, step CalcStep, printed string, sum int, err error) string {
	if err != nil {
		de := calc.AsDomainError(err)
		if de == nil {
			result.addError("step %d: unexpected non-domain error: %v", idx, err)
			return fmt.Sprintf("error=%v", err)
		}

		// The failure branch must not print.
		if printed != "" {
			result.addError("step %d: error branch printed %q, want nothing", idx, printed)
		}
		if step.Expect != nil {
			if step.Expect.Sum != nil {
				result.addError("step %d: expected sum %d, got domain error %q", idx, *step.Expect.Sum, de.Message)
			} else if step.Expect.Error != de.Message {
				result.addError("step %d: expected error %q, got %q", idx, step.Expect.Error, de.Message)
			}
		}
		return "error=" + de.Message
	}

	// The success branch must print exactly the Result line.
	want := fmt.Sprintf("Result: %d\n", sum)
	if printed != want {
		result.addError("step %d: success branch printed %q, want %q", idx, printed, want)
	}
	if step.Expect != nil {
		if step.Expect.Error != "" {
			result.addError("step %d: expected error %q, got sum %d", idx, step.Expect.Error, sum)
		} else if step.Expect.Sum != nil && *step.Expect.Sum != sum {
			result.addError("step %d: expected sum %d, got %d", idx, *step.Expect.Sum, sum)
		}
	}
	return fmt.Sprintf("sum=%d", sum)
}
