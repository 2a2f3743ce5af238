// Package script executes the fixed demonstration sequence.
//
// The sequence is strictly linear: construct a named entity, greet, run the
// checked sum, print the even-square sequence, load the manifest, and return
// status 0. There is exactly one initial step and one terminal step, no
// loops, and a single branch inside the calculation step. All observable
// output is written to the runner's writer; the run token and step trace
// are never printed on the canonical lines.
package script

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/roach88/specimen/internal/calc"
	"github.com/roach88/specimen/internal/entity"
	"github.com/roach88/specimen/internal/manifest"
	"github.com/roach88/specimen/internal/seq"
	"github.com/roach88/specimen/internal/trace"
)

// Step names recorded in the run trace, in execution order.
const (
	StepEntity    = "entity"
	StepGreet     = "greet"
	StepCalculate = "calculate"
	StepSequence  = "sequence"
	StepManifest  = "manifest"
	StepDone      = "done"
)

// Fixed demonstration inputs. The sequence is a demonstration, not
// user-driven: these values always take the success branch.
const (
	demoName      = "世界"
	demoX         = 5
	demoY         = 3
	sequenceLimit = 10
)

// Recorder receives step events as the script executes.
// *trace.Recorder satisfies this; tests may substitute their own.
type Recorder interface {
	Record(ctx context.Context, ev trace.StepEvent) error
}

// Runner executes the demonstration sequence.
// The zero value runs against stdout with a UUIDv7 run token, the wall
// clock, no recorder, and no logging.
type Runner struct {
	// Out receives the canonical output lines. Defaults to os.Stdout.
	Out io.Writer

	// Tokens generates the run token. Defaults to UUIDv7Generator.
	Tokens TokenGenerator

	// Clock supplies the entity creation timestamp. Defaults to time.Now.
	// The timestamp is captured but never printed, so this only matters
	// for tests that pin it.
	Clock entity.Clock

	// Recorder, if set, receives one StepEvent per executed step.
	Recorder Recorder

	// Logger, if set, receives debug-level step logging on the side.
	// Canonical output never goes through the logger.
	Logger *slog.Logger
}

// Result describes a completed script run.
type Result struct {
	// RunToken identifies this run in the step trace.
	RunToken string

	// Status is the script's exit status. Always 0: the only error path
	// (the calculator) is caught inside the run.
	Status int

	// Steps is the number of step events emitted.
	Steps int64
}

// Run executes the sequence and returns the run result.
//
// No domain error crosses this boundary: the calculator's error branch is
// converted into a diagnostic output line in place. Run only fails on
// infrastructure problems (manifest compilation, trace recording).
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	tokens := r.Tokens
	if tokens == nil {
		tokens = UUIDv7Generator{}
	}
	clock := r.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	token := tokens.Generate()
	logger.Debug("script run starting", "run_token", token)

	var sc seqClock
	record := func(step, detail string) error {
		ev := trace.StepEvent{RunToken: token, Seq: sc.next(), Step: step, Detail: detail}
		logger.Debug("step", "seq", ev.Seq, "step", ev.Step, "detail", ev.Detail)
		if r.Recorder == nil {
			return nil
		}
		if err := r.Recorder.Record(ctx, ev); err != nil {
			return fmt.Errorf("recording %s step: %w", step, err)
		}
		return nil
	}

	// Step 1: construct the named entity.
	ent := entity.NewAt(demoName, clock)
	if err := record(StepEntity, "name="+ent.Name()); err != nil {
		return nil, err
	}

	// Step 2: print the greeting verbatim.
	message := ent.Greet()
	fmt.Fprintln(out, message)
	if err := record(StepGreet, message); err != nil {
		return nil, err
	}

	// Step 3: checked sum, error caught here.
	detail := runCalculation(out, demoX, demoY)
	if err := record(StepCalculate, detail); err != nil {
		return nil, err
	}

	// Step 4: even squares.
	squares := seq.FormatInts(seq.EvenSquares(sequenceLimit))
	fmt.Fprintf(out, "偶数的平方: %s\n", squares)
	if err := record(StepSequence, squares); err != nil {
		return nil, err
	}

	// Step 5: the manifest is constructed and validated but contributes
	// nothing to the output.
	m, err := manifest.Load()
	if err != nil {
		return nil, fmt.Errorf("loading manifest: %w", err)
	}
	if err := record(StepManifest, fmt.Sprintf("name=%s version=%s features=%d", m.Name, m.Version, len(m.Features))); err != nil {
		return nil, err
	}

	// Step 6: terminal step, success status.
	if err := record(StepDone, "status=0"); err != nil {
		return nil, err
	}

	logger.Debug("script run complete", "run_token", token, "steps", sc.current())
	return &Result{RunToken: token, Status: 0, Steps: sc.current()}, nil
}

// runCalculation invokes the pair calculator and converts its outcome into
// the demonstration output line. The domain error is caught here; it never
// escapes the runner. Returns the trace detail for the step.
func runCalculation(w io.Writer, x, y int) string {
	result, err := calc.Sum(w, x, y)
	if err != nil {
		de := calc.AsDomainError(err)
		if de == nil {
			// calc.Sum only produces domain errors; render the raw text
			// if that ever changes.
			fmt.Fprintf(w, "错误: %v\n", err)
			return fmt.Sprintf("error=%v", err)
		}
		fmt.Fprintf(w, "错误: %s\n", de.Message)
		return "error=" + de.Message
	}

	fmt.Fprintf(w, "计算结果: %d\n", result)
	return fmt.Sprintf("sum=%d", result)
}
