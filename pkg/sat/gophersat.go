package sat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crillab/gophersat/solver"

	"github.com/EmiliaRusso00/SAT-Chains/pkg/cnf"
)

// Gophersat solves with the pure-Go gophersat CDCL engine.
//
// Gophersat has no cooperative cancellation, so the solve runs in a worker
// goroutine and the deadline is enforced by abandoning the worker: its
// result channel is buffered and simply dropped, the goroutine finishes on
// its own and its result is discarded. The caller's state is never touched
// by an abandoned worker because the worker only reads the formula.
type Gophersat struct{}

// Name implements Engine.
func (e *Gophersat) Name() string { return EngineGophersat }

// Solve implements Engine.
func (e *Gophersat) Solve(ctx context.Context, f *cnf.Formula) Result {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return expired(err, time.Since(start))
	}

	numVars := f.NumVars()
	ch := make(chan Result, 1) // buffered: an abandoned worker must not block
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- Result{Status: StatusError, Err: fmt.Errorf("gophersat: %v", r)}
			}
		}()
		pb := solver.ParseSlice(f.Clauses())
		s := solver.New(pb)
		switch s.Solve() {
		case solver.Sat:
			ch <- Result{Status: StatusSat, Model: modelFromBools(s.Model(), numVars)}
		case solver.Unsat:
			ch <- Result{Status: StatusUnsat}
		default:
			ch <- Result{Status: StatusError, Err: fmt.Errorf("gophersat: indeterminate result")}
		}
	}()

	select {
	case res := <-ch:
		res.Elapsed = time.Since(start)
		return res
	case <-ctx.Done():
		return expired(ctx.Err(), time.Since(start))
	}
}

// expired maps a context error to the adapter result: deadline expiry is a
// TIMEOUT, anything else (cancellation) is an ERROR.
func expired(err error, elapsed time.Duration) Result {
	if errors.Is(err, context.DeadlineExceeded) {
		return Result{Status: StatusTimeout, Elapsed: elapsed}
	}
	return Result{Status: StatusError, Err: err, Elapsed: elapsed}
}

// modelFromBools converts a variable-indexed truth slice to the signed
// literal form of the Result contract. Variables the engine never saw
// (mentioned in no clause) default to false.
func modelFromBools(bools []bool, numVars int) []int {
	model := make([]int, numVars)
	for v := 1; v <= numVars; v++ {
		if v-1 < len(bools) && bools[v-1] {
			model[v-1] = v
		} else {
			model[v-1] = -v
		}
	}
	return model
}
