package sat

import "time"

// Status classifies the outcome of a single solve call.
type Status string

const (
	// StatusSat means a satisfying model was found.
	StatusSat Status = "SAT"
	// StatusUnsat means the instance was proven unsatisfiable.
	StatusUnsat Status = "UNSAT"
	// StatusTimeout means the deadline elapsed before the engine finished.
	// The worker was abandoned and any partial state discarded.
	StatusTimeout Status = "TIMEOUT"
	// StatusError means the engine raised an internal fault. It is never
	// silently reinterpreted as SAT or UNSAT.
	StatusError Status = "ERROR"
)

// Result is the typed outcome of one solve call.
type Result struct {
	Status Status

	// Model holds one signed literal per problem variable when Status is
	// StatusSat: +v if variable v is true, -v otherwise, ordered by
	// variable id starting at 1.
	Model []int

	// UnsatCore lists zero-based indices of original clauses sufficient
	// for unsatisfiability. Only populated by engines with core support
	// when core extraction was requested.
	UnsatCore []int

	// Err carries the fault detail when Status is StatusError.
	Err error

	// Elapsed is the wall-clock duration of the call.
	Elapsed time.Duration
}

// True reports whether variable v (1-based) is assigned true in the model.
func (r Result) True(v int) bool {
	if v < 1 || v > len(r.Model) {
		return false
	}
	return r.Model[v-1] > 0
}
