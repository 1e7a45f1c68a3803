package sat

import (
	"context"
	"fmt"

	"github.com/EmiliaRusso00/SAT-Chains/pkg/cnf"
)

// Engine is a SAT solving capability: given a clause set and a context
// carrying an optional deadline, return SAT with a model, UNSAT with an
// optional core, TIMEOUT, or ERROR.
//
// The formula is a read-only snapshot for the duration of the call; engines
// never mutate it. The caller guarantees at most one solve per formula is in
// flight at a time.
type Engine interface {
	// Name identifies the engine in logs and reports.
	Name() string

	// Solve runs the engine against f. The context deadline, if any, bounds
	// the call: on expiry the worker is abandoned (or stopped, for engines
	// with cooperative cancellation) and StatusTimeout is returned. An
	// already-expired context yields StatusTimeout without starting work.
	Solve(ctx context.Context, f *cnf.Formula) Result
}

// Engine names accepted by New.
const (
	EngineGophersat = "gophersat"
	EngineGini      = "gini"
)

// New returns the named engine. Core extraction is only honored by engines
// that support assumptions (gini); others ignore it.
func New(name string, extractCore bool) (Engine, error) {
	switch name {
	case EngineGophersat:
		return &Gophersat{}, nil
	case EngineGini:
		return &Gini{ExtractCore: extractCore}, nil
	default:
		return nil, fmt.Errorf("unknown solver engine %q (supported: %s, %s)",
			name, EngineGophersat, EngineGini)
	}
}
