package sat

import (
	"context"
	"fmt"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/EmiliaRusso00/SAT-Chains/pkg/cnf"
)

// Gini solves with the go-air/gini engine. Unlike gophersat it supports
// cooperative cancellation (GoSolve().Try bounds the search) and assumption
// literals, which enables UNSAT-core extraction.
//
// When ExtractCore is set, every original clause i is wrapped as
// ¬sel_i ∨ clause with a fresh selector literal sel_i above the formula's
// variable range, and all selectors are assumed true. Satisfiability is
// unchanged; on UNSAT the failed assumptions reported by Why identify the
// original clauses responsible.
type Gini struct {
	// ExtractCore requests an UNSAT core on unsatisfiable results.
	ExtractCore bool
}

// Name implements Engine.
func (e *Gini) Name() string { return EngineGini }

// Solve implements Engine.
func (e *Gini) Solve(ctx context.Context, f *cnf.Formula) (res Result) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res = Result{Status: StatusError, Err: fmt.Errorf("gini: %v", r), Elapsed: time.Since(start)}
		}
	}()
	if err := ctx.Err(); err != nil {
		return expired(err, time.Since(start))
	}

	numVars := f.NumVars()
	clauses := f.Clauses()

	g := gini.New()
	var selectors []z.Lit
	if e.ExtractCore {
		selectors = make([]z.Lit, len(clauses))
	}
	for i, clause := range clauses {
		if e.ExtractCore {
			// Selector ids start right above the problem variables.
			sel := z.Dimacs2Lit(numVars + i + 1)
			selectors[i] = sel
			g.Add(sel.Not())
		}
		for _, lit := range clause {
			g.Add(z.Dimacs2Lit(lit))
		}
		g.Add(0)
	}
	if e.ExtractCore {
		g.Assume(selectors...)
	}

	var outcome int
	if deadline, ok := ctx.Deadline(); ok {
		outcome = g.GoSolve().Try(time.Until(deadline))
	} else {
		outcome = g.Solve()
	}

	res = Result{Elapsed: time.Since(start)}
	switch outcome {
	case 1:
		res.Status = StatusSat
		model := make([]int, numVars)
		for v := 1; v <= numVars; v++ {
			if g.Value(z.Dimacs2Lit(v)) {
				model[v-1] = v
			} else {
				model[v-1] = -v
			}
		}
		res.Model = model
	case -1:
		res.Status = StatusUnsat
		if e.ExtractCore {
			for _, m := range g.Why(nil) {
				if idx := m.Dimacs() - numVars - 1; idx >= 0 && idx < len(clauses) {
					res.UnsatCore = append(res.UnsatCore, idx)
				}
			}
		}
	default:
		res.Status = StatusTimeout
	}
	return res
}
