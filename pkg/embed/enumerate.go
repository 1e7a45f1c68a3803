package embed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/EmiliaRusso00/SAT-Chains/pkg/sat"
)

// Outcome is the final status of an enumeration run.
type Outcome string

const (
	// OutcomeInfeasible means no embedding exists. Either candidate
	// generation ruled it out structurally (RunResult.Reasons is set) or
	// the solver certified the instance UNSAT before any solution.
	OutcomeInfeasible Outcome = "INFEASIBLE"
	// OutcomeExhausted means every distinct embedding was found and
	// returned; re-solving after the last blocking clause proved UNSAT.
	OutcomeExhausted Outcome = "EXHAUSTED"
	// OutcomeStoppedEarly means the solution cap was reached. More
	// embeddings may exist; callers must not read this as exhaustion.
	OutcomeStoppedEarly Outcome = "STOPPED_EARLY"
	// OutcomeInconclusive means a solve timed out. Solutions found before
	// the timeout are preserved in the result.
	OutcomeInconclusive Outcome = "INCONCLUSIVE"
)

// RunResult is the outcome of one enumeration run.
type RunResult struct {
	Outcome   Outcome
	Solutions []Embedding

	// Reasons holds the structural infeasibility diagnostics recorded at
	// generation time. Empty for a solver-certified UNSAT.
	Reasons []string

	// UnsatCore carries clause indices from the final UNSAT round when the
	// engine produced them.
	UnsatCore []int

	// Rounds counts solver invocations; SolveTime is their summed wall
	// clock.
	Rounds    int
	SolveTime time.Duration
}

// Enumerator drives the solve → decode → block → re-solve loop that turns
// one-shot SAT solving into multi-solution search. A single goroutine owns
// the loop and the formula; the engine worker runs concurrently only while
// the loop blocks waiting for it, so there is never more than one solve in
// flight and clause appends happen strictly between solves.
type Enumerator struct {
	// Engine performs the individual solve calls.
	Engine sat.Engine

	// SolveTimeout bounds each solve call. Zero means unbounded.
	SolveTimeout time.Duration

	// MaxSolutions caps the number of accepted embeddings. Zero means
	// enumerate until exhaustion.
	MaxSolutions int

	// DimacsPath, when set, persists the instance and receives incremental
	// blocking-clause appends. Empty keeps the run in memory.
	DimacsPath string

	// Logger receives progress output. Nil silences it.
	Logger *log.Logger
}

// Run compiles the problem and enumerates its embeddings. Structural
// infeasibility is reported as a normal result, not an error; errors are
// reserved for faults (bad spec, solver faults, persistence failures).
func (en *Enumerator) Run(ctx context.Context, p Problem, opts ...EncodeOption) (*RunResult, error) {
	enc, err := Encode(p, opts...)
	var infeasible *InfeasibleError
	if errors.As(err, &infeasible) {
		en.logger().Warn("problem is not embeddable", "reasons", infeasible.Reasons)
		return &RunResult{Outcome: OutcomeInfeasible, Reasons: infeasible.Reasons}, nil
	}
	if err != nil {
		return nil, err
	}
	en.logger().Info("encoded problem",
		"vars", enc.Formula.NumVars(), "clauses", enc.Formula.Len(), "mode", p.Mode)
	return en.Enumerate(ctx, enc)
}

// Enumerate runs the solve loop against an already compiled encoding.
func (en *Enumerator) Enumerate(ctx context.Context, enc *Encoding) (*RunResult, error) {
	logger := en.logger()
	result := &RunResult{}

	if en.DimacsPath != "" {
		if err := enc.Formula.WriteFile(en.DimacsPath); err != nil {
			return nil, err
		}
	}

	for {
		res := en.solveOnce(ctx, enc)
		result.Rounds++
		result.SolveTime += res.Elapsed

		switch res.Status {
		case sat.StatusSat:
			embedding, err := enc.Decode(res.Model)
			if err != nil {
				return nil, fmt.Errorf("decode model: %w", err)
			}
			if err := embedding.Validate(enc.Problem); err != nil {
				return nil, fmt.Errorf("model violates embedding invariants: %w", err)
			}
			result.Solutions = append(result.Solutions, embedding)
			logger.Info("found embedding",
				"round", result.Rounds, "qubits", embedding.TotalQubits(), "elapsed", res.Elapsed)

			if en.MaxSolutions > 0 && len(result.Solutions) >= en.MaxSolutions {
				result.Outcome = OutcomeStoppedEarly
				return result, nil
			}
			if err := en.block(enc, res.Model); err != nil {
				return nil, err
			}

		case sat.StatusUnsat:
			result.UnsatCore = res.UnsatCore
			if len(result.Solutions) == 0 {
				result.Outcome = OutcomeInfeasible
				logger.Warn("instance is unsatisfiable")
			} else {
				result.Outcome = OutcomeExhausted
				logger.Info("all distinct embeddings found", "count", len(result.Solutions))
			}
			return result, nil

		case sat.StatusTimeout:
			result.Outcome = OutcomeInconclusive
			logger.Warn("solve timed out", "round", result.Rounds, "found", len(result.Solutions))
			return result, nil

		default:
			return nil, fmt.Errorf("solver fault in round %d: %w", result.Rounds, res.Err)
		}
	}
}

// solveOnce performs a single bounded solve call.
func (en *Enumerator) solveOnce(ctx context.Context, enc *Encoding) sat.Result {
	if en.SolveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, en.SolveTimeout)
		defer cancel()
	}
	return en.Engine.Solve(ctx, enc.Formula)
}

// block appends the blocking clause for the model to the formula and, when
// persistence is on, to the DIMACS file. A persistence failure aborts the
// run: memory and disk must not diverge.
func (en *Enumerator) block(enc *Encoding, model []int) error {
	clause := enc.BlockingClause(model)
	if len(clause) == 0 {
		return fmt.Errorf("model has no true chain variables")
	}
	if en.DimacsPath != "" {
		_, err := enc.Formula.AppendFile(en.DimacsPath, clause)
		return err
	}
	_, err := enc.Formula.Add(clause)
	return err
}

func (en *Enumerator) logger() *log.Logger {
	if en.Logger != nil {
		return en.Logger
	}
	return log.New(io.Discard)
}
