// Package report renders enumeration runs as JSON experiment records:
// one self-contained file per run holding the instance shape, the encoding
// size, the outcome and every embedding found. Records are append-only
// artifacts meant for offline comparison across engines and modes.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/EmiliaRusso00/SAT-Chains/pkg/embed"
	"github.com/EmiliaRusso00/SAT-Chains/pkg/graph"
)

// GraphStats summarizes a graph by size.
type GraphStats struct {
	NumVertices int `json:"num_vertices"`
	NumEdges    int `json:"num_edges"`
}

// EncodingStats summarizes the compiled SAT instance. Absent from the record
// when candidate generation already proved the problem infeasible and no
// instance was built.
type EncodingStats struct {
	NumVariables int    `json:"num_variables"`
	NumClauses   int    `json:"num_clauses"`
	Mode         string `json:"mode"`
}

// Solution is one embedding in record form. Assignment keys are logical node
// IDs rendered as strings, as JSON object keys must be.
type Solution struct {
	Assignment   map[string][]graph.Node `json:"assignment"`
	ChainLengths map[string]int          `json:"chain_lengths"`
	TotalQubits  int                     `json:"total_qubits"`
}

// Report is the on-disk record of one enumeration run.
type Report struct {
	ID        string    `json:"experiment_id"`
	Timestamp time.Time `json:"timestamp"`
	Engine    string    `json:"engine"`

	Logical  GraphStats     `json:"logical_graph"`
	Physical GraphStats     `json:"physical_graph"`
	Encoding *EncodingStats `json:"sat_encoding,omitempty"`

	Outcome   embed.Outcome `json:"outcome"`
	Reasons   []string      `json:"reasons,omitempty"`
	UnsatCore []int         `json:"unsat_core,omitempty"`

	Rounds       int     `json:"rounds"`
	SolveSeconds float64 `json:"time_sat_solve_seconds"`

	SolutionsCount int        `json:"solutions_count"`
	Solutions      []Solution `json:"solutions"`
}

// New assembles the record for a finished run. enc may be nil when encoding
// never happened (structural infeasibility); engine names the solver used.
func New(p embed.Problem, enc *embed.Encoding, result *embed.RunResult, engine string) *Report {
	r := &Report{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Engine:    engine,
		Logical:   stats(p.Logical),
		Physical:  stats(p.Physical),

		Outcome:   result.Outcome,
		Reasons:   result.Reasons,
		UnsatCore: result.UnsatCore,

		Rounds:       result.Rounds,
		SolveSeconds: result.SolveTime.Seconds(),

		SolutionsCount: len(result.Solutions),
		Solutions:      make([]Solution, 0, len(result.Solutions)),
	}
	if enc != nil {
		r.Encoding = &EncodingStats{
			NumVariables: enc.Formula.NumVars(),
			NumClauses:   enc.Formula.Len(),
			Mode:         string(p.Mode),
		}
	}
	for _, e := range result.Solutions {
		r.Solutions = append(r.Solutions, solution(e))
	}
	return r
}

func stats(g *graph.Graph) GraphStats {
	if g == nil {
		return GraphStats{}
	}
	return GraphStats{NumVertices: g.NodeCount(), NumEdges: g.EdgeCount()}
}

func solution(e embed.Embedding) Solution {
	s := Solution{
		Assignment:   make(map[string][]graph.Node, len(e)),
		ChainLengths: make(map[string]int, len(e)),
		TotalQubits:  e.TotalQubits(),
	}
	for ln, chain := range e {
		key := strconv.Itoa(int(ln))
		s.Assignment[key] = chain
		s.ChainLengths[key] = len(chain)
	}
	return s
}

// Write persists the record as experiment_<id>.json under dir, creating the
// directory if needed, and returns the file path.
func (r *Report) Write(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	path := filepath.Join(dir, "experiment_"+r.ID+".json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
