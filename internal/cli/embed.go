package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/EmiliaRusso00/SAT-Chains/pkg/embed"
	"github.com/EmiliaRusso00/SAT-Chains/pkg/graph"
	"github.com/EmiliaRusso00/SAT-Chains/pkg/report"
	"github.com/EmiliaRusso00/SAT-Chains/pkg/sat"
)

// embedOpts holds the command-line flags for the embed command.
type embedOpts struct {
	constraints  string // TOML constraint spec path (optional)
	mode         string // candidate generation mode
	engine       string // solver engine name
	timeout      time.Duration
	maxSolutions int    // 0 enumerates until exhaustion
	dimacs       string // DIMACS persistence path (optional)
	reportDir    string // experiment report directory (optional)
	core         bool   // request an UNSAT core when supported
}

// newEmbedCmd creates the embed command: load the two graphs, compile the
// instance and enumerate embeddings until exhaustion, the solution cap or a
// timeout.
func newEmbedCmd() *cobra.Command {
	opts := embedOpts{
		mode:         string(embed.ModeSubset),
		engine:       sat.EngineGophersat,
		maxSolutions: 40,
	}

	cmd := &cobra.Command{
		Use:   "embed <logical.json> <physical.json>",
		Short: "Enumerate minor-embeddings of a logical graph into a physical graph",
		Long: `Enumerate minor-embeddings of a logical graph into a physical graph.

Both graphs are node-link JSON files. Chain sizes, pinned physical nodes and
the qubit budget come from a TOML constraints file.

Examples:
  satchains embed k3.json chimera.json
  satchains embed k3.json chimera.json --constraints spec.toml --mode path
  satchains embed k3.json chimera.json --engine gini --core --timeout 30s`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runEmbed(c.Context(), &opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(&opts.constraints, "constraints", "c", "", "TOML constraints file")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", opts.mode, "chain generation mode (subset|path)")
	cmd.Flags().StringVarP(&opts.engine, "engine", "e", opts.engine, "solver engine (gophersat|gini)")
	cmd.Flags().DurationVarP(&opts.timeout, "timeout", "t", 0, "per-solve timeout (0 = unbounded)")
	cmd.Flags().IntVarP(&opts.maxSolutions, "max-solutions", "n", opts.maxSolutions, "solution cap (0 = exhaust)")
	cmd.Flags().StringVar(&opts.dimacs, "dimacs", "", "persist the CNF instance to this file")
	cmd.Flags().StringVar(&opts.reportDir, "report-dir", "", "write a JSON experiment report to this directory")
	cmd.Flags().BoolVar(&opts.core, "core", false, "extract an UNSAT core (gini only)")

	return cmd
}

func runEmbed(ctx context.Context, opts *embedOpts, logicalPath, physicalPath string) error {
	logger := loggerFromContext(ctx)

	p, err := loadProblem(logicalPath, physicalPath, opts.constraints, opts.mode)
	if err != nil {
		return err
	}
	engine, err := sat.New(opts.engine, opts.core)
	if err != nil {
		return err
	}

	en := &embed.Enumerator{
		Engine:       engine,
		SolveTimeout: opts.timeout,
		MaxSolutions: opts.maxSolutions,
		DimacsPath:   opts.dimacs,
		Logger:       logger,
	}

	tracker := newProgress(logger)
	enc, result, err := compileAndEnumerate(ctx, en, p)
	if err != nil {
		return err
	}
	tracker.done(fmt.Sprintf("Enumeration finished: %s, %d embedding(s) in %d round(s)",
		result.Outcome, len(result.Solutions), result.Rounds))

	printResult(result)

	if opts.reportDir != "" {
		path, err := report.New(p, enc, result, engine.Name()).Write(opts.reportDir)
		if err != nil {
			return err
		}
		logger.Info("report written", "path", path)
	}
	return nil
}

// compileAndEnumerate runs the pipeline while keeping the encoding around for
// the report. Structural infeasibility short-circuits with a nil encoding.
func compileAndEnumerate(ctx context.Context, en *embed.Enumerator, p embed.Problem) (*embed.Encoding, *embed.RunResult, error) {
	enc, err := embed.Encode(p)
	var infeasible *embed.InfeasibleError
	if errors.As(err, &infeasible) {
		return nil, &embed.RunResult{Outcome: embed.OutcomeInfeasible, Reasons: infeasible.Reasons}, nil
	}
	if err != nil {
		return nil, nil, err
	}
	result, err := en.Enumerate(ctx, enc)
	return enc, result, err
}

// printResult renders the outcome and the chain assignments on stdout.
func printResult(result *embed.RunResult) {
	fmt.Printf("outcome: %s\n", result.Outcome)
	for _, reason := range result.Reasons {
		fmt.Printf("reason: %s\n", reason)
	}
	if len(result.UnsatCore) > 0 {
		fmt.Printf("unsat core (clause indices): %v\n", result.UnsatCore)
	}
	for i, e := range result.Solutions {
		fmt.Printf("solution %d (%d qubits):\n", i+1, e.TotalQubits())
		for _, ln := range sortedNodes(e) {
			fmt.Printf("  %d -> %v\n", ln, e[ln])
		}
	}
}

func sortedNodes(e embed.Embedding) []graph.Node {
	nodes := make([]graph.Node, 0, len(e))
	for ln := range e {
		nodes = append(nodes, ln)
	}
	slices.Sort(nodes)
	return nodes
}

// loadProblem reads the two graphs and the optional constraints file into a
// Problem. A missing constraints path yields the zero spec (singleton chains,
// nothing pinned, unbounded).
func loadProblem(logicalPath, physicalPath, constraintsPath, modeStr string) (embed.Problem, error) {
	mode, err := embed.ParseMode(modeStr)
	if err != nil {
		return embed.Problem{}, err
	}
	logical, err := graph.ReadFile(logicalPath)
	if err != nil {
		return embed.Problem{}, fmt.Errorf("logical graph: %w", err)
	}
	physical, err := graph.ReadFile(physicalPath)
	if err != nil {
		return embed.Problem{}, fmt.Errorf("physical graph: %w", err)
	}

	spec := &embed.Spec{}
	if constraintsPath != "" {
		spec, err = embed.LoadSpec(constraintsPath)
		if err != nil {
			return embed.Problem{}, err
		}
	}
	return embed.Problem{Logical: logical, Physical: physical, Spec: spec, Mode: mode}, nil
}
