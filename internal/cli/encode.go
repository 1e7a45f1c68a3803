package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EmiliaRusso00/SAT-Chains/pkg/embed"
)

// encodeOpts holds the command-line flags for the encode command.
type encodeOpts struct {
	constraints string // TOML constraint spec path (optional)
	mode        string // candidate generation mode
	output      string // DIMACS output path
	dedup       bool   // deduplicate clauses
}

// newEncodeCmd creates the encode command: compile an instance to DIMACS CNF
// without solving it, for use with external solvers or for inspection.
func newEncodeCmd() *cobra.Command {
	opts := encodeOpts{mode: string(embed.ModeSubset), output: "instance.cnf", dedup: true}

	cmd := &cobra.Command{
		Use:   "encode <logical.json> <physical.json>",
		Short: "Compile an embedding instance to DIMACS CNF without solving",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runEncode(c.Context(), &opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(&opts.constraints, "constraints", "c", "", "TOML constraints file")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", opts.mode, "chain generation mode (subset|path)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "DIMACS output file")
	cmd.Flags().BoolVar(&opts.dedup, "dedup", opts.dedup, "deduplicate clauses")

	return cmd
}

func runEncode(ctx context.Context, opts *encodeOpts, logicalPath, physicalPath string) error {
	logger := loggerFromContext(ctx)

	p, err := loadProblem(logicalPath, physicalPath, opts.constraints, opts.mode)
	if err != nil {
		return err
	}

	tracker := newProgress(logger)
	enc, err := embed.Encode(p, embed.WithDedup(opts.dedup))
	if err != nil {
		return err
	}
	if err := enc.Formula.WriteFile(opts.output); err != nil {
		return err
	}
	tracker.done(fmt.Sprintf("Wrote %s: %d variables, %d clauses",
		opts.output, enc.Formula.NumVars(), enc.Formula.Len()))
	return nil
}
