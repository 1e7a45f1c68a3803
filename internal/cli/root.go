package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/EmiliaRusso00/SAT-Chains/pkg/buildinfo"
)

// Execute runs the satchains CLI under ctx and returns an error if any
// command fails.
//
// Logging defaults to info level on stderr; --verbose (-v) switches to debug.
// The logger is attached to the command context and accessible to all
// commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "satchains",
		Short:        "satchains finds graph minor-embeddings with SAT solvers",
		Long:         `satchains maps each node of a logical graph onto a disjoint connected chain of physical nodes, compiles the constraints to CNF, and enumerates every distinct embedding with an off-the-shelf SAT engine.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newEmbedCmd())
	root.AddCommand(newEncodeCmd())
	root.AddCommand(newGenCmd())

	return root.ExecuteContext(ctx)
}
