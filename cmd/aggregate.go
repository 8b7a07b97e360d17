package cmd

import (
	"github.com/spf13/cobra"

	"glslpack.dev/pkg/glslpack/internal/cheader"
	"glslpack.dev/pkg/glslpack/internal/domain"
	m "glslpack.dev/pkg/glslpack/internal/model"
)

var aggregateKindFlag string

// aggregateCmd represents the aggregate command.
var aggregateCmd = newAggregateCmd()

func newAggregateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggregate <output_file> <name>...",
		Short: "Write a header that includes a list of generated headers",
		Long: `Write a header including ./shaders/<name>.h (or ./assets/<name>.h with
--kind assets) for every name, in the order given.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := cheader.ParseKind(aggregateKindFlag)
			if err != nil {
				return err
			}

			return workflow.Aggregate(cmd.Context(), domain.AggregateArgs{
				Output: m.Path(args[0]),
				Kind:   kind,
				Names:  args[1:],
			})
		},
	}

	cmd.Flags().StringVar(&aggregateKindFlag, kindFlagName, string(cheader.KindShaders), `headers to include: "shaders" or "assets"`)

	return cmd
}

func init() {
	rootCmd.AddCommand(aggregateCmd)
}
