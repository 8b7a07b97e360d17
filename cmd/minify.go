package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"glslpack.dev/pkg/glslpack/internal/controller"
	"glslpack.dev/pkg/glslpack/internal/domain"
	m "glslpack.dev/pkg/glslpack/internal/model"
)

var renamesFlag bool

// minifyCmd represents the minify command.
var minifyCmd = newMinifyCmd()

const minifyLongDescription = `Minify a shader and print the result on one line.

Line breaks the preprocessor needs are written as the two characters \n so
the output can be passed to "glslpack header --string".`

func newMinifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minify <shader>",
		Short: "Minify a GLSL or WGSL shader",
		Long:  minifyLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := workflow.Minify(cmd.Context(), domain.MinifyArgs{
				Source:      m.Path(args[0]),
				Options:     minifyOptions(cmd),
				GLSLVersion: viper.GetString(wgslVersionKey),
			})
			if err != nil {
				return err
			}

			ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
			if renamesFlag {
				return ui.DisplayRenames(cmd.Context(), res.Renames)
			}

			return ui.DisplayMinified(cmd.Context(), res.Output)
		},
	}

	cmd.Flags().BoolVar(&renamesFlag, renamesFlagName, false, "print the rename table instead of the minified shader")

	return cmd
}

func init() {
	rootCmd.AddCommand(minifyCmd)
}
