package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"glslpack.dev/pkg/glslpack/internal/domain"
	m "glslpack.dev/pkg/glslpack/internal/model"
)

// shaderCmd represents the shader command.
var shaderCmd = newShaderCmd()

func newShaderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shader <shader_file> <shader_name> <output_file>",
		Short: "Minify a shader and write it as a char array header",
		Long: `Minify a shader and write the result as a NUL-terminated char array
named after shader_name. Nothing is written when minification fails.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.Shader(cmd.Context(), domain.ShaderArgs{
				Source:      m.Path(args[0]),
				Name:        args[1],
				Output:      m.Path(args[2]),
				Options:     minifyOptions(cmd),
				GLSLVersion: viper.GetString(wgslVersionKey),
			})

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(shaderCmd)
}
