package cmd

import (
	"github.com/spf13/cobra"

	"glslpack.dev/pkg/glslpack/internal/cheader"
	"glslpack.dev/pkg/glslpack/internal/domain"
	m "glslpack.dev/pkg/glslpack/internal/model"
)

const (
	fileFlagName   = "file"
	stringFlagName = "string"
	nameFlagName   = "name"
	typeFlagName   = "type"
)

var (
	headerFileFlag   string
	headerStringFlag string
	headerNameFlag   string
	headerTypeFlag   string
)

// headerCmd represents the header command.
var headerCmd = newHeaderCmd()

const headerLongDescription = `Convert a file or a string into a C header holding a NUL-terminated byte
array and its size. The array is named after --name, or after the input
file, upper-cased with dots and dashes turned into underscores.

Escape sequences in --string (\n, \t, \xHH, ...) are decoded first.`

func newHeaderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "header <output.h>",
		Short: "Convert a file or string to a C array header",
		Long:  headerLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Header(cmd.Context(), domain.HeaderArgs{
				Output:     m.Path(args[0]),
				File:       m.Path(headerFileFlag),
				String:     headerStringFlag,
				FromString: cmd.Flags().Changed(stringFlagName),
				Name:       headerNameFlag,
				CharType:   headerTypeFlag,
			})
		},
	}

	cmd.Flags().StringVarP(&headerFileFlag, fileFlagName, "f", "", "input file to convert")
	cmd.Flags().StringVarP(&headerStringFlag, stringFlagName, "s", "", "string to convert")
	cmd.Flags().StringVarP(&headerNameFlag, nameFlagName, "n", "", "array name (required with --string)")
	cmd.Flags().StringVarP(&headerTypeFlag, typeFlagName, "t", cheader.CharTypeUnsignedChar, `array element type: "char" or "unsigned char"`)
	cmd.MarkFlagsMutuallyExclusive(fileFlagName, stringFlagName)
	cmd.MarkFlagsOneRequired(fileFlagName, stringFlagName)

	return cmd
}

func init() {
	rootCmd.AddCommand(headerCmd)
}
