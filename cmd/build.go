package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"glslpack.dev/pkg/glslpack/internal/controller"
	"glslpack.dev/pkg/glslpack/internal/domain"
	m "glslpack.dev/pkg/glslpack/internal/model"
)

var buildParallelFlag int

// buildCmd represents the build command.
var buildCmd = newBuildCmd()

const buildLongDescription = `Build every shader and asset listed in a manifest (default: ` + defaultBuildManifest + `).

  output: include
  glsl_version: 330
  shaders:
    - name: basic_vert
      source: shaders/basic.vert
  assets:
    - name: logo
      source: assets/logo.png
      type: unsigned char

Headers go to <output>/shaders/<name>.h and <output>/assets/<name>.h,
followed by <output>/shaders.h and <output>/assets.h. Paths are relative to
the manifest. The first failure stops the build before any aggregate
header is written.`

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [manifest]",
		Short: "Build all headers listed in a manifest",
		Long:  buildLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest := viper.GetString(buildManifestKey)
			if len(args) > 0 {
				manifest = args[0]
			}

			report, err := workflow.Build(cmd.Context(), domain.BuildArgs{
				Manifest:    m.Path(manifest),
				Parallel:    viper.GetInt(buildParallelKey),
				Options:     minifyOptions(cmd),
				GLSLVersion: viper.GetString(wgslVersionKey),
			})
			if err != nil {
				return err
			}

			ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

			return ui.DisplayBuildReport(cmd.Context(), report)
		},
	}

	configureBuildFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func configureBuildFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&buildParallelFlag, parallelFlagName, "p", defaultBuildParallel, "number of entries processed at once")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), buildParallelKey)
}
