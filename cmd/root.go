// Package cmd provides the root command and CLI setup for glslpack.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"glslpack.dev/pkg/glslpack/internal/adapter"
	"glslpack.dev/pkg/glslpack/internal/domain"
	"glslpack.dev/pkg/glslpack/internal/glsl"
)

var fsAdapter adapter.SourceFSAdapter
var wgslAdapter adapter.WGSLAdapter
var manifestStore adapter.ManifestStore
var workflow domain.Workflow

// Root-level flags shared by every command that minifies.
var (
	lenientFlag         bool
	allowCollisionsFlag bool
	preserveMacrosFlag  bool
	glslVersionFlag     string
	logFileFlag         string
	verboseFlag         bool
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	wgslAdapter = adapter.NewNagaWGSLAdapter()
	manifestStore = adapter.NewYAMLManifestStore(fsAdapter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		wgslAdapter,
		manifestStore,
	)
}

const rootLongDescription = `glslpack minifies GLSL shaders and embeds shaders and other files into
C headers as NUL-terminated byte arrays.

Minification strips comments and redundant whitespace and shortens the
names of locals, globals and parameters. Function names, struct names and
members, interface blocks, macros, built-ins and reserved words are never
renamed. Sources ending in .wgsl are translated to GLSL first.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "glslpack",
		Short:        "GLSL minifier and C header generator",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.BoolVar(&lenientFlag, lenientFlagName, defaultLenient, "minify malformed sources best-effort instead of failing")
	bindFlagToConfig(flags.Lookup(lenientFlagName), minifyLenientKey)

	flags.BoolVar(&allowCollisionsFlag, allowCollisionsFlagName, !defaultAvoidCollisions, "hand out short names even when they equal an identifier left untouched")

	flags.BoolVar(&preserveMacrosFlag, preserveMacrosFlagName, defaultPreserveMacros, "keep function-like #define macros intact")
	bindFlagToConfig(flags.Lookup(preserveMacrosFlagName), minifyPreserveMacrosKey)

	flags.StringVar(&glslVersionFlag, glslVersionFlagName, defaultGLSLVersion, "GLSL version emitted for .wgsl sources (330, 400-460, 300es, 310es, 320es)")
	bindFlagToConfig(flags.Lookup(glslVersionFlagName), wgslVersionKey)

	flags.StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// minifyOptions resolves the minifier options from flags, environment and
// config file.
func minifyOptions(cmd *cobra.Command) glsl.Options {
	avoid := viper.GetBool(minifyAvoidCollisionsKey)
	if flag := cmd.Flag(allowCollisionsFlagName); flag != nil && flag.Changed {
		avoid = !allowCollisionsFlag
	}

	return glsl.Options{
		Lenient:                viper.GetBool(minifyLenientKey),
		AvoidCollisions:        avoid,
		PreserveFunctionMacros: viper.GetBool(minifyPreserveMacrosKey),
	}
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
