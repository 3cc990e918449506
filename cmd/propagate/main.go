// Command propagate generates enum code for packages declaring enums in files
// with the "//go:build propagate" constraint.
//
//	go run github.com/sublee/propagate/cmd/propagate ./...
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	propagateinternal "github.com/sublee/propagate/internal/propagate"
)

var Version = "dev"

func init() {
	propagateinternal.Version = Version
}

var rootCmd = &cobra.Command{
	Use:   "propagate [flags] [packages]",
	Short: "Generate good/bad extraction for enums",
	Long: `Propagate reads interfaces embedding propagate.Enum in files with the
"//go:build propagate" constraint and generates concrete enum types with
constructors, accessors, and good/bad extractors.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("tags", "b", "", "comma-separated build tags")
	flags.BoolP("tests", "t", false, "include tests")
	flags.StringP("color", "c", "auto", "colorize (auto|always|never)")
	flags.BoolP("verbose", "v", false, "verbose logging")
	flags.String("config", defaultConfigFile, "config file")

	rootCmd.Flags().StringP("output", "o", "propagate_gen.go", "output file name")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	env, err := setup(cmd, args)
	if err != nil {
		return err
	}
	defer env.close()

	outs, err := propagateinternal.Main(context.Background(), env.opts, env.cfg.Output)
	if err != nil {
		return env.fail(err)
	}

	for out, code := range outs {
		if err := os.WriteFile(out, code, 0o644); err != nil {
			return err
		}

		if relOut, err := filepath.Rel(env.opts.Dir, out); err == nil {
			out = relOut
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Generated:", out)
	}
	return nil
}

// cmdEnv is the environment shared by commands.
type cmdEnv struct {
	cfg    config
	opts   propagateinternal.Options
	color  bool
	logger *zap.Logger
}

// setup resolves the configuration and installs the logger.
func setup(cmd *cobra.Command, args []string) (*cmdEnv, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfg, err := resolveConfig(cmd, wd)
	if err != nil {
		return nil, err
	}

	color, err := useColor(cfg.Color)
	if err != nil {
		return nil, err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, err := newLogger(verbose)
	if err != nil {
		return nil, err
	}
	propagateinternal.SetLogger(logger)

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Patterns
	}

	return &cmdEnv{
		cfg: cfg,
		opts: propagateinternal.Options{
			Dir:      wd,
			Env:      os.Environ(),
			Tags:     cfg.Tags,
			Tests:    cfg.Tests,
			Patterns: patterns,
		},
		color:  color,
		logger: logger,
	}, nil
}

// fail returns an error whose message is colorized if enabled.
func (env *cmdEnv) fail(err error) error {
	if !env.color {
		return err
	}
	return colorError{err}
}

func (env *cmdEnv) close() {
	_ = env.logger.Sync()
}

// colorError colorizes the message of the underlying error.
type colorError struct{ err error }

func (e colorError) Error() string { return colorize(e.err.Error()) }
func (e colorError) Unwrap() error { return e.err }
