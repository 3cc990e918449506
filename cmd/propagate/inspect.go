package main

import (
	"context"

	"github.com/spf13/cobra"

	propagateinternal "github.com/sublee/propagate/internal/propagate"
	"github.com/sublee/propagate/internal/propagate/inspect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] [packages]",
	Short: "Print derivation plans of enums",
	Long: `Inspect derives enums in the packages and prints their variants, groups,
classification tables, and two-state eligibility.`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringP("format", "f", "text", "output format (text|json|yaml|toml|msgpack)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	env, err := setup(cmd, args)
	if err != nil {
		return err
	}
	defer env.close()

	plans, err := propagateinternal.Plans(context.Background(), env.opts)
	if err != nil {
		return env.fail(err)
	}
	return inspect.Write(cmd.OutOrStdout(), format, inspect.Summarize(plans))
}
