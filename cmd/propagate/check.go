package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	propagateinternal "github.com/sublee/propagate/internal/propagate"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [packages]",
	Short: "Report enum declarations which cannot be derived",
	Long:  `Check derives enums in the packages and reports all errors without writing any file.`,
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	env, err := setup(cmd, args)
	if err != nil {
		return err
	}
	defer env.close()

	if err := propagateinternal.Check(context.Background(), env.opts); err != nil {
		return env.fail(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "OK")
	return nil
}
