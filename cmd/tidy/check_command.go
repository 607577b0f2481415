package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tidy/internal/config"
	"tidy/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check [dir]",
		Short: "Check that the target and log directories are usable",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			target := ""
			if len(args) == 1 {
				expanded, err := config.ExpandPath(args[0])
				if err != nil {
					return fmt.Errorf("resolve target path: %w", err)
				}
				target = expanded
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			results := preflight.RunAll(cfg, target)
			for _, result := range results {
				fmt.Fprintln(out, checkStatusLine(result, colorize))
			}
			if !preflight.Passed(results) {
				return fmt.Errorf("preflight checks failed")
			}
			return nil
		},
	}
}

func checkStatusLine(result preflight.Result, colorize bool) string {
	if result.Passed {
		return renderStatusLine(result.Name, statusOK, result.Detail, colorize)
	}
	if result.Problem == preflight.ProblemUnset {
		return renderStatusLine(result.Name, statusWarn, result.Detail, colorize)
	}
	return renderStatusLine(result.Name, statusError, result.Detail, colorize)
}
