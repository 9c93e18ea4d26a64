package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"chanreg/internal/report"
	"chanreg/internal/workflow"
)

type stageFunc func(*workflow.Runner, context.Context) (report.Summary, error)

func newEnrichCommand(ctx *commandContext) *cobra.Command {
	return newStageCommand(ctx, "enrich",
		"Annotate the baseline channel list with preferred registry metadata",
		(*workflow.Runner).Enrich)
}

func newMergeCommand(ctx *commandContext) *cobra.Command {
	return newStageCommand(ctx, "merge",
		"Merge candidate lists into the curated channel list",
		(*workflow.Runner).Merge)
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	return newStageCommand(ctx, "run",
		"Run enrich followed by merge",
		(*workflow.Runner).Run)
}

func newStageCommand(ctx *commandContext, use, short string, run stageFunc) *cobra.Command {
	var flags stageFlags

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runID := uuid.NewString()
			logger, closeFn, err := ctx.newLogger(cmd, runID)
			if err != nil {
				return err
			}
			defer closeQuietly(cmd.ErrOrStderr(), closeFn)

			runner := workflow.NewRunner(cfg, logger,
				workflow.WithRunID(runID),
				workflow.WithDryRun(flags.dryRun),
			)
			summary, runErr := run(runner, cmd.Context())
			if runErr != nil {
				return runErr
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderSummary(summary, shouldColorize(out)))

			if flags.summaryPath != "" {
				if err := report.WriteFile(flags.summaryPath, summary); err != nil {
					return fmt.Errorf("write summary: %w", err)
				}
				fmt.Fprintf(out, "Summary written to %s\n", flags.summaryPath)
			}
			return nil
		},
	}
	bindStageFlags(cmd.Flags(), &flags)
	return cmd
}
