// Package commands implements the patchrc subcommands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/patchrc/cmd/patchrc/opts"
	"github.com/walteh/patchrc/pkg/engine"
	"github.com/walteh/patchrc/pkg/report"
	"gitlab.com/tozd/go/errors"
)

// 🚨 ErrFailedOutcomes marks a run that completed with non-success outcomes,
// so main can exit non-zero without printing a second error.
var ErrFailedOutcomes = errors.New("run completed with failures")

// 🏭 NewApplyCmd creates the apply command
func NewApplyCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the configured patches to their target files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, o)
		},
	}
	cmd.Flags().BoolVar(&o.DryRun, "dry-run", false, "report what would change without writing")
	return cmd
}

// 🏃 runApply executes the patch set and reports the outcome
func runApply(cmd *cobra.Command, o *opts.RootOpts) error {
	ctx := cmd.Context()

	cfg, ps, err := o.LoadPatchSet(ctx)
	if err != nil {
		return err
	}

	eng := engine.New(engine.Options{
		Root:   cfg.ResolveRoot(),
		DryRun: o.DryRun,
	})

	results, err := eng.Run(ctx, ps)
	if err != nil {
		return errors.Errorf("running patch set: %w", err)
	}

	for _, res := range results {
		o.UserLogger.LogResult(res)
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), report.NewRenderer().Render(results))

	if !report.Summarize(results).Ok() {
		return ErrFailedOutcomes
	}
	return nil
}
