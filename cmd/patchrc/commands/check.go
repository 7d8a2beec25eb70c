package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/patchrc/cmd/patchrc/opts"
)

// 🏭 NewCheckCmd creates the check command, an apply that never writes
func NewCheckCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report what apply would change, without writing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			o.DryRun = true
			return runApply(cmd, o)
		},
	}
}
