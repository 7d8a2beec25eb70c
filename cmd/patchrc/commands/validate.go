package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/patchrc/cmd/patchrc/opts"
)

// 🏭 NewValidateCmd creates the validate command. It compiles the config and
// resolves the dependency order without touching any target file.
func NewValidateCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the patch configuration without touching any files",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			_, ps, err := o.LoadPatchSet(ctx)
			if err != nil {
				o.UserLogger.LogValidation(false, "Configuration is invalid", err)
				return err
			}

			o.UserLogger.LogValidation(true, fmt.Sprintf("Configuration is valid (%d patches)", ps.Len()), nil)
			return nil
		},
	}
}
