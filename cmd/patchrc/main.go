package main

import (
	"context"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/patchrc/cmd/patchrc/commands"
	"github.com/walteh/patchrc/cmd/patchrc/opts"
	"github.com/walteh/patchrc/pkg/report"
	"gitlab.com/tozd/go/errors"
)

func main() {
	o := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "patchrc",
		Short: "A tool for applying named, idempotent text patches to source files",
		Long: `patchrc applies an ordered, dependency-aware set of textual fixes
(literal blocks or regex patterns) to target files, safely and idempotently,
and reports exactly what changed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := setupLogging(cmd.Context(), o.Debug)
			cmd.SetContext(ctx)
			o.UserLogger = report.NewUserLogger(ctx)
		},
	}

	addRootFlags(rootCmd, o)

	rootCmd.AddCommand(
		commands.NewApplyCmd(o),
		commands.NewCheckCmd(o),
		commands.NewValidateCmd(o),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, commands.ErrFailedOutcomes) {
			pterm.Error.Println(err)
		}
		os.Exit(1)
	}
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", ".patchrc.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&o.Only, "only", "", "only run patches whose ids match this glob")
}

// setupLogging configures zerolog and stores the logger in the context
func setupLogging(ctx context.Context, debug bool) context.Context {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger().Level(level)
	return logger.WithContext(ctx)
}
