package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/liftoff/internal/app"
)

// version is set at build time via -ldflags.
var version = "dev"

// runApp is swapped out in tests.
var runApp = app.Run

func newRootCmd() *cobra.Command {
	opts := app.Options{Version: version}

	root := &cobra.Command{
		Use:   "liftoff [location]",
		Short: "Search and browse space launches",
		Long: "liftoff searches the Launch Library 2 API and shows launch details.\n" +
			"Pass a location such as \"?query=falcon\" or \"?id=<launch id>\" to open it directly.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Location = args[0]
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runApp(ctx, opts)
		},
	}

	f := root.Flags()
	f.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/liftoff/config.toml)")
	f.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/liftoff/prefs.toml)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the liftoff version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "liftoff %s\n", version)
		},
	})
	root.Version = version

	return root
}
