package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "alors",
		Short:   "Alors - OpenAPI schemas to Go and Rust types",
		Version: "1.0.0",

		SilenceUsage: true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Log discovery and synthesis details")

	root.AddCommand(GenerateCommand(), InspectCommand())

	return root
}
