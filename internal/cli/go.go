package cli

import (
	"github.com/kolah/alors/internal/config"
	"github.com/spf13/cobra"
)

func NewGoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "go",
		Short: "Generate Go types with json tags",
		RunE:  runGenerate(config.LanguageGo),
	}

	flags := cmd.Flags()
	flags.StringP("output-dir", "o", "", "Output directory for generated Go code")
	flags.StringP("package", "p", "", "Go package name")
	flags.String("go-filename", "", "Name of the generated file (default: types.go)")
	flags.Bool("enable-yaml-tags", false, "Generate yaml tags")
	flags.StringSlice("additional-initialisms", nil, "Additional initialisms")

	return cmd
}
