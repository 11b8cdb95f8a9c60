package cli

import (
	"github.com/kolah/alors/internal/config"
	"github.com/spf13/cobra"
)

func NewRustCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rust",
		Short: "Generate Rust types with serde attributes",
		RunE:  runGenerate(config.LanguageRust),
	}

	flags := cmd.Flags()
	flags.StringP("output-dir", "o", "", "Output directory for generated Rust code")
	flags.String("rust-filename", "", "Name of the generated file (default: types.rs)")
	flags.Bool("rustfmt", false, "Format the output with rustfmt")
	flags.String("edition", "", "Rust edition passed to rustfmt (default: 2021)")

	return cmd
}
