package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kolah/alors/internal/codegen"
	"github.com/kolah/alors/internal/config"
	"github.com/kolah/alors/internal/loader"
	"github.com/kolah/alors/internal/model"
	"github.com/spf13/cobra"
)

func GenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate types from an OpenAPI document",
	}

	config.BindCommonFlags(cmd)
	cmd.PersistentFlags().Bool("dry-run", false, "Print output without writing files")
	cmd.AddCommand(NewGoCmd(), NewRustCmd())

	return cmd
}

// loadDocument reads and transforms the configured document.
func loadDocument(cmd *cobra.Command, cfg *config.Config) (*model.Document, error) {
	result, err := loader.LoadFile(cfg.Spec)
	if err != nil {
		return nil, fmt.Errorf("loading spec: %w", err)
	}

	for _, w := range result.Warnings {
		cmd.PrintErrf("Warning: %s\n", w)
	}

	doc, err := loader.Transform(result, loader.Options{ExcludeSchemas: cfg.ExcludeSchemas})
	if err != nil {
		return nil, fmt.Errorf("transforming spec: %w", err)
	}

	schemas := 0
	if doc.Components != nil {
		schemas = len(doc.Components.Schemas)
	}
	cmd.PrintErrf("Loaded OpenAPI %s: %s v%s\n", result.Version, doc.Info.Title, doc.Info.Version)
	cmd.PrintErrf("  Schemas: %d\n", schemas)
	cmd.PrintErrf("  Paths: %d\n", len(doc.Paths))

	return doc, nil
}

func runGenerate(language string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd, language)
		if err != nil {
			return err
		}

		doc, err := loadDocument(cmd, cfg)
		if err != nil {
			return err
		}

		gen, err := codegen.New(cfg, slog.Default())
		if err != nil {
			return fmt.Errorf("creating generator: %w", err)
		}

		outputs, err := gen.Generate(cmd.Context(), doc)
		if err != nil {
			return fmt.Errorf("generating code: %w", err)
		}

		dryRun, _ := cmd.Flags().GetBool("dry-run")
		if dryRun {
			for _, out := range outputs {
				fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s\n", out.Filename, out.Content)
			}
			return nil
		}

		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		for _, out := range outputs {
			path := filepath.Join(cfg.OutputDir, out.Filename)
			if err := os.WriteFile(path, []byte(out.Content), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			cmd.PrintErrf("Written: %s\n", path)
		}

		return nil
	}
}
