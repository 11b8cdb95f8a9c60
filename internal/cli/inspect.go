package cli

import (
	"fmt"
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/kolah/alors/internal/codegen"
	"github.com/kolah/alors/internal/config"
	"github.com/kolah/alors/internal/typegen"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v4"
)

const (
	modeSchemas     = "schemas"
	modeSchemasFull = "schemas-full"
	modeTypes       = "types"
)

type declView struct {
	Kind typegen.DeclKind `json:"kind" yaml:"kind"`
	Decl typegen.Decl     `json:"decl" yaml:"decl"`
}

func InspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print discovered schemas or synthesized types",
		RunE:  runInspect,
	}

	config.BindCommonFlags(cmd)
	cmd.Flags().String("mode", modeSchemas, "What to print: schemas, schemas-full, types")
	cmd.Flags().String("format", "yaml", "Output format: yaml, json")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	mode, _ := cmd.Flags().GetString("mode")
	format, _ := cmd.Flags().GetString("format")
	if format != "yaml" && format != "json" {
		return fmt.Errorf("invalid format: %s (valid: yaml, json)", format)
	}

	cfg, err := config.Load(cmd, "")
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

	result, err := gen.Synthesize(doc)
	if err != nil {
		return err
	}

	var view any
	switch mode {
	case modeSchemas:
		view = result.Schemas.Keys()
	case modeSchemasFull:
		view = result.Schemas.Records()
	case modeTypes:
		decls := result.Types.Decls()
		views := make([]declView, len(decls))
		for i, d := range decls {
			views[i] = declView{Kind: typegen.KindOf(d), Decl: d}
		}
		view = views
	default:
		return fmt.Errorf("invalid mode: %s (valid: schemas, schemas-full, types)", mode)
	}

	out, err := encode(view, format)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", mode, err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func encode(v any, format string) ([]byte, error) {
	if format == "json" {
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	}
	return yaml.Marshal(v)
}
