package codegen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kolah/alors/internal/config"
	"github.com/kolah/alors/internal/diag"
	"github.com/kolah/alors/internal/discovery"
	"github.com/kolah/alors/internal/golang"
	"github.com/kolah/alors/internal/model"
	"github.com/kolah/alors/internal/rust"
	"github.com/kolah/alors/internal/targets/gotypes"
	"github.com/kolah/alors/internal/targets/rusttypes"
	"github.com/kolah/alors/internal/templates"
	"github.com/kolah/alors/internal/typegen"
	embeddedtmpl "github.com/kolah/alors/templates"
)

// ErrRender marks failures of template execution or source formatting.
var ErrRender = errors.New("rendering output")

type Generator struct {
	config *config.Config
	engine templates.Engine
	logger *slog.Logger
}

type Output struct {
	Filename string
	Content  string
}

// Result is everything one run produced before rendering.
type Result struct {
	Schemas     *discovery.Registry
	Types       *typegen.Registry
	Diagnostics []diag.Diagnostic
}

func New(cfg *config.Config, logger *slog.Logger) (*Generator, error) {
	if logger == nil {
		logger = slog.Default()
	}

	namer := golang.NewNamer(cfg.Go.AdditionalInitialisms...)
	funcs := templates.MergeFuncs(golang.TemplateFuncs(namer), rust.TemplateFuncs())
	engine, err := templates.NewEngine(embeddedtmpl.FS, cfg.Templates.Dir, funcs)
	if err != nil {
		return nil, fmt.Errorf("creating template engine: %w", err)
	}

	return &Generator{
		config: cfg,
		engine: engine,
		logger: logger,
	}, nil
}

// Synthesize runs discovery and type synthesis over doc. In strict mode
// any recorded diagnostic fails the run.
func (g *Generator) Synthesize(doc *model.Document) (*Result, error) {
	diags := diag.NewCollector(g.logger)

	schemas, err := discovery.Discover(doc, diags)
	if err != nil {
		return nil, fmt.Errorf("discovering schemas: %w", err)
	}
	g.logger.Debug("discovery finished", "schemas", schemas.Len())

	types, err := typegen.Build(schemas, doc, diags)
	if err != nil {
		return nil, fmt.Errorf("synthesizing types: %w", err)
	}
	g.logger.Debug("synthesis finished", "types", types.Len(), "diagnostics", diags.Len())

	if g.config.Strict {
		if err := diags.Err(); err != nil {
			return nil, err
		}
	}

	return &Result{
		Schemas:     schemas,
		Types:       types,
		Diagnostics: diags.Diagnostics(),
	}, nil
}

// Generate synthesizes doc and renders it for the configured language.
func (g *Generator) Generate(ctx context.Context, doc *model.Document) ([]Output, error) {
	result, err := g.Synthesize(doc)
	if err != nil {
		return nil, err
	}

	content, err := g.Render(ctx, result.Types)
	if err != nil {
		return nil, err
	}

	return []Output{{
		Filename: g.config.Filename(),
		Content:  content,
	}}, nil
}

// Render turns synthesized types into formatted source.
func (g *Generator) Render(ctx context.Context, types *typegen.Registry) (string, error) {
	switch g.config.Language {
	case config.LanguageGo:
		target := gotypes.New()
		content, err := target.Generate(g.engine, types, gotypes.Options{
			Package:        g.config.Go.Package,
			EnableYAMLTags: g.config.Go.EnableYAMLTags,
		})
		if err != nil {
			return "", fmt.Errorf("%w: generating %s types: %w", ErrRender, target.Name(), err)
		}
		formatted, err := golang.Format(g.config.Go.Filename, []byte(content))
		if err != nil {
			return "", fmt.Errorf("%w: formatting %s types: %w", ErrRender, target.Name(), err)
		}
		return string(formatted), nil

	case config.LanguageRust:
		target := rusttypes.New()
		content, err := target.Generate(g.engine, types)
		if err != nil {
			return "", fmt.Errorf("%w: generating %s types: %w", ErrRender, target.Name(), err)
		}
		if !g.config.Rust.Rustfmt {
			return content, nil
		}
		formatted, err := rust.Format(ctx, []byte(content), g.config.Rust.Edition)
		if err != nil {
			return "", fmt.Errorf("%w: formatting %s types: %w", ErrRender, target.Name(), err)
		}
		return string(formatted), nil

	default:
		return "", fmt.Errorf("%w: unknown language %q", ErrRender, g.config.Language)
	}
}
