package gotypes

import (
	"github.com/kolah/alors/internal/golang"
	"github.com/kolah/alors/internal/templates"
	"github.com/kolah/alors/internal/typegen"
)

const templateName = "go/types.tmpl"

type Target struct{}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "go"
}

type Options struct {
	Package        string
	EnableYAMLTags bool
}

type templateData struct {
	Package        string
	Decls          []typegen.Decl
	Cycles         typegen.Cycles
	EnableYAMLTags bool
}

// Generate renders every declaration of types into one Go source file.
// The output is unformatted.
func (t *Target) Generate(engine templates.Engine, types *typegen.Registry, opts Options) (string, error) {
	data := templateData{
		Package:        opts.Package,
		Decls:          types.Decls(),
		Cycles:         golang.Cycles(types),
		EnableYAMLTags: opts.EnableYAMLTags,
	}
	return engine.Execute(templateName, data)
}
