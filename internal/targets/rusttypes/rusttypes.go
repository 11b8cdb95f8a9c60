package rusttypes

import (
	"github.com/kolah/alors/internal/rust"
	"github.com/kolah/alors/internal/templates"
	"github.com/kolah/alors/internal/typegen"
)

const templateName = "rust/types.tmpl"

type Target struct{}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "rust"
}

type templateData struct {
	Decls  []typegen.Decl
	Cycles typegen.Cycles
}

// Generate renders every declaration of types into one Rust module.
func (t *Target) Generate(engine templates.Engine, types *typegen.Registry) (string, error) {
	return engine.Execute(templateName, templateData{
		Decls:  types.Decls(),
		Cycles: rust.Cycles(types),
	})
}
