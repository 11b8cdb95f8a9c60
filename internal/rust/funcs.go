package rust

import (
	"strconv"
	"text/template"

	"github.com/kolah/alors/internal/templates"
	"github.com/kolah/alors/internal/typegen"
)

func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"rustType":        RustType,
		"rustFieldType":   FieldType,
		"rustVariantType": VariantType,
		"rustIdent":       EscapeKeyword,
		"rustNeedsRename": NeedsRename,
		"declKind":        declKind,
		"quote":           strconv.Quote,
		"dict":            templates.Dict,
	}
}

func declKind(d typegen.Decl) string {
	return string(typegen.KindOf(d))
}
