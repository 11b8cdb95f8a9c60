package golang

import (
	"strconv"
	"strings"
	"text/template"

	"github.com/kolah/alors/internal/templates"
	"github.com/kolah/alors/internal/typegen"
)

func TemplateFuncs(n *Namer) template.FuncMap {
	return template.FuncMap{
		"goType":       n.Type,
		"goTypeName":   n.TypeName,
		"goName":       n.Name,
		"goFieldType":  n.FieldType,
		"goStructTag":  StructTag,
		"goEnumConst":  n.EnumConst,
		"needsPointer": NeedsPointer,
		"declKind":     declKind,
		"quote":        strconv.Quote,
		"lower":        strings.ToLower,
		"join":         strings.Join,
		"dict":         templates.Dict,
	}
}

func declKind(d typegen.Decl) string {
	return string(typegen.KindOf(d))
}
