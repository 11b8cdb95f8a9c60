package golang

import (
	"github.com/kolah/alors/internal/naming"
)

var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

func IsKeyword(s string) bool {
	return goKeywords[s]
}

// IsPackageName reports whether s can name the generated package.
func IsPackageName(s string) bool {
	return naming.IsIdentifier(s) && !IsKeyword(s) && s != "_"
}
