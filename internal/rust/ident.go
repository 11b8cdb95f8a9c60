package rust

import (
	"strings"

	"github.com/kolah/alors/internal/naming"
)

var strictKeywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "dyn": true, "else": true, "enum": true, "extern": true,
	"false": true, "fn": true, "for": true, "if": true, "impl": true, "in": true,
	"let": true, "loop": true, "match": true, "mod": true, "move": true,
	"mut": true, "pub": true, "ref": true, "return": true, "static": true,
	"struct": true, "trait": true, "true": true, "type": true, "unsafe": true,
	"use": true, "where": true, "while": true,
	// reserved
	"abstract": true, "become": true, "box": true, "do": true, "final": true,
	"gen": true, "macro": true, "override": true, "priv": true, "try": true,
	"typeof": true, "unsized": true, "virtual": true, "yield": true,
}

// these cannot be raw identifiers
var pathKeywords = map[string]bool{
	"crate": true, "self": true, "Self": true, "super": true,
}

// EscapeKeyword turns s into a usable identifier when it is a keyword.
func EscapeKeyword(s string) string {
	switch {
	case pathKeywords[s]:
		return s + "_"
	case strictKeywords[s]:
		return "r#" + s
	default:
		return s
	}
}

// NeedsRename reports whether a field spelled as id must carry an explicit
// serde rename to keep its raw name on the wire. serde drops the r# of
// raw identifiers itself.
func NeedsRename(id naming.Ident) bool {
	return strings.TrimPrefix(EscapeKeyword(id.Name), "r#") != id.Raw
}
