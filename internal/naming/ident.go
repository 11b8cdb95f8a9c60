package naming

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var ErrInvalidIdentifier = errors.New("invalid identifier")

// Ident is a sanitized identifier together with the raw name it was
// derived from. Raw is what serialization must use on the wire.
type Ident struct {
	Raw  string `json:"raw" yaml:"raw"`
	Name string `json:"name" yaml:"name"`
}

func (i Ident) String() string {
	return i.Name
}

// TypeName derives a PascalCase identifier for a type or enum variant.
func TypeName(raw string) (Ident, error) {
	return ident(raw, PascalCase)
}

// FieldName derives a snake_case identifier for a struct field.
func FieldName(raw string) (Ident, error) {
	return ident(raw, SnakeCase)
}

func ident(raw string, casing func(string) string) (Ident, error) {
	name := casing(Sanitize(raw))
	if !IsIdentifier(name) {
		return Ident{}, fmt.Errorf("%w: %q sanitizes to %q", ErrInvalidIdentifier, raw, name)
	}
	return Ident{Raw: raw, Name: name}, nil
}

// Sanitize rewrites characters that cannot appear in an identifier.
// "@" becomes "at_", everything else outside letters, digits and "_"
// becomes "_".
func Sanitize(raw string) string {
	s := norm.NFKC.String(raw)
	s = strings.ReplaceAll(s, "@", "at_")
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, s)
}

// IsIdentifier reports whether s is a letter or underscore followed by
// letters, digits and underscores.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
