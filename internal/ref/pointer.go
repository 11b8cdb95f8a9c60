package ref

import (
	"fmt"
	"strings"
)

const fragmentPrefix = "#/"

// Pointer is a parsed same-document fragment reference such as
// "#/components/schemas/Pet".
type Pointer struct {
	raw        string
	components []string
}

// ParsePointer parses a fragment reference. Only references into the
// current document (starting with "#/") are accepted.
func ParsePointer(s string) (Pointer, error) {
	if !strings.HasPrefix(s, fragmentPrefix) {
		return Pointer{}, fmt.Errorf("%w: %q does not start with %q", ErrInvalidPointer, s, fragmentPrefix)
	}
	parts := strings.Split(strings.TrimPrefix(s, fragmentPrefix), "/")
	for i, p := range parts {
		parts[i] = unescape(p)
	}
	return Pointer{raw: s, components: parts}, nil
}

// Components returns a copy of the pointer's path segments.
func (p Pointer) Components() []string {
	out := make([]string, len(p.components))
	copy(out, p.components)
	return out
}

func (p Pointer) String() string {
	return p.raw
}

// ComponentSchema returns the schema name when the pointer has the form
// #/components/schemas/<name>.
func (p Pointer) ComponentSchema() (string, bool) {
	if len(p.components) != 3 || p.components[0] != "components" || p.components[1] != "schemas" {
		return "", false
	}
	return p.components[2], true
}

// unescape applies JSON pointer escaping rules (RFC 6901).
func unescape(s string) string {
	if !strings.Contains(s, "~") {
		return s
	}
	return strings.NewReplacer("~1", "/", "~0", "~").Replace(s)
}
