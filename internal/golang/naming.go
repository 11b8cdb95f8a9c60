package golang

import (
	"unicode"

	"github.com/kolah/alors/internal/naming"
	"github.com/kolah/alors/internal/typegen"
)

var commonInitialisms = []string{
	"API", "ASCII", "CPU", "CSS", "DNS", "EOF", "GUID", "HTML", "HTTP",
	"HTTPS", "ID", "IP", "JSON", "LHS", "QPS", "RAM", "RHS", "RPC", "SLA",
	"SMTP", "SQL", "SSH", "TCP", "TLS", "TTL", "UDP", "UI", "UID", "UUID",
	"URI", "URL", "UTF8", "VM", "XML", "XMPP", "XSRF", "XSS",
}

// Namer spells identifiers the way Go code does, with initialisms in
// upper case. Each generator owns its own.
type Namer struct {
	casing naming.Casing
}

func NewNamer(additionalInitialisms ...string) *Namer {
	all := append(append([]string{}, commonInitialisms...), additionalInitialisms...)
	return &Namer{casing: naming.NewCasing(all...)}
}

func (n *Namer) Ident(s string) string {
	result := n.casing.Pascal(s)
	if len(result) == 0 {
		return "X"
	}
	first := []rune(result)[0]
	if unicode.IsDigit(first) {
		return "X" + result
	}
	return result
}

// Name derives an exported Go identifier from a raw document name.
func (n *Namer) Name(raw string) string {
	return n.Ident(naming.Sanitize(raw))
}

// TypeName respells a synthesized type name with Go initialisms.
func (n *Namer) TypeName(name string) string {
	return n.Ident(name)
}

// Type returns the Go spelling of a type reference.
func (n *Namer) Type(t typegen.TypeRef) string {
	switch t.Kind {
	case typegen.TypePrimitive:
		return goPrimitive(t.Primitive)
	case typegen.TypeNamed:
		return n.TypeName(t.Name)
	case typegen.TypeSequence:
		return "[]" + n.Type(*t.Elem)
	case typegen.TypeMap:
		return "map[string]" + n.Type(*t.Elem)
	default:
		return "any"
	}
}

// FieldType is the type of a field of the struct named owner. Optional
// values and references back into owner's cycle are held by pointer.
func (n *Namer) FieldType(cycles typegen.Cycles, owner string, f typegen.Field) string {
	if NeedsPointer(f.Type, f.Optional) || breaksCycle(cycles, owner, f.Type) {
		return "*" + n.Type(f.Type)
	}
	return n.Type(f.Type)
}

// EnumConst names the constant of an enum variant.
func (n *Namer) EnumConst(enum, variant naming.Ident) string {
	return n.TypeName(enum.Name) + n.TypeName(variant.Name)
}
