// Package rust maps synthesized types onto Rust with serde attributes.
package rust

import (
	"github.com/kolah/alors/internal/typegen"
)

const mapType = "std::collections::BTreeMap"

// RustType returns the Rust spelling of a type reference.
func RustType(t typegen.TypeRef) string {
	switch t.Kind {
	case typegen.TypePrimitive:
		return rustPrimitive(t.Primitive)
	case typegen.TypeNamed:
		return t.Name
	case typegen.TypeSequence:
		return "Vec<" + RustType(*t.Elem) + ">"
	case typegen.TypeMap:
		return mapType + "<String, " + RustType(*t.Elem) + ">"
	default:
		return "serde_json::Value"
	}
}

func rustPrimitive(p typegen.Primitive) string {
	switch p {
	case typegen.Text:
		return "String"
	case typegen.Float64:
		return "f64"
	case typegen.Uint64:
		return "u64"
	case typegen.Bool:
		return "bool"
	default:
		return "serde_json::Value"
	}
}

// Cycles finds the declarations that would contain themselves by value.
// Option does not add indirection, so optional fields count too.
func Cycles(types *typegen.Registry) typegen.Cycles {
	return types.Cycles(func(d typegen.Decl) []typegen.TypeRef {
		var refs []typegen.TypeRef
		switch d := d.(type) {
		case *typegen.Struct:
			for _, f := range d.Fields {
				refs = append(refs, f.Type)
			}
		case *typegen.Union:
			for _, v := range d.Variants {
				refs = append(refs, v.Type)
			}
		}
		return refs
	})
}

func boxed(cycles typegen.Cycles, owner string, t typegen.TypeRef) string {
	if t.Kind == typegen.TypeNamed && cycles.Joins(owner, t.Name) {
		return "Box<" + RustType(t) + ">"
	}
	return RustType(t)
}

// FieldType is the type of a field of the struct named owner. A field
// leading back into owner's cycle is boxed.
func FieldType(cycles typegen.Cycles, owner string, f typegen.Field) string {
	t := boxed(cycles, owner, f.Type)
	if f.Optional {
		return "Option<" + t + ">"
	}
	return t
}

// VariantType is the payload type of a union variant of the enum named
// owner.
func VariantType(cycles typegen.Cycles, owner string, v typegen.UnionVariant) string {
	return boxed(cycles, owner, v.Type)
}
