package golang

import (
	"fmt"
	"strings"

	"github.com/kolah/alors/internal/typegen"
)

func goPrimitive(p typegen.Primitive) string {
	switch p {
	case typegen.Text:
		return "string"
	case typegen.Float64:
		return "float64"
	case typegen.Uint64:
		return "uint64"
	case typegen.Bool:
		return "bool"
	default:
		return "any"
	}
}

// NeedsPointer reports whether an optional field of type t is held by
// pointer. Slices, maps and any already have a nil value.
func NeedsPointer(t typegen.TypeRef, optional bool) bool {
	if !optional {
		return false
	}
	switch t.Kind {
	case typegen.TypePrimitive, typegen.TypeNamed:
		return true
	default:
		return false
	}
}

// Cycles finds the structs that contain themselves by value. Optional
// fields and union variants are pointers already, so only required
// fields count.
func Cycles(types *typegen.Registry) typegen.Cycles {
	return types.Cycles(func(d typegen.Decl) []typegen.TypeRef {
		st, ok := d.(*typegen.Struct)
		if !ok {
			return nil
		}
		var refs []typegen.TypeRef
		for _, f := range st.Fields {
			if !f.Optional {
				refs = append(refs, f.Type)
			}
		}
		return refs
	})
}

func breaksCycle(cycles typegen.Cycles, owner string, t typegen.TypeRef) bool {
	return t.Kind == typegen.TypeNamed && cycles.Joins(owner, t.Name)
}

func JSONTag(name string, required bool) string {
	if required {
		return fmt.Sprintf("`json:\"%s\"`", name)
	}
	return fmt.Sprintf("`json:\"%s,omitempty\"`", name)
}

// YAMLTag generates a yaml struct tag.
func YAMLTag(name string, required bool) string {
	if required {
		return fmt.Sprintf("yaml:\"%s\"", name)
	}
	return fmt.Sprintf("yaml:\"%s,omitempty\"", name)
}

// StructTag generates the tag of a field, keyed by its original property
// name.
func StructTag(f typegen.Field, enableYAML bool) string {
	tag := JSONTag(f.Rename(), !f.Optional)
	if enableYAML {
		tag = strings.TrimSuffix(tag, "`") + " " + YAMLTag(f.Rename(), !f.Optional) + "`"
	}
	return tag
}
