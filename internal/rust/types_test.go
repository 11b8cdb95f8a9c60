package rust

import (
	"context"
	"testing"

	"github.com/kolah/alors/internal/diag"
	"github.com/kolah/alors/internal/naming"
	"github.com/kolah/alors/internal/typegen"
	"github.com/stretchr/testify/require"
)

func TestRustType(t *testing.T) {
	tests := []struct {
		name     string
		ref      typegen.TypeRef
		expected string
	}{
		{"text", typegen.PrimitiveType(typegen.Text), "String"},
		{"float", typegen.PrimitiveType(typegen.Float64), "f64"},
		{"uint", typegen.PrimitiveType(typegen.Uint64), "u64"},
		{"bool", typegen.PrimitiveType(typegen.Bool), "bool"},
		{"named", typegen.NamedType("Pet"), "Pet"},
		{"any", typegen.AnyType(), "serde_json::Value"},
		{"vec", typegen.SequenceOf(typegen.NamedType("Pet")), "Vec<Pet>"},
		{"map", typegen.MapOf(typegen.PrimitiveType(typegen.Text)), "std::collections::BTreeMap<String, String>"},
		{"map of any", typegen.MapOf(typegen.AnyType()), "std::collections::BTreeMap<String, serde_json::Value>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, RustType(tt.ref))
		})
	}
}

func TestFieldType(t *testing.T) {
	tests := []struct {
		name     string
		field    typegen.Field
		expected string
	}{
		{"required", typegen.Field{Type: typegen.PrimitiveType(typegen.Text)}, "String"},
		{"optional", typegen.Field{Type: typegen.PrimitiveType(typegen.Text), Optional: true}, "Option<String>"},
		{"self", typegen.Field{Type: typegen.NamedType("Node"), Optional: true}, "Option<Box<Node>>"},
		{"self in vec", typegen.Field{Type: typegen.SequenceOf(typegen.NamedType("Node"))}, "Vec<Node>"},
		{"other", typegen.Field{Type: typegen.NamedType("Pet")}, "Pet"},
		{"same cycle", typegen.Field{Type: typegen.NamedType("Edge")}, "Box<Edge>"},
	}

	cycles := typegen.Cycles{"Node": 0, "Edge": 0, "Pet": 1}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, FieldType(cycles, "Node", tt.field))
		})
	}
}

func TestVariantType(t *testing.T) {
	v := typegen.UnionVariant{Name: naming.Ident{Raw: "Variant0", Name: "Variant0"}, Type: typegen.NamedType("Expr")}
	cycles := typegen.Cycles{"Expr": 0}
	require.Equal(t, "Box<Expr>", VariantType(cycles, "Expr", v))
	require.Equal(t, "Expr", VariantType(cycles, "Other", v))
}

func TestCycles(t *testing.T) {
	field := func(name string, ref typegen.TypeRef, optional bool) typegen.Field {
		return typegen.Field{Name: naming.Ident{Raw: name, Name: name}, Type: ref, Optional: optional}
	}
	decl := func(name string, fields ...typegen.Field) *typegen.Struct {
		return &typegen.Struct{Name: naming.Ident{Raw: name, Name: name}, Fields: fields}
	}

	types := typegen.NewRegistry(diag.NewCollector(nil))
	types.Insert(decl("A", field("b", typegen.NamedType("B"), true)))
	types.Insert(decl("B", field("a", typegen.NamedType("A"), true)))
	types.Insert(decl("Leaf", field("name", typegen.PrimitiveType(typegen.Text), false)))
	types.Insert(decl("Tree", field("children", typegen.SequenceOf(typegen.NamedType("Tree")), false)))
	types.Insert(&typegen.Union{
		Name: naming.Ident{Raw: "Expr", Name: "Expr"},
		Variants: []typegen.UnionVariant{
			{Name: naming.Ident{Raw: "Variant0", Name: "Variant0"}, Type: typegen.NamedType("Call")},
			{Name: naming.Ident{Raw: "Variant1", Name: "Variant1"}, Type: typegen.NamedType("Leaf")},
		},
		Untagged: true,
	})
	types.Insert(decl("Call", field("arg", typegen.NamedType("Expr"), false)))

	cycles := Cycles(types)

	require.Equal(t, "Option<Box<B>>", FieldType(cycles, "A", field("b", typegen.NamedType("B"), true)))
	require.Equal(t, "Option<Box<A>>", FieldType(cycles, "B", field("a", typegen.NamedType("A"), true)))
	require.Equal(t, "Box<Expr>", FieldType(cycles, "Call", field("arg", typegen.NamedType("Expr"), false)))
	require.Equal(t, "Box<Call>", VariantType(cycles, "Expr", typegen.UnionVariant{Type: typegen.NamedType("Call")}))
	require.Equal(t, "Leaf", VariantType(cycles, "Expr", typegen.UnionVariant{Type: typegen.NamedType("Leaf")}))
	require.False(t, cycles.Joins("Tree", "Tree"))
}

func TestNeedsRename(t *testing.T) {
	tests := []struct {
		raw      string
		name     string
		expected bool
	}{
		{"name", "name", false},
		{"type", "type", false},
		{"self", "self", true},
		{"super", "super", true},
		{"crate", "crate", true},
		{"@type", "at_type", true},
		{"petId", "pet_id", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			require.Equal(t, tt.expected, NeedsRename(naming.Ident{Raw: tt.raw, Name: tt.name}))
		})
	}
}

func TestEscapeKeyword(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"type", "r#type"},
		{"match", "r#match"},
		{"async", "r#async"},
		{"self", "self_"},
		{"Self", "Self_"},
		{"crate", "crate_"},
		{"name", "name"},
		{"Type", "Type"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, EscapeKeyword(tt.input))
		})
	}
}

func TestFormat(t *testing.T) {
	if !Available() {
		t.Skip("rustfmt not installed")
	}

	out, err := Format(context.Background(), []byte("pub struct Foo{pub bar:String}"), "")
	require.NoError(t, err)
	require.Contains(t, string(out), "pub struct Foo {\n    pub bar: String,\n}")

	_, err = Format(context.Background(), []byte("pub struct {"), DefaultEdition)
	require.ErrorContains(t, err, "running rustfmt")
}
