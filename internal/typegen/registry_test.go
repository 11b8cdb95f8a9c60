package typegen

import (
	"testing"

	"github.com/kolah/alors/internal/diag"
	"github.com/kolah/alors/internal/naming"
	"github.com/stretchr/testify/require"
)

func fooStruct(fieldType TypeRef) *Struct {
	return &Struct{
		Name: naming.Ident{Raw: "Foo", Name: "Foo"},
		Fields: []Field{{
			Name: naming.Ident{Raw: "bar", Name: "bar"},
			Type: fieldType,
		}},
	}
}

func TestRegistryInsert(t *testing.T) {
	c := diag.NewCollector(nil)
	r := NewRegistry(c)

	first := fooStruct(PrimitiveType(Text))
	require.Same(t, first, r.Insert(first))

	kept := r.Insert(fooStruct(PrimitiveType(Text)))
	require.Same(t, first, kept)
	require.Equal(t, 0, c.Len())

	kept = r.Insert(fooStruct(PrimitiveType(Bool)))
	require.Same(t, first, kept)
	require.Equal(t, 1, r.Len())
	require.Equal(t, 1, c.Len())
	require.Equal(t, diag.DuplicateTypeName, c.Diagnostics()[0].Kind)
	require.Equal(t, "Foo", c.Diagnostics()[0].Subject)
}

func TestRegistryDeclsSorted(t *testing.T) {
	r := NewRegistry(nil)
	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		r.Insert(&PlainEnum{Name: naming.Ident{Raw: name, Name: name}})
	}

	var names []string
	for _, d := range r.Decls() {
		names = append(names, d.DeclName().Name)
	}
	require.Equal(t, []string{"Alpha", "Mid", "Zeta"}, names)

	_, ok := r.Get("Mid")
	require.True(t, ok)
	_, ok = r.Get("Missing")
	require.False(t, ok)
}

func TestTypeRefString(t *testing.T) {
	tests := []struct {
		ref      TypeRef
		expected string
	}{
		{PrimitiveType(Text), "text"},
		{NamedType("Pet"), "Pet"},
		{SequenceOf(MapOf(NamedType("Pet"))), "[]map[string]Pet"},
		{MapOf(AnyType()), "map[string]any"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.ref.String())
		})
	}
}

func TestTypeRefWalk(t *testing.T) {
	var kinds []TypeKind
	SequenceOf(MapOf(NamedType("Pet"))).Walk(func(t TypeRef) {
		kinds = append(kinds, t.Kind)
	})
	require.Equal(t, []TypeKind{TypeSequence, TypeMap, TypeNamed}, kinds)
}
