// Package typegen turns discovered schemas into a target-independent set of
// type declarations.
package typegen

import (
	"github.com/kolah/alors/internal/naming"
)

// Decl is a synthesized type declaration: *Struct, *PlainEnum or *Union.
type Decl interface {
	DeclName() naming.Ident
	declKind() DeclKind
}

type DeclKind string

const (
	DeclStruct    DeclKind = "struct"
	DeclPlainEnum DeclKind = "enum"
	DeclUnion     DeclKind = "union"
)

// KindOf reports which declaration d is.
func KindOf(d Decl) DeclKind {
	return d.declKind()
}

// Struct is an object schema. Name.Raw is the name it was synthesized under.
type Struct struct {
	Name   naming.Ident `json:"name" yaml:"name"`
	Fields []Field      `json:"fields" yaml:"fields"`
}

func (s *Struct) DeclName() naming.Ident { return s.Name }
func (s *Struct) declKind() DeclKind     { return DeclStruct }

// Field is one property of a Struct. Name.Raw is the property name as
// written in the document.
type Field struct {
	Name     naming.Ident `json:"name" yaml:"name"`
	Type     TypeRef      `json:"type" yaml:"type"`
	Optional bool         `json:"optional" yaml:"optional"`
}

// Rename is the serialized name of the field.
func (f Field) Rename() string {
	return f.Name.Raw
}

// PlainEnum is a string schema restricted to a list of literals.
type PlainEnum struct {
	Name     naming.Ident  `json:"name" yaml:"name"`
	Variants []UnitVariant `json:"variants" yaml:"variants"`
}

func (e *PlainEnum) DeclName() naming.Ident { return e.Name }
func (e *PlainEnum) declKind() DeclKind     { return DeclPlainEnum }

// UnitVariant is one literal of a PlainEnum; Name.Raw holds the literal.
type UnitVariant struct {
	Name naming.Ident `json:"name" yaml:"name"`
}

// Rename is the literal value the variant serializes to.
func (v UnitVariant) Rename() string {
	return v.Name.Raw
}

// Union is a oneOf schema. Each variant wraps exactly one type.
type Union struct {
	Name     naming.Ident   `json:"name" yaml:"name"`
	Variants []UnionVariant `json:"variants" yaml:"variants"`
	Untagged bool           `json:"untagged" yaml:"untagged"`
}

func (u *Union) DeclName() naming.Ident { return u.Name }
func (u *Union) declKind() DeclKind     { return DeclUnion }

type UnionVariant struct {
	Name naming.Ident `json:"name" yaml:"name"`
	Type TypeRef      `json:"type" yaml:"type"`
}

type TypeKind string

const (
	TypePrimitive TypeKind = "primitive"
	TypeNamed     TypeKind = "named"
	TypeSequence  TypeKind = "sequence"
	TypeMap       TypeKind = "map"
	TypeAny       TypeKind = "any"
)

type Primitive string

const (
	Text    Primitive = "text"
	Float64 Primitive = "float64"
	Uint64  Primitive = "uint64"
	Bool    Primitive = "bool"
)

// TypeRef is the type of a field or union variant.
type TypeRef struct {
	Kind      TypeKind  `json:"kind" yaml:"kind"`
	Primitive Primitive `json:"primitive,omitempty" yaml:"primitive,omitempty"`
	// Name of the declaration for TypeNamed.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Element type for TypeSequence and the value type for TypeMap.
	Elem *TypeRef `json:"elem,omitempty" yaml:"elem,omitempty"`
}

func PrimitiveType(p Primitive) TypeRef {
	return TypeRef{Kind: TypePrimitive, Primitive: p}
}

func NamedType(name string) TypeRef {
	return TypeRef{Kind: TypeNamed, Name: name}
}

func SequenceOf(elem TypeRef) TypeRef {
	return TypeRef{Kind: TypeSequence, Elem: &elem}
}

// MapOf is a string-keyed map with values of elem.
func MapOf(elem TypeRef) TypeRef {
	return TypeRef{Kind: TypeMap, Elem: &elem}
}

func AnyType() TypeRef {
	return TypeRef{Kind: TypeAny}
}

// String renders the reference in a neutral notation, e.g. "[]map[string]Pet".
func (t TypeRef) String() string {
	switch t.Kind {
	case TypePrimitive:
		return string(t.Primitive)
	case TypeNamed:
		return t.Name
	case TypeSequence:
		return "[]" + t.Elem.String()
	case TypeMap:
		return "map[string]" + t.Elem.String()
	default:
		return "any"
	}
}

// Walk calls fn for t and every nested element type.
func (t TypeRef) Walk(fn func(TypeRef)) {
	fn(t)
	if t.Elem != nil {
		t.Elem.Walk(fn)
	}
}
