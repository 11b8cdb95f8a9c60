package model

import (
	"reflect"
	"slices"
)

type Schema struct {
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Type        SchemaType `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string     `json:"format,omitempty" yaml:"format,omitempty"`
	Nullable    bool       `json:"nullable,omitempty" yaml:"nullable,omitempty"`

	// Object properties
	Properties []Property `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required   []string   `json:"required,omitempty" yaml:"required,omitempty"`

	// AdditionalProperties is set when additionalProperties is a schema,
	// AdditionalAny when it is the literal true.
	AdditionalProperties *SchemaRef `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
	AdditionalAny        bool       `json:"additionalAny,omitempty" yaml:"additionalAny,omitempty"`

	// Array items
	Items *SchemaRef `json:"items,omitempty" yaml:"items,omitempty"`

	// String literals of an enum; null entries are dropped.
	Enum []string `json:"enum,omitempty" yaml:"enum,omitempty"`

	// Composition
	AllOf []*SchemaRef `json:"allOf,omitempty" yaml:"allOf,omitempty"`
	OneOf []*SchemaRef `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	AnyOf []*SchemaRef `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
}

type SchemaType string

const (
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
	TypeNull    SchemaType = "null"
)

type Property struct {
	Name   string     `json:"name" yaml:"name"`
	Schema *SchemaRef `json:"schema" yaml:"schema"`
}

// SchemaRef is either an inline schema (Value) or a same-document
// reference (Ref). Exactly one of the two is set.
type SchemaRef struct {
	Ref   string  `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Value *Schema `json:"value,omitempty" yaml:"value,omitempty"`
}

// Inline wraps a schema as an inline reference.
func Inline(s *Schema) *SchemaRef {
	return &SchemaRef{Value: s}
}

// RefTo creates a pointer reference.
func RefTo(ref string) *SchemaRef {
	return &SchemaRef{Ref: ref}
}

func (r *SchemaRef) IsRef() bool {
	return r != nil && r.Ref != ""
}

// Kind classifies a schema into the closed set of shapes the generator
// distinguishes.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindBoolean Kind = "boolean"
	KindObject  Kind = "object"
	KindArray   Kind = "array"
	KindOneOf   Kind = "oneOf"
	KindAnyOf   Kind = "anyOf"
	KindAllOf   Kind = "allOf"
	KindAny     Kind = "any"
)

// Kind reports the shape of the schema. Composition keywords take
// precedence over the declared type.
func (s *Schema) Kind() Kind {
	if s == nil {
		return KindAny
	}
	switch {
	case len(s.OneOf) > 0:
		return KindOneOf
	case len(s.AnyOf) > 0:
		return KindAnyOf
	case len(s.AllOf) > 0:
		return KindAllOf
	}
	switch s.Type {
	case TypeString:
		return KindString
	case TypeNumber:
		return KindNumber
	case TypeInteger:
		return KindInteger
	case TypeBoolean:
		return KindBoolean
	case TypeArray:
		if s.Items == nil {
			return KindAny
		}
		return KindArray
	case TypeObject:
		return KindObject
	case "":
		// properties without an explicit type still describe an object
		if len(s.Properties) > 0 {
			return KindObject
		}
		return KindAny
	default:
		return KindAny
	}
}

// IsRequired reports whether the property name is listed in required.
func (s *Schema) IsRequired(name string) bool {
	return slices.Contains(s.Required, name)
}

// Equal compares two schemas structurally.
func (s *Schema) Equal(other *Schema) bool {
	return reflect.DeepEqual(s, other)
}
