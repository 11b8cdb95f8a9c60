package typegen

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/kolah/alors/internal/diag"
	"github.com/kolah/alors/internal/discovery"
	"github.com/kolah/alors/internal/model"
	"github.com/kolah/alors/internal/naming"
	"github.com/kolah/alors/internal/ref"
)

const (
	additionalSegment = "Additional"
	variantPrefix     = "Variant"
)

type builder struct {
	doc   *model.Document
	types *Registry
	diags *diag.Collector

	// declarations already synthesized, by schema object
	built map[*model.Schema]TypeRef
	// component names being inlined, innermost last
	inlining []string
	reported map[string]bool
}

// Build synthesizes declarations for every record of reg. Records are
// visited in discovery order; a schema object is synthesized at most once,
// under the first name it is reached by.
func Build(reg *discovery.Registry, doc *model.Document, diags *diag.Collector) (*Registry, error) {
	b := &builder{
		doc:      doc,
		types:    NewRegistry(diags),
		diags:    diags,
		built:    make(map[*model.Schema]TypeRef),
		reported: make(map[string]bool),
	}

	for _, rec := range reg.Records() {
		if _, ok := b.built[rec.Schema]; ok {
			continue
		}
		name := rec.ID.TypeName()
		if !Materializable(rec.Schema) {
			slog.Debug("schema does not declare a type", "name", name, "kind", string(rec.Schema.Kind()))
		}
		if _, err := b.schema(rec.Schema, name); err != nil {
			return nil, fmt.Errorf("building %s: %w", name, err)
		}
	}
	return b.types, nil
}

// Materializable reports whether s becomes a declaration of its own rather
// than a primitive, sequence, map or opaque value.
func Materializable(s *model.Schema) bool {
	switch s.Kind() {
	case model.KindString:
		return len(s.Enum) > 0
	case model.KindObject:
		return len(s.Properties) > 0 || (s.AdditionalProperties == nil && !s.AdditionalAny)
	case model.KindOneOf:
		return true
	default:
		return false
	}
}

// schema returns the type of s, synthesizing declarations named after name
// where s requires them.
func (b *builder) schema(s *model.Schema, name string) (TypeRef, error) {
	if t, ok := b.built[s]; ok {
		return t, nil
	}

	switch kind := s.Kind(); kind {
	case model.KindString:
		if len(s.Enum) == 0 {
			return PrimitiveType(Text), nil
		}
		return b.plainEnum(s, name)
	case model.KindNumber:
		return PrimitiveType(Float64), nil
	case model.KindInteger:
		return PrimitiveType(Uint64), nil
	case model.KindBoolean:
		return PrimitiveType(Bool), nil
	case model.KindObject:
		if len(s.Properties) > 0 {
			return b.object(s, name)
		}
		switch {
		case s.AdditionalProperties != nil:
			elem, err := b.reference(s.AdditionalProperties, name+"::"+additionalSegment)
			if err != nil {
				return TypeRef{}, err
			}
			return MapOf(elem), nil
		case s.AdditionalAny:
			return MapOf(AnyType()), nil
		default:
			return b.object(s, name)
		}
	case model.KindArray:
		elem, err := b.reference(s.Items, name)
		if err != nil {
			return TypeRef{}, err
		}
		return SequenceOf(elem), nil
	case model.KindOneOf:
		return b.union(s, name)
	default:
		b.unsupported(name, kind)
		return AnyType(), nil
	}
}

// reference resolves a reference to the named declaration of its component, or
// inlines the component's structure when it declares no type itself.
func (b *builder) reference(r *model.SchemaRef, name string) (TypeRef, error) {
	if r == nil {
		return AnyType(), nil
	}
	if !r.IsRef() {
		return b.schema(r.Value, name)
	}

	target, s, err := ref.Target(r, b.doc)
	if err != nil {
		return TypeRef{}, err
	}
	if Materializable(s) {
		id, err := naming.TypeName(target)
		if err != nil {
			return TypeRef{}, err
		}
		return NamedType(id.Name), nil
	}

	if slices.Contains(b.inlining, target) {
		return TypeRef{}, fmt.Errorf("%w: %s inlines itself", ref.ErrCyclicReference, target)
	}
	b.inlining = append(b.inlining, target)
	defer func() { b.inlining = b.inlining[:len(b.inlining)-1] }()
	return b.schema(s, target)
}

func (b *builder) object(s *model.Schema, name string) (TypeRef, error) {
	id, err := naming.TypeName(name)
	if err != nil {
		return TypeRef{}, err
	}

	st := &Struct{Name: id}
	for _, p := range s.Properties {
		field, err := naming.FieldName(p.Name)
		if err != nil {
			return TypeRef{}, fmt.Errorf("property %s: %w", p.Name, err)
		}
		t, err := b.reference(p.Schema, name+"::"+p.Name)
		if err != nil {
			return TypeRef{}, fmt.Errorf("property %s: %w", p.Name, err)
		}
		st.Fields = append(st.Fields, Field{
			Name:     field,
			Type:     t,
			Optional: !s.IsRequired(p.Name),
		})
	}
	return b.declare(s, st), nil
}

func (b *builder) plainEnum(s *model.Schema, name string) (TypeRef, error) {
	id, err := naming.TypeName(name)
	if err != nil {
		return TypeRef{}, err
	}

	e := &PlainEnum{Name: id}
	for _, literal := range s.Enum {
		v, err := naming.TypeName(literal)
		if err != nil {
			return TypeRef{}, fmt.Errorf("enum value: %w", err)
		}
		e.Variants = append(e.Variants, UnitVariant{Name: v})
	}
	return b.declare(s, e), nil
}

func (b *builder) union(s *model.Schema, name string) (TypeRef, error) {
	id, err := naming.TypeName(name)
	if err != nil {
		return TypeRef{}, err
	}

	u := &Union{Name: id, Untagged: true}
	for i, member := range s.OneOf {
		variant := fmt.Sprintf("%s%d", variantPrefix, i)
		v, err := naming.TypeName(variant)
		if err != nil {
			return TypeRef{}, err
		}
		t, err := b.reference(member, name+"::"+variant)
		if err != nil {
			return TypeRef{}, fmt.Errorf("%s: %w", variant, err)
		}
		u.Variants = append(u.Variants, UnionVariant{Name: v, Type: t})
	}
	return b.declare(s, u), nil
}

func (b *builder) declare(s *model.Schema, d Decl) TypeRef {
	kept := b.types.Insert(d)
	t := NamedType(kept.DeclName().Name)
	b.built[s] = t
	return t
}

func (b *builder) unsupported(name string, kind model.Kind) {
	if b.reported[name] {
		return
	}
	b.reported[name] = true
	b.diags.Report(diag.UnsupportedShape, name, "%s schema is not supported, using an opaque value", kind)
}
