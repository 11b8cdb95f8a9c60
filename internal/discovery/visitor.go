package discovery

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/kolah/alors/internal/diag"
	"github.com/kolah/alors/internal/model"
	"github.com/kolah/alors/internal/ref"
)

var ErrCannotInferName = errors.New("cannot infer name from empty namespace")

// Only these methods are walked, in this order.
var walkedMethods = []model.Method{
	model.MethodGet,
	model.MethodPut,
	model.MethodPost,
	model.MethodDelete,
}

const requestBodySegment = "requestBody"

type visitor struct {
	doc   *model.Document
	reg   *Registry
	diags *diag.Collector
}

// Discover walks the document depth-first and registers every inline
// schema it finds under a namespaced identifier. Schemas reached through a
// reference are only registered at their components.schemas location.
func Discover(doc *model.Document, diags *diag.Collector) (*Registry, error) {
	v := &visitor{
		doc:   doc,
		reg:   NewRegistry(),
		diags: diags,
	}
	if doc == nil {
		return v.reg, nil
	}

	for i := range doc.Paths {
		if err := v.pathItem(&doc.Paths[i]); err != nil {
			return nil, err
		}
	}
	if err := v.components(); err != nil {
		return nil, err
	}
	return v.reg, nil
}

func (v *visitor) pathItem(item *model.PathItem) error {
	for _, m := range walkedMethods {
		op := item.Operation(m)
		if op == nil {
			continue
		}
		ns := []string{item.Path}
		if op.ID != "" {
			ns = []string{op.ID}
		}
		if err := v.operation(op, ns); err != nil {
			return fmt.Errorf("%s %s: %w", m, item.Path, err)
		}
	}
	return nil
}

func (v *visitor) operation(op *model.Operation, ns []string) error {
	if op.Responses != nil {
		if op.Responses.Default != nil {
			if err := v.content(op.Responses.Default.Content, ns); err != nil {
				return err
			}
		}
		for _, r := range op.Responses.Codes {
			if r.Response == nil {
				continue
			}
			if err := v.content(r.Response.Content, sub(ns, r.Code)); err != nil {
				return err
			}
		}
	}
	if op.RequestBody != nil {
		if err := v.content(op.RequestBody.Content, sub(ns, requestBodySegment)); err != nil {
			return err
		}
	}
	return nil
}

func (v *visitor) content(content []model.MediaType, ns []string) error {
	for _, mt := range content {
		if mt.Schema == nil {
			continue
		}
		if mt.Schema.IsRef() {
			// registered once at its components.schemas location
			slog.Debug("skipping referenced media type schema", "content", mt.Name, "ref", mt.Schema.Ref)
			continue
		}
		if err := v.schema(mt.Schema.Value, sub(ns, mt.Name), nil); err != nil {
			return err
		}
	}
	return nil
}

func (v *visitor) components() error {
	if v.doc.Components == nil {
		return nil
	}
	for _, entry := range v.doc.Components.Schemas {
		if entry.Schema == nil {
			continue
		}
		if entry.Schema.IsRef() {
			v.diags.Report(diag.ReferenceEntrySkipped, entry.Name,
				"reference %s in components.schemas is not collected", entry.Schema.Ref)
			continue
		}
		if err := v.schema(entry.Schema.Value, []string{entry.Name}, nil); err != nil {
			return err
		}
	}
	return nil
}

// schema registers s under ns and descends into its children. owner is the
// schema that first claimed ns when s is a union member or array item
// sharing its naming context, nil otherwise.
func (v *visitor) schema(s *model.Schema, ns []string, owner *model.Schema) error {
	if s == nil {
		return nil
	}
	if len(ns) == 0 {
		return ErrCannotInferName
	}

	id := Identifier{Name: ns[len(ns)-1]}
	if len(ns) > 1 {
		id.Namespace = slices.Clone(ns[:len(ns)-1])
	}
	v.register(id, s, owner)

	if owner == nil {
		owner = s
	}
	switch s.Kind() {
	case model.KindOneOf:
		return v.members(s.OneOf, ns, owner)
	case model.KindAnyOf:
		return v.members(s.AnyOf, ns, owner)
	case model.KindAllOf:
		return v.members(s.AllOf, ns, owner)
	case model.KindObject:
		for _, p := range s.Properties {
			if err := v.visitRef(p.Schema, sub(ns, p.Name), nil); err != nil {
				return fmt.Errorf("property %s: %w", p.Name, err)
			}
		}
	case model.KindArray:
		return v.visitRef(s.Items, ns, owner)
	}
	return nil
}

func (v *visitor) members(members []*model.SchemaRef, ns []string, owner *model.Schema) error {
	for _, m := range members {
		if err := v.visitRef(m, ns, owner); err != nil {
			return err
		}
	}
	return nil
}

// visitRef validates references without registering their targets again
// and descends into inline schemas.
func (v *visitor) visitRef(r *model.SchemaRef, ns []string, owner *model.Schema) error {
	if r == nil {
		return nil
	}
	if r.IsRef() {
		if _, err := ref.Follow(r, v.doc); err != nil {
			return err
		}
		return nil
	}
	return v.schema(r.Value, ns, owner)
}

func (v *visitor) register(id Identifier, s *model.Schema, owner *model.Schema) {
	existing, added := v.reg.add(Record{ID: id, Schema: s})
	if added || existing.Schema == s || existing.Schema.Equal(s) {
		return
	}
	if owner != nil && existing.Schema == owner {
		slog.Debug("member shares its parent's identifier", "id", id.String())
		return
	}
	v.diags.Report(diag.DuplicateSchema, id.String(),
		"identifier already registered with a different schema, keeping the first one")
}

func sub(ns []string, segment string) []string {
	out := make([]string, len(ns)+1)
	copy(out, ns)
	out[len(ns)] = segment
	return out
}
