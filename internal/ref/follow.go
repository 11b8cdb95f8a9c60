package ref

import (
	"errors"
	"fmt"

	"github.com/kolah/alors/internal/model"
)

var (
	ErrInvalidPointer       = errors.New("invalid pointer")
	ErrUnsupportedReference = errors.New("unsupported reference location")
	ErrNoComponentsDefined  = errors.New("no components defined")
	ErrReferenceNotFound    = errors.New("reference not found")
	ErrCyclicReference      = errors.New("cyclic reference")
)

// Follow returns the schema a reference denotes. Inline schemas are
// returned as is; pointers are resolved against components.schemas,
// following chains of references until an inline schema is reached.
func Follow(r *model.SchemaRef, doc *model.Document) (*model.Schema, error) {
	_, s, err := Target(r, doc)
	return s, err
}

// Target is like Follow but also reports the name of the last
// components.schemas entry visited. The name is empty for inline schemas.
func Target(r *model.SchemaRef, doc *model.Document) (string, *model.Schema, error) {
	return follow(r, doc, "", nil)
}

func follow(r *model.SchemaRef, doc *model.Document, name string, seen []string) (string, *model.Schema, error) {
	if r == nil {
		return name, nil, nil
	}
	if !r.IsRef() {
		return name, r.Value, nil
	}

	target, next, err := lookup(r.Ref, doc)
	if err != nil {
		return "", nil, err
	}
	for _, s := range seen {
		if s == target {
			return "", nil, fmt.Errorf("%w: %s", ErrCyclicReference, r.Ref)
		}
	}
	return follow(next, doc, target, append(seen, target))
}

// ComponentName parses a reference and returns the components.schemas
// name it points to, without looking it up.
func ComponentName(reference string) (string, error) {
	p, err := ParsePointer(reference)
	if err != nil {
		return "", err
	}
	name, ok := p.ComponentSchema()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedReference, reference)
	}
	return name, nil
}

func lookup(reference string, doc *model.Document) (string, *model.SchemaRef, error) {
	name, err := ComponentName(reference)
	if err != nil {
		return "", nil, err
	}
	if doc == nil || doc.Components == nil {
		return "", nil, fmt.Errorf("%w: cannot resolve %s", ErrNoComponentsDefined, reference)
	}
	s, ok := doc.Components.Schema(name)
	if !ok {
		return "", nil, fmt.Errorf("%w: %s", ErrReferenceNotFound, reference)
	}
	return name, s, nil
}
