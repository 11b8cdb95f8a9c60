package typegen

import (
	"reflect"
	"slices"
	"strings"

	"github.com/kolah/alors/internal/diag"
)

// Registry holds synthesized declarations keyed by their sanitized name.
type Registry struct {
	decls map[string]Decl
	diags *diag.Collector
}

func NewRegistry(diags *diag.Collector) *Registry {
	return &Registry{
		decls: make(map[string]Decl),
		diags: diags,
	}
}

// Insert adds d unless a declaration with the same name exists. The
// declaration kept under the name is returned. Differing redefinitions are
// reported, identical ones are dropped silently.
func (r *Registry) Insert(d Decl) Decl {
	name := d.DeclName().Name
	existing, ok := r.decls[name]
	if !ok {
		r.decls[name] = d
		return d
	}
	if !reflect.DeepEqual(existing, d) {
		r.diags.Report(diag.DuplicateTypeName, name,
			"%s %q redefined from %q, keeping the first definition",
			KindOf(d), name, d.DeclName().Raw)
	}
	return existing
}

func (r *Registry) Get(name string) (Decl, bool) {
	d, ok := r.decls[name]
	return d, ok
}

// Decls returns all declarations sorted by name.
func (r *Registry) Decls() []Decl {
	out := make([]Decl, 0, len(r.decls))
	for _, d := range r.decls {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b Decl) int {
		return strings.Compare(a.DeclName().Name, b.DeclName().Name)
	})
	return out
}

func (r *Registry) Len() int {
	return len(r.decls)
}
