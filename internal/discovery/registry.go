package discovery

import (
	"slices"
	"strings"

	"github.com/kolah/alors/internal/model"
)

// Identifier addresses a discovered schema: the naming context it was
// found in plus a leaf name.
type Identifier struct {
	Namespace []string `json:"namespace" yaml:"namespace"`
	Name      string   `json:"name" yaml:"name"`
}

// String joins the namespace segments and the leaf name with ".".
func (id Identifier) String() string {
	if len(id.Namespace) == 0 {
		return id.Name
	}
	return strings.Join(id.Namespace, ".") + "." + id.Name
}

// TypeName is the raw name a synthesized type for this identifier gets:
// all segments joined with "::".
func (id Identifier) TypeName() string {
	if len(id.Namespace) == 0 {
		return id.Name
	}
	return strings.Join(id.Namespace, "::") + "::" + id.Name
}

// key is unambiguous even when segments contain ".".
func (id Identifier) key() string {
	return strings.Join(append(slices.Clone(id.Namespace), id.Name), "\x00")
}

// Record is a discovered schema under its identifier.
type Record struct {
	ID     Identifier    `json:"id" yaml:"id"`
	Schema *model.Schema `json:"schema" yaml:"schema"`
}

// Registry holds the records of one discovery run in insertion order.
type Registry struct {
	records map[string]*Record
	order   []string
}

func NewRegistry() *Registry {
	return &Registry{records: make(map[string]*Record)}
}

// add stores rec unless its identifier is taken, in which case the
// existing record is returned and nothing changes.
func (r *Registry) add(rec Record) (*Record, bool) {
	k := rec.ID.key()
	if existing, ok := r.records[k]; ok {
		return existing, false
	}
	r.records[k] = &rec
	r.order = append(r.order, k)
	return &rec, true
}

func (r *Registry) Get(id Identifier) (*Record, bool) {
	rec, ok := r.records[id.key()]
	return rec, ok
}

// Lookup finds a record by its dotted string form.
func (r *Registry) Lookup(key string) (*Record, bool) {
	for _, k := range r.order {
		if rec := r.records[k]; rec.ID.String() == key {
			return rec, true
		}
	}
	return nil, false
}

// Records returns all records in the order they were discovered.
func (r *Registry) Records() []*Record {
	out := make([]*Record, len(r.order))
	for i, k := range r.order {
		out[i] = r.records[k]
	}
	return out
}

// Keys returns the dotted identifiers of all records, sorted.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.order))
	for _, k := range r.order {
		keys = append(keys, r.records[k].ID.String())
	}
	slices.Sort(keys)
	return keys
}

func (r *Registry) Len() int {
	return len(r.order)
}
