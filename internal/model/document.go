package model

// Document is the parsed API description the generator works on.
// Maps of the source document are kept as slices so that iteration
// follows document order.
type Document struct {
	Info       Info
	Paths      []PathItem
	Components *Components
}

type Info struct {
	Title   string
	Version string
}

type PathItem struct {
	Path    string
	Get     *Operation
	Put     *Operation
	Post    *Operation
	Delete  *Operation
	Patch   *Operation
	Head    *Operation
	Options *Operation
	Trace   *Operation
}

type Method string

const (
	MethodGet     Method = "GET"
	MethodPut     Method = "PUT"
	MethodPost    Method = "POST"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
)

// Operation returns the operation declared under the method, or nil.
func (p *PathItem) Operation(m Method) *Operation {
	switch m {
	case MethodGet:
		return p.Get
	case MethodPut:
		return p.Put
	case MethodPost:
		return p.Post
	case MethodDelete:
		return p.Delete
	case MethodPatch:
		return p.Patch
	case MethodHead:
		return p.Head
	case MethodOptions:
		return p.Options
	case MethodTrace:
		return p.Trace
	default:
		return nil
	}
}

type Operation struct {
	ID          string
	Summary     string
	RequestBody *RequestBody
	Responses   *Responses
}

type Responses struct {
	Default *Response
	Codes   []NamedResponse
}

type NamedResponse struct {
	Code     string
	Response *Response
}

type Response struct {
	Description string
	Content     []MediaType
}

type RequestBody struct {
	Description string
	Required    bool
	Content     []MediaType
}

// MediaType is one entry of a content map, keyed by its content type.
type MediaType struct {
	Name   string
	Schema *SchemaRef
}

type Components struct {
	Schemas []NamedSchema
}

type NamedSchema struct {
	Name   string
	Schema *SchemaRef
}

// Schema returns the entry of components.schemas with the given name.
func (c *Components) Schema(name string) (*SchemaRef, bool) {
	if c == nil {
		return nil, false
	}
	for _, s := range c.Schemas {
		if s.Name == name {
			return s.Schema, true
		}
	}
	return nil, false
}
