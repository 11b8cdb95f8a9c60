package loader

import (
	"slices"

	"github.com/kolah/alors/internal/model"
	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	"github.com/pb33f/libopenapi/orderedmap"
	"go.yaml.in/yaml/v4"
)

const componentSchemaPrefix = "#/components/schemas/"

type Options struct {
	// ExcludeSchemas names components.schemas entries to leave out.
	ExcludeSchemas []string
}

type transformer struct {
	componentSchemas map[*base.Schema]string
}

// Transform converts the parsed document into the generator's model.
// References are kept as pointers rather than being resolved.
func Transform(result *Result, opts Options) (*model.Document, error) {
	doc := result.Document.Model

	t := &transformer{
		componentSchemas: make(map[*base.Schema]string),
	}

	if doc.Components != nil && doc.Components.Schemas != nil {
		for name, schemaProxy := range doc.Components.Schemas.FromOldest() {
			if schemaProxy.IsReference() {
				continue
			}
			t.componentSchemas[schemaProxy.Schema()] = componentSchemaPrefix + name
		}
	}

	out := &model.Document{
		Info: transformInfo(doc.Info),
	}

	if doc.Paths != nil && doc.Paths.PathItems != nil {
		for pathStr, pathItem := range doc.Paths.PathItems.FromOldest() {
			out.Paths = append(out.Paths, t.transformPath(pathStr, pathItem))
		}
	}

	if doc.Components != nil {
		out.Components = &model.Components{}
		if doc.Components.Schemas != nil {
			for name, schemaProxy := range doc.Components.Schemas.FromOldest() {
				if slices.Contains(opts.ExcludeSchemas, name) {
					continue
				}
				out.Components.Schemas = append(out.Components.Schemas, model.NamedSchema{
					Name:   name,
					Schema: t.componentEntry(schemaProxy),
				})
			}
		}
	}

	return out, nil
}

func transformInfo(info *base.Info) model.Info {
	if info == nil {
		return model.Info{}
	}
	return model.Info{
		Title:   info.Title,
		Version: info.Version,
	}
}

func (t *transformer) transformPath(pathStr string, pathItem *v3.PathItem) model.PathItem {
	return model.PathItem{
		Path:    pathStr,
		Get:     t.transformOperation(pathItem.Get),
		Put:     t.transformOperation(pathItem.Put),
		Post:    t.transformOperation(pathItem.Post),
		Delete:  t.transformOperation(pathItem.Delete),
		Patch:   t.transformOperation(pathItem.Patch),
		Head:    t.transformOperation(pathItem.Head),
		Options: t.transformOperation(pathItem.Options),
		Trace:   t.transformOperation(pathItem.Trace),
	}
}

func (t *transformer) transformOperation(op *v3.Operation) *model.Operation {
	if op == nil {
		return nil
	}

	operation := &model.Operation{
		ID:      op.OperationId,
		Summary: op.Summary,
	}

	if op.RequestBody != nil {
		operation.RequestBody = &model.RequestBody{
			Description: op.RequestBody.Description,
			Required:    boolPtr(op.RequestBody.Required),
			Content:     t.transformContent(op.RequestBody.Content),
		}
	}

	if op.Responses != nil {
		operation.Responses = &model.Responses{}
		if op.Responses.Default != nil {
			operation.Responses.Default = t.transformResponse(op.Responses.Default)
		}
		if op.Responses.Codes != nil {
			for code, resp := range op.Responses.Codes.FromOldest() {
				operation.Responses.Codes = append(operation.Responses.Codes, model.NamedResponse{
					Code:     code,
					Response: t.transformResponse(resp),
				})
			}
		}
	}

	return operation
}

func (t *transformer) transformResponse(resp *v3.Response) *model.Response {
	if resp == nil {
		return nil
	}
	return &model.Response{
		Description: resp.Description,
		Content:     t.transformContent(resp.Content),
	}
}

func (t *transformer) transformContent(content *orderedmap.Map[string, *v3.MediaType]) []model.MediaType {
	if content == nil {
		return nil
	}
	var result []model.MediaType
	for mediaType, mt := range content.FromOldest() {
		result = append(result, model.MediaType{
			Name:   mediaType,
			Schema: t.transformSchemaProxy(mt.Schema),
		})
	}
	return result
}

// componentEntry keeps a components.schemas entry inline even when the
// same schema object is reachable under another name.
func (t *transformer) componentEntry(proxy *base.SchemaProxy) *model.SchemaRef {
	if ref := proxy.GetReference(); ref != "" {
		return model.RefTo(ref)
	}
	return model.Inline(t.transformSchema(proxy.Schema()))
}

func (t *transformer) transformSchemaProxy(proxy *base.SchemaProxy) *model.SchemaRef {
	if proxy == nil {
		return nil
	}

	if ref := proxy.GetReference(); ref != "" {
		return model.RefTo(ref)
	}
	// bundled documents lose the reference text but share the schema object
	if resolved, ok := t.componentSchemas[proxy.Schema()]; ok {
		return model.RefTo(resolved)
	}

	return model.Inline(t.transformSchema(proxy.Schema()))
}

func (t *transformer) transformSchema(s *base.Schema) *model.Schema {
	if s == nil {
		return nil
	}

	schema := &model.Schema{
		Description: s.Description,
		Format:      s.Format,
		Nullable:    boolPtr(s.Nullable),
		Required:    s.Required,
	}

	for _, typ := range s.Type {
		if typ == string(model.TypeNull) {
			schema.Nullable = true
			continue
		}
		if schema.Type == "" {
			schema.Type = model.SchemaType(typ)
		}
	}

	schema.Enum = enumLiterals(s.Enum)

	if s.Properties != nil {
		for propName, propProxy := range s.Properties.FromOldest() {
			schema.Properties = append(schema.Properties, model.Property{
				Name:   propName,
				Schema: t.transformSchemaProxy(propProxy),
			})
		}
	}

	if s.Items != nil && s.Items.A != nil {
		schema.Items = t.transformSchemaProxy(s.Items.A)
	}

	if s.AdditionalProperties != nil {
		switch {
		case s.AdditionalProperties.IsA() && s.AdditionalProperties.A != nil:
			schema.AdditionalProperties = t.transformSchemaProxy(s.AdditionalProperties.A)
		case s.AdditionalProperties.IsB():
			schema.AdditionalAny = s.AdditionalProperties.B
		}
	}

	for _, proxy := range s.AllOf {
		schema.AllOf = append(schema.AllOf, t.transformSchemaProxy(proxy))
	}
	for _, proxy := range s.OneOf {
		schema.OneOf = append(schema.OneOf, t.transformSchemaProxy(proxy))
	}
	for _, proxy := range s.AnyOf {
		schema.AnyOf = append(schema.AnyOf, t.transformSchemaProxy(proxy))
	}

	return schema
}

// enumLiterals keeps the scalar values of an enum; null entries are
// dropped.
func enumLiterals(nodes []*yaml.Node) []string {
	var literals []string
	for _, n := range nodes {
		if n == nil || n.Kind != yaml.ScalarNode || n.ShortTag() == "!!null" {
			continue
		}
		literals = append(literals, n.Value)
	}
	return literals
}

func boolPtr(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
