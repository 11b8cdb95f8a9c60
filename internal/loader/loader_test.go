package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kolah/alors/internal/model"
	"github.com/stretchr/testify/require"
)

const petstore = `openapi: 3.1.0
info:
  title: Petstore
  version: 1.2.3
paths:
  /pets:
    get:
      operationId: listPets
      responses:
        default:
          description: error
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Error'
        '200':
          description: ok
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: '#/components/schemas/Pet'
        '404':
          description: missing
    post:
      requestBody:
        required: true
        content:
          application/json:
            schema:
              type: object
              required: [name]
              properties:
                name:
                  type: string
      responses:
        '201':
          description: created
    patch:
      responses:
        '204':
          description: patched
components:
  schemas:
    Pet:
      type: object
      required: [id]
      properties:
        id:
          type: integer
        status:
          type: string
          enum: [available, sold, null]
        tag:
          type: [string, 'null']
        labels:
          type: object
          additionalProperties:
            type: string
        extra:
          type: object
          additionalProperties: true
    Error:
      type: object
      properties:
        message:
          type: string
    Alias:
      $ref: '#/components/schemas/Pet'
`

func loadPetstore(t *testing.T, opts Options) *model.Document {
	t.Helper()
	result, err := Load([]byte(petstore))
	require.NoError(t, err)
	require.Equal(t, "3.1.0", result.Version)
	require.Empty(t, result.Warnings)

	doc, err := Transform(result, opts)
	require.NoError(t, err)
	return doc
}

func TestTransformPaths(t *testing.T) {
	doc := loadPetstore(t, Options{})

	require.Equal(t, model.Info{Title: "Petstore", Version: "1.2.3"}, doc.Info)
	require.Len(t, doc.Paths, 1)

	item := doc.Paths[0]
	require.Equal(t, "/pets", item.Path)
	require.NotNil(t, item.Patch)
	require.Nil(t, item.Put)

	get := item.Operation(model.MethodGet)
	require.Equal(t, "listPets", get.ID)
	require.NotNil(t, get.Responses.Default)
	require.Equal(t, "#/components/schemas/Error", get.Responses.Default.Content[0].Schema.Ref)

	var codes []string
	for _, r := range get.Responses.Codes {
		codes = append(codes, r.Code)
	}
	require.Equal(t, []string{"200", "404"}, codes)

	list := get.Responses.Codes[0].Response.Content[0]
	require.Equal(t, "application/json", list.Name)
	require.False(t, list.Schema.IsRef())
	require.Equal(t, model.KindArray, list.Schema.Value.Kind())
	require.Equal(t, "#/components/schemas/Pet", list.Schema.Value.Items.Ref)
	require.Empty(t, get.Responses.Codes[1].Response.Content)

	post := item.Operation(model.MethodPost)
	require.Empty(t, post.ID)
	require.True(t, post.RequestBody.Required)
	body := post.RequestBody.Content[0].Schema.Value
	require.Equal(t, []string{"name"}, body.Required)
}

func TestTransformSchemas(t *testing.T) {
	doc := loadPetstore(t, Options{})

	var names []string
	for _, s := range doc.Components.Schemas {
		names = append(names, s.Name)
	}
	require.Equal(t, []string{"Pet", "Error", "Alias"}, names)

	alias, ok := doc.Components.Schema("Alias")
	require.True(t, ok)
	require.Equal(t, "#/components/schemas/Pet", alias.Ref)

	pet, ok := doc.Components.Schema("Pet")
	require.True(t, ok)
	require.Equal(t, model.KindObject, pet.Value.Kind())
	require.True(t, pet.Value.IsRequired("id"))

	props := map[string]*model.Schema{}
	for _, p := range pet.Value.Properties {
		require.False(t, p.Schema.IsRef())
		props[p.Name] = p.Schema.Value
	}

	require.Equal(t, model.TypeInteger, props["id"].Type)
	require.Equal(t, []string{"available", "sold"}, props["status"].Enum)

	require.Equal(t, model.TypeString, props["tag"].Type)
	require.True(t, props["tag"].Nullable)

	require.NotNil(t, props["labels"].AdditionalProperties)
	require.Equal(t, model.TypeString, props["labels"].AdditionalProperties.Value.Type)
	require.False(t, props["labels"].AdditionalAny)

	require.Nil(t, props["extra"].AdditionalProperties)
	require.True(t, props["extra"].AdditionalAny)
}

func TestTransformExcludeSchemas(t *testing.T) {
	doc := loadPetstore(t, Options{ExcludeSchemas: []string{"Error", "Alias"}})

	require.Len(t, doc.Components.Schemas, 1)
	_, ok := doc.Components.Schema("Error")
	require.False(t, ok)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "petstore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(petstore), 0o644))

	result, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Petstore", result.Document.Model.Info.Title)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "reading spec file")
}

func TestLoadWarnsAboutOpenAPI30(t *testing.T) {
	result, err := Load([]byte("openapi: 3.0.3\ninfo:\n  title: t\n  version: '1'\npaths: {}\n"))
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)

	doc, err := Transform(result, Options{})
	require.NoError(t, err)
	require.Empty(t, doc.Paths)
}

func TestLoadRejectsSwagger(t *testing.T) {
	_, err := Load([]byte("swagger: '2.0'\ninfo:\n  title: t\n  version: '1'\npaths: {}\n"))
	require.ErrorContains(t, err, "unsupported OpenAPI version")
}
