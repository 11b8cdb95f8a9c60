package templates

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

var ErrTemplateNotFound = errors.New("template not found")

type Engine interface {
	Execute(name string, data any) (string, error)
}

// TextTemplateEngine serves templates from an embedded tree. Files with the
// same relative path in customDir replace the embedded ones.
type TextTemplateEngine struct {
	templates *template.Template
	funcs     template.FuncMap
	embedded  fs.FS
	customDir string
}

func NewEngine(embedded fs.FS, customDir string, funcs template.FuncMap) (*TextTemplateEngine, error) {
	e := &TextTemplateEngine{
		embedded:  embedded,
		customDir: customDir,
		funcs:     funcs,
	}
	if err := e.load(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *TextTemplateEngine) load() error {
	e.templates = template.New("").Funcs(e.funcs)

	err := fs.WalkDir(e.embedded, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}
		content, err := fs.ReadFile(e.embedded, path)
		if err != nil {
			return fmt.Errorf("reading embedded template %s: %w", path, err)
		}
		name := strings.TrimPrefix(path, "templates/")
		if _, err := e.templates.New(name).Parse(string(content)); err != nil {
			return fmt.Errorf("parsing embedded template %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("loading embedded templates: %w", err)
	}

	if e.customDir != "" {
		err = filepath.WalkDir(e.customDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
				return nil
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading custom template %s: %w", path, err)
			}
			relPath, _ := filepath.Rel(e.customDir, path)
			if _, err := e.templates.New(filepath.ToSlash(relPath)).Parse(string(content)); err != nil {
				return fmt.Errorf("parsing custom template %s: %w", path, err)
			}
			return nil
		})
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("loading custom templates: %w", err)
		}
	}

	return nil
}

func (e *TextTemplateEngine) Execute(name string, data any) (string, error) {
	tmpl := e.templates.Lookup(name)
	if tmpl == nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.String(), nil
}

// MergeFuncs combines function maps; later maps win on name clashes.
func MergeFuncs(maps ...template.FuncMap) template.FuncMap {
	merged := make(template.FuncMap)
	for _, m := range maps {
		for name, fn := range m {
			merged[name] = fn
		}
	}
	return merged
}

// Dict creates a map from key-value pairs for use in templates.
func Dict(values ...any) map[string]any {
	if len(values)%2 != 0 {
		return nil
	}
	dict := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			continue
		}
		dict[key] = values[i+1]
	}
	return dict
}
