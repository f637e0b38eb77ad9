package galleria

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
)

// TemplateStore holds the page templates, parsed once at startup and keyed
// by filename. html/template escapes every interpolated value, so template
// data can never inject markup into a page. There is no hot reload;
// edits on disk are picked up on the next restart.
type TemplateStore struct {
	templates map[string]*template.Template
}

// LoadTemplates parses every regular file in dir (non-recursive) as a
// named template.
func LoadTemplates(dir string) (*TemplateStore, error) {
	return LoadTemplatesFS(os.DirFS(dir))
}

// LoadTemplatesFS is LoadTemplates over an fs.FS, used for the embedded
// defaults.
func LoadTemplatesFS(fsys fs.FS) (*TemplateStore, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("galleria: read templates dir: %w", err)
	}
	ts := &TemplateStore{templates: make(map[string]*template.Template)}
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("galleria: read template %s: %w", e.Name(), err)
		}
		tmpl, err := template.New(e.Name()).Parse(string(data))
		if err != nil {
			return nil, fmt.Errorf("galleria: parse template %s: %w", e.Name(), err)
		}
		ts.templates[e.Name()] = tmpl
	}
	return ts, nil
}

// Render executes the named template with data. An unknown name is an
// error; it surfaces to clients as a 500.
func (ts *TemplateStore) Render(w io.Writer, name string, data any) error {
	tmpl, ok := ts.templates[name]
	if !ok {
		return fmt.Errorf("galleria: no template named %q", name)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("galleria: render %s: %w", name, err)
	}
	return nil
}

// Names returns the loaded template names, in no particular order.
func (ts *TemplateStore) Names() []string {
	names := make([]string, 0, len(ts.templates))
	for name := range ts.templates {
		names = append(names, name)
	}
	return names
}
