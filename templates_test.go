package galleria

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemplateDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write template %s: %v", name, err)
		}
	}
	return dir
}

func TestLoadTemplatesKeysByFilename(t *testing.T) {
	dir := writeTemplateDir(t, map[string]string{
		"one.html": "<p>{{.Msg}}</p>",
		"two.html": "<span>{{.Msg}}</span>",
	})

	ts, err := LoadTemplates(dir)
	if err != nil {
		t.Fatalf("LoadTemplates failed: %v", err)
	}
	if got := len(ts.Names()); got != 2 {
		t.Fatalf("loaded %d templates, want 2", got)
	}

	var buf strings.Builder
	if err := ts.Render(&buf, "one.html", map[string]string{"Msg": "hi"}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if buf.String() != "<p>hi</p>" {
		t.Fatalf("rendered = %q", buf.String())
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	dir := writeTemplateDir(t, map[string]string{"a.html": "x"})
	ts, err := LoadTemplates(dir)
	if err != nil {
		t.Fatalf("LoadTemplates failed: %v", err)
	}

	var buf strings.Builder
	if err := ts.Render(&buf, "missing.html", nil); err == nil {
		t.Fatalf("expected an error for an unknown template name")
	}
}

func TestRenderEscapesValues(t *testing.T) {
	dir := writeTemplateDir(t, map[string]string{"page.html": "<h1>{{.Title}}</h1>"})
	ts, err := LoadTemplates(dir)
	if err != nil {
		t.Fatalf("LoadTemplates failed: %v", err)
	}

	var buf strings.Builder
	if err := ts.Render(&buf, "page.html", map[string]string{"Title": `<script>alert("x")</script>`}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "<script>") {
		t.Fatalf("value interpolated without escaping: %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Fatalf("expected escaped markup, got %q", out)
	}
}

func TestLoadTemplatesMissingDir(t *testing.T) {
	if _, err := LoadTemplates(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected an error for a missing templates directory")
	}
}

func TestLoadTemplatesBadSyntax(t *testing.T) {
	dir := writeTemplateDir(t, map[string]string{"bad.html": "{{.Unclosed"})
	if _, err := LoadTemplates(dir); err == nil {
		t.Fatalf("expected a parse error")
	}
}
