package vault

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
)

func TestLayout(t *testing.T) {
	layout := Layout()
	if len(layout) != 23 {
		t.Errorf("len(Layout()) = %d, want 23", len(layout))
	}

	seen := make(map[string]bool)
	for _, p := range layout {
		if strings.HasPrefix(p, "/") || strings.Contains(p, `\`) || strings.Contains(p, "..") {
			t.Errorf("layout path %q is not a clean relative slash path", p)
		}
		if seen[p] {
			t.Errorf("duplicate layout path %q", p)
		}
		seen[p] = true
	}

	// Callers get a copy.
	layout[0] = "mutated"
	if Layout()[0] != "00-Inbox/papers" {
		t.Error("Layout() exposes its backing array")
	}
}

func TestTemplates(t *testing.T) {
	docs, err := Templates()
	if err != nil {
		t.Fatalf("Templates() error = %v", err)
	}
	if len(docs) != 12 {
		t.Fatalf("len(Templates()) = %d, want 12", len(docs))
	}

	for _, d := range docs {
		if d.Kind != KindTemplate {
			t.Errorf("%s: Kind = %s", d.Name, d.Kind)
		}
		if d.Path != TemplatesDir+"/"+d.Name+"_template.md" {
			t.Errorf("%s: Path = %s", d.Name, d.Path)
		}
		if d.NoteType != d.Name {
			t.Errorf("%s: front matter type = %q, want %q", d.Name, d.NoteType, d.Name)
		}
		if !strings.Contains(d.Content, "{{") {
			t.Errorf("%s: no placeholder tokens in content", d.Name)
		}
	}
}

func TestWorkflows(t *testing.T) {
	docs, err := Workflows()
	if err != nil {
		t.Fatalf("Workflows() error = %v", err)
	}
	if len(docs) != 8 {
		t.Fatalf("len(Workflows()) = %d, want 8", len(docs))
	}

	want := map[string]string{
		"capture":      "Capture any URL to appropriate note",
		"daily-digest": "End-of-day summary",
	}
	for _, d := range docs {
		if d.Description == "" {
			t.Errorf("%s: empty description", d.Name)
		}
		if w, ok := want[d.Name]; ok && d.Description != w {
			t.Errorf("%s: Description = %q, want %q", d.Name, d.Description, w)
		}
		if d.Path != WorkflowsDir+"/"+d.Name+".md" {
			t.Errorf("%s: Path = %s", d.Name, d.Path)
		}
	}
}

func TestRootConfig(t *testing.T) {
	doc, err := RootConfig()
	if err != nil {
		t.Fatalf("RootConfig() error = %v", err)
	}
	if doc.Path != "GEMINI.md" {
		t.Errorf("Path = %q, want GEMINI.md", doc.Path)
	}
	if !strings.HasPrefix(doc.Content, "# Slatekore") {
		t.Errorf("unexpected GEMINI.md header: %q", strings.SplitN(doc.Content, "\n", 2)[0])
	}
}

// Every embedded asset must be reachable through the catalog and vice versa.
func TestCatalog_CoversEmbeddedAssets(t *testing.T) {
	docs, err := Catalog()
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}

	names := make(map[string]bool)
	for _, d := range docs {
		if names[d.Path] {
			t.Errorf("duplicate destination %s", d.Path)
		}
		names[d.Path] = true
	}

	var embedded int
	err = fs.WalkDir(assets, "assets", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		embedded++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if embedded != len(docs) {
		t.Errorf("%d embedded assets, catalog has %d documents", embedded, len(docs))
	}
}

func TestMatch(t *testing.T) {
	docs, err := Catalog()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		pattern string
		want    int
	}{
		{"", 21},
		{"daily*", 3}, // daily template, daily-setup, daily-digest
		{".agent/**", 8},
		{".obsidian/templates/*_template.md", 12},
		{"GEMINI.md", 1},
		{"nothing-*", 0},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := Match(docs, tt.pattern)
			if err != nil {
				t.Fatalf("Match() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("Match(%q) = %d docs, want %d", tt.pattern, len(got), tt.want)
			}
		})
	}

	if _, err := Match(docs, "[unclosed"); !errors.Is(err, doublestar.ErrBadPattern) {
		t.Errorf("Match(bad pattern) error = %v, want ErrBadPattern", err)
	}
}
