package vault

import (
	"embed"
	"fmt"
	"path"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/slatekore/slatekore/internal/frontmatter"
)

//go:embed assets/GEMINI.md assets/templates/*.md assets/workflows/*.md
var assets embed.FS

// Kind is the kind of artifact the initializer materializes.
type Kind string

const (
	KindDir        Kind = "directory"
	KindTemplate   Kind = "template"
	KindRootConfig Kind = "config"
	KindWorkflow   Kind = "workflow"
)

// Icon returns the glyph used in human-readable labels.
func (k Kind) Icon() string {
	switch k {
	case KindDir:
		return "📁"
	case KindTemplate:
		return "📄"
	case KindRootConfig:
		return "📝"
	case KindWorkflow:
		return "📋"
	}
	return "•"
}

// Document is one static document shipped with slatekore.
type Document struct {
	Kind        Kind   `json:"kind"`
	Name        string `json:"name"`
	Path        string `json:"path"` // vault-relative destination
	Description string `json:"description,omitempty"`
	NoteType    string `json:"note_type,omitempty"` // front matter "type" of a template
	Content     string `json:"-"`
}

// Template names in install order, with a one-line description each.
var templateIndex = []struct {
	name, desc string
}{
	{"paper", "Research paper notes (arXiv and friends)"},
	{"model", "HuggingFace model cards"},
	{"repo", "GitHub repositories and codebases"},
	{"space", "HuggingFace Spaces and demos"},
	{"dataset", "Dataset documentation"},
	{"website", "Project pages, blogs and articles"},
	{"video", "Talks, lectures and YouTube videos"},
	{"project", "Active research project overview"},
	{"prd", "Product requirements document"},
	{"system-design", "System design document"},
	{"daily", "Daily note with focus and tasks"},
	{"moc", "Map of Content for a topic"},
}

// Workflow names in install order. Descriptions come from each document's front matter.
var workflowIndex = []string{
	"capture",
	"summarize",
	"daily-setup",
	"daily-digest",
	"explore",
	"connect",
	"moc-create",
	"project-create",
}

type workflowMeta struct {
	Description string `yaml:"description"`
}

// Templates returns the template set in install order.
func Templates() ([]Document, error) {
	docs := make([]Document, 0, len(templateIndex))
	for _, t := range templateIndex {
		content, err := readAsset(path.Join("assets/templates", t.name+TemplateSuffix))
		if err != nil {
			return nil, err
		}
		noteType, _ := frontmatter.Field([]byte(content), "type")
		docs = append(docs, Document{
			Kind:        KindTemplate,
			Name:        t.name,
			Path:        TemplatePath(t.name),
			Description: t.desc,
			NoteType:    noteType,
			Content:     content,
		})
	}
	return docs, nil
}

// Workflows returns the workflow set in install order.
func Workflows() ([]Document, error) {
	docs := make([]Document, 0, len(workflowIndex))
	for _, name := range workflowIndex {
		content, err := readAsset(path.Join("assets/workflows", name+DocExt))
		if err != nil {
			return nil, err
		}
		var meta workflowMeta
		if _, err := frontmatter.ParseTyped([]byte(content), &meta); err != nil {
			return nil, fmt.Errorf("workflow %s: %w", name, err)
		}
		docs = append(docs, Document{
			Kind:        KindWorkflow,
			Name:        name,
			Path:        WorkflowPath(name),
			Description: meta.Description,
			Content:     content,
		})
	}
	return docs, nil
}

// RootConfig returns the agent configuration document written at the vault root.
func RootConfig() (Document, error) {
	content, err := readAsset("assets/" + RootConfigFile)
	if err != nil {
		return Document{}, err
	}
	return Document{
		Kind:        KindRootConfig,
		Name:        "gemini",
		Path:        RootConfigFile,
		Description: "Agent operating instructions",
		Content:     content,
	}, nil
}

// Catalog returns every shipped document: templates, root config, then workflows.
func Catalog() ([]Document, error) {
	templates, err := Templates()
	if err != nil {
		return nil, err
	}
	root, err := RootConfig()
	if err != nil {
		return nil, err
	}
	workflows, err := Workflows()
	if err != nil {
		return nil, err
	}

	all := make([]Document, 0, len(templates)+1+len(workflows))
	all = append(all, templates...)
	all = append(all, root)
	all = append(all, workflows...)
	return all, nil
}

// Match keeps the documents whose vault-relative path or name matches the
// doublestar glob pattern. An empty pattern keeps everything.
func Match(docs []Document, pattern string) ([]Document, error) {
	if pattern == "" {
		return docs, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	var out []Document
	for _, d := range docs {
		if doublestar.MatchUnvalidated(pattern, d.Path) || doublestar.MatchUnvalidated(pattern, d.Name) {
			out = append(out, d)
		}
	}
	return out, nil
}

func readAsset(name string) (string, error) {
	data, err := assets.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("missing embedded asset %s: %w", name, err)
	}
	return string(data), nil
}
