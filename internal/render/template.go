package render

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/driftwood/internal/assemble"
	"github.com/gorewood/driftwood/internal/config"
)

// DefaultName is the file name looked up in template directories.
const DefaultName = "post.md"

// Template sources reported by Load.
const (
	SourceExplicit = "explicit"
	SourceProject  = "project"
	SourceGlobal   = "global"
	SourceBuiltin  = "built-in"
)

// Template is a parsed post template.
type Template struct {
	// Content is the raw template text.
	Content string
	// Source is where the template was found; Path is empty for the builtin.
	Source string
	Path   string

	tmpl *template.Template
}

// Load resolves and parses the post template.
// Resolution order: explicit path → project-local → user global → built-in.
// An explicit path that cannot be read is an error; the other locations are optional.
func Load(explicitPath string) (*Template, error) {
	if explicitPath != "" {
		tmpl, err := loadFromFile(explicitPath)
		if err != nil {
			return nil, err
		}
		tmpl.Source = SourceExplicit
		return tmpl, nil
	}

	candidates := []struct {
		source string
		dir    string
	}{
		{SourceProject, projectTemplatesDir()},
		{SourceGlobal, globalTemplatesDir()},
	}
	for _, candidate := range candidates {
		if candidate.dir == "" {
			continue
		}
		tmpl, err := loadFromFile(filepath.Join(candidate.dir, DefaultName))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		tmpl.Source = candidate.source
		return tmpl, nil
	}

	return Builtin()
}

// Builtin returns the embedded Hugo template.
func Builtin() (*Template, error) {
	tmpl, err := Parse(BuiltinContent())
	if err != nil {
		return nil, err
	}
	tmpl.Source = SourceBuiltin
	return tmpl, nil
}

// Parse parses template text.
func Parse(content string) (*Template, error) {
	tmpl, err := template.New(DefaultName).Funcs(funcMap()).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return &Template{Content: content, tmpl: tmpl}, nil
}

// Render executes the template for one record.
func (t *Template) Render(record *assemble.RenderRecord) (string, error) {
	var buf bytes.Buffer
	data := struct{ Post *assemble.RenderRecord }{Post: record}
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", record.Slug, err)
	}
	return buf.String(), nil
}

// Describe returns a short label for where the template came from.
func (t *Template) Describe() string {
	if t.Path == "" {
		return t.Source
	}
	return t.Source + " (" + t.Path + ")"
}

// loadFromFile reads and parses a template file.
func loadFromFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}
	tmpl, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tmpl.Path = path
	return tmpl, nil
}

// ProjectPath returns the project-local template path, relative to the working directory.
func ProjectPath() string {
	return filepath.Join(projectTemplatesDir(), DefaultName)
}

// projectTemplatesDir returns the project-local templates directory.
func projectTemplatesDir() string {
	return filepath.Join(".driftwood", "templates")
}

// globalTemplatesDir returns the user's global templates directory.
func globalTemplatesDir() string {
	dir := config.Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "templates")
}

// funcMap holds the helpers available to templates.
func funcMap() template.FuncMap {
	return template.FuncMap{
		"join": strings.Join,
		"yaml": flowYAML,
	}
}

// flowYAML renders v as a single-line YAML value: lists become [a, b] and
// strings are quoted only when YAML needs it.
func flowYAML(v any) (string, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return "", fmt.Errorf("encoding yaml: %w", err)
	}
	setFlowStyle(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return "", fmt.Errorf("encoding yaml: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// setFlowStyle marks every sequence and mapping under node as flow style.
func setFlowStyle(node *yaml.Node) {
	if node.Kind == yaml.SequenceNode || node.Kind == yaml.MappingNode {
		node.Style |= yaml.FlowStyle
	}
	for _, child := range node.Content {
		setFlowStyle(child)
	}
}
