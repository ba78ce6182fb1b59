package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/driftwood/internal/assemble"
)

func testRecord() *assemble.RenderRecord {
	image := "/images/cover.jpg"
	return &assemble.RenderRecord{
		ID:            "p1",
		Title:         `"Intro: Getting Started"`,
		Slug:          "intro",
		Markdown:      "## Hello\n\nBody text.",
		FeatureImage:  &image,
		Tags:          []string{"Go", "#meta", "Tools: misc"},
		Excerpt:       "Short: summary",
		PublishedAt:   "2024-03-05T10:00:00.000Z",
		UpdatedAt:     "2024-03-06T10:00:00.000Z",
		FormattedDate: "2024-03-05",
	}
}

// isolate keeps template lookups away from the real project and home directories.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("DRIFTWOOD_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestBuiltin_Render(t *testing.T) {
	tmpl, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}
	if tmpl.Source != SourceBuiltin {
		t.Errorf("Source = %q, want %q", tmpl.Source, SourceBuiltin)
	}

	out, err := tmpl.Render(testRecord())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	wantContains := []string{
		"---\ntitle: \"Intro: Getting Started\"\n",
		"slug: intro\n",
		"date: 2024-03-05T10:00:00.000Z\n",
		"lastmod: 2024-03-06T10:00:00.000Z\n",
		"tags: [Go, '#meta', 'Tools: misc']\n",
		"image: /images/cover.jpg\n",
		"description: 'Short: summary'\n",
		"---\n\n## Hello\n\nBody text.",
	}
	for _, want := range wantContains {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q\noutput:\n%s", want, out)
		}
	}
	if strings.Contains(out, "draft:") {
		t.Errorf("published post should not be marked draft\noutput:\n%s", out)
	}
}

func TestBuiltin_RenderMinimal(t *testing.T) {
	tmpl, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}

	out, err := tmpl.Render(&assemble.RenderRecord{Title: "Draft", Slug: "draft", Draft: true})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for _, unwanted := range []string{"tags:", "image:", "description:"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("Render() should omit %q\noutput:\n%s", unwanted, out)
		}
	}
	if !strings.Contains(out, "draft: true\n---") {
		t.Errorf("Render() missing draft flag\noutput:\n%s", out)
	}
}

func TestParse(t *testing.T) {
	tmpl, err := Parse(`{{ .Post.Title }}|{{ join .Post.Tags "," }}|{{ .Post.FormattedDate }}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	out, err := tmpl.Render(testRecord())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if want := `"Intro: Getting Started"|Go,#meta,Tools: misc|2024-03-05`; out != want {
		t.Errorf("Render() = %q, want %q", out, want)
	}

	if _, err := Parse("{{ .Post.Title "); err == nil {
		t.Error("Parse() of malformed template should fail")
	}
}

func TestRender_ExecutionError(t *testing.T) {
	tmpl, err := Parse("{{ .Post.Missing }}")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := tmpl.Render(testRecord()); err == nil {
		t.Error("Render() with unknown field should fail")
	}
}

func TestLoad_Resolution(t *testing.T) {
	t.Run("builtin fallback", func(t *testing.T) {
		isolate(t)
		tmpl, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if tmpl.Source != SourceBuiltin || tmpl.Describe() != SourceBuiltin {
			t.Errorf("Source = %q, want built-in", tmpl.Source)
		}
	})

	t.Run("global", func(t *testing.T) {
		isolate(t)
		globalDir := filepath.Join(os.Getenv("DRIFTWOOD_CONFIG_HOME"), "templates")
		writeTemplate(t, filepath.Join(globalDir, DefaultName), "global {{ .Post.Slug }}")

		tmpl, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if tmpl.Source != SourceGlobal {
			t.Errorf("Source = %q, want %q", tmpl.Source, SourceGlobal)
		}
	})

	t.Run("project wins over global", func(t *testing.T) {
		dir := isolate(t)
		globalDir := filepath.Join(os.Getenv("DRIFTWOOD_CONFIG_HOME"), "templates")
		writeTemplate(t, filepath.Join(globalDir, DefaultName), "global")
		writeTemplate(t, filepath.Join(dir, ".driftwood", "templates", DefaultName), "project {{ .Post.Slug }}")

		tmpl, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if tmpl.Source != SourceProject {
			t.Errorf("Source = %q, want %q", tmpl.Source, SourceProject)
		}
		out, err := tmpl.Render(testRecord())
		if err != nil || out != "project intro" {
			t.Errorf("Render() = %q, %v", out, err)
		}
	})

	t.Run("explicit path", func(t *testing.T) {
		dir := isolate(t)
		path := filepath.Join(dir, "custom.md")
		writeTemplate(t, path, "custom")

		tmpl, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if tmpl.Source != SourceExplicit || tmpl.Path != path {
			t.Errorf("Source/Path = %q/%q", tmpl.Source, tmpl.Path)
		}
		if !strings.Contains(tmpl.Describe(), path) {
			t.Errorf("Describe() = %q, want path", tmpl.Describe())
		}
	})

	t.Run("explicit path missing", func(t *testing.T) {
		dir := isolate(t)
		if _, err := Load(filepath.Join(dir, "missing.md")); err == nil {
			t.Error("Load() with missing explicit template should fail")
		}
	})

	t.Run("broken project template", func(t *testing.T) {
		dir := isolate(t)
		writeTemplate(t, filepath.Join(dir, ".driftwood", "templates", DefaultName), "{{ if }}")
		if _, err := Load(""); err == nil {
			t.Error("Load() with unparsable project template should fail")
		}
	})
}

func TestFlowYAML(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"plain list", []string{"a", "b"}, "[a, b]"},
		{"list needing quotes", []string{"#x", "y: z"}, "['#x', 'y: z']"},
		{"empty list", []string{}, "[]"},
		{"plain string", "hello", "hello"},
		{"string with colon", "a: b", "'a: b'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := flowYAML(tt.in)
			if err != nil {
				t.Fatalf("flowYAML() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("flowYAML(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func writeTemplate(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}
