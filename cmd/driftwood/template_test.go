package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/driftwood/internal/output"
	"github.com/gorewood/driftwood/internal/render"
)

func TestTemplate_Builtin(t *testing.T) {
	isolate(t)

	stdout, stderr, err := executeCommand(t, "template")
	if err != nil {
		t.Fatalf("template error = %v", err)
	}
	if stdout != render.BuiltinContent() {
		t.Errorf("stdout = %q, want the built-in template", stdout)
	}
	if !strings.Contains(stderr, "Template: built-in") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestTemplate_ResolvesProjectTemplate(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, ".driftwood/templates/post.md", "custom {{ .Post.Title }}")

	stdout, _, err := executeCommand(t, "template", "--json")
	if err != nil {
		t.Fatalf("template error = %v", err)
	}
	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\n%s", err, stdout)
	}
	if result["source"] != render.SourceProject || result["content"] != "custom {{ .Post.Title }}" {
		t.Errorf("result = %v", result)
	}

	stdout, _, err = executeCommand(t, "template", "--builtin", "--json")
	if err != nil {
		t.Fatalf("template --builtin error = %v", err)
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatal(err)
	}
	if result["source"] != render.SourceBuiltin {
		t.Errorf("--builtin source = %v", result["source"])
	}
}

func TestTemplate_Init(t *testing.T) {
	dir := isolate(t)

	stdout, _, err := executeCommand(t, "template", "--builtin", "--init")
	if err != nil {
		t.Fatalf("template --init error = %v", err)
	}
	if !strings.Contains(stdout, "Wrote "+render.ProjectPath()) {
		t.Errorf("stdout = %q", stdout)
	}
	data, err := os.ReadFile(filepath.Join(dir, render.ProjectPath()))
	if err != nil {
		t.Fatalf("reading project template: %v", err)
	}
	if string(data) != render.BuiltinContent() {
		t.Errorf("project template differs from built-in")
	}

	_, _, err = executeCommand(t, "template", "--builtin", "--init")
	if err == nil || output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("second --init error = %v, want user error", err)
	}

	if _, _, err := executeCommand(t, "template", "--builtin", "--init", "--force"); err != nil {
		t.Errorf("--init --force error = %v", err)
	}
}

func TestTemplate_InvalidExplicit(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, "driftwood.yaml", "template: broken.md\n")
	writeFile(t, dir, "broken.md", "{{ .Post.Title ")

	_, _, err := executeCommand(t, "template")
	if err == nil || !strings.Contains(err.Error(), "loading template") {
		t.Errorf("error = %v", err)
	}
}
