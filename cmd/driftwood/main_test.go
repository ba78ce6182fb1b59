package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/driftwood/internal/config"
	"github.com/gorewood/driftwood/internal/output"
)

const testExport = `{
  "db": [{
    "meta": {"version": "5.0.0"},
    "data": {
      "posts": [
        {
          "id": "p1", "uuid": "u1", "title": "Intro: Getting Started", "slug": "intro", "status": "published",
          "html": "<p>Read <a href=\"__GHOST_URL__/content/files/a.pdf\">this</a>.</p><figure class=\"kg-card kg-image-card\"><img src=\"__GHOST_URL__/content/images/cover.png\" alt=\"Cover\"></figure>",
          "feature_image": "__GHOST_URL__/content/images/feature.png",
          "custom_excerpt": "Where to begin",
          "published_at": "2024-03-05T10:00:00.000Z", "updated_at": "2024-03-06T10:00:00.000Z"
        },
        {
          "id": "p2", "title": "About", "slug": "about", "type": "page", "status": "published",
          "html": "<p>About me</p>", "created_at": "2023-01-01T00:00:00.000Z"
        }
      ],
      "tags": [
        {"id": "t1", "name": "Go", "slug": "go", "visibility": "public"},
        {"id": "t2", "name": "#import", "slug": "hash-import", "visibility": "internal"}
      ],
      "posts_tags": [
        {"id": "pt1", "post_id": "p1", "tag_id": "t2", "sort_order": 0},
        {"id": "pt2", "post_id": "p1", "tag_id": "t1", "sort_order": 1}
      ]
    }
  }]
}`

// isolate runs the test in an empty working directory with no user config
// and no DRIFTWOOD_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(config.EnvConfigHome, filepath.Join(dir, ".config"))
	for _, key := range []string{config.EnvOutput, config.EnvTemplate, config.EnvContentBase, config.EnvSiteBase, config.EnvPostsPath} {
		t.Setenv(key, "")
	}
	return dir
}

// writeFile writes content to dir/name and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// executeCommand runs the root command with args and returns stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Version(t *testing.T) {
	isolate(t)
	version = "1.2.3"
	t.Cleanup(func() { version = "dev" })

	stdout, _, err := executeCommand(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "1.2.3") {
		t.Errorf("--version output should contain version: %q", stdout)
	}
	if !strings.Contains(stdout, "driftwood") {
		t.Errorf("--version output should contain 'driftwood': %q", stdout)
	}
}

func TestRootCommand_Help(t *testing.T) {
	isolate(t)

	stdout, _, err := executeCommand(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, expected := range []string{"driftwood", "Usage:", "--json", "--color", "--config", "convert", "posts", "serve"} {
		if !strings.Contains(stdout, expected) {
			t.Errorf("--help output should contain %q: %q", expected, stdout)
		}
	}
}

func TestRootCommand_JSONFlag_NoSubcommand(t *testing.T) {
	isolate(t)

	stdout, _, err := executeCommand(t, "--json")
	if err == nil {
		t.Fatal("Expected error when running with --json but no subcommand")
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("Expected JSON output, got: %q", stdout)
	}
	if _, ok := result["error"]; !ok {
		t.Errorf("JSON output should contain 'error' field: %v", result)
	}
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}
}

func TestBuildVersion(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	t.Cleanup(func() { version, commit, date = origVersion, origCommit, origDate })

	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{"dev build", "dev", "none", "unknown", "dev"},
		{"release build", "1.0.0", "abcdef1234567", "2024-01-01", "1.0.0 (abcdef1, 2024-01-01)"},
		{"short commit", "1.0.0", "abc", "2024-01-01", "1.0.0 (abc, 2024-01-01)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, commit, date = tt.version, tt.commit, tt.date
			if got := buildVersion(); got != tt.want {
				t.Errorf("buildVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRootCommand_LoadsEnvFile(t *testing.T) {
	dir := isolate(t)
	os.Unsetenv(config.EnvOutput) //nolint:errcheck // isolate registered the restore
	writeFile(t, dir, ".env", config.EnvOutput+"=from-env-file\n")

	stdout, _, err := executeCommand(t, "config", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\n%s", err, stdout)
	}
	if result["output"] != "from-env-file" {
		t.Errorf("output = %v, want from-env-file", result["output"])
	}
}

func TestRootCommand_InvalidColor(t *testing.T) {
	isolate(t)

	_, _, err := executeCommand(t, "--color", "sometimes", "config")
	if err == nil || !strings.Contains(err.Error(), "invalid color mode") {
		t.Fatalf("error = %v, want invalid color mode", err)
	}
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}
}
