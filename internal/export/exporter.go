package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/gorewood/driftwood/internal/assemble"
	"github.com/gorewood/driftwood/internal/ghost"
	"github.com/gorewood/driftwood/internal/output"
)

// Stages at which a post can fail.
const (
	StageAssemble = "assemble"
	StageRender   = "render"
	StageWrite    = "write"
)

// Renderer renders a record into the final file content.
type Renderer interface {
	Render(record *assemble.RenderRecord) (string, error)
}

// Options configures an Exporter.
type Options struct {
	// Dir is the output directory. It must already exist unless DryRun is set.
	Dir string
	// DryRun assembles and renders every post but writes nothing.
	DryRun bool
}

// Exporter converts posts to files.
type Exporter struct {
	opts      Options
	assembler *assemble.Assembler
	renderer  Renderer
	printer   *output.Printer
	writeFile func(path string, data []byte) error
}

// Failure describes one post that could not be exported.
type Failure struct {
	PostID string `json:"post_id"`
	Title  string `json:"title"`
	Stage  string `json:"stage"`
	Error  string `json:"error"`
}

// Result summarizes an export run.
type Result struct {
	OutputDir string `json:"output_dir"`
	DryRun    bool   `json:"dry_run"`
	Processed int    `json:"processed"`
	// Files lists the written file names, or the planned names in dry-run mode.
	Files    []string  `json:"files"`
	Warnings []string  `json:"warnings,omitempty"`
	Failed   []Failure `json:"failed,omitempty"`
}

// Err returns a system error when any post failed, nil otherwise.
func (r *Result) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	return output.NewSystemError(fmt.Sprintf("%d of %d posts failed", len(r.Failed), r.Processed))
}

// New creates an Exporter.
func New(opts Options, assembler *assemble.Assembler, renderer Renderer, printer *output.Printer) *Exporter {
	return &Exporter{
		opts:      opts,
		assembler: assembler,
		renderer:  renderer,
		printer:   printer,
		writeFile: atomicWrite,
	}
}

// Export processes posts sequentially in input order.
// A failing post never stops the ones after it.
func (e *Exporter) Export(posts []ghost.Post) *Result {
	result := &Result{
		OutputDir: e.opts.Dir,
		DryRun:    e.opts.DryRun,
		Files:     []string{},
	}

	for _, post := range posts {
		result.Processed++
		e.printer.Step("Processing: %s", post.Title)

		fileName, err := e.exportPost(post, result)
		if err != nil {
			e.printer.Fail("Failed: %s: %v", post.Title, err.err)
			result.Failed = append(result.Failed, Failure{
				PostID: post.ID,
				Title:  post.Title,
				Stage:  err.stage,
				Error:  err.err.Error(),
			})
			continue
		}

		result.Files = append(result.Files, fileName)
		if e.opts.DryRun {
			e.printer.Done("Would create: %s", fileName)
		} else {
			e.printer.Done("Created: %s", fileName)
		}
	}

	return result
}

// stageError ties an error to the stage it happened in.
type stageError struct {
	stage string
	err   error
}

func (e *Exporter) exportPost(post ghost.Post, result *Result) (string, *stageError) {
	record, fileName, err := e.assembler.Assemble(post)
	if err != nil {
		return "", &stageError{StageAssemble, err}
	}

	content, err := e.renderer.Render(record)
	if err != nil {
		return "", &stageError{StageRender, err}
	}

	if err := CheckFrontMatter(content); err != nil {
		msg := fmt.Sprintf("%s: front matter does not parse: %v", fileName, err)
		result.Warnings = append(result.Warnings, msg)
		if !e.printer.IsJSON() {
			e.printer.Warn("%s", msg)
		}
	}

	if e.opts.DryRun {
		return fileName, nil
	}

	if err := e.writeFile(filepath.Join(e.opts.Dir, fileName), []byte(content)); err != nil {
		return "", &stageError{StageWrite, err}
	}
	return fileName, nil
}

// CheckFrontMatter reports whether content starts with front matter that
// parses. Content without front matter is accepted.
func CheckFrontMatter(content string) error {
	var meta map[string]any
	if _, err := frontmatter.Parse(strings.NewReader(content), &meta); err != nil {
		return fmt.Errorf("parse front matter: %w", err)
	}
	return nil
}

// atomicWrite writes data to a temp file in the target directory and renames
// it into place.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*.md")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Chmod(0o644); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
