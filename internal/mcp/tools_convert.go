package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/driftwood/internal/export"
	"github.com/gorewood/driftwood/internal/markup"
	"github.com/gorewood/driftwood/internal/normalize"
	"github.com/gorewood/driftwood/internal/output"
	"github.com/gorewood/driftwood/internal/render"
)

// --- Convert HTML tool ---

// ConvertHTMLInput is the input for the convert_html tool.
type ConvertHTMLInput struct {
	HTML string `json:"html" jsonschema:"Ghost post HTML"`
}

// ConvertHTMLOutput is the output for the convert_html tool.
type ConvertHTMLOutput struct {
	Normalized string `json:"normalized" jsonschema:"HTML after bookmark, figure and link rewriting"`
	Markdown   string `json:"markdown"   jsonschema:"markdown conversion of the normalized HTML"`
}

func handleConvertHTML(opts Options) mcp.ToolHandlerFor[ConvertHTMLInput, ConvertHTMLOutput] {
	normalizer := normalize.New(opts.Rules)
	converter := markup.New()
	return func(_ context.Context, _ *mcp.CallToolRequest, input ConvertHTMLInput) (*mcp.CallToolResult, ConvertHTMLOutput, error) {
		normalized := normalizer.Normalize(input.HTML)
		return nil, ConvertHTMLOutput{
			Normalized: normalized,
			Markdown:   converter.Convert(normalized),
		}, nil
	}
}

// --- Convert export tool ---

// ConvertExportInput is the input for the convert_export tool.
type ConvertExportInput struct {
	ExportPath string `json:"export_path"       jsonschema:"path to the Ghost export JSON file"`
	OutputDir  string `json:"output_dir"        jsonschema:"directory to write markdown files to"`
	DryRun     bool   `json:"dry_run,omitempty" jsonschema:"render everything but write nothing"`
}

// ConvertExportOutput is the output for the convert_export tool.
type ConvertExportOutput struct {
	OutputDir string           `json:"output_dir"         jsonschema:"directory the files were written to"`
	DryRun    bool             `json:"dry_run"            jsonschema:"true when nothing was written"`
	Template  string           `json:"template"           jsonschema:"where the template was loaded from"`
	Processed int              `json:"processed"          jsonschema:"number of posts processed"`
	Files     []string         `json:"files"              jsonschema:"written (or planned) file names"`
	Warnings  []string         `json:"warnings,omitempty" jsonschema:"non-fatal problems with rendered files"`
	Failed    []export.Failure `json:"failed,omitempty"   jsonschema:"posts that could not be converted"`
}

func handleConvertExport(opts Options) mcp.ToolHandlerFor[ConvertExportInput, ConvertExportOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ConvertExportInput) (*mcp.CallToolResult, ConvertExportOutput, error) {
		if input.OutputDir == "" {
			return nil, ConvertExportOutput{}, errors.New("output_dir is required")
		}
		sess, err := loadSession(input.ExportPath, opts)
		if err != nil {
			return nil, ConvertExportOutput{}, err
		}
		tmpl, err := render.Load(opts.TemplatePath)
		if err != nil {
			return nil, ConvertExportOutput{}, err
		}
		if !input.DryRun {
			if err := os.MkdirAll(input.OutputDir, 0o755); err != nil {
				return nil, ConvertExportOutput{}, fmt.Errorf("creating output directory: %w", err)
			}
		}

		// Stdout carries the protocol, so progress output is discarded.
		printer := output.NewPrinter(io.Discard, true, false)
		exporter := export.New(export.Options{Dir: input.OutputDir, DryRun: input.DryRun}, sess.assembler, tmpl, printer)
		result := exporter.Export(sess.data.Posts)

		return nil, ConvertExportOutput{
			OutputDir: result.OutputDir,
			DryRun:    result.DryRun,
			Template:  tmpl.Describe(),
			Processed: result.Processed,
			Files:     result.Files,
			Warnings:  result.Warnings,
			Failed:    result.Failed,
		}, nil
	}
}
