package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/driftwood/internal/assemble"
	"github.com/gorewood/driftwood/internal/export"
	"github.com/gorewood/driftwood/internal/ghost"
	"github.com/gorewood/driftwood/internal/index"
	"github.com/gorewood/driftwood/internal/markup"
	"github.com/gorewood/driftwood/internal/output"
	"github.com/gorewood/driftwood/internal/render"
)

// convertFlags holds the flags of the convert command.
type convertFlags struct {
	output   string
	template string
	dryRun   bool
}

// convertResult is the JSON output of the convert command.
type convertResult struct {
	*export.Result
	Template string `json:"template"`
}

// newConvertCmd creates the convert command.
func newConvertCmd() *cobra.Command {
	var flags convertFlags
	cmd := &cobra.Command{
		Use:   "convert <export.json>",
		Short: "Convert a Ghost export to markdown files",
		Long: `Convert every post and page of a Ghost export to a markdown file.

Posts are written to <date>-<slug>.md and pages to page-<slug>.md in the
output directory. Existing files are overwritten. A post that fails to
convert is reported and skipped; the command exits non-zero at the end.

Examples:
  driftwood convert export.json                      # Write to ./ghost-to-hugo-output
  driftwood convert export.json -o content/posts     # Choose the output directory
  driftwood convert export.json --template post.md   # Use a custom template
  driftwood convert export.json --dry-run            # Show what would be written`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], flags)
		},
	}
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output directory (default from config)")
	cmd.Flags().StringVarP(&flags.template, "template", "t", "", "Template file (default: project, global, then built-in)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Render every post but write nothing")
	return cmd
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, exportPath string, flags convertFlags) error {
	printer := newPrinter(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	if flags.output != "" {
		cfg.Output = flags.output
	}
	if flags.template != "" {
		cfg.Template = flags.template
	}
	if err := cfg.Validate(); err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	tmpl, err := render.Load(cfg.Template)
	if err != nil {
		userErr := output.NewUserErrorWithCause("loading template", err)
		printer.Error(userErr)
		return userErr
	}

	data, err := ghost.Load(exportPath)
	if err != nil {
		userErr := output.NewUserErrorWithCause("loading export", err)
		printer.Error(userErr)
		return userErr
	}

	if !flags.dryRun {
		if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
			sysErr := output.NewSystemErrorWithCause("creating output directory", err)
			printer.Error(sysErr)
			return sysErr
		}
	}

	assembler := assemble.New(index.Build(data.PostsTags, data.Tags), cfg.Rules(), markup.New())
	exporter := export.New(export.Options{Dir: cfg.Output, DryRun: flags.dryRun}, assembler, tmpl, printer)
	result := exporter.Export(data.Posts)

	if printer.IsJSON() {
		if err := printer.WriteJSON(convertResult{Result: result, Template: tmpl.Describe()}); err != nil {
			return err
		}
		return result.Err()
	}

	printConvertSummary(printer, result, tmpl)
	if err := result.Err(); err != nil {
		printer.Error(err)
		return err
	}
	return nil
}

// printConvertSummary prints the human-readable run summary.
func printConvertSummary(printer *output.Printer, result *export.Result, tmpl *render.Template) {
	printer.Section("Summary")
	printer.KeyValue("Processed", strconv.Itoa(result.Processed))
	if result.DryRun {
		printer.KeyValue("Planned", strconv.Itoa(len(result.Files)))
	} else {
		printer.KeyValue("Written", strconv.Itoa(len(result.Files)))
	}
	if len(result.Warnings) > 0 {
		printer.KeyValue("Warnings", strconv.Itoa(len(result.Warnings)))
	}
	if len(result.Failed) > 0 {
		printer.KeyValue("Failed", strconv.Itoa(len(result.Failed)))
	}
	printer.KeyValue("Output", result.OutputDir)
	printer.KeyValue("Template", tmpl.Describe())
}
