package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gorewood/driftwood/internal/output"
	"github.com/gorewood/driftwood/internal/render"
)

// templateFlags holds the flags of the template command.
type templateFlags struct {
	builtin bool
	init    bool
	force   bool
}

// newTemplateCmd creates the template command.
func newTemplateCmd() *cobra.Command {
	var flags templateFlags
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Show the post template in use",
		Long: `Print the post template convert would use, and where it was found.

Templates are resolved in order:
  1. --template flag, DRIFTWOOD_TEMPLATE or the config "template" setting
  2. .driftwood/templates/post.md in the current directory
  3. templates/post.md in the user config directory
  4. the built-in Hugo template

Templates are Go text/template files rendered with {{ .Post }}. The helpers
"join" and "yaml" are available.

Examples:
  driftwood template                   # Print the resolved template
  driftwood template --builtin         # Print the built-in template
  driftwood template --builtin --init  # Copy it to .driftwood/templates/post.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTemplate(cmd, flags)
		},
	}
	cmd.Flags().BoolVar(&flags.builtin, "builtin", false, "Use the built-in template regardless of overrides")
	cmd.Flags().BoolVar(&flags.init, "init", false, "Write the template to "+render.ProjectPath())
	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite an existing project template with --init")
	return cmd
}

// runTemplate executes the template command.
func runTemplate(cmd *cobra.Command, flags templateFlags) error {
	printer := newPrinter(cmd)

	tmpl, err := resolveTemplate(cmd, flags.builtin)
	if err != nil {
		printer.Error(err)
		return err
	}

	written := ""
	if flags.init {
		written, err = writeProjectTemplate(tmpl, flags.force)
		if err != nil {
			printer.Error(err)
			return err
		}
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"source":  tmpl.Source,
			"path":    tmpl.Path,
			"content": tmpl.Content,
			"written": written,
		})
	}

	if written != "" {
		printer.Done("Wrote %s", written)
		return nil
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Template: %s\n", tmpl.Describe())
	printer.Print("%s", tmpl.Content)
	return nil
}

// resolveTemplate loads the built-in template or the one convert would use.
func resolveTemplate(cmd *cobra.Command, builtin bool) (*render.Template, error) {
	if builtin {
		return render.Builtin()
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	tmpl, err := render.Load(cfg.Template)
	if err != nil {
		return nil, output.NewUserErrorWithCause("loading template", err)
	}
	return tmpl, nil
}

// writeProjectTemplate copies tmpl to the project template path.
func writeProjectTemplate(tmpl *render.Template, force bool) (string, error) {
	path := render.ProjectPath()
	if _, err := os.Stat(path); err == nil && !force {
		return "", output.NewUserError(path + " already exists (use --force to overwrite)")
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", output.NewSystemErrorWithCause("checking "+path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", output.NewSystemErrorWithCause("creating template directory", err)
	}
	if err := os.WriteFile(path, []byte(tmpl.Content), 0o644); err != nil { //nolint:gosec // templates are shared project files
		return "", output.NewSystemErrorWithCause("writing template", err)
	}
	return path, nil
}
