// Package main provides the entry point for the driftwood CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/driftwood/internal/config"
	"github.com/gorewood/driftwood/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// colorMode parses the --color persistent flag.
func colorMode(cmd *cobra.Command) (output.ColorMode, error) {
	flag := cmd.Root().PersistentFlags().Lookup("color")
	if flag == nil {
		return output.ColorAuto, nil
	}
	mode, err := output.ParseColorMode(flag.Value.String())
	if err != nil {
		return mode, output.NewUserError(err.Error())
	}
	return mode, nil
}

// useColor reports whether the command's output should be styled.
// An invalid --color value is rejected before any command runs.
func useColor(cmd *cobra.Command) bool {
	mode, _ := colorMode(cmd)
	return mode.Enabled(cmd.OutOrStdout())
}

// newPrinter creates the printer for a command. Human-mode errors go to stderr.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

// loadConfig loads the configuration named by --config, or the default locations.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := ""
	if flag := cmd.Root().PersistentFlags().Lookup("config"); flag != nil {
		path = flag.Value.String()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, output.NewUserErrorWithCause("loading config", err)
	}
	return cfg, nil
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the driftwood CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "driftwood",
		Short: "Convert a Ghost blog export to markdown",
		Long: `Driftwood - convert a Ghost blog export into markdown files for a static site generator.

Each post and page of the export becomes one markdown file with YAML front matter:
  - Ghost URL placeholders are rewritten to site-relative paths
  - Bookmark cards become plain markdown links
  - Post HTML is converted to markdown
  - Front matter comes from a Go template (a Hugo template is built in)

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'driftwood --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Environment variables always take precedence over env file values.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if _, err := colorMode(cmd); err != nil {
			return err
		}
		config.LoadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always or never")
	cmd.PersistentFlags().String("config", "", "Settings file (default ./"+config.FileName+")")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "inspect", Title: "Inspect Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newConvertCmd(), "core")

	addGroupedCommand(cmd, newPostsCmd(), "inspect")
	addGroupedCommand(cmd, newTemplateCmd(), "inspect")
	addGroupedCommand(cmd, newConfigCmd(), "inspect")

	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
