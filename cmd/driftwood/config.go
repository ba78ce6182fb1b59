package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/driftwood/internal/config"
)

// newConfigCmd creates the config command.
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Show the settings convert would use after applying the settings file
and DRIFTWOOD_* environment variables.

Settings are read from --config, else ./driftwood.yaml, else config.yaml in
the user config directory.

Examples:
  driftwood config          # Show settings and where they came from
  driftwood config --json   # Settings as JSON`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
}

// runConfig executes the config command.
func runConfig(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	validationErr := cfg.Validate()

	source := cfg.Source
	if source == "" {
		source = "(defaults)"
	}

	if printer.IsJSON() {
		result := map[string]any{
			"source":       source,
			"config_dir":   config.Dir(),
			"output":       cfg.Output,
			"template":     cfg.Template,
			"content_base": cfg.URLs.ContentBase,
			"site_base":    cfg.URLs.SiteBase,
			"posts_path":   cfg.URLs.PostsPath,
			"valid":        validationErr == nil,
		}
		if validationErr != nil {
			result["error"] = validationErr.Error()
		}
		return printer.WriteJSON(result)
	}

	printer.Section("Configuration")
	printer.KeyValue("Source", source)
	printer.KeyValue("Config dir", config.Dir())
	printer.KeyValue("Output", cfg.Output)
	template := cfg.Template
	if template == "" {
		template = "(resolved)"
	}
	printer.KeyValue("Template", template)

	printer.Section("URLs")
	printer.KeyValue("Content base", cfg.URLs.ContentBase)
	printer.KeyValue("Site base", cfg.URLs.SiteBase)
	printer.KeyValue("Posts path", cfg.URLs.PostsPath)

	if validationErr != nil {
		printer.Println()
		printer.Warn("%s", validationErr.Error())
	}
	return nil
}
