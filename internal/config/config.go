// Package config resolves driftwood settings.
//
// Settings come from, lowest precedence first: built-in defaults, a
// driftwood.yaml file, DRIFTWOOD_* environment variables (including those
// loaded from .env files) and finally command-line flags, which the caller
// applies on top of the returned Config.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/driftwood/internal/rewrite"
)

// appName names the per-user configuration directory.
const appName = "driftwood"

// FileName is the project-local configuration file.
const FileName = "driftwood.yaml"

// DefaultOutput is the output directory used when none is configured.
const DefaultOutput = "ghost-to-hugo-output"

// Environment variables that override file settings.
const (
	EnvConfigHome  = "DRIFTWOOD_CONFIG_HOME"
	EnvOutput      = "DRIFTWOOD_OUTPUT"
	EnvTemplate    = "DRIFTWOOD_TEMPLATE"
	EnvContentBase = "DRIFTWOOD_CONTENT_BASE"
	EnvSiteBase    = "DRIFTWOOD_SITE_BASE"
	EnvPostsPath   = "DRIFTWOOD_POSTS_PATH"
)

// URLs holds the URL patterns rewritten in exported content.
type URLs struct {
	ContentBase string `yaml:"content_base" validate:"required"`
	SiteBase    string `yaml:"site_base"    validate:"required"`
	PostsPath   string `yaml:"posts_path"   validate:"required,startswith=/,endswith=/"`
}

// Config is the resolved driftwood configuration.
type Config struct {
	Output   string `yaml:"output"   validate:"required"`
	Template string `yaml:"template"`
	URLs     URLs   `yaml:"urls"`

	// Source is the file the settings were read from, empty when none was found.
	Source string `yaml:"-"`
}

// Default returns the configuration for a stock Ghost export.
func Default() *Config {
	rules := rewrite.DefaultRules()
	return &Config{
		Output: DefaultOutput,
		URLs: URLs{
			ContentBase: rules.ContentBase,
			SiteBase:    rules.SiteBase,
			PostsPath:   rules.PostsPath,
		},
	}
}

// Dir returns the per-user configuration directory: $DRIFTWOOD_CONFIG_HOME,
// else $XDG_CONFIG_HOME/driftwood, else %AppData%/driftwood on Windows,
// else ~/.config/driftwood. It returns "" when no home directory is known.
func Dir() string {
	if dir := os.Getenv(EnvConfigHome); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	if appData := os.Getenv("APPDATA"); runtime.GOOS == "windows" && appData != "" {
		return filepath.Join(appData, appName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// Load builds the configuration from defaults, a settings file and the environment.
//
// With an explicit path the file must exist. Otherwise ./driftwood.yaml and
// then <Dir>/config.yaml are tried, and a missing file is not an error.
// The result is not validated; call Validate once flags are applied.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	} else {
		for _, candidate := range searchPaths() {
			err := cfg.readFile(candidate)
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, err
			}
			break
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// Rules returns the URL rewrite rules.
func (c *Config) Rules() rewrite.Rules {
	return rewrite.Rules{
		ContentBase: c.URLs.ContentBase,
		SiteBase:    c.URLs.SiteBase,
		PostsPath:   c.URLs.PostsPath,
	}
}

// searchPaths lists the implicit settings files in lookup order.
func searchPaths() []string {
	paths := []string{FileName}
	if dir := Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "config.yaml"))
	}
	return paths
}

// readFile decodes a YAML settings file over the current values.
func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	c.Source = path
	return nil
}

// applyEnv overrides settings with non-empty DRIFTWOOD_* variables.
func (c *Config) applyEnv() {
	overrides := []struct {
		key    string
		target *string
	}{
		{EnvOutput, &c.Output},
		{EnvTemplate, &c.Template},
		{EnvContentBase, &c.URLs.ContentBase},
		{EnvSiteBase, &c.URLs.SiteBase},
		{EnvPostsPath, &c.URLs.PostsPath},
	}
	for _, o := range overrides {
		if value := os.Getenv(o.key); value != "" {
			*o.target = value
		}
	}
}
