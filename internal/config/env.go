package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadEnvFiles loads .env.local, .env and <Dir>/env in that order.
// The first file to define a variable wins, and variables already present
// in the environment are never replaced. Unreadable files are skipped.
func LoadEnvFiles() {
	_ = LoadEnvFile(".env.local")
	_ = LoadEnvFile(".env")
	if dir := Dir(); dir != "" {
		_ = LoadEnvFile(filepath.Join(dir, "env"))
	}
}

// LoadEnvFile sets the KEY=VALUE pairs of path that are not yet in the
// environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, ok := parseEnvLine(scanner.Text())
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); !set {
			_ = os.Setenv(key, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading env file %s: %w", path, err)
	}
	return nil
}

// parseEnvLine splits `[export ]KEY=VALUE`, dropping one pair of matching
// quotes around VALUE. Blank lines and # comments are rejected.
func parseEnvLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	if key == "" {
		return "", "", false
	}

	value = strings.TrimSpace(value)
	if n := len(value); n >= 2 && (value[0] == '"' || value[0] == '\'') && value[n-1] == value[0] {
		value = value[1 : n-1]
	}
	return key, value, true
}
