package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultConfigTemplate is written when no config file exists anywhere.
const defaultConfigTemplate = `# hunkview configuration
# See README for all options.

# auto_reload: true
# reload_debounce: 500ms

ui:
  # mode: auto | unified | split
  mode: auto
  split_width_threshold: 100
  static_width_threshold: 150
  markdown_style: dark

# theme:
#   colors:
#     diff.addition: "#73F59F"
#     diff.deletion: "#FF8787"
`

// WriteDefaultConfig creates a commented default config file at path,
// creating parent directories as needed. Fails if the file already exists.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0644); err != nil { //nolint:gosec // G306: config file is not sensitive
		return fmt.Errorf("writing default config: %w", err)
	}

	return nil
}
