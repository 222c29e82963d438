// Package config provides configuration types and defaults for hunkview.
package config

import (
	"time"

	"github.com/hunklab/hunkview/internal/diff"
)

// UIConfig holds user interface configuration options.
type UIConfig struct {
	// Mode selects the diff layout: "auto" (width-based per hunk),
	// "unified", or "split".
	Mode string `mapstructure:"mode"`
	// SplitWidthThreshold is the minimum terminal width for split view
	// when Mode is "auto".
	SplitWidthThreshold int `mapstructure:"split_width_threshold"`
	// StaticWidthThreshold is the split threshold for --static output.
	StaticWidthThreshold int `mapstructure:"static_width_threshold"`
	// MarkdownStyle is the glamour style for review descriptions:
	// "dark" (default) or "light".
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// ThemeConfig holds theme customization options.
type ThemeConfig struct {
	// Colors overrides individual color tokens, either nested YAML or
	// quoted dot notation ("diff.addition": "#00FF00").
	Colors map[string]any `mapstructure:"colors"`
}

// Config holds all configuration options for hunkview.
type Config struct {
	// Ref is the default diff base (empty means working directory vs HEAD).
	Ref string `mapstructure:"ref"`
	// Review is the path to a review group file.
	Review string `mapstructure:"review"`
	// AutoReload re-renders when the review file changes.
	AutoReload bool `mapstructure:"auto_reload"`
	// ReloadDebounce batches rapid review-file writes.
	ReloadDebounce time.Duration `mapstructure:"reload_debounce"`
	UI             UIConfig      `mapstructure:"ui"`
	Theme          ThemeConfig   `mapstructure:"theme"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		AutoReload:     true,
		ReloadDebounce: 500 * time.Millisecond,
		UI: UIConfig{
			Mode:                 "auto",
			SplitWidthThreshold:  diff.SplitWidthTUI,
			StaticWidthThreshold: diff.SplitWidthStatic,
			MarkdownStyle:        "dark",
		},
	}
}

// FlattenedColors returns the Colors map flattened to dot-notation keys,
// handling both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		}
	}
}
