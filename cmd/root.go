package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hunklab/hunkview/internal/config"
	"github.com/hunklab/hunkview/internal/git"
	"github.com/hunklab/hunkview/internal/log"
	"github.com/hunklab/hunkview/internal/review"
	"github.com/hunklab/hunkview/internal/ui/styles"
	"github.com/hunklab/hunkview/internal/ui/viewer"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "hunkview [ref]",
	Short: "A terminal viewer for git diffs with word-level highlighting",
	Long: `Renders git diffs with syntax highlighting, word-level change
highlighting within modified lines, and unified or side-by-side layout
chosen per hunk by terminal width. A YAML review file can group hunks
(or line ranges within hunks) under titled, markdown-described sections.

With no ref, shows uncommitted changes against HEAD. With a ref, shows
the diff against that ref (e.g. "main", "HEAD~3").`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .hunkview/config.yaml, ~/.config/hunkview/config.yaml)")
	rootCmd.Flags().StringP("review", "r", "",
		"path to a YAML review group file")
	rootCmd.Flags().StringP("mode", "m", "",
		"layout mode: auto, unified, or split")
	rootCmd.Flags().Bool("static", false,
		"print the rendered diff to stdout instead of starting the TUI")
	rootCmd.Flags().IntP("width", "w", 0,
		"render width for --static (default: terminal width, else 120)")
	rootCmd.Flags().Bool("no-color", false,
		"disable all styling (implies --static)")
	rootCmd.Flags().Bool("no-reload", false,
		"disable automatic re-render when the review file changes")
	rootCmd.Flags().Bool("debug", false,
		"write a debug log to .hunkview/debug.log")

	_ = viper.BindPFlag("review", rootCmd.Flags().Lookup("review"))
	_ = viper.BindPFlag("ui.mode", rootCmd.Flags().Lookup("mode"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("reload_debounce", defaults.ReloadDebounce)
	viper.SetDefault("ui.mode", defaults.UI.Mode)
	viper.SetDefault("ui.split_width_threshold", defaults.UI.SplitWidthThreshold)
	viper.SetDefault("ui.static_width_threshold", defaults.UI.StaticWidthThreshold)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .hunkview/config.yaml (current directory)
		// 2. ~/.config/hunkview/config.yaml (user config)
		if _, err := os.Stat(".hunkview/config.yaml"); err == nil {
			viper.SetConfigFile(".hunkview/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "hunkview"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .hunkview/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".hunkview/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func run(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	if debug || os.Getenv("HUNKVIEW_DEBUG") != "" {
		if cleanup, err := log.Init(".hunkview/debug.log"); err == nil {
			defer cleanup()
		}
	}

	if colors := cfg.Theme.FlattenedColors(); len(colors) > 0 {
		if err := styles.ApplyTheme(colors); err != nil {
			return fmt.Errorf("applying theme: %w", err)
		}
	}

	ref := cfg.Ref
	if len(args) > 0 {
		ref = args[0]
	}

	executor := git.NewRealExecutor("")
	if !executor.IsGitRepo() {
		return fmt.Errorf("not a git repository (run from inside a work tree)")
	}

	var rev *review.Review
	if cfg.Review != "" {
		var err error
		rev, err = review.Load(cfg.Review)
		if err != nil {
			return fmt.Errorf("loading review file: %w", err)
		}
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	static, _ := cmd.Flags().GetBool("static")
	if static || noColor {
		width, _ := cmd.Flags().GetInt("width")
		return runStatic(executor, ref, rev, width, noColor)
	}

	var watchCh <-chan struct{}
	noReload, _ := cmd.Flags().GetBool("no-reload")
	if cfg.Review != "" && cfg.AutoReload && !noReload {
		watcher, err := review.NewWatcher(cfg.Review, cfg.ReloadDebounce)
		if err != nil {
			log.ErrorErr(log.CatWatcher, "creating review watcher", err)
		} else {
			watchCh, err = watcher.Start()
			if err != nil {
				log.ErrorErr(log.CatWatcher, "starting review watcher", err)
				watchCh = nil
			} else {
				defer func() { _ = watcher.Stop() }()
			}
		}
	}

	model := viewer.New(executor, cfg, ref, rev, cfg.Review, watchCh)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
