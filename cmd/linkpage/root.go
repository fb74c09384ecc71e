package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/reglet-dev/linkpage/internal/infrastructure/system"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// Viper keys for settings that can come from flags or LINKPAGE_* variables.
const (
	keyAPIBase       = "github-api"
	keyFallbackBase  = "avatar-fallback"
	keyServerAddr    = "addr"
	keyRenderTimeout = "render-timeout"
	keyDocument      = "document"
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "linkpage",
	Short: "Personal link page renderer",
	Long: `Linkpage renders a personal link page from a JSON or YAML document:
a profile card with a GitHub avatar followed by an ordered list of links.

The document can be a local file or a URL. Pages can be rendered once to
a file, served over HTTP, or checked for problems before publishing.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.linkpage/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().String(keyAPIBase, "", "GitHub API base URL")
	rootCmd.PersistentFlags().String(keyFallbackBase, "", "base URL for fallback avatars")

	_ = viper.BindPFlag(keyAPIBase, rootCmd.PersistentFlags().Lookup(keyAPIBase))
	_ = viper.BindPFlag(keyFallbackBase, rootCmd.PersistentFlags().Lookup(keyFallbackBase))
}

// initConfig wires environment overrides. The config file itself is read by
// the container so defaults and validation live in one place.
func initConfig() {
	if cfgFile == "" {
		cfgFile = system.DefaultConfigPath()
	}

	viper.SetEnvPrefix("LINKPAGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
