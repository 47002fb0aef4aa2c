// Package main provides the stockdeck CLI entry point.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"stockdeck/cmd/stockdeck/config"
)

var (
	// Global flags
	verbose bool
	apiKey  string
	baseURL string
	agentID string
	theme   string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "stockdeck",
	Short: "stockdeck - inventory agent dashboard",
	Long: `stockdeck is a terminal dashboard for an upstream conversational
inventory agent.

It asks the agent about your inventory, sales, low-stock alerts, and
pending orders, extracts whatever structured data the reply carries, and
folds it into a live dashboard without ever blanking data a previous turn
already established. A chat pane lets you keep asking follow-up questions.

Run without arguments to start the interactive dashboard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

// initLogger builds a zap logger writing to a file under the config dir.
// The TUI owns the terminal, so nothing may log to stderr while it runs.
func initLogger() error {
	dir, err := config.ConfigDir()
	if err != nil {
		logger = zap.NewNop()
		return nil
	}
	logsDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		logger = zap.NewNop()
		return nil
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(logsDir, "stockdeck.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err = cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// loadConfig merges file config, environment, and command-line flags.
// Flags beat everything.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil && logger != nil {
		logger.Warn("config load", zap.Error(err))
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if agentID != "" {
		cfg.AgentID = agentID
	}
	if theme != "" {
		cfg.Theme = theme
	}
	return cfg
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "agent API key (overrides config and STOCKDECK_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "agent endpoint base URL")
	rootCmd.PersistentFlags().StringVar(&agentID, "agent-id", "", "agent to route calls to")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "color theme: light or dark")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
