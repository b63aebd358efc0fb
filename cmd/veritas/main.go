package main

import (
	"fmt"
	"os"

	"veritas/cmd/veritas/ui"
	"veritas/internal/app"
	"veritas/internal/config"
	"veritas/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose   bool
	serverURL string

	// Logger for one-shot commands
	logger *zap.Logger
)

// rootCmd launches the interactive TUI when run without a subcommand.
// Assigned in init to avoid an initialization cycle: PersistentPreRunE
// refers back to rootCmd.
var rootCmd *cobra.Command

func init() {
	rootCmd = &cobra.Command{
		Use:   "veritas",
		Short: "Terminal client for the Fake News Detector service",
		Long: `veritas is a terminal client for a fake-news detection and
generation backend.

Submit text for classification by two models, generate synthetic news
from content/style/length filters, and bookmark the results. Run
without arguments for the interactive interface, or use the
subcommands for one-shot operations.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The TUI builds its own file logger so log lines cannot
			// corrupt the alternate screen.
			if cmd == rootCmd {
				return nil
			}
			var err error
			logger, err = logging.Console(verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive()
		},
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "backend base URL (overrides config)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(historyCmd)
}

// buildApp constructs the application for one-shot commands.
func buildApp() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if serverURL != "" {
		cfg.Server.BaseURL = serverURL
	}

	dir, err := config.Dir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	return app.New(cfg, dir, logger), nil
}

// runInteractive starts the bubbletea interface.
func runInteractive() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if serverURL != "" {
		cfg.Server.BaseURL = serverURL
	}

	dir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	fileLogger, err := logging.File(dir, verbose)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer fileLogger.Sync()

	application := app.New(cfg, dir, fileLogger)
	program := tea.NewProgram(ui.New(application, cfg.UI.Theme), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
