package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pulsenav/settings/internal/cmd"
	"github.com/pulsenav/settings/internal/config"
	"github.com/pulsenav/settings/internal/logging"
	"github.com/pulsenav/settings/internal/nav"
	"github.com/pulsenav/settings/internal/ui"
)

var errNoTerminal = errors.New("not an interactive terminal")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	var (
		verbose   bool
		startPath string
		cfg       *config.Config
		logger    *zap.Logger
	)

	root := &cobra.Command{
		Use:   "pulse-settings",
		Short: "Pulse settings navigator",
		Long:  "Browse Pulse settings tabs the way the web UI routes them: legacy links, ?tab= deep links and agent paths all settle on one canonical tab.",
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			var err error
			cfg, err = cmd.LoadConfig()
			if err != nil {
				return err
			}

			level := cfg.LogLevel
			if verbose {
				level = "debug"
			}
			// stdout belongs to the TUI, so it only logs to a file
			if c == c.Root() {
				logger, err = logging.ForTUI(level, cfg.LogFile)
			} else {
				logger, err = logging.New(level, cfg.LogFile)
			}
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.SetContext(cmd.WithLogger(c.Context(), logger))
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if startPath != "" {
				cfg.StartPath = startPath
			}
			return runTUI(cfg, logger)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	root.Flags().StringVar(&startPath, "path", "", "initial location, e.g. /settings?tab=docker (overrides start_path)")

	root.AddCommand(cmd.ResolveCmd())
	root.AddCommand(cmd.TabsCmd())
	root.AddCommand(cmd.CheckCmd())
	root.AddCommand(cmd.ConfigCmd())
	return root
}

func runTUI(cfg *config.Config, logger *zap.Logger) error {
	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		return fmt.Errorf("pulse-settings: %w; try 'pulse-settings resolve %s'", errNoTerminal, nav.SettingsRoot)
	}

	app := ui.NewApp(cfg, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
