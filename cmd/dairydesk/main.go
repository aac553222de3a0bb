// Package main provides the dairydesk CLI entry point.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dairydesk/internal/api"
	"dairydesk/internal/config"
	"dairydesk/internal/session"
)

var (
	// Global flags
	verbose    bool
	apiURL     string
	configPath string

	// Logger, built in PersistentPreRunE
	logger *zap.Logger
)

// rootCmd launches the interactive client when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "dairydesk",
	Short: "dairydesk - terminal client for a dairy farm backend",
	Long: `dairydesk is a terminal client for managing a dairy farm business.

Farm owners register farms, add cattle and workers, and approve orders;
workers record milk production; buyers place one-time orders and
subscriptions. All business logic lives in the backend REST API — this
client only displays what the backend returns.

Run without arguments to start the interactive interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = buildLogger(cmd.Name() == "dairydesk")
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

// buildLogger keeps log output away from the alternate screen: the
// interactive UI logs to the configured file or not at all, subcommands log
// to stderr.
func buildLogger(interactive bool) (*zap.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	level := zapcore.InfoLevel
	if err := level.Set(cfg.Logging.Level); err != nil {
		level = zapcore.InfoLevel
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if interactive {
		if cfg.Logging.File == "" {
			return zap.NewNop(), nil
		}
		zcfg.OutputPaths = []string{cfg.Logging.File}
		zcfg.ErrorOutputPaths = []string{cfg.Logging.File}
	}
	return zcfg.Build()
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	return cfg, nil
}

// bootstrap wires config, session store and API client together for both the
// TUI and the plain subcommands.
func bootstrap() (*config.Config, *api.Client, *session.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	sessionPath, err := session.DefaultPath()
	if err != nil {
		return nil, nil, nil, err
	}
	store, err := session.Open(sessionPath)
	if err != nil {
		return nil, nil, nil, err
	}
	client := api.NewClient(cfg.APIURL,
		api.WithTokenSource(store),
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(logger),
	)
	return cfg, client, store, nil
}

func runInteractive() error {
	cfg, client, store, err := bootstrap()
	if err != nil {
		return err
	}
	logger.Info("starting interactive client",
		zap.String("api_url", cfg.APIURL),
		zap.Bool("authenticated", store.Authenticated()))

	program := tea.NewProgram(newApp(cfg, client, store, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interface error: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(farmsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
