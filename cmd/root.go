// Package cmd provides CLI commands for WTF
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mewisme/wtf/internal/config"
	"github.com/mewisme/wtf/internal/logger"
	"github.com/mewisme/wtf/internal/metrics"
)

var (
	// Version is set during build
	Version = "0.1.0"
	// Commit is set during build
	Commit = "unknown"

	cfgFile string
	debug   bool
	autoYes bool
	useAI   bool
	copyOut bool

	rootCmd = &cobra.Command{
		Use:   "wtf [command to fix...]",
		Short: "Fix your last command typo",
		Long: `WTF fixes mistyped shell commands.

Run it with a command line to get corrections for it, or with no
arguments to fix the last command from your shell history.`,
		Args: cobra.ArbitraryArgs,
		// Errors are reported once, through the logger in Execute.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initialize(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			cleanup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fixLastCommand(cmd.Context())
			}
			return fixCommand(cmd.Context(), strings.Join(args, " "))
		},
	}
)

// Execute runs the root command. Called once from main.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	rootCmd.SetContext(ctx)
	rootCmd.Version = Version

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	// Accept underscore variants of flag names (--auto_mode == --auto-mode).
	rootCmd.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/wtf/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	rootCmd.Flags().BoolVarP(&autoYes, "yes", "y", false, "run the top suggestion without asking")
	rootCmd.Flags().BoolVar(&useAI, "ai", false, "ask the AI first, using the built-in matching only if it fails")
	rootCmd.Flags().BoolVar(&copyOut, "copy", false, "copy the chosen command to the clipboard instead of running it")
}

// initialize sets up logging, config and metrics before any command runs.
func initialize(ctx context.Context) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.File = cfg.Logging.File
	logCfg.MaxSize = cfg.Logging.MaxSize
	logCfg.MaxBackups = cfg.Logging.MaxBackups
	if debug || cfg.App.Debug {
		logCfg.Level = "debug"
	}

	if err := logger.Initialize(logCfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := config.EnsureDirs(); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	metrics.Initialize(Version)

	logger.Debug("initialized", "version", Version, "commit", Commit, "config", config.Path())
	return nil
}

// cleanup runs after command execution.
func cleanup() {
	if debug || config.Get().App.Debug {
		if data, err := metrics.Get().JSON(); err == nil {
			logger.Debug("run metrics", "snapshot", string(data))
		}
	}
}
