package cmd

import (
	"fmt"
	"os"
	"strings"

	"inventory-tracker/core/config"
	"inventory-tracker/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "inventory-tracker",
	Short: "In-memory inventory tracker",
	Long: `Inventory Tracker keeps items in memory, ranked per category by quantity.
It supports restock alerts, merging inventories and top-K queries from an interactive shell.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with status 1 on failure, after
// logging the error through the configured logger.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		reportFailure(err)
		os.Exit(1)
	}
}

// reportFailure logs err with the configured log settings.
func reportFailure(err error) {
	l, logErr := failureLogger()
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	l.Error("command failed", zap.String("command", strings.Join(os.Args[1:], " ")), zap.Error(err))
	_ = l.Sync()
}

// failureLogger builds a logger from the loaded configuration. A broken
// configuration is often the failure itself, so it falls back to console at
// info level.
func failureLogger() (*zap.Logger, error) {
	logCfg := logger.Config{Level: "info", Format: "console"}
	if cfg, err := config.LoadConfig("."); err == nil {
		logCfg = cfg.Log
	}
	return logger.New(&logCfg)
}
