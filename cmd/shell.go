package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"inventory-tracker/core/config"
	"inventory-tracker/core/inventory"
	"inventory-tracker/core/logger"
	"inventory-tracker/core/metrics"
	"inventory-tracker/feature/console"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var thresholdFlag int

// shellCmd starts an interactive inventory session on stdin/stdout.
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive inventory session",
	Long: `Starts the menu-driven inventory shell.

The inventory lives in memory for the duration of the session.
Categories and the restock threshold come from the environment or .env:

  INVENTORY_CATEGORIES="Electronics,Books" INVENTORY_RESTOCK_THRESHOLD=5 inventory-tracker shell`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	shellCmd.Flags().IntVar(&thresholdFlag, "threshold", 0, "Override the restock threshold (0 keeps the configured value)")
	RootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if thresholdFlag > 0 {
		cfg.Inventory.RestockThreshold = thresholdFlag
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	logg = logger.WithSession(logg, logger.NewSessionID())

	notes := &inventory.Recorder{}
	storeOpts := []inventory.Option{
		inventory.WithLogger(logg),
		inventory.WithNotifier(inventory.NewLogNotifier(logg)),
		inventory.WithNotifier(notes),
	}

	var gatherer prometheus.Gatherer
	var recorder *metrics.Recorder
	if cfg.Metrics.Enabled {
		recorder = metrics.NewRecorder(cfg.Metrics)
		storeOpts = append(storeOpts, inventory.WithObserver(recorder))
		gatherer = recorder.Registry()
	}

	store := inventory.NewStore(cfg.Inventory, storeOpts...)
	if recorder != nil {
		if err := recorder.Watch(store, cfg.Metrics.Namespace); err != nil {
			return fmt.Errorf("failed to register store metrics: %w", err)
		}
	}

	logg.Info("Inventory ready",
		zap.Int("restock_threshold", store.Threshold()),
		zap.Strings("categories", store.Categories().List()),
		zap.Bool("metrics", cfg.Metrics.Enabled),
	)

	session := console.NewSession(console.Options{
		Store: store,
		Notes: notes,
		NewStore: func() *inventory.Store {
			return inventory.NewStore(cfg.Inventory, inventory.WithLogger(logg.Named("merge-source")))
		},
		Metrics: gatherer,
		Logger:  logg,
	}, cmd.InOrStdin(), cmd.OutOrStdout())

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := session.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
