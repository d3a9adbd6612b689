// Package config provides configuration management for the inventory tracker.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Inventory: restock threshold and the allowed category set
//   - Log: logging level and format
//   - Metrics: in-process metrics toggle and namespace
//
// Environment variables map onto nested keys by replacing dots with
// underscores, e.g. INVENTORY_RESTOCK_THRESHOLD or INVENTORY_CATEGORIES
// (comma separated).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Inventory.RestockThreshold)
package config
