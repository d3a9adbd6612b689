package inventory

import (
	"fmt"
	"strings"
)

// DefaultCategories is the category set used when none is configured.
var DefaultCategories = []string{"Electronics", "Home Appliances", "Furniture", "Clothing", "Books", "Toys"}

// Config holds configuration for an inventory store.
type Config struct {
	// RestockThreshold is the quantity below which an item needs restocking.
	RestockThreshold int `mapstructure:"restock_threshold" default:"10"`
	// Categories is the fixed set of allowed category labels.
	Categories []string `mapstructure:"categories" default:"Electronics,Home Appliances,Furniture,Clothing,Books,Toys"`
}

// Validate checks that the category set is usable.
func (c Config) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("%w: at least one category is required", ErrInvalidConfig)
	}
	seen := make(map[string]struct{}, len(c.Categories))
	for _, label := range c.Categories {
		if strings.TrimSpace(label) == "" {
			return fmt.Errorf("%w: blank category label", ErrInvalidConfig)
		}
		if _, dup := seen[label]; dup {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidConfig, label)
		}
		seen[label] = struct{}{}
	}
	return nil
}
