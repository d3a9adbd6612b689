package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inventory-tracker/core/inventory"
	"inventory-tracker/core/metrics"
	"inventory-tracker/core/utils"

	"go.uber.org/zap"
)

// readItem prompts for the fields of a new item.
func (s *Session) readItem(ctx context.Context) (name, category string, quantity int, err error) {
	if name, err = s.prompt(ctx, "Item name: "); err != nil {
		return "", "", 0, err
	}
	fmt.Fprintf(s.out, "Categories: %s\n", s.categoriesLine())
	if category, err = s.prompt(ctx, "Category: "); err != nil {
		return "", "", 0, err
	}
	raw, err := s.prompt(ctx, "Quantity: ")
	if err != nil {
		return "", "", 0, err
	}
	if quantity, err = utils.ParseNonNegativeInt(raw); err != nil {
		return "", "", 0, err
	}
	return strings.TrimSpace(name), utils.NormalizeLabel(category), quantity, nil
}

func (s *Session) addItem(ctx context.Context) error {
	name, category, quantity, err := s.readItem(ctx)
	if err != nil {
		return err
	}

	item, err := s.opts.Store.AddOrUpdateItem(name, category, quantity)
	var catErr *inventory.InvalidCategoryError
	if errors.As(err, &catErr) {
		fmt.Fprintf(s.out, "Invalid category. Available categories are: [%s]\n", strings.Join(catErr.Allowed, ", "))
		return nil
	}
	if err != nil {
		return err
	}

	// Notifications raised by the add are printed before the confirmation.
	s.flushNotifications()
	fmt.Fprintf(s.out, "Item added successfully: %s\n", item)
	return nil
}

func (s *Session) removeItem(ctx context.Context) error {
	id, err := s.prompt(ctx, "Enter item ID to remove: ")
	if err != nil {
		return err
	}
	id = strings.TrimSpace(id)

	item, err := s.opts.Store.RemoveItemByID(id)
	if errors.Is(err, inventory.ErrItemNotFound) {
		fmt.Fprintf(s.out, "Item with ID %s not found.\n", id)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Item removed successfully: %s\n", item)
	return nil
}

func (s *Session) showItem(ctx context.Context) error {
	id, err := s.prompt(ctx, "Enter item ID to display: ")
	if err != nil {
		return err
	}
	item, ok := s.opts.Store.GetItemByID(strings.TrimSpace(id))
	if !ok {
		fmt.Fprintln(s.out, "Item not found.")
		return nil
	}
	fmt.Fprintln(s.out, item)
	return nil
}

func (s *Session) listCategory(ctx context.Context) error {
	category, err := s.prompt(ctx, "Enter category to retrieve items: ")
	if err != nil {
		return err
	}
	items := s.opts.Store.GetItemsByCategory(utils.NormalizeLabel(category))
	if len(items) == 0 {
		fmt.Fprintln(s.out, "No items.")
		return nil
	}
	s.printItems(items)
	return nil
}

func (s *Session) merge(ctx context.Context) error {
	source, err := s.prompt(ctx, "Merge with (self/new): ")
	if err != nil {
		return err
	}

	var other *inventory.Store
	switch strings.ToLower(strings.TrimSpace(source)) {
	case "self":
		other = s.opts.Store
	case "new":
		if other, err = s.readInventory(ctx); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown merge source %q", strings.TrimSpace(source))
	}

	res := s.opts.Store.MergeInventories(other)
	s.logger.Info("Merge requested", zap.String("source", source), zap.Int("updated", res.Updated), zap.Int("added", res.Added))
	fmt.Fprintf(s.out, "Merged inventories: updated=%d added=%d rejected=%d\n", res.Updated, res.Added, res.Rejected)
	return nil
}

// readInventory builds a fresh inventory from items entered at the prompt.
func (s *Session) readInventory(ctx context.Context) (*inventory.Store, error) {
	if s.opts.NewStore == nil {
		return nil, fmt.Errorf("merging a new inventory is not available")
	}
	raw, err := s.prompt(ctx, "Number of items in the other inventory: ")
	if err != nil {
		return nil, err
	}
	count, err := utils.ParseNonNegativeInt(raw)
	if err != nil {
		return nil, err
	}

	other := s.opts.NewStore()
	for i := 0; i < count; i++ {
		name, category, quantity, err := s.readItem(ctx)
		if err != nil {
			return nil, err
		}
		if _, err := other.AddOrUpdateItem(name, category, quantity); err != nil {
			fmt.Fprintf(s.out, "Skipped: %v\n", err)
		}
	}
	return other, nil
}

func (s *Session) topK(ctx context.Context) error {
	raw, err := s.prompt(ctx, "Enter k to get top k items: ")
	if err != nil {
		return err
	}
	k, err := utils.ParseInt(raw)
	if err != nil {
		return err
	}
	s.printItems(s.opts.Store.GetTopKItems(k))
	return nil
}

func (s *Session) display() {
	items := s.opts.Store.DisplayInventory()
	if len(items) == 0 {
		fmt.Fprintln(s.out, "Inventory is empty.")
		return
	}
	s.printItems(items)
}

func (s *Session) checkRestock(ctx context.Context) error {
	id, err := s.prompt(ctx, "Enter item ID to check: ")
	if err != nil {
		return err
	}
	item, ok := s.opts.Store.GetItemByID(strings.TrimSpace(id))
	if !ok {
		fmt.Fprintln(s.out, "Item not found.")
		return nil
	}
	if _, needed := s.opts.Store.CheckRestocking(item); !needed {
		fmt.Fprintf(s.out, "Item %s (ID: %s) is sufficiently stocked.\n", item.Name, item.ID)
	}
	return nil
}

func (s *Session) stats() error {
	if s.opts.Metrics == nil {
		fmt.Fprintln(s.out, "Metrics are disabled.")
		return nil
	}
	samples, err := metrics.Snapshot(s.opts.Metrics)
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, sample := range samples {
		fmt.Fprintln(s.out, sample.String())
	}
	return nil
}

func (s *Session) printItems(items []inventory.Item) {
	for _, item := range items {
		fmt.Fprintln(s.out, item)
	}
}
