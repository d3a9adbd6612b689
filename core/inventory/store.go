package inventory

import (
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// idPrefix is prepended to the counter value to form an identifier.
const idPrefix = "ID"

// Store is the in-memory inventory. The zero value is not usable; use NewStore.
type Store struct {
	mu         sync.RWMutex
	byID       map[string]*record
	byCategory map[string]*ranking

	categories Categories
	threshold  int
	nextID     atomic.Uint64

	logger   *zap.Logger
	notifier Notifier
	observer Observer
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for operational messages. Unless a
// notifier is supplied, restock notifications are logged through it too.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// WithNotifier adds a restock notification receiver. It may be given more
// than once; every notifier receives every notification. Notifiers run after
// the store lock is released and may read from the store.
func WithNotifier(n Notifier) Option {
	return func(s *Store) {
		if s.notifier == nil {
			s.notifier = n
			return
		}
		if m, ok := s.notifier.(multiNotifier); ok {
			s.notifier = append(m, n)
			return
		}
		s.notifier = multiNotifier{s.notifier, n}
	}
}

// WithObserver sets the receiver of state change events.
func WithObserver(o Observer) Option {
	return func(s *Store) {
		s.observer = o
	}
}

// NewStore creates an empty store for the given configuration.
func NewStore(cfg Config, opts ...Option) *Store {
	s := &Store{
		byID:       make(map[string]*record),
		byCategory: make(map[string]*ranking),
		categories: NewCategories(cfg.Categories),
		threshold:  cfg.RestockThreshold,
		logger:     zap.NewNop(),
		observer:   nopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = NewLogNotifier(s.logger)
	}
	return s
}

// Threshold returns the restock threshold.
func (s *Store) Threshold() int {
	return s.threshold
}

// Categories returns the allowed category set.
func (s *Store) Categories() Categories {
	return s.categories
}

// generateID mints the next identifier. Counter values are never reused.
func (s *Store) generateID() (string, uint64) {
	seq := s.nextID.Add(1)
	return idPrefix + strconv.FormatUint(seq, 10), seq
}

// AddOrUpdateItem creates a new item under a fresh identifier. The name is
// never matched against existing items. If category is not allowed nothing
// changes and an *InvalidCategoryError is returned.
func (s *Store) AddOrUpdateItem(name, category string, quantity int) (Item, error) {
	if !s.categories.Contains(category) {
		return Item{}, &InvalidCategoryError{Category: category, Allowed: s.categories.List()}
	}

	s.mu.Lock()
	item := s.addLocked(name, category, quantity)
	s.mu.Unlock()

	s.CheckRestocking(item)
	return item, nil
}

// addLocked inserts a new record into both views. The caller runs the
// restock check once the lock is released.
func (s *Store) addLocked(name, category string, quantity int) Item {
	id, seq := s.generateID()
	rec := &record{
		Item: Item{ID: id, Name: name, Category: category, Quantity: quantity},
		seq:  seq,
	}

	s.byID[id] = rec
	rank, ok := s.byCategory[category]
	if !ok {
		rank = &ranking{}
		s.byCategory[category] = rank
	}
	rank.insert(rec)

	item := rec.snapshot()
	s.observer.ItemAdded(item)
	s.logger.Debug("Item added", zap.String("id", id), zap.String("category", category), zap.Int("quantity", quantity))
	return item
}

// RemoveItemByID removes the item from both views and returns it.
func (s *Store) RemoveItemByID(id string) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	delete(s.byID, id)
	if rank, ok := s.byCategory[rec.Category]; ok {
		rank.remove(rec)
		if rank.len() == 0 {
			delete(s.byCategory, rec.Category)
		}
	}

	item := rec.snapshot()
	s.observer.ItemRemoved(item)
	s.logger.Debug("Item removed", zap.String("id", id))
	return item, nil
}

// GetItemByID returns the item with the given identifier.
func (s *Store) GetItemByID(id string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[id]
	if !ok {
		return Item{}, false
	}
	return rec.snapshot(), true
}

// GetItemsByCategory returns a snapshot of the category's items, highest
// quantity first. Unknown or empty categories yield an empty slice.
func (s *Store) GetItemsByCategory(category string) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rank, ok := s.byCategory[category]
	if !ok {
		return []Item{}
	}
	return rank.snapshot()
}

// CheckRestocking emits a notification if item is below the restock
// threshold. It takes no lock. It reports the notification and whether one was emitted.
func (s *Store) CheckRestocking(item Item) (Notification, bool) {
	if item.Quantity >= s.threshold {
		return Notification{}, false
	}
	n := Notification{
		ItemID:    item.ID,
		Name:      item.Name,
		Category:  item.Category,
		Quantity:  item.Quantity,
		Threshold: s.threshold,
	}
	s.notifier.Notify(n)
	s.observer.RestockNotified(n)
	return n, true
}

// DisplayInventory returns every item exactly once, in no particular order.
func (s *Store) DisplayInventory() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, 0, len(s.byID))
	for _, rec := range s.byID {
		out = append(out, rec.snapshot())
	}
	return out
}

// Each calls fn for every item while holding the read lock.
// fn must not call back into mutating store methods.
func (s *Store) Each(fn func(Item)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.byID {
		fn(rec.snapshot())
	}
}

// Len returns the number of items held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// CategoryCounts returns the number of items and total quantity per
// category that currently holds items.
func (s *Store) CategoryCounts() map[string]CategoryCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]CategoryCount, len(s.byCategory))
	for label, rank := range s.byCategory {
		c := CategoryCount{Items: rank.len()}
		for _, rec := range rank.entries {
			c.Quantity += rec.Quantity
		}
		out[label] = c
	}
	return out
}

// CategoryCount aggregates one category.
type CategoryCount struct {
	Items    int
	Quantity int
}
