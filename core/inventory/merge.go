package inventory

import (
	"cmp"
	"slices"

	"go.uber.org/zap"
)

// MergeResult counts what a merge did.
type MergeResult struct {
	// Updated is the number of incoming items whose identifier already existed.
	Updated int `json:"updated"`
	// Added is the number of incoming items re-added under fresh identifiers.
	Added int `json:"added"`
	// Rejected is the number of incoming items whose category is not allowed here.
	Rejected int `json:"rejected"`
}

// MergeInventories reconciles every item of other into s.
//
// An item whose identifier already exists in s keeps the higher of the two
// quantities; this path does not run the restock check. Any other item is
// added through the normal add path and receives a new identifier, even if
// an item with the same name already exists. Items are taken from other in
// identifier order so the identifiers minted here are deterministic.
//
// Merging a store into itself is allowed and changes nothing.
func (s *Store) MergeInventories(other *Store) MergeResult {
	if other == nil {
		return MergeResult{}
	}
	incoming := other.ordered()

	res, added := s.mergeLocked(incoming)
	for _, item := range added {
		s.CheckRestocking(item)
	}

	s.observer.Merged(res)
	s.logger.Info("Inventories merged",
		zap.Int("updated", res.Updated),
		zap.Int("added", res.Added),
		zap.Int("rejected", res.Rejected),
	)
	return res
}

// mergeLocked applies incoming under the write lock and returns the items it
// re-added, so their restock check can run after the lock is released.
func (s *Store) mergeLocked(incoming []Item) (MergeResult, []Item) {
	var res MergeResult
	var added []Item

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range incoming {
		if existing, ok := s.byID[item.ID]; ok {
			if item.Quantity > existing.Quantity {
				s.byCategory[existing.Category].update(existing, item.Quantity)
			}
			res.Updated++
			continue
		}
		if !s.categories.Contains(item.Category) {
			s.logger.Warn("Skipping merged item with unknown category",
				zap.String("id", item.ID),
				zap.String("category", item.Category),
			)
			res.Rejected++
			continue
		}
		added = append(added, s.addLocked(item.Name, item.Category, item.Quantity))
		res.Added++
	}
	return res, added
}

// ordered returns a snapshot of every item in identifier order.
func (s *Store) ordered() []Item {
	s.mu.RLock()
	recs := make([]*record, 0, len(s.byID))
	for _, rec := range s.byID {
		recs = append(recs, rec)
	}
	slices.SortFunc(recs, func(a, b *record) int {
		return cmp.Compare(a.seq, b.seq)
	})
	out := make([]Item, len(recs))
	for i, rec := range recs {
		out[i] = rec.snapshot()
	}
	s.mu.RUnlock()
	return out
}
