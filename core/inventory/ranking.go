package inventory

import (
	"slices"
	"sort"
)

// ranking is the per-category view: records sorted by quantity descending,
// ties in identifier order. It references the same records as byID.
type ranking struct {
	entries []*record
}

// position returns the index at which rec belongs given its current quantity.
func (r *ranking) position(rec *record) int {
	return sort.Search(len(r.entries), func(i int) bool {
		return !r.entries[i].before(rec)
	})
}

func (r *ranking) insert(rec *record) {
	r.entries = slices.Insert(r.entries, r.position(rec), rec)
}

// remove excises the record with rec's identifier. The ordered lookup relies
// on rec's quantity matching the one it was ranked under; if it does not,
// the identifier scan still finds it.
func (r *ranking) remove(rec *record) bool {
	i := r.position(rec)
	if i >= len(r.entries) || r.entries[i].ID != rec.ID {
		i = slices.IndexFunc(r.entries, func(e *record) bool { return e.ID == rec.ID })
		if i < 0 {
			return false
		}
	}
	r.entries = slices.Delete(r.entries, i, i+1)
	return true
}

// update changes rec's quantity and moves it to its new rank.
func (r *ranking) update(rec *record, quantity int) {
	r.remove(rec)
	rec.Quantity = quantity
	r.insert(rec)
}

func (r *ranking) len() int {
	return len(r.entries)
}

func (r *ranking) snapshot() []Item {
	out := make([]Item, len(r.entries))
	for i, rec := range r.entries {
		out[i] = rec.snapshot()
	}
	return out
}
