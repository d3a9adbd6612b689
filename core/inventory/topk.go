package inventory

import (
	"container/heap"
	"slices"
)

// GetTopKItems returns up to k items across all categories, highest quantity
// first. Ties go to the older identifier. k <= 0 yields an empty slice and k
// larger than the store yields every item.
func (s *Store) GetTopKItems(k int) []Item {
	if k <= 0 {
		return []Item{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if k >= len(s.byID) {
		recs := make([]*record, 0, len(s.byID))
		for _, rec := range s.byID {
			recs = append(recs, rec)
		}
		slices.SortFunc(recs, compareRank)
		return snapshots(recs)
	}

	// Keep the k best seen so far in a heap whose root is the worst of them.
	h := make(worstFirst, 0, k)
	for _, rec := range s.byID {
		if len(h) < k {
			heap.Push(&h, rec)
			continue
		}
		if rec.before(h[0]) {
			h[0] = rec
			heap.Fix(&h, 0)
		}
	}
	slices.SortFunc(h, compareRank)
	return snapshots(h)
}

func compareRank(a, b *record) int {
	switch {
	case a.before(b):
		return -1
	case b.before(a):
		return 1
	}
	return 0
}

func snapshots(recs []*record) []Item {
	out := make([]Item, len(recs))
	for i, rec := range recs {
		out[i] = rec.snapshot()
	}
	return out
}

// worstFirst is a heap.Interface ordered so the lowest ranked record is at
// the root.
type worstFirst []*record

func (h worstFirst) Len() int           { return len(h) }
func (h worstFirst) Less(i, j int) bool { return h[j].before(h[i]) }
func (h worstFirst) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *worstFirst) Push(x any) {
	*h = append(*h, x.(*record))
}

func (h *worstFirst) Pop() any {
	old := *h
	n := len(old)
	rec := old[n-1]
	*h = old[:n-1]
	return rec
}
