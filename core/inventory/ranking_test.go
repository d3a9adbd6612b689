package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newRecord(seq uint64, quantity int) *record {
	return &record{Item: Item{ID: idPrefix + string(rune('0'+seq)), Quantity: quantity}, seq: seq}
}

func rankIDs(r *ranking) []string {
	ids := make([]string, 0, r.len())
	for _, e := range r.entries {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestRanking_InsertOrder(t *testing.T) {
	r := &ranking{}
	r.insert(newRecord(1, 5))
	r.insert(newRecord(2, 9))
	r.insert(newRecord(3, 5))
	r.insert(newRecord(4, 1))

	assert.Equal(t, []string{"ID2", "ID1", "ID3", "ID4"}, rankIDs(r))
}

func TestRanking_Remove(t *testing.T) {
	r := &ranking{}
	recs := []*record{newRecord(1, 5), newRecord(2, 5), newRecord(3, 5)}
	for _, rec := range recs {
		r.insert(rec)
	}

	assert.True(t, r.remove(recs[1]))
	assert.Equal(t, []string{"ID1", "ID3"}, rankIDs(r))
	assert.False(t, r.remove(recs[1]))
}

func TestRanking_RemoveStaleQuantity(t *testing.T) {
	r := &ranking{}
	a, b := newRecord(1, 5), newRecord(2, 3)
	r.insert(a)
	r.insert(b)

	// Quantity changed without re-ranking: removal still finds it by identifier.
	b.Quantity = 50
	assert.True(t, r.remove(b))
	assert.Equal(t, []string{"ID1"}, rankIDs(r))
}

func TestRanking_Update(t *testing.T) {
	r := &ranking{}
	a, b, c := newRecord(1, 30), newRecord(2, 20), newRecord(3, 10)
	r.insert(a)
	r.insert(b)
	r.insert(c)

	r.update(c, 25)
	assert.Equal(t, []string{"ID1", "ID3", "ID2"}, rankIDs(r))

	r.update(a, 1)
	assert.Equal(t, []string{"ID3", "ID2", "ID1"}, rankIDs(r))
}
