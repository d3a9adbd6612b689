package inventory

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var (
	propertyCategories = []string{"Electronics", "Books", "Toys"}
	// drawnCategories includes one label the store does not allow.
	drawnCategories = []string{"Electronics", "Books", "Toys", "Garden"}
)

// storeMachine drives a Store with random operations and checks it against
// a plain map model after every step.
type storeMachine struct {
	store   *Store
	model   map[string]Item
	removed map[string]struct{}
}

func (m *storeMachine) add(t *rapid.T) {
	name := rapid.StringMatching(`[a-z]{1,8}`).Draw(t, "name")
	category := rapid.SampledFrom(drawnCategories).Draw(t, "category")
	quantity := rapid.IntRange(0, 100).Draw(t, "quantity")

	before := len(m.store.byID)
	item, err := m.store.AddOrUpdateItem(name, category, quantity)
	if category == "Garden" {
		require.ErrorIs(t, err, ErrInvalidCategory)
		assert.Len(t, m.store.byID, before)
		return
	}
	require.NoError(t, err)
	assert.NotContains(t, m.model, item.ID)
	assert.NotContains(t, m.removed, item.ID)
	m.model[item.ID] = item
}

func (m *storeMachine) remove(t *rapid.T) {
	if len(m.model) == 0 {
		_, err := m.store.RemoveItemByID("ID0")
		require.ErrorIs(t, err, ErrItemNotFound)
		return
	}
	ids := make([]string, 0, len(m.model))
	for id := range m.model {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	id := rapid.SampledFrom(ids).Draw(t, "id")

	item, err := m.store.RemoveItemByID(id)
	require.NoError(t, err)
	assert.Equal(t, m.model[id], item)
	delete(m.model, id)
	m.removed[id] = struct{}{}

	_, ok := m.store.GetItemByID(id)
	assert.False(t, ok)
	for _, other := range m.store.GetItemsByCategory(item.Category) {
		assert.NotEqual(t, id, other.ID)
	}
}

func (m *storeMachine) topK(t *rapid.T) {
	k := rapid.IntRange(-5, 30).Draw(t, "k")
	got := m.store.GetTopKItems(k)

	want := k
	if want < 0 {
		want = 0
	}
	if want > len(m.model) {
		want = len(m.model)
	}
	require.Len(t, got, want)
	assertDescending(t, got)
}

func (m *storeMachine) selfMerge(t *rapid.T) {
	res := m.store.MergeInventories(m.store)
	assert.Equal(t, MergeResult{Updated: len(m.model)}, res)
}

func (m *storeMachine) check(t *rapid.T) {
	require.Len(t, m.store.byID, len(m.model))
	for id, want := range m.model {
		got, ok := m.store.GetItemByID(id)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	var ranked int
	for _, category := range propertyCategories {
		items := m.store.GetItemsByCategory(category)
		assertDescending(t, items)
		for _, item := range items {
			assert.Equal(t, category, item.Category)
			assert.Contains(t, m.model, item.ID)
		}
		ranked += len(items)
	}
	assert.Equal(t, len(m.model), ranked)
}

func assertDescending(t require.TestingT, items []Item) {
	for i := 1; i < len(items); i++ {
		assert.GreaterOrEqual(t, items[i-1].Quantity, items[i].Quantity)
	}
}

func TestStore_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := &storeMachine{
			store:   NewStore(Config{RestockThreshold: 10, Categories: propertyCategories}),
			model:   make(map[string]Item),
			removed: make(map[string]struct{}),
		}
		t.Repeat(map[string]func(*rapid.T){
			"add":       m.add,
			"remove":    m.remove,
			"topK":      m.topK,
			"selfMerge": m.selfMerge,
			"":          m.check,
		})
	})
}

func TestGetTopKItems_MatchesFullSort(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store := NewStore(Config{RestockThreshold: 10, Categories: []string{"Books"}})
		quantities := rapid.SliceOfN(rapid.IntRange(0, 20), 0, 60).Draw(t, "quantities")
		for _, q := range quantities {
			_, err := store.AddOrUpdateItem("x", "Books", q)
			require.NoError(t, err)
		}
		k := rapid.IntRange(1, len(quantities)+2).Draw(t, "k")

		all := store.GetTopKItems(len(quantities))
		got := store.GetTopKItems(k)
		if k > len(all) {
			k = len(all)
		}
		assert.Equal(t, all[:k], got)
	})
}
