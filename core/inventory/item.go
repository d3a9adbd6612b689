package inventory

import "fmt"

// Item is a single inventory record.
// Identity is defined solely by ID; two items with equal IDs are the same item.
type Item struct {
	// ID is assigned by the store and never changes.
	ID string `json:"id"`
	// Name is the display name of the item.
	Name string `json:"name"`
	// Category is one of the store's allowed category labels.
	Category string `json:"category"`
	// Quantity is the number of units on hand.
	Quantity int `json:"quantity"`
}

// String renders the item the way the console prints it.
func (i Item) String() string {
	return fmt.Sprintf("InventoryItem{id='%s', name='%s', category='%s', quantity=%d}",
		i.ID, i.Name, i.Category, i.Quantity)
}

// record is the store-owned form of an Item. The seq field is the numeric
// part of the identifier and breaks quantity ties in creation order.
type record struct {
	Item
	seq uint64
}

// snapshot returns a copy that callers may keep or modify freely.
func (r *record) snapshot() Item {
	return r.Item
}

// before reports whether r ranks ahead of o: higher quantity first, then
// older identifier first.
func (r *record) before(o *record) bool {
	if r.Quantity != o.Quantity {
		return r.Quantity > o.Quantity
	}
	return r.seq < o.seq
}
