package inventory

// Observer is told about every state change the store makes.
// Calls may happen while the store holds its write lock, so implementations
// must not call back into the store.
type Observer interface {
	ItemAdded(item Item)
	ItemRemoved(item Item)
	RestockNotified(n Notification)
	Merged(result MergeResult)
}

type nopObserver struct{}

func (nopObserver) ItemAdded(Item)               {}
func (nopObserver) ItemRemoved(Item)             {}
func (nopObserver) RestockNotified(Notification) {}
func (nopObserver) Merged(MergeResult)           {}
