// Package inventory implements the in-memory inventory store.
//
// A Store owns every Item it holds and keeps two synchronized views of them:
//   - byID: identifier to record, for constant time lookup and removal.
//   - byCategory: category label to a ranking ordered by quantity descending,
//     for "best N in category" retrieval.
//
// Both views are only ever changed together by whole-operation methods
// (AddOrUpdateItem, RemoveItemByID, MergeInventories), so callers can never
// observe one without the other.
//
// # Identifiers
//
// Identifiers are minted by a per-store counter as "ID1", "ID2", ... and are
// never reused, even after the item they named has been removed.
//
// # Restocking
//
// After every successful add the store checks the new item against the
// configured restock threshold and emits a Notification through its Notifier
// when the quantity is below it. CheckRestocking can also be called directly.
//
// # Merging
//
// MergeInventories keeps the higher quantity when both stores hold the same
// identifier and re-adds everything else under fresh identifiers. Two
// independently built stores therefore almost never share identifiers; only
// merging a store into itself (or into a copy) takes the "same identifier"
// branch.
//
// # Concurrency
//
// A Store is safe for concurrent use. Mutations are serialized with a write
// lock; lookups, category queries, top-K and display share a read lock.
//
// # Usage
//
//	store := inventory.NewStore(inventory.Config{
//	    RestockThreshold: 10,
//	    Categories:       []string{"Electronics", "Books"},
//	}, inventory.WithLogger(log))
//
//	item, err := store.AddOrUpdateItem("Phone", "Electronics", 5)
//	top := store.GetTopKItems(3)
package inventory
