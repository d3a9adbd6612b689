// Package metrics instruments an inventory store with Prometheus collectors.
//
// The Recorder implements inventory.Observer and counts adds, removals,
// restock notifications and merges. A StoreCollector reads per-category item
// counts and total quantities straight from the store at gather time.
//
// Metrics live in a private registry and are not exposed over the network;
// the console reads them back with Snapshot.
package metrics
