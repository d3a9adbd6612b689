// Package console implements the interactive, menu-driven front end of the
// inventory tracker.
//
// A Session reads one line at a time, maps menu choices onto store
// operations and prints the results. Parsing raw text into typed arguments
// happens here; the store only ever sees well-typed values.
//
// # Menu
//
//   - 1: add an item (prompts for name, category, quantity)
//   - 2: remove an item by ID
//   - 3: show an item by ID
//   - 4: list a category, highest quantity first
//   - 5: merge another inventory ("self" or a new one entered at the prompt)
//   - 6: top K items across all categories
//   - 7: display the whole inventory
//   - 8: exit
//   - 9: show metrics
//   - 0: run the restock check for one item
package console
