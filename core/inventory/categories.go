package inventory

import "sort"

// Categories is an immutable set of allowed category labels.
type Categories struct {
	set    map[string]struct{}
	sorted []string
}

// NewCategories builds a category set. Duplicate labels collapse.
func NewCategories(labels []string) Categories {
	c := Categories{set: make(map[string]struct{}, len(labels))}
	for _, label := range labels {
		if _, ok := c.set[label]; ok {
			continue
		}
		c.set[label] = struct{}{}
		c.sorted = append(c.sorted, label)
	}
	sort.Strings(c.sorted)
	return c
}

// Contains reports whether label is an allowed category.
func (c Categories) Contains(label string) bool {
	_, ok := c.set[label]
	return ok
}

// List returns the allowed labels in sorted order.
func (c Categories) List() []string {
	out := make([]string, len(c.sorted))
	copy(out, c.sorted)
	return out
}

// Len returns the number of allowed labels.
func (c Categories) Len() int {
	return len(c.sorted)
}
