package metrics

import (
	"inventory-tracker/core/inventory"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreCollector reports per-category gauges read from a store on every
// gather.
type StoreCollector struct {
	store    *inventory.Store
	items    *prometheus.Desc
	quantity *prometheus.Desc
}

var _ prometheus.Collector = (*StoreCollector)(nil)

// NewStoreCollector creates a collector for store.
func NewStoreCollector(store *inventory.Store, namespace string) *StoreCollector {
	return &StoreCollector{
		store: store,
		items: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "items"),
			"Items currently held, by category.",
			[]string{"category"}, nil,
		),
		quantity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "quantity"),
			"Units currently held, by category.",
			[]string{"category"}, nil,
		),
	}
}

// Describe sends the item and quantity gauge descriptors.
func (c *StoreCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.items
	ch <- c.quantity
}

// Collect emits a sample for every allowed category, zero when empty.
func (c *StoreCollector) Collect(ch chan<- prometheus.Metric) {
	counts := c.store.CategoryCounts()
	for _, label := range c.store.Categories().List() {
		count := counts[label]
		ch <- prometheus.MustNewConstMetric(c.items, prometheus.GaugeValue, float64(count.Items), label)
		ch <- prometheus.MustNewConstMetric(c.quantity, prometheus.GaugeValue, float64(count.Quantity), label)
	}
}
