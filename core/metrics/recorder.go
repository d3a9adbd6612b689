package metrics

import (
	"inventory-tracker/core/inventory"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder counts inventory events.
type Recorder struct {
	registry *prometheus.Registry

	added    *prometheus.CounterVec
	removed  *prometheus.CounterVec
	restocks *prometheus.CounterVec
	merges   prometheus.Counter
	merged   *prometheus.CounterVec
}

var _ inventory.Observer = (*Recorder)(nil)

// NewRecorder creates a recorder with its own registry.
func NewRecorder(cfg Config) *Recorder {
	ns := cfg.Namespace
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		added: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "items_added_total",
			Help:      "Items added to the store.",
		}, []string{"category"}),
		removed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "items_removed_total",
			Help:      "Items removed from the store.",
		}, []string{"category"}),
		restocks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "restock_notifications_total",
			Help:      "Restock notifications emitted.",
		}, []string{"category"}),
		merges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "merges_total",
			Help:      "Inventory merges performed.",
		}),
		merged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "merge_items_total",
			Help:      "Items reconciled by merges, by outcome.",
		}, []string{"outcome"}),
	}
	r.registry.MustRegister(r.added, r.removed, r.restocks, r.merges, r.merged)
	return r
}

// Registry returns the registry holding the recorder's collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Watch registers a collector reporting the live contents of store.
func (r *Recorder) Watch(store *inventory.Store, namespace string) error {
	return r.registry.Register(NewStoreCollector(store, namespace))
}

// ItemAdded counts an added item under its category.
func (r *Recorder) ItemAdded(item inventory.Item) {
	r.added.WithLabelValues(item.Category).Inc()
}

// ItemRemoved counts a removed item under its category.
func (r *Recorder) ItemRemoved(item inventory.Item) {
	r.removed.WithLabelValues(item.Category).Inc()
}

// RestockNotified counts a restock notification under its category.
func (r *Recorder) RestockNotified(n inventory.Notification) {
	r.restocks.WithLabelValues(n.Category).Inc()
}

// Merged counts a merge and the items it updated, added and rejected.
func (r *Recorder) Merged(res inventory.MergeResult) {
	r.merges.Inc()
	r.merged.WithLabelValues("updated").Add(float64(res.Updated))
	r.merged.WithLabelValues("added").Add(float64(res.Added))
	r.merged.WithLabelValues("rejected").Add(float64(res.Rejected))
}
