package inventory

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Notification is the advisory emitted when an item falls below the
// restock threshold.
type Notification struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
	Threshold int    `json:"threshold"`
}

func (n Notification) String() string {
	return fmt.Sprintf("Item %s (ID: %s) needs restocking!", n.Name, n.ItemID)
}

// Notifier receives restock notifications. The store calls it without
// holding its lock, so a notifier may look items up in the store.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(n Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

// LogNotifier writes notifications to a zap logger at warn level.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier that logs through l.
func NewLogNotifier(l *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: l}
}

// Notify logs the notification.
func (l *LogNotifier) Notify(n Notification) {
	l.logger.Warn("Restock notification",
		zap.String("item_id", n.ItemID),
		zap.String("name", n.Name),
		zap.String("category", n.Category),
		zap.Int("quantity", n.Quantity),
		zap.Int("threshold", n.Threshold),
	)
}

// Recorder keeps every notification it receives, in order.
type Recorder struct {
	mu            sync.Mutex
	notifications []Notification
}

// Notify appends n.
func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

// Notifications returns a copy of everything recorded so far.
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

// Drain returns everything recorded so far and clears the recorder.
func (r *Recorder) Drain() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.notifications
	r.notifications = nil
	return out
}

// multiNotifier fans a notification out to several notifiers.
type multiNotifier []Notifier

func (m multiNotifier) Notify(n Notification) {
	for _, notifier := range m {
		notifier.Notify(n)
	}
}
