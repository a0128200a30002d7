package cli

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// TerminalNotifier stands in for a platform notification service. Scheduled
// alerts are tracked in memory; the actual expiry message is printed by the
// timer controller's expiry callback.
type TerminalNotifier struct {
	mu        sync.Mutex
	scheduled map[string]time.Time
}

// NewTerminalNotifier creates an empty TerminalNotifier.
func NewTerminalNotifier() *TerminalNotifier {
	return &TerminalNotifier{scheduled: make(map[string]time.Time)}
}

// Schedule registers an alert and returns its handle.
func (n *TerminalNotifier) Schedule(userID int64, fireAt time.Time) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := uuid.New().String()
	n.scheduled[id] = fireAt
	return id, nil
}

// Cancel removes a previously scheduled alert. Unknown handles are ignored.
func (n *TerminalNotifier) Cancel(id string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.scheduled, id)
	return nil
}

// Pending returns the number of scheduled alerts. Used by tests.
func (n *TerminalNotifier) Pending() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.scheduled)
}
