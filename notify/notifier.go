package notify

import (
	"log"
	"time"
)

// Notifier is the alerting collaborator: it fires a visible alert when a
// reminder's instant arrives. Implementations must be safe to call even
// when the environment can't actually deliver anything.
type Notifier interface {
	// Schedule registers an alert for the reminder and returns an opaque
	// notification handle. Scheduling the same reminder id again replaces
	// the pending alert.
	Schedule(id, text string, at time.Time) (string, error)
	// Cancel drops any pending alert for the reminder id.
	Cancel(id string)
	// CancelAll drops every pending alert.
	CancelAll()
}

// Noop is used when the runtime has no delivery capability, the way the
// app skips notifications on non-physical devices. Everything is logged
// and ignored.
type Noop struct{}

func (Noop) Schedule(id, text string, at time.Time) (string, error) {
	log.Printf("notify: no delivery capability, skipping alert for reminder %s at %v", id, at)
	return "", nil
}

func (Noop) Cancel(id string) {
	log.Printf("notify: no delivery capability, nothing to cancel for reminder %s", id)
}

func (Noop) CancelAll() {}
