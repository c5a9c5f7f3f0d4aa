package stack

import (
	"github.com/pazarplus/toastkit/pkg/lifecycle"
	"github.com/pazarplus/toastkit/pkg/toast"
)

// EventKind classifies a stack change.
type EventKind string

const (
	// EventShown fires when a toast enters the visible set.
	EventShown EventKind = "shown"
	// EventQueued fires when a full bucket parks a toast in the pending
	// queue.
	EventQueued EventKind = "queued"
	// EventLeaving fires when a toast starts its exit transition.
	EventLeaving EventKind = "leaving"
	// EventDismissed fires when a toast has left the visible set.
	EventDismissed EventKind = "dismissed"
	// EventCleared fires once per DismissAll.
	EventCleared EventKind = "cleared"
	// EventProgress carries countdown progress samples.
	EventProgress EventKind = "progress"
)

// Event is one stack change delivered to subscribers.
type Event struct {
	Kind EventKind

	// Toast is a snapshot of the affected notification, including its
	// stack index at the time of the event. Zero for EventCleared.
	Toast toast.Notification

	// Reason is set for EventDismissed.
	Reason lifecycle.CloseReason

	// Progress is set for EventProgress, in [0,100].
	Progress float64
}
