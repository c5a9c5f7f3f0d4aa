// Package lifecycle implements the per-toast state machine and countdown
// controller: Entering → Visible → Leaving → Removed.
//
// A Controller owns every timer handle for its toast. The entrance hop is
// deferred (the server-side analogue of waiting one animation frame so the
// pre-transition style is registered), the expiry timer runs only while the
// toast is visible and unpaused, and the exit window is a fixed duration
// after which the dismissal callback fires exactly once. Progress is never
// ticked forward by a counter; it is recomputed from wall-clock elapsed time
// so skipped sampling intervals cannot cause drift.
//
// # Close semantics
//
// Timer expiry, manual close, Escape and forced removal all funnel through
// Close. The first call wins; later calls are absorbed while the toast is
// leaving, which is what guarantees the at-most-once dismissal invariant.
// Stop tears the controller down without playing the exit window or firing
// callbacks — that is the unmount path, and it cancels every outstanding
// timer handle so nothing fires on stale state afterwards.
//
// # Usage
//
//	ctrl := lifecycle.New(n,
//	    lifecycle.WithEnterDelay(transition.Stagger(n.StackIndex)),
//	    lifecycle.OnDismiss(func(reason lifecycle.CloseReason) {
//	        stack.Remove(n.ID)
//	    }),
//	)
//	ctrl.Start()
package lifecycle
