// Package stack is the container side of the toast engine: it assigns IDs
// and stack indexes, owns one lifecycle controller per visible toast, caps
// how many toasts a position bucket shows at once, and fans change events
// out to renderers.
//
// # Architecture
//
//   - Visible set: one ordered slice per position bucket. Stack indexes are
//     recomputed whenever the set changes so renderers always see a dense
//     zero-based order.
//   - Overflow: enqueueing into a full bucket parks the notification in a
//     FIFO pending queue; it is promoted (and only then gets a controller
//     and a stack index) when a slot frees up.
//   - Removal: each controller's dismissal callback removes its entry from
//     the visible set exactly once; the controller's leaving guard absorbs
//     racing close triggers before the callback is reached.
//
// # Usage
//
//	m := stack.New(stack.WithMaxVisible(3))
//	defer m.Close()
//
//	id, err := m.Enqueue(ctx, toast.New("Saved", toast.VariantSuccess))
//
//	sub := m.Subscribe(ctx)
//	for ev := range sub.C {
//	    // re-render the affected position bucket
//	}
package stack
