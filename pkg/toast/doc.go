// Package toast defines the core notification model shared by the rest of
// the toolkit: the Notification struct, the closed Variant set, and the
// screen Position buckets.
//
// The model follows a "never fail" contract: malformed input is coerced to
// safe defaults instead of returning errors. An unknown variant degrades to
// info, a negative duration falls back to the five second default, and an
// empty message is replaced with a placeholder so a toast is never rendered
// without body text. Callers that need strictness can check validity with
// Variant.Valid and Position.Valid before enqueueing.
//
// # Usage
//
//	n := toast.New("Changes saved", toast.VariantSuccess,
//	    toast.WithTitle("Settings"),
//	    toast.WithPosition(toast.PositionBottomRight),
//	    toast.WithDuration(3*time.Second),
//	)
//
// A Duration of zero marks the toast as persistent: it stays on screen until
// it is dismissed manually or the whole stack is cleared.
package toast
