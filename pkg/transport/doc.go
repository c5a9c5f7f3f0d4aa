// Package transport exposes the toast engine over HTTP: a small JSON API
// for enqueueing and dismissing toasts, and a DataStar SSE stream that
// live-patches the toast regions in the page as the stack changes.
//
// # Endpoints
//
//	POST   /toasts             enqueue a toast, returns its ID
//	DELETE /toasts             clear every toast
//	DELETE /toasts/{id}        dismiss one toast (?reason=escape for keyboard)
//	POST   /toasts/{id}/pause  freeze the countdown (pointer/focus enter)
//	POST   /toasts/{id}/resume restart the countdown (pointer/focus leave)
//	GET    /toasts/stream      SSE stream patching the region elements
//
// JSON responses use the {success, data, message} envelope the surrounding
// application expects. The SSE stream renders one region element per
// position bucket; DataStar morphs them by element ID, so the client only
// needs the bare region containers in its initial markup.
package transport
