// Package broadcast provides a small in-memory fan-out hub used to push
// stack change events to any number of renderers (SSE streams, tests,
// metrics taps).
//
// Publishing never blocks: a subscriber whose buffer is full simply misses
// the message. That is the right trade-off for UI change events, where a
// renderer can always re-read the current stack snapshot instead of
// replaying history.
package broadcast
