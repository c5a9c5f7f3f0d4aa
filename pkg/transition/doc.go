// Package transition maps a toast's screen position onto directional
// entrance/exit animation tokens and computes the entrance stagger for
// stacked toasts. All functions are pure.
package transition
