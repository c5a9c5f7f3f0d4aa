// Package theme carries the visual and accessibility contract for toast
// variants: icon, color tokens and ARIA attributes per severity.
//
// Exactly four variants are defined. Lookups with an unknown variant degrade
// to the info style rather than failing, matching the coercion contract of
// the core model. Color overrides can be loaded from a YAML file so host
// applications can re-skin toasts without recompiling:
//
//	variants:
//	  success:
//	    background: "#15803d"
//	    icon: "#dcfce7"
//	    progress: "#86efac"
package theme
