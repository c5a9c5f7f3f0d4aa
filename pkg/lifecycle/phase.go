package lifecycle

// Phase is a toast's lifecycle state. Transitions only ever move forward:
// Entering → Visible → Leaving → Removed, with Entering → Leaving allowed
// for toasts force-closed before their entrance completed.
type Phase uint8

const (
	PhaseEntering Phase = iota
	PhaseVisible
	PhaseLeaving
	PhaseRemoved
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseVisible:
		return "visible"
	case PhaseLeaving:
		return "leaving"
	case PhaseRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase is final.
func (p Phase) Terminal() bool {
	return p == PhaseRemoved
}

// Leaving reports whether the toast is on its way out.
func (p Phase) Leaving() bool {
	return p == PhaseLeaving || p == PhaseRemoved
}
