package lifecycle

// CloseReason records which trigger moved a toast into the Leaving phase.
type CloseReason uint8

const (
	// ReasonExpired means the countdown reached zero.
	ReasonExpired CloseReason = iota
	// ReasonManual means the user activated the close control.
	ReasonManual
	// ReasonEscape means the user pressed Escape with the toast focused.
	ReasonEscape
	// ReasonForced means an external clear-all or container shutdown.
	ReasonForced
)

// String implements fmt.Stringer.
func (r CloseReason) String() string {
	switch r {
	case ReasonExpired:
		return "expired"
	case ReasonManual:
		return "manual"
	case ReasonEscape:
		return "escape"
	case ReasonForced:
		return "forced"
	default:
		return "unknown"
	}
}
