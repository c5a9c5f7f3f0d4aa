package transition

import (
	"time"

	"github.com/pazarplus/toastkit/pkg/toast"
)

// Token is a directional animation class understood by the rendering layer.
type Token string

const (
	SlideInFromRight  Token = "slide-in-from-right"
	SlideInFromLeft   Token = "slide-in-from-left"
	SlideInFromTop    Token = "slide-in-from-top"
	SlideInFromBottom Token = "slide-in-from-bottom"

	SlideOutToRight  Token = "slide-out-to-right"
	SlideOutToLeft   Token = "slide-out-to-left"
	SlideOutToTop    Token = "slide-out-to-top"
	SlideOutToBottom Token = "slide-out-to-bottom"
)

// StaggerStep is the entrance delay added per stack position so that
// simultaneously enqueued toasts cascade instead of popping in unison.
const StaggerStep = 50 * time.Millisecond

// Enter returns the entrance token for a position. Horizontal placement
// wins over vertical; center buckets slide in from their edge. The fallback
// mirrors the default top-right bucket.
func Enter(p toast.Position) Token {
	switch {
	case p.Right():
		return SlideInFromRight
	case p.Left():
		return SlideInFromLeft
	case p.Top():
		return SlideInFromTop
	case p.Bottom():
		return SlideInFromBottom
	default:
		return SlideInFromRight
	}
}

// Exit mirrors Enter with outbound tokens.
func Exit(p toast.Position) Token {
	switch {
	case p.Right():
		return SlideOutToRight
	case p.Left():
		return SlideOutToLeft
	case p.Top():
		return SlideOutToTop
	case p.Bottom():
		return SlideOutToBottom
	default:
		return SlideOutToRight
	}
}

// Stagger returns the entrance delay for a stack position using the
// default step.
func Stagger(stackIndex int) time.Duration {
	return StaggerBy(StaggerStep, stackIndex)
}

// StaggerBy returns the entrance delay for a stack position with a custom
// step. Negative indexes are treated as zero.
func StaggerBy(step time.Duration, stackIndex int) time.Duration {
	if stackIndex <= 0 || step <= 0 {
		return 0
	}
	return time.Duration(stackIndex) * step
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return string(t)
}
