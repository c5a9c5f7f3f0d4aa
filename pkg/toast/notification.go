package toast

import "time"

const (
	// DefaultDuration is applied when a notification carries a negative
	// or otherwise unusable duration.
	DefaultDuration = 5 * time.Second

	// DefaultMessage replaces an empty message body. A toast is never
	// rendered without text.
	DefaultMessage = "Notification"
)

// Notification is one alert surfaced to the user.
type Notification struct {
	// ID is assigned by the stack manager at enqueue time and is the key
	// used for dismissal.
	ID string `json:"id"`

	// Title is an optional short heading.
	Title string `json:"title,omitempty"`

	// Message is the body text. Empty messages are coerced to
	// DefaultMessage by Normalize.
	Message string `json:"message"`

	Variant  Variant  `json:"variant"`
	Position Position `json:"position"`

	// Duration is the auto-dismiss countdown. Zero means the toast
	// persists until manually dismissed. Negative values are coerced to
	// DefaultDuration by Normalize.
	Duration time.Duration `json:"duration"`

	// ShowProgress enables the countdown bar.
	ShowProgress bool `json:"show_progress"`

	// StackIndex is the zero-based order among visible toasts sharing a
	// position bucket. It drives entrance stagger only, not identity.
	StackIndex int `json:"stack_index"`
}

// Option configures a Notification created through New.
type Option func(*Notification)

// WithTitle sets the optional heading.
func WithTitle(title string) Option {
	return func(n *Notification) { n.Title = title }
}

// WithDuration sets the auto-dismiss countdown.
func WithDuration(d time.Duration) Option {
	return func(n *Notification) { n.Duration = d }
}

// Persistent disables the auto-dismiss countdown entirely.
func Persistent() Option {
	return func(n *Notification) { n.Duration = 0 }
}

// WithPosition sets the screen bucket the toast stacks into.
func WithPosition(p Position) Option {
	return func(n *Notification) { n.Position = p }
}

// WithProgress toggles the countdown bar.
func WithProgress(show bool) Option {
	return func(n *Notification) { n.ShowProgress = show }
}

// New builds a normalized notification. This is the Go shape of the
// application-facing showAlert(message, variant, options) call.
func New(message string, variant Variant, opts ...Option) Notification {
	n := Notification{
		Message:      message,
		Variant:      variant,
		Position:     PositionTopRight,
		Duration:     DefaultDuration,
		ShowProgress: true,
	}
	for _, opt := range opts {
		opt(&n)
	}
	n.Normalize()
	return n
}

// Normalize coerces invalid fields to safe defaults. It never fails:
// unknown variants become info, unknown positions become top-right,
// negative durations fall back to DefaultDuration and an empty message is
// replaced with DefaultMessage.
func (n *Notification) Normalize() {
	if n.Message == "" {
		n.Message = DefaultMessage
	}
	if n.Duration < 0 {
		n.Duration = DefaultDuration
	}
	n.Variant = ParseVariant(string(n.Variant))
	n.Position = ParsePosition(string(n.Position))
	if n.StackIndex < 0 {
		n.StackIndex = 0
	}
}

// Persistent reports whether the toast has no auto-dismiss countdown.
func (n Notification) Persistent() bool {
	return n.Duration == 0
}
