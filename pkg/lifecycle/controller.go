package lifecycle

import (
	"log/slog"
	"sync"
	"time"

	"github.com/pazarplus/toastkit/pkg/toast"
)

const (
	// DefaultExitDuration is the fixed window the exit transition plays
	// before the dismissal callback fires.
	DefaultExitDuration = 300 * time.Millisecond

	// DefaultProgressInterval is how often the progress observer is
	// re-sampled while the countdown runs.
	DefaultProgressInterval = 100 * time.Millisecond
)

// Controller drives one toast through its phases and owns all of its timer
// handles. All methods are safe for concurrent use; observers are invoked
// without the controller lock held.
type Controller struct {
	mu sync.Mutex

	notif toast.Notification
	phase Phase

	enterDelay       time.Duration
	exitDuration     time.Duration
	progressInterval time.Duration
	logger           *slog.Logger

	onDismiss  func(CloseReason)
	onPhase    func(Phase)
	onProgress func(float64)

	started bool
	closing bool
	paused  bool
	stopped bool

	// frozen is the progress value the countdown decays from in the
	// current segment: 100 on first start, the pause-time value after a
	// resume.
	frozen       float64
	segmentStart time.Time

	enterTimer   *time.Timer
	expiryTimer  *time.Timer
	exitTimer    *time.Timer
	progressStop chan struct{}
}

// Option configures a Controller.
type Option func(*Controller)

// WithEnterDelay defers the Entering → Visible hop, typically by the stack
// stagger for the toast's position in its bucket.
func WithEnterDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.enterDelay = d
		}
	}
}

// WithExitDuration overrides the exit transition window.
func WithExitDuration(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.exitDuration = d
		}
	}
}

// WithProgressInterval overrides the progress sampling interval.
func WithProgressInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.progressInterval = d
		}
	}
}

// WithLogger sets the logger used for recovered callback panics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// OnDismiss registers the dismissal callback. It fires exactly once, at the
// end of the exit window, regardless of how many close triggers race.
func OnDismiss(fn func(CloseReason)) Option {
	return func(c *Controller) { c.onDismiss = fn }
}

// OnPhase registers an observer for phase transitions.
func OnPhase(fn func(Phase)) Option {
	return func(c *Controller) { c.onPhase = fn }
}

// OnProgress registers an observer sampled on the progress interval while
// the countdown runs. Values are in [0,100], non-increasing.
func OnProgress(fn func(float64)) Option {
	return func(c *Controller) { c.onProgress = fn }
}

// New creates a controller in the Entering phase. The notification is
// normalized, so malformed input coerces instead of failing.
func New(n toast.Notification, opts ...Option) *Controller {
	n.Normalize()
	c := &Controller{
		notif:            n,
		phase:            PhaseEntering,
		exitDuration:     DefaultExitDuration,
		progressInterval: DefaultProgressInterval,
		logger:           slog.Default(),
		frozen:           100,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start schedules the entrance hop. Calling Start more than once is a
// no-op.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started || c.stopped || c.closing {
		return
	}
	c.started = true
	// Even with zero delay the hop stays asynchronous, mirroring the
	// next-frame deferral that lets a renderer register the
	// pre-transition state.
	c.enterTimer = time.AfterFunc(c.enterDelay, c.becomeVisible)
}

func (c *Controller) becomeVisible() {
	c.mu.Lock()
	if c.stopped || c.closing || c.phase != PhaseEntering {
		c.mu.Unlock()
		return
	}
	c.phase = PhaseVisible
	if c.notif.Duration > 0 {
		c.frozen = 100
		c.segmentStart = time.Now()
		c.expiryTimer = time.AfterFunc(c.notif.Duration, c.expire)
		c.startProgressLocked()
	}
	observer := c.onPhase
	c.mu.Unlock()

	if observer != nil {
		observer(PhaseVisible)
	}
}

func (c *Controller) expire() {
	c.close(ReasonExpired)
}

// Close moves the toast into the Leaving phase. The first caller wins;
// re-entrant closes while already leaving are absorbed.
func (c *Controller) Close(reason CloseReason) {
	c.close(reason)
}

func (c *Controller) close(reason CloseReason) {
	c.mu.Lock()
	if c.stopped || c.closing {
		c.mu.Unlock()
		return
	}
	c.closing = true
	c.frozen = c.progressLocked(time.Now())
	c.cancelCountdownLocked()
	c.phase = PhaseLeaving
	c.exitTimer = time.AfterFunc(c.exitDuration, func() { c.finish(reason) })
	observer := c.onPhase
	c.mu.Unlock()

	if observer != nil {
		observer(PhaseLeaving)
	}
}

func (c *Controller) finish(reason CloseReason) {
	c.mu.Lock()
	if c.stopped || c.phase != PhaseLeaving {
		c.mu.Unlock()
		return
	}
	c.phase = PhaseRemoved
	observer := c.onPhase
	dismiss := c.onDismiss
	logger := c.logger
	c.mu.Unlock()

	if observer != nil {
		observer(PhaseRemoved)
	}
	if dismiss != nil {
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("toast dismissal callback panicked",
						slog.String("toast_id", c.notif.ID),
						slog.Any("panic", rec),
					)
				}
			}()
			dismiss(reason)
		}()
	}
}

// Pause freezes the countdown and progress at their current values, for
// example on pointer-enter or focus. Persistent and already-leaving toasts
// ignore it.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseVisible || c.paused || c.closing || c.notif.Duration == 0 {
		return
	}
	c.frozen = c.progressLocked(time.Now())
	c.paused = true
	c.cancelCountdownLocked()
}

// Resume restarts the countdown for the remaining time implied by the
// frozen progress, so the decay rate matches the remaining window rather
// than resetting to the full-duration rate. If the progress already reached
// zero no restart occurs.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.paused || c.closing || c.stopped {
		return
	}
	c.paused = false
	if c.notif.Duration == 0 || c.frozen <= 0 {
		return
	}
	remaining := time.Duration(c.frozen / 100 * float64(c.notif.Duration))
	c.segmentStart = time.Now()
	c.expiryTimer = time.AfterFunc(remaining, c.expire)
	c.startProgressLocked()
}

// Stop cancels every outstanding timer handle and marks the toast removed
// without playing the exit window or firing callbacks. This is the unmount
// path: after Stop nothing fires on stale state.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return
	}
	c.stopped = true
	c.cancelCountdownLocked()
	if c.exitTimer != nil {
		c.exitTimer.Stop()
		c.exitTimer = nil
	}
	c.phase = PhaseRemoved
}

// Progress returns the current countdown progress in [0,100]. Persistent
// toasts always report 100.
func (c *Controller) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progressLocked(time.Now())
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Paused reports whether the countdown is currently frozen.
func (c *Controller) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Notification returns the normalized notification the controller drives.
func (c *Controller) Notification() toast.Notification {
	return c.notif
}

// progressLocked derives progress from wall-clock elapsed time in the
// current segment. Callers must hold c.mu.
func (c *Controller) progressLocked(now time.Time) float64 {
	if c.notif.Duration == 0 {
		return 100
	}
	if c.phase == PhaseEntering || c.paused || c.phase.Leaving() {
		return c.frozen
	}
	elapsed := now.Sub(c.segmentStart)
	p := c.frozen - float64(elapsed)/float64(c.notif.Duration)*100
	if p < 0 {
		return 0
	}
	return p
}

// cancelCountdownLocked stops the entrance and expiry timers and the
// progress notifier. Callers must hold c.mu.
func (c *Controller) cancelCountdownLocked() {
	if c.enterTimer != nil {
		c.enterTimer.Stop()
		c.enterTimer = nil
	}
	if c.expiryTimer != nil {
		c.expiryTimer.Stop()
		c.expiryTimer = nil
	}
	if c.progressStop != nil {
		close(c.progressStop)
		c.progressStop = nil
	}
}

// startProgressLocked launches the progress notifier for the current
// segment. Callers must hold c.mu.
func (c *Controller) startProgressLocked() {
	if !c.notif.ShowProgress || c.onProgress == nil {
		return
	}
	stop := make(chan struct{})
	c.progressStop = stop
	go c.notifyProgress(stop)
}

func (c *Controller) notifyProgress(stop chan struct{}) {
	ticker := time.NewTicker(c.progressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			p := c.progressLocked(time.Now())
			observer := c.onProgress
			c.mu.Unlock()

			observer(p)
			if p <= 0 {
				return
			}
		}
	}
}
