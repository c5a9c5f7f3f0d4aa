package stack

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pazarplus/toastkit/pkg/broadcast"
	"github.com/pazarplus/toastkit/pkg/lifecycle"
	"github.com/pazarplus/toastkit/pkg/toast"
	"github.com/pazarplus/toastkit/pkg/transition"
)

// DefaultMaxVisible is the per-bucket cap applied when no option overrides
// it.
const DefaultMaxVisible = 5

// Item is a render-ready snapshot of one visible toast.
type Item struct {
	Notification toast.Notification
	Phase        lifecycle.Phase
	Progress     float64
	Paused       bool
}

type entry struct {
	id       string
	position toast.Position
	notif    toast.Notification // stack index kept current by reindex
	ctrl     *lifecycle.Controller
}

// Manager owns the visible toast set. All methods are safe for concurrent
// use.
type Manager struct {
	mu      sync.Mutex
	visible map[toast.Position][]*entry
	pending map[toast.Position][]toast.Notification
	byID    map[string]*entry
	closed  bool

	hub    *broadcast.Hub[Event]
	logger *slog.Logger

	maxVisible       int
	eventBuffer      int
	defaultDuration  time.Duration
	exitDuration     time.Duration
	progressInterval time.Duration
	staggerStep      time.Duration
	progressEvents   bool
	newID            func() string
}

// New creates a stack manager.
func New(opts ...Option) *Manager {
	m := &Manager{
		visible:          make(map[toast.Position][]*entry),
		pending:          make(map[toast.Position][]toast.Notification),
		byID:             make(map[string]*entry),
		logger:           slog.Default(),
		maxVisible:       DefaultMaxVisible,
		eventBuffer:      64,
		defaultDuration:  toast.DefaultDuration,
		exitDuration:     lifecycle.DefaultExitDuration,
		progressInterval: lifecycle.DefaultProgressInterval,
		staggerStep:      transition.StaggerStep,
		progressEvents:   true,
		newID:            uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.hub = broadcast.NewHub[Event](m.eventBuffer)
	return m
}

// Enqueue normalizes the notification, assigns it an ID and either shows
// it immediately or parks it in the pending queue when its bucket is full.
// The returned ID is the dismissal key.
func (m *Manager) Enqueue(ctx context.Context, n toast.Notification) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if n.Duration < 0 {
		n.Duration = m.defaultDuration
	}
	n.Normalize()
	if n.ID == "" {
		n.ID = m.newID()
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return "", ErrClosed
	}

	if len(m.visible[n.Position]) >= m.maxVisible {
		m.pending[n.Position] = append(m.pending[n.Position], n)
		m.mu.Unlock()

		m.hub.Publish(Event{Kind: EventQueued, Toast: n})
		m.logger.Debug("toast queued: bucket full",
			slog.String("toast_id", n.ID),
			slog.String("position", n.Position.String()),
		)
		return n.ID, nil
	}

	e := m.admitLocked(n)
	shown := e.notif
	m.mu.Unlock()

	e.ctrl.Start()
	m.hub.Publish(Event{Kind: EventShown, Toast: shown})
	return n.ID, nil
}

// admitLocked wires a lifecycle controller for n and appends it to its
// bucket. Callers must hold m.mu and must Start the returned entry's
// controller after unlocking.
func (m *Manager) admitLocked(n toast.Notification) *entry {
	n.StackIndex = len(m.visible[n.Position])

	e := &entry{id: n.ID, position: n.Position, notif: n}
	opts := []lifecycle.Option{
		lifecycle.WithEnterDelay(transition.StaggerBy(m.staggerStep, n.StackIndex)),
		lifecycle.WithExitDuration(m.exitDuration),
		lifecycle.WithProgressInterval(m.progressInterval),
		lifecycle.WithLogger(m.logger),
		lifecycle.OnDismiss(func(reason lifecycle.CloseReason) {
			m.remove(e.id, reason)
		}),
		lifecycle.OnPhase(func(p lifecycle.Phase) {
			if p == lifecycle.PhaseLeaving {
				m.publishLeaving(e)
			}
		}),
	}
	if m.progressEvents {
		opts = append(opts, lifecycle.OnProgress(func(p float64) {
			m.publishProgress(e, p)
		}))
	}
	e.ctrl = lifecycle.New(n, opts...)

	m.visible[n.Position] = append(m.visible[n.Position], e)
	m.byID[n.ID] = e
	return e
}

// Dismiss closes a toast as if the user activated its close control.
func (m *Manager) Dismiss(id string) error {
	return m.DismissWithReason(id, lifecycle.ReasonManual)
}

// DismissWithReason closes a toast with an explicit trigger, e.g.
// lifecycle.ReasonEscape for keyboard dismissal. Pending toasts are dropped
// without an exit transition.
func (m *Manager) DismissWithReason(id string, reason lifecycle.CloseReason) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}

	if e, ok := m.byID[id]; ok {
		m.mu.Unlock()
		e.ctrl.Close(reason)
		return nil
	}

	// Not visible: try the pending queues.
	for pos, queue := range m.pending {
		for i, n := range queue {
			if n.ID != id {
				continue
			}
			m.pending[pos] = append(queue[:i:i], queue[i+1:]...)
			m.mu.Unlock()

			m.hub.Publish(Event{Kind: EventDismissed, Toast: n, Reason: reason})
			return nil
		}
	}
	m.mu.Unlock()
	return ErrNotFound
}

// DismissAll force-closes every visible toast and drops the pending
// queues. Visible toasts still play their exit transition.
func (m *Manager) DismissAll() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	var ctrls []*lifecycle.Controller
	for _, bucket := range m.visible {
		for _, e := range bucket {
			ctrls = append(ctrls, e.ctrl)
		}
	}
	clear(m.pending)
	m.mu.Unlock()

	for _, c := range ctrls {
		c.Close(lifecycle.ReasonForced)
	}
	m.hub.Publish(Event{Kind: EventCleared})
}

// remove drops a dismissed toast from the visible set, reindexes its
// bucket and promotes the oldest pending toast if one is waiting. Invoked
// by each controller's dismissal callback, so it runs at most once per
// toast.
func (m *Manager) remove(id string, reason lifecycle.CloseReason) {
	m.mu.Lock()
	e, ok := m.byID[id]
	if !ok {
		m.mu.Unlock()
		return
	}
	delete(m.byID, id)

	bucket := m.visible[e.position]
	for i, cur := range bucket {
		if cur.id == id {
			bucket = append(bucket[:i:i], bucket[i+1:]...)
			break
		}
	}
	m.visible[e.position] = bucket
	m.reindexLocked(e.position)
	dismissed := e.notif

	var (
		promoted      *entry
		promotedNotif toast.Notification
	)
	if queue := m.pending[e.position]; len(queue) > 0 && !m.closed {
		next := queue[0]
		m.pending[e.position] = queue[1:]
		promoted = m.admitLocked(next)
		promotedNotif = promoted.notif
	}
	m.mu.Unlock()

	m.hub.Publish(Event{Kind: EventDismissed, Toast: dismissed, Reason: reason})
	if promoted != nil {
		promoted.ctrl.Start()
		m.hub.Publish(Event{Kind: EventShown, Toast: promotedNotif})
	}
}

// reindexLocked recomputes dense stack indexes for a bucket. Callers must
// hold m.mu.
func (m *Manager) reindexLocked(pos toast.Position) {
	for i, e := range m.visible[pos] {
		e.notif.StackIndex = i
	}
}

// Visible returns snapshots of the toasts in one bucket, in stack order.
func (m *Manager) Visible(pos toast.Position) []toast.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	bucket := m.visible[pos]
	out := make([]toast.Notification, len(bucket))
	for i, e := range bucket {
		out[i] = e.notif
	}
	return out
}

// Snapshot returns render-ready items for one bucket, including each
// toast's phase and live progress. Notification values are copied under the
// manager lock; reindexing mutates the live entries, so they must never be
// read unlocked.
func (m *Manager) Snapshot(pos toast.Position) []Item {
	m.mu.Lock()
	bucket := m.visible[pos]
	out := make([]Item, len(bucket))
	ctrls := make([]*lifecycle.Controller, len(bucket))
	for i, e := range bucket {
		out[i] = Item{Notification: e.notif}
		ctrls[i] = e.ctrl
	}
	m.mu.Unlock()

	for i, c := range ctrls {
		out[i].Phase = c.Phase()
		out[i].Progress = c.Progress()
		out[i].Paused = c.Paused()
	}
	return out
}

// Pause freezes a visible toast's countdown.
func (m *Manager) Pause(id string) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	e.ctrl.Pause()
	return nil
}

// Resume restarts a paused toast's countdown for its remaining time.
func (m *Manager) Resume(id string) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	e.ctrl.Resume()
	return nil
}

func (m *Manager) lookup(id string) (*entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}
	e, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

// Count returns the number of currently visible toasts across all buckets.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, bucket := range m.visible {
		n += len(bucket)
	}
	return n
}

// Subscribe attaches a listener for stack change events. The subscription
// ends with ctx.
func (m *Manager) Subscribe(ctx context.Context) *broadcast.Subscription[Event] {
	return m.hub.Subscribe(ctx)
}

// Close tears the manager down: every controller's timers are cancelled
// without exit transitions or dismissal callbacks, and the event hub shuts
// down. Idempotent.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	var ctrls []*lifecycle.Controller
	for _, bucket := range m.visible {
		for _, e := range bucket {
			ctrls = append(ctrls, e.ctrl)
		}
	}
	clear(m.visible)
	clear(m.pending)
	clear(m.byID)
	m.mu.Unlock()

	for _, c := range ctrls {
		c.Stop()
	}
	m.hub.Close()
}

// publishLeaving publishes the exit-transition event with the entry's
// current stack index.
func (m *Manager) publishLeaving(e *entry) {
	m.mu.Lock()
	snap := e.notif
	m.mu.Unlock()

	m.hub.Publish(Event{Kind: EventLeaving, Toast: snap})
}

func (m *Manager) publishProgress(e *entry, p float64) {
	m.mu.Lock()
	snap := e.notif
	m.mu.Unlock()

	m.hub.Publish(Event{Kind: EventProgress, Toast: snap, Progress: p})
}
