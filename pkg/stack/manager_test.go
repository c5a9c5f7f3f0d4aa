package stack_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pazarplus/toastkit/pkg/config"
	"github.com/pazarplus/toastkit/pkg/lifecycle"
	"github.com/pazarplus/toastkit/pkg/stack"
	"github.com/pazarplus/toastkit/pkg/toast"
)

// seqIDs returns a deterministic ID generator: t1, t2, ...
func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("t%d", n)
	}
}

func newManager(t *testing.T, opts ...stack.Option) *stack.Manager {
	t.Helper()
	base := []stack.Option{
		stack.WithIDGenerator(seqIDs()),
		stack.WithExitDuration(5 * time.Millisecond),
		stack.WithStaggerStep(time.Millisecond),
		stack.WithProgressEvents(false),
	}
	m := stack.New(append(base, opts...)...)
	t.Cleanup(m.Close)
	return m
}

// persistent builds a toast that never expires, so stacking tests stay
// deterministic.
func persistent(pos toast.Position) toast.Notification {
	return toast.New("stock updated", toast.VariantInfo,
		toast.WithPosition(pos),
		toast.Persistent(),
	)
}

func waitCount(t *testing.T, m *stack.Manager, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return m.Count() == want
	}, 2*time.Second, 5*time.Millisecond, "visible count never reached %d", want)
}

func TestManagerEnqueue(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	ctx := context.Background()

	id1, err := m.Enqueue(ctx, persistent(toast.PositionTopRight))
	require.NoError(t, err)
	id2, err := m.Enqueue(ctx, persistent(toast.PositionTopRight))
	require.NoError(t, err)
	require.NotEqual(t, id1, id2)

	visible := m.Visible(toast.PositionTopRight)
	require.Len(t, visible, 2)
	assert.Equal(t, id1, visible[0].ID)
	assert.Equal(t, 0, visible[0].StackIndex)
	assert.Equal(t, id2, visible[1].ID)
	assert.Equal(t, 1, visible[1].StackIndex)

	// Buckets are independent.
	_, err = m.Enqueue(ctx, persistent(toast.PositionBottomLeft))
	require.NoError(t, err)
	assert.Len(t, m.Visible(toast.PositionBottomLeft), 1)
	assert.Equal(t, 3, m.Count())
}

func TestManagerEnqueueCancelledContext(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Enqueue(ctx, persistent(toast.PositionTopRight))
	require.ErrorIs(t, err, context.Canceled)
}

func TestManagerNegativeDurationUsesDefault(t *testing.T) {
	t.Parallel()

	m := newManager(t, stack.WithDefaultDuration(time.Hour))
	n := persistent(toast.PositionTopRight)
	n.Duration = -1

	id, err := m.Enqueue(context.Background(), n)
	require.NoError(t, err)

	visible := m.Visible(toast.PositionTopRight)
	require.Len(t, visible, 1)
	assert.Equal(t, id, visible[0].ID)
	assert.Equal(t, time.Hour, visible[0].Duration)
}

func TestManagerOverflowQueuesAndPromotes(t *testing.T) {
	t.Parallel()

	m := newManager(t, stack.WithMaxVisible(2))
	ctx := context.Background()

	sub := m.Subscribe(ctx)
	defer sub.Cancel()

	id1, err := m.Enqueue(ctx, persistent(toast.PositionTopRight))
	require.NoError(t, err)
	_, err = m.Enqueue(ctx, persistent(toast.PositionTopRight))
	require.NoError(t, err)
	id3, err := m.Enqueue(ctx, persistent(toast.PositionTopRight))
	require.NoError(t, err)

	// Third toast is parked, not shown.
	require.Len(t, m.Visible(toast.PositionTopRight), 2)
	assertEvent(t, sub.C, stack.EventShown)
	assertEvent(t, sub.C, stack.EventShown)
	queued := assertEvent(t, sub.C, stack.EventQueued)
	assert.Equal(t, id3, queued.Toast.ID)

	// Dismissing a visible toast promotes the oldest pending one.
	require.NoError(t, m.Dismiss(id1))
	require.Eventually(t, func() bool {
		visible := m.Visible(toast.PositionTopRight)
		return len(visible) == 2 && visible[1].ID == id3
	}, 2*time.Second, 5*time.Millisecond)

	// The surviving bucket is densely reindexed.
	visible := m.Visible(toast.PositionTopRight)
	assert.Equal(t, 0, visible[0].StackIndex)
	assert.Equal(t, 1, visible[1].StackIndex)
}

func TestManagerDismiss(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	ctx := context.Background()

	id, err := m.Enqueue(ctx, persistent(toast.PositionTopRight))
	require.NoError(t, err)

	sub := m.Subscribe(ctx)
	defer sub.Cancel()

	require.NoError(t, m.DismissWithReason(id, lifecycle.ReasonEscape))
	assertEvent(t, sub.C, stack.EventLeaving)
	ev := assertEvent(t, sub.C, stack.EventDismissed)
	assert.Equal(t, id, ev.Toast.ID)
	assert.Equal(t, lifecycle.ReasonEscape, ev.Reason)

	waitCount(t, m, 0)
	assert.ErrorIs(t, m.Dismiss(id), stack.ErrNotFound)
	assert.ErrorIs(t, m.Dismiss("nope"), stack.ErrNotFound)
}

func TestManagerDismissPending(t *testing.T) {
	t.Parallel()

	m := newManager(t, stack.WithMaxVisible(1))
	ctx := context.Background()

	id1, err := m.Enqueue(ctx, persistent(toast.PositionTopRight))
	require.NoError(t, err)
	id2, err := m.Enqueue(ctx, persistent(toast.PositionTopRight))
	require.NoError(t, err)

	// Pending toasts are dropped directly, no exit transition.
	require.NoError(t, m.Dismiss(id2))

	// Dismissing the visible one must not resurrect the dropped toast.
	require.NoError(t, m.Dismiss(id1))
	waitCount(t, m, 0)
	assert.Empty(t, m.Visible(toast.PositionTopRight))
}

func TestManagerDismissAll(t *testing.T) {
	t.Parallel()

	m := newManager(t, stack.WithMaxVisible(2))
	ctx := context.Background()

	for range 3 {
		_, err := m.Enqueue(ctx, persistent(toast.PositionTopRight))
		require.NoError(t, err)
	}
	_, err := m.Enqueue(ctx, persistent(toast.PositionBottomLeft))
	require.NoError(t, err)

	sub := m.Subscribe(ctx)
	defer sub.Cancel()

	m.DismissAll()
	waitCount(t, m, 0)
	assert.Empty(t, m.Visible(toast.PositionTopRight), "pending queue must not repopulate after clear")

	seen := map[stack.EventKind]int{}
	for _, ev := range drainEvents(sub.C, 500*time.Millisecond) {
		seen[ev.Kind]++
	}
	assert.Equal(t, 1, seen[stack.EventCleared])
	// The three visible toasts (two top-right, one bottom-left) play an
	// exit; the cleared pending toast drops silently.
	assert.Equal(t, 3, seen[stack.EventDismissed])
}

func TestManagerPauseResume(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	ctx := context.Background()

	n := toast.New("sync running", toast.VariantInfo, toast.WithDuration(time.Hour))
	id, err := m.Enqueue(ctx, n)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		snap := m.Snapshot(toast.PositionTopRight)
		return len(snap) == 1 && snap[0].Phase == lifecycle.PhaseVisible
	}, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, m.Pause(id))
	snap := m.Snapshot(toast.PositionTopRight)
	require.Len(t, snap, 1)
	assert.True(t, snap[0].Paused)

	require.NoError(t, m.Resume(id))
	snap = m.Snapshot(toast.PositionTopRight)
	require.Len(t, snap, 1)
	assert.False(t, snap[0].Paused)

	assert.ErrorIs(t, m.Pause("nope"), stack.ErrNotFound)
	assert.ErrorIs(t, m.Resume("nope"), stack.ErrNotFound)
}

func TestManagerExpiryRemoves(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	ctx := context.Background()

	sub := m.Subscribe(ctx)
	defer sub.Cancel()

	n := toast.New("saved", toast.VariantSuccess, toast.WithDuration(30*time.Millisecond))
	_, err := m.Enqueue(ctx, n)
	require.NoError(t, err)

	assertEvent(t, sub.C, stack.EventShown)
	assertEvent(t, sub.C, stack.EventLeaving)
	ev := assertEvent(t, sub.C, stack.EventDismissed)
	assert.Equal(t, lifecycle.ReasonExpired, ev.Reason)
	waitCount(t, m, 0)
}

func TestManagerClose(t *testing.T) {
	t.Parallel()

	m := stack.New(stack.WithIDGenerator(seqIDs()))
	ctx := context.Background()

	_, err := m.Enqueue(ctx, persistent(toast.PositionTopRight))
	require.NoError(t, err)
	sub := m.Subscribe(ctx)

	m.Close()
	m.Close()

	_, ok := <-sub.C
	assert.False(t, ok, "subscriptions close with the manager")
	assert.Equal(t, 0, m.Count())

	_, err = m.Enqueue(ctx, persistent(toast.PositionTopRight))
	assert.ErrorIs(t, err, stack.ErrClosed)
	assert.ErrorIs(t, m.Dismiss("t1"), stack.ErrClosed)
	assert.ErrorIs(t, m.Pause("t1"), stack.ErrClosed)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		DefaultDuration:  time.Hour,
		ExitDuration:     5 * time.Millisecond,
		StaggerStep:      time.Millisecond,
		ProgressInterval: 10 * time.Millisecond,
		MaxVisible:       1,
		EventBuffer:      8,
	}
	m := stack.NewFromConfig(cfg, stack.WithIDGenerator(seqIDs()), stack.WithProgressEvents(false))
	t.Cleanup(m.Close)
	ctx := context.Background()

	n := persistent(toast.PositionTopRight)
	n.Duration = -1
	_, err := m.Enqueue(ctx, n)
	require.NoError(t, err)

	visible := m.Visible(toast.PositionTopRight)
	require.Len(t, visible, 1)
	assert.Equal(t, time.Hour, visible[0].Duration, "config default duration applies")

	sub := m.Subscribe(ctx)
	defer sub.Cancel()
	_, err = m.Enqueue(ctx, persistent(toast.PositionTopRight))
	require.NoError(t, err)
	ev := assertEvent(t, sub.C, stack.EventQueued)
	assert.Equal(t, stack.EventQueued, ev.Kind, "config max visible applies")
}

func TestManagerSnapshotConcurrentWithRemovals(t *testing.T) {
	t.Parallel()

	m := newManager(t, stack.WithMaxVisible(3))
	ctx := context.Background()

	// Short-lived toasts keep the expiry callbacks reindexing the bucket
	// while snapshots and publishes read it.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 40 {
			_, err := m.Enqueue(ctx, toast.New("x", toast.VariantInfo,
				toast.WithDuration(5*time.Millisecond)))
			if err != nil {
				return
			}
			time.Sleep(time.Millisecond)
		}
	}()

	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
		}
		for _, it := range m.Snapshot(toast.PositionTopRight) {
			assert.GreaterOrEqual(t, it.Notification.StackIndex, 0)
			assert.Less(t, it.Notification.StackIndex, 3)
		}
		for _, n := range m.Visible(toast.PositionTopRight) {
			assert.NotEmpty(t, n.ID)
		}
	}

	waitCount(t, m, 0)
}

// assertEvent receives the next event and requires its kind.
func assertEvent(t *testing.T, ch <-chan stack.Event, want stack.EventKind) stack.Event {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "event channel closed while waiting for %s", want)
		require.Equal(t, want, ev.Kind)
		return ev
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s event", want)
		return stack.Event{}
	}
}

// drainEvents collects events until the channel stays quiet for the window.
func drainEvents(ch <-chan stack.Event, quiet time.Duration) []stack.Event {
	var out []stack.Event
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, ev)
		case <-time.After(quiet):
			return out
		}
	}
}
