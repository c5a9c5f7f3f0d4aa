package transport_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pazarplus/toastkit/pkg/lifecycle"
	"github.com/pazarplus/toastkit/pkg/stack"
	"github.com/pazarplus/toastkit/pkg/toast"
	"github.com/pazarplus/toastkit/pkg/transport"
)

func newServer(t *testing.T) (*stack.Manager, *httptest.Server) {
	t.Helper()
	m := stack.New(
		stack.WithExitDuration(5*time.Millisecond),
		stack.WithStaggerStep(time.Millisecond),
		stack.WithProgressEvents(false),
	)
	t.Cleanup(m.Close)

	srv := httptest.NewServer(transport.NewService(m).Router())
	t.Cleanup(srv.Close)
	return m, srv
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHandleEnqueue(t *testing.T) {
	t.Parallel()

	t.Run("creates toast", func(t *testing.T) {
		t.Parallel()

		m, srv := newServer(t)

		resp, err := http.Post(srv.URL+"/toasts", "application/json", strings.NewReader(
			`{"message":"Order #1042 shipped","variant":"success","position":"bottom-left","duration_ms":0}`,
		))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeEnvelope(t, resp)
		require.Equal(t, true, body["success"])
		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		id, _ := data["id"].(string)
		require.NotEmpty(t, id)

		visible := m.Visible(toast.PositionBottomLeft)
		require.Len(t, visible, 1)
		assert.Equal(t, id, visible[0].ID)
		assert.Equal(t, toast.VariantSuccess, visible[0].Variant)
		assert.True(t, visible[0].Persistent(), "duration_ms zero persists")
	})

	t.Run("absent duration uses engine default", func(t *testing.T) {
		t.Parallel()

		m, srv := newServer(t)

		resp, err := http.Post(srv.URL+"/toasts", "application/json", strings.NewReader(
			`{"message":"Saved","variant":"info"}`,
		))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		visible := m.Visible(toast.PositionTopRight)
		require.Len(t, visible, 1)
		assert.Equal(t, toast.DefaultDuration, visible[0].Duration)
	})

	t.Run("unknown variant and position coerced", func(t *testing.T) {
		t.Parallel()

		m, srv := newServer(t)

		resp, err := http.Post(srv.URL+"/toasts", "application/json", strings.NewReader(
			`{"message":"x","variant":"fatal","position":"middle","duration_ms":0}`,
		))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		visible := m.Visible(toast.PositionTopRight)
		require.Len(t, visible, 1)
		assert.Equal(t, toast.VariantInfo, visible[0].Variant)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		t.Parallel()

		_, srv := newServer(t)

		resp, err := http.Post(srv.URL+"/toasts", "application/json", strings.NewReader("{"))
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeEnvelope(t, resp)
		assert.Equal(t, false, body["success"])
	})
}

func TestHandleDismiss(t *testing.T) {
	t.Parallel()

	t.Run("dismisses by id", func(t *testing.T) {
		t.Parallel()

		m, srv := newServer(t)
		id, err := m.Enqueue(context.Background(),
			toast.New("x", toast.VariantInfo, toast.Persistent()))
		require.NoError(t, err)

		req, err := http.NewRequest(http.MethodDelete, srv.URL+"/toasts/"+id, nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		require.Eventually(t, func() bool {
			return m.Count() == 0
		}, 2*time.Second, 5*time.Millisecond)
	})

	t.Run("escape reason", func(t *testing.T) {
		t.Parallel()

		m, srv := newServer(t)
		id, err := m.Enqueue(context.Background(),
			toast.New("x", toast.VariantInfo, toast.Persistent()))
		require.NoError(t, err)

		sub := m.Subscribe(context.Background())
		defer sub.Cancel()

		req, err := http.NewRequest(http.MethodDelete, srv.URL+"/toasts/"+id+"?reason=escape", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		deadline := time.After(2 * time.Second)
		for {
			select {
			case ev := <-sub.C:
				if ev.Kind != stack.EventDismissed {
					continue
				}
				assert.Equal(t, lifecycle.ReasonEscape, ev.Reason)
				return
			case <-deadline:
				t.Fatal("dismissal event never arrived")
			}
		}
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		t.Parallel()

		_, srv := newServer(t)

		req, err := http.NewRequest(http.MethodDelete, srv.URL+"/toasts/nope", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decodeEnvelope(t, resp)
		assert.Equal(t, false, body["success"])
	})
}

func TestHandleClear(t *testing.T) {
	t.Parallel()

	m, srv := newServer(t)
	for range 3 {
		_, err := m.Enqueue(context.Background(),
			toast.New("x", toast.VariantInfo, toast.Persistent()))
		require.NoError(t, err)
	}

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/toasts", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Eventually(t, func() bool {
		return m.Count() == 0
	}, 2*time.Second, 5*time.Millisecond)
}

func TestHandlePauseResume(t *testing.T) {
	t.Parallel()

	m, srv := newServer(t)
	id, err := m.Enqueue(context.Background(),
		toast.New("x", toast.VariantInfo, toast.WithDuration(time.Hour)))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		snap := m.Snapshot(toast.PositionTopRight)
		return len(snap) == 1 && snap[0].Phase == lifecycle.PhaseVisible
	}, 2*time.Second, 5*time.Millisecond)

	resp, err := http.Post(srv.URL+"/toasts/"+id+"/pause", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, m.Snapshot(toast.PositionTopRight)[0].Paused)

	resp, err = http.Post(srv.URL+"/toasts/"+id+"/resume", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, m.Snapshot(toast.PositionTopRight)[0].Paused)

	resp, err = http.Post(srv.URL+"/toasts/nope/pause", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
