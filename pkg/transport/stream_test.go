package transport_test

import (
	"bufio"
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pazarplus/toastkit/pkg/toast"
)

func TestHandleStream(t *testing.T) {
	t.Parallel()

	m, srv := newServer(t)

	_, err := m.Enqueue(context.Background(),
		toast.New("Order shipped", toast.VariantSuccess,
			toast.WithPosition(toast.PositionBottomLeft),
			toast.Persistent(),
		))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/toasts/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	// The initial paint must include every region, with the enqueued toast
	// inside its bucket.
	var (
		sawBucket bool
		sawToast  bool
	)
	scanner := bufio.NewScanner(resp.Body)
	deadline := time.AfterFunc(2*time.Second, cancel)
	defer deadline.Stop()
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "toast-region-bottom-left") {
			sawBucket = true
		}
		if strings.Contains(line, "Order shipped") {
			sawToast = true
		}
		if sawBucket && sawToast {
			break
		}
	}
	assert.True(t, sawBucket, "region paint never arrived")
	assert.True(t, sawToast, "enqueued toast missing from initial paint")

	// Cancelling the request context ends the stream handler.
	cancel()
}

func TestHandleStreamReceivesUpdates(t *testing.T) {
	t.Parallel()

	m, srv := newServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/toasts/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// Enqueue after the stream is attached; the update must flow through.
	_, err = m.Enqueue(context.Background(),
		toast.New("Inventory synced", toast.VariantInfo, toast.Persistent()))
	require.NoError(t, err)

	found := false
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), "Inventory synced") {
			found = true
			break
		}
	}
	assert.True(t, found, "stack change never reached the stream")
}
