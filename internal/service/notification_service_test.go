package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"ticketing-rewards/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// channelHTTPClient captures delivered requests on a channel.
type channelHTTPClient struct {
	requests chan *http.Request
	status   int
}

func (c *channelHTTPClient) Do(req *http.Request) (*http.Response, error) {
	c.requests <- req
	return &http.Response{
		StatusCode: c.status,
		Body:       io.NopCloser(strings.NewReader("")),
	}, nil
}

func TestPushNotifier_Delivers(t *testing.T) {
	client := &channelHTTPClient{requests: make(chan *http.Request, 1), status: http.StatusOK}
	notifier := NewPushNotifier("http://hub.local/notify", client, zerolog.Nop())

	userID := uuid.New()
	err := notifier.Notify(context.Background(), ports.Notification{
		Category: "reward",
		Title:    "Reward Redeemed",
		Body:     "Rs.15 has been credited to your wallet.",
		UserID:   userID,
	})
	require.NoError(t, err)

	select {
	case req := <-client.requests:
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, userID.String(), payload["user_id"])
		assert.Equal(t, "reward", payload["category"])
		assert.Equal(t, "Reward Redeemed", payload["title"])
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never delivered")
	}
}

func TestPushNotifier_NoURLIsNoop(t *testing.T) {
	client := &channelHTTPClient{requests: make(chan *http.Request, 1), status: http.StatusOK}
	notifier := NewPushNotifier("", client, zerolog.Nop())

	err := notifier.Notify(context.Background(), ports.Notification{UserID: uuid.New()})
	require.NoError(t, err)

	select {
	case <-client.requests:
		t.Fatal("no request should be made without a hub URL")
	case <-time.After(100 * time.Millisecond):
	}
}
