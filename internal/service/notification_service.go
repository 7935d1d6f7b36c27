package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"ticketing-rewards/internal/core/ports"

	"github.com/rs/zerolog"
)

// notifyRetryIntervals spaces out delivery retries to the notification hub.
var notifyRetryIntervals = []time.Duration{
	5 * time.Second,
	30 * time.Second,
	2 * time.Minute,
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// notificationPayload is the JSON structure pushed to the notification hub.
type notificationPayload struct {
	UserID    string `json:"user_id"`
	Category  string `json:"category"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Timestamp int64  `json:"timestamp"`
}

// pushNotifier implements ports.Notifier by POSTing to the platform's
// notification hub. Delivery is asynchronous with retries; a failed delivery
// is logged and dropped, it never fails the caller.
type pushNotifier struct {
	url        string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewPushNotifier creates a new push notifier. An empty URL disables delivery;
// every Notify call then logs and returns nil.
func NewPushNotifier(url string, httpClient HTTPClient, log zerolog.Logger) ports.Notifier {
	return &pushNotifier{
		url:        url,
		httpClient: httpClient,
		log:        log,
	}
}

// Notify queues the notification for asynchronous delivery.
func (s *pushNotifier) Notify(ctx context.Context, n ports.Notification) error {
	if s.url == "" {
		s.log.Debug().Str("user_id", n.UserID.String()).Msg("notification: no hub URL configured, skipping")
		return nil
	}

	payload := notificationPayload{
		UserID:    n.UserID.String(),
		Category:  n.Category,
		Title:     n.Title,
		Body:      n.Body,
		Timestamp: time.Now().Unix(),
	}

	go s.deliverWithRetries(payload)

	return nil
}

// deliverWithRetries attempts to deliver the notification with backoff.
func (s *pushNotifier) deliverWithRetries(payload notificationPayload) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", payload.UserID).Msg("notification: failed to marshal payload")
		return
	}

	for attempt := 0; attempt <= len(notifyRetryIntervals); attempt++ {
		if attempt > 0 {
			time.Sleep(notifyRetryIntervals[attempt-1])
		}

		req, err := http.NewRequest(http.MethodPost, s.url, bytes.NewReader(payloadBytes))
		if err != nil {
			s.log.Error().Err(err).Str("user_id", payload.UserID).Int("attempt", attempt+1).Msg("notification: failed to create request")
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", payload.UserID).Int("attempt", attempt+1).Msg("notification: delivery failed")
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			s.log.Info().Str("user_id", payload.UserID).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("notification: delivered")
			return
		}

		s.log.Warn().Str("user_id", payload.UserID).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("notification: non-2xx response, retrying")
	}

	s.log.Error().Str("user_id", payload.UserID).Msg("notification: all retry attempts exhausted")
}
