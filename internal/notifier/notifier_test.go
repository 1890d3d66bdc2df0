package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nailuxe-notify/pkg/models"
)

type mockTokenStore struct {
	ListAdminTokensFunc func(ctx context.Context) ([]string, error)
}

func (m *mockTokenStore) ListAdminTokens(ctx context.Context) ([]string, error) {
	if m.ListAdminTokensFunc != nil {
		return m.ListAdminTokensFunc(ctx)
	}
	return nil, nil
}

type mockPusher struct {
	calls      int
	lastTokens []string
	lastTitle  string
	lastBody   string
	err        error
}

func (m *mockPusher) SendToTokens(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, error) {
	m.calls++
	m.lastTokens = tokens
	m.lastTitle = title
	m.lastBody = body
	if m.err != nil {
		return 0, m.err
	}
	return len(tokens), nil
}

func newBooking() models.Booking {
	return models.Booking{
		ID:            "b1",
		UID:           "user-1",
		Name:          "Amelia",
		Date:          "2026-03-11",
		Time:          "1:30 PM",
		BookingNumber: "BN-104",
	}
}

func TestNotifier_SendsToAllAdminTokens(t *testing.T) {
	tokens := &mockTokenStore{ListAdminTokensFunc: func(ctx context.Context) ([]string, error) {
		return []string{"tok-a", "tok-b", "tok-c"}, nil
	}}
	pusher := &mockPusher{}
	n := NewNotifier(tokens, pusher, nil)

	err := n.HandleBookingCreated(context.Background(), newBooking())
	require.NoError(t, err)

	assert.Equal(t, 1, pusher.calls, "all tokens go out as one batch send")
	assert.Equal(t, []string{"tok-a", "tok-b", "tok-c"}, pusher.lastTokens)
	assert.Equal(t, "New Booking from Amelia", pusher.lastTitle)
	assert.Equal(t, "For 2026-03-11 at 1:30 PM", pusher.lastBody)
}

func TestNotifier_EmptyTokenSetIsNotAnError(t *testing.T) {
	tokens := &mockTokenStore{ListAdminTokensFunc: func(ctx context.Context) ([]string, error) {
		return nil, nil
	}}
	pusher := &mockPusher{}
	n := NewNotifier(tokens, pusher, nil)

	err := n.HandleBookingCreated(context.Background(), newBooking())
	require.NoError(t, err)
	assert.Zero(t, pusher.calls)
}

func TestNotifier_TokenListFailurePropagates(t *testing.T) {
	tokens := &mockTokenStore{ListAdminTokensFunc: func(ctx context.Context) ([]string, error) {
		return nil, errors.New("firestore unavailable")
	}}
	pusher := &mockPusher{}
	n := NewNotifier(tokens, pusher, nil)

	err := n.HandleBookingCreated(context.Background(), newBooking())
	assert.Error(t, err)
	assert.Zero(t, pusher.calls)
}

func TestNotifier_PushFailurePropagates(t *testing.T) {
	tokens := &mockTokenStore{ListAdminTokensFunc: func(ctx context.Context) ([]string, error) {
		return []string{"tok-a"}, nil
	}}
	pusher := &mockPusher{err: errors.New("fcm rejected the batch")}
	n := NewNotifier(tokens, pusher, nil)

	err := n.HandleBookingCreated(context.Background(), newBooking())
	assert.Error(t, err)
}
