package notifier

import (
	"context"
	"fmt"
	"log"
	"time"

	"nailuxe-notify/pkg/models"
)

// TokenStore lists the registered admin device tokens.
type TokenStore interface {
	ListAdminTokens(ctx context.Context) ([]string, error)
}

// Pusher delivers one notification to a set of device tokens.
type Pusher interface {
	SendToTokens(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, error)
}

// DeliveryRecorder persists an audit row per dispatch. May be nil.
type DeliveryRecorder interface {
	RecordDelivery(ctx context.Context, entry models.DeliveryEntry) error
}

// Notifier pushes a notification to every admin device when a booking is
// created. Fire-and-forget: the result is logged and not used further.
type Notifier struct {
	tokens TokenStore
	push   Pusher
	audit  DeliveryRecorder
}

// NewNotifier builds a notifier. audit may be nil to disable the delivery log.
func NewNotifier(tokens TokenStore, push Pusher, audit DeliveryRecorder) *Notifier {
	return &Notifier{
		tokens: tokens,
		push:   push,
		audit:  audit,
	}
}

// HandleBookingCreated sends one batch push for a newly created booking. An
// empty admin token register is not an error; a transport failure is.
func (n *Notifier) HandleBookingCreated(ctx context.Context, booking models.Booking) error {
	tokens, err := n.tokens.ListAdminTokens(ctx)
	if err != nil {
		return fmt.Errorf("failed to list admin tokens: %w", err)
	}

	if len(tokens) == 0 {
		log.Printf("ℹ️  No admin devices registered, skipping push for booking %s", booking.ID)
		return nil
	}

	title := fmt.Sprintf("New Booking from %s", booking.Name)
	body := fmt.Sprintf("For %s at %s", booking.Date, booking.Time)
	data := map[string]string{
		"type":      "new_booking",
		"bookingId": booking.ID,
	}

	delivered, err := n.push.SendToTokens(ctx, tokens, title, body, data)

	n.recordDelivery(ctx, booking, len(tokens), err)

	if err != nil {
		return fmt.Errorf("failed to push new booking %s: %w", booking.ID, err)
	}

	log.Printf("🔔 New booking %s announced to %d admin device(s)", booking.ID, delivered)
	return nil
}

func (n *Notifier) recordDelivery(ctx context.Context, booking models.Booking, tokenCount int, sendErr error) {
	if n.audit == nil {
		return
	}

	entry := models.DeliveryEntry{
		Channel:   "push",
		Recipient: fmt.Sprintf("%d admin device(s)", tokenCount),
		Kind:      "new_booking",
		BookingID: booking.ID,
		Status:    "sent",
		SentAt:    time.Now(),
	}
	if sendErr != nil {
		entry.Status = "failed"
		entry.Error = sendErr.Error()
	}

	if err := n.audit.RecordDelivery(ctx, entry); err != nil {
		log.Printf("⚠️  Failed to record delivery log entry: %v", err)
	}
}
