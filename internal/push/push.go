package push

import (
	"context"
	"fmt"
	"log"
	"time"

	"firebase.google.com/go/v4/messaging"
)

// FCM rejects multicast batches over 500 tokens.
const fcmBatchLimit = 500

// Service sends push notifications to admin devices via Firebase Cloud
// Messaging.
type Service struct {
	client *messaging.Client
}

func NewService(client *messaging.Client) *Service {
	return &Service{client: client}
}

// SendToTokens delivers one {title, body} notification to every token as a
// multicast send, chunked at the FCM batch limit. Returns the number of
// devices that accepted the message. Per-token failures are logged; the send
// as a whole fails only if FCM rejects a batch outright.
func (s *Service) SendToTokens(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, error) {
	if len(tokens) == 0 {
		return 0, fmt.Errorf("no device tokens to send to")
	}

	successCount := 0

	for start := 0; start < len(tokens); start += fcmBatchLimit {
		end := start + fcmBatchLimit
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := tokens[start:end]

		message := &messaging.MulticastMessage{
			Tokens: batch,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
			Android: &messaging.AndroidConfig{
				Priority: "high",
				Notification: &messaging.AndroidNotification{
					Sound:        "default",
					Priority:     messaging.PriorityHigh,
					ChannelID:    "salon_bookings",
					DefaultSound: true,
				},
			},
		}

		response, err := s.client.SendEachForMulticast(ctx, message)
		if err != nil {
			return successCount, fmt.Errorf("error sending booking push: %w", err)
		}

		successCount += response.SuccessCount

		if response.FailureCount > 0 {
			for i, resp := range response.Responses {
				if resp.Error == nil {
					continue
				}
				if IsInvalidTokenError(resp.Error) {
					log.Printf("⚠️  Invalid admin token %s...: %v", truncateToken(batch[i]), resp.Error)
				} else {
					log.Printf("❌ Push failed for token %s...: %v", truncateToken(batch[i]), resp.Error)
				}
			}
		}
	}

	log.Printf("📲 Push delivered to %d/%d admin device(s) at %s", successCount, len(tokens), time.Now().Format("15:04:05"))
	return successCount, nil
}

// IsInvalidTokenError reports whether the FCM error means the device token is
// no longer usable and should be dropped from the register.
func IsInvalidTokenError(err error) bool {
	return messaging.IsRegistrationTokenNotRegistered(err) || messaging.IsSenderIDMismatch(err)
}

func truncateToken(token string) string {
	if len(token) <= 10 {
		return token
	}
	return token[:10]
}
