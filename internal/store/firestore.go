package store

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"nailuxe-notify/pkg/models"
)

const (
	bookingsCollection    = "bookings"
	adminTokensCollection = "adminTokens"
	remindersCollection   = "emailReminders"
)

// Store wraps the Firestore collections the service reads and writes.
// Bookings and admin tokens are read-only; the reminder markers collection
// is the only thing this service ever writes.
type Store struct {
	client *firestore.Client
}

func NewStore(client *firestore.Client) *Store {
	return &Store{client: client}
}

// ListBookings reads every booking document. The collection is small (one
// salon's calendar), so a full unpaginated scan is fine.
func (s *Store) ListBookings(ctx context.Context) ([]models.Booking, error) {
	iter := s.client.Collection(bookingsCollection).Documents(ctx)
	defer iter.Stop()

	var bookings []models.Booking
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan bookings: %w", err)
		}

		var b models.Booking
		if err := doc.DataTo(&b); err != nil {
			log.Printf("⚠️  Skipping unreadable booking %s: %v", doc.Ref.ID, err)
			continue
		}
		b.ID = doc.Ref.ID
		bookings = append(bookings, b)
	}

	return bookings, nil
}

// ListAdminTokens returns all registered admin device tokens. Each document
// is keyed by its own token value.
func (s *Store) ListAdminTokens(ctx context.Context) ([]string, error) {
	iter := s.client.Collection(adminTokensCollection).Documents(ctx)
	defer iter.Stop()

	var tokens []string
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list admin tokens: %w", err)
		}
		tokens = append(tokens, doc.Ref.ID)
	}

	return tokens, nil
}

// ReminderExists reports whether the {bookingID}_{kind} marker has been written.
func (s *Store) ReminderExists(ctx context.Context, bookingID, kind string) (bool, error) {
	snap, err := s.client.Collection(remindersCollection).Doc(reminderDocID(bookingID, kind)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check reminder %s_%s: %w", bookingID, kind, err)
	}
	return snap.Exists(), nil
}

// MarkReminderSent writes the {bookingID}_{kind} marker. Called only after a
// successful send; the marker is never updated or deleted afterwards.
func (s *Store) MarkReminderSent(ctx context.Context, bookingID, kind string) error {
	_, err := s.client.Collection(remindersCollection).Doc(reminderDocID(bookingID, kind)).Set(ctx, models.ReminderRecord{
		Sent: true,
	})
	if err != nil {
		return fmt.Errorf("failed to mark reminder %s_%s: %w", bookingID, kind, err)
	}
	return nil
}

// WatchNewBookings blocks, invoking handle for every booking document created
// after the watch starts. The first snapshot replays the existing collection,
// so it is skipped; only later DocumentAdded changes fire the handler.
// Returns when the context is cancelled or the listener fails.
func (s *Store) WatchNewBookings(ctx context.Context, handle func(models.Booking)) error {
	snaps := s.client.Collection(bookingsCollection).Snapshots(ctx)
	defer snaps.Stop()

	first := true
	for {
		qsnap, err := snaps.Next()
		if err != nil {
			return fmt.Errorf("booking watch stopped: %w", err)
		}

		if first {
			first = false
			continue
		}

		for _, change := range qsnap.Changes {
			if change.Kind != firestore.DocumentAdded {
				continue
			}

			var b models.Booking
			if err := change.Doc.DataTo(&b); err != nil {
				log.Printf("⚠️  Skipping unreadable new booking %s: %v", change.Doc.Ref.ID, err)
				continue
			}
			b.ID = change.Doc.Ref.ID
			handle(b)
		}
	}
}

func reminderDocID(bookingID, kind string) string {
	return fmt.Sprintf("%s_%s", bookingID, kind)
}
