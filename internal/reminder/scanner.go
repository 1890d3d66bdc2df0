package reminder

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"nailuxe-notify/pkg/models"
)

// Reminder kinds, used as the suffix of the marker document ID.
const (
	Kind24Hour = "24h"
	Kind2Hour  = "2h"
)

// The 2h reminder fires when the appointment is between these bounds away,
// inclusive. The slack around 2.0h tolerates the hourly scan cadence.
const (
	windowMinHours = 1.5
	windowMaxHours = 2.5
)

// BookingStore is the document-store capability the scanner needs.
type BookingStore interface {
	ListBookings(ctx context.Context) ([]models.Booking, error)
	ReminderExists(ctx context.Context, bookingID, kind string) (bool, error)
	MarkReminderSent(ctx context.Context, bookingID, kind string) error
}

// EmailResolver resolves a booking owner to a contact email.
type EmailResolver interface {
	EmailForUser(ctx context.Context, uid string) (string, error)
}

// Mailer sends the reminder emails.
type Mailer interface {
	Send24HourReminder(booking models.Booking, to string) error
	Send2HourReminder(booking models.Booking, to string) error
}

// DeliveryRecorder persists an audit row per attempted send. May be nil.
type DeliveryRecorder interface {
	RecordDelivery(ctx context.Context, entry models.DeliveryEntry) error
}

// Scanner evaluates the 24-hour and 2-hour reminder policy over the full
// booking collection. One run per scheduler tick.
type Scanner struct {
	store    BookingStore
	resolver EmailResolver
	mailer   Mailer
	audit    DeliveryRecorder
	loc      *time.Location

	now func() time.Time
}

// NewScanner builds a scanner. audit may be nil to disable the delivery log.
func NewScanner(store BookingStore, resolver EmailResolver, mailer Mailer, audit DeliveryRecorder, loc *time.Location) *Scanner {
	return &Scanner{
		store:    store,
		resolver: resolver,
		mailer:   mailer,
		audit:    audit,
		loc:      loc,
		now:      time.Now,
	}
}

// Run performs one scan. Eligible sends are dispatched concurrently and the
// run joins on all of them; a single send failure is logged and leaves no
// marker, so the booking stays eligible for the next run. Only a failure to
// read the booking collection aborts the run.
func (s *Scanner) Run(ctx context.Context) error {
	now := s.now().In(s.loc)
	todayStr := now.Format(dateLayout)
	tomorrowStr := now.Add(24 * time.Hour).Format(dateLayout)

	log.Println("⏰ Checking for appointment reminders...")

	bookings, err := s.store.ListBookings(ctx)
	if err != nil {
		return fmt.Errorf("failed to list bookings: %w", err)
	}

	var wg sync.WaitGroup
	dispatched := 0

	for _, booking := range bookings {
		if booking.UID == "" || booking.Name == "" || booking.Date == "" {
			log.Printf("⚠️  Skipping malformed booking %s", booking.ID)
			continue
		}

		email, err := s.resolver.EmailForUser(ctx, booking.UID)
		if err != nil {
			log.Printf("⚠️  Could not get email for user %s: %v", booking.UID, err)
			continue
		}

		// 24-hour reminder (tomorrow's appointments)
		if booking.Date == tomorrowStr && s.needsReminder(ctx, booking, Kind24Hour) {
			dispatched++
			wg.Add(1)
			go func(b models.Booking, to string) {
				defer wg.Done()
				s.sendAndMark(ctx, b, to, Kind24Hour)
			}(booking, email)
		}

		// 2-hour reminder (today's appointments)
		if booking.Date == todayStr && booking.Time != "" {
			appointment, err := AppointmentTime(booking.Date, booking.Time, s.loc)
			if err != nil {
				log.Printf("⚠️  Booking %s has unparseable time %q: %v", booking.ID, booking.Time, err)
				continue
			}

			hoursUntil := appointment.Sub(now).Hours()
			if hoursUntil >= windowMinHours && hoursUntil <= windowMaxHours && s.needsReminder(ctx, booking, Kind2Hour) {
				dispatched++
				wg.Add(1)
				go func(b models.Booking, to string) {
					defer wg.Done()
					s.sendAndMark(ctx, b, to, Kind2Hour)
				}(booking, email)
			}
		}
	}

	wg.Wait()
	log.Printf("✅ Processed %d reminder(s)", dispatched)

	return nil
}

// needsReminder reports whether no marker exists yet for (booking, kind).
// A failed existence check is treated as "already sent" so a storage blip
// cannot cause a duplicate email.
func (s *Scanner) needsReminder(ctx context.Context, booking models.Booking, kind string) bool {
	exists, err := s.store.ReminderExists(ctx, booking.ID, kind)
	if err != nil {
		log.Printf("❌ Failed to check %s reminder for booking %s: %v", kind, booking.ID, err)
		return false
	}
	return !exists
}

// sendAndMark sends one reminder and writes its marker on success. Failures
// are logged only; siblings keep running and the booking stays eligible.
func (s *Scanner) sendAndMark(ctx context.Context, booking models.Booking, to, kind string) {
	var err error
	switch kind {
	case Kind24Hour:
		err = s.mailer.Send24HourReminder(booking, to)
	case Kind2Hour:
		err = s.mailer.Send2HourReminder(booking, to)
	}

	s.recordDelivery(ctx, booking, to, kind, err)

	if err != nil {
		log.Printf("❌ Failed to send %s reminder for booking %s: %v", kind, booking.ID, err)
		return
	}

	if err := s.store.MarkReminderSent(ctx, booking.ID, kind); err != nil {
		log.Printf("❌ Failed to mark %s reminder for booking %s: %v", kind, booking.ID, err)
	}
}

func (s *Scanner) recordDelivery(ctx context.Context, booking models.Booking, to, kind string, sendErr error) {
	if s.audit == nil {
		return
	}

	entry := models.DeliveryEntry{
		Channel:   "email",
		Recipient: to,
		Kind:      kind,
		BookingID: booking.ID,
		Status:    "sent",
		SentAt:    s.now().In(s.loc),
	}
	if sendErr != nil {
		entry.Status = "failed"
		entry.Error = sendErr.Error()
	}

	if err := s.audit.RecordDelivery(ctx, entry); err != nil {
		log.Printf("⚠️  Failed to record delivery log entry: %v", err)
	}
}
