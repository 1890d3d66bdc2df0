package models

import "time"

// Booking is a single appointment document from the bookings collection.
// Documents are created by the booking flow in the mobile app; this service
// only ever reads them.
type Booking struct {
	ID            string `firestore:"-" json:"id"`
	UID           string `firestore:"uid" json:"uid"`
	Name          string `firestore:"name" json:"name"`
	Date          string `firestore:"date" json:"date"` // YYYY-MM-DD
	Time          string `firestore:"time" json:"time"` // 12-hour clock, e.g. "1:30 PM"
	Service       string `firestore:"service" json:"service,omitempty"`
	BookingNumber string `firestore:"bookingNumber" json:"booking_number"`
}

// ReminderRecord marks a reminder as sent for one (booking, kind) pair.
// Keyed as {bookingID}_{kind}; written once after a successful send and
// never touched again.
type ReminderRecord struct {
	Sent      bool      `firestore:"sent"`
	Timestamp time.Time `firestore:"timestamp,serverTimestamp"`
}

// DeliveryEntry is one row of the optional Postgres delivery log.
type DeliveryEntry struct {
	ID        int64     `json:"id"`
	Channel   string    `json:"channel"` // "email" or "push"
	Recipient string    `json:"recipient"`
	Kind      string    `json:"kind"` // "24h", "2h" or "new_booking"
	BookingID string    `json:"booking_id"`
	Status    string    `json:"status"` // "sent" or "failed"
	Error     string    `json:"error,omitempty"`
	SentAt    time.Time `json:"sent_at"`
}
