package database

import (
	"context"
	"fmt"

	"nailuxe-notify/pkg/models"
)

// RecordDelivery inserts one audit row for an attempted send.
func (db *DB) RecordDelivery(ctx context.Context, entry models.DeliveryEntry) error {
	query := `
		INSERT INTO delivery_log (channel, recipient, kind, booking_id, status, error, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := db.conn.ExecContext(ctx, query,
		entry.Channel, entry.Recipient, entry.Kind, entry.BookingID,
		entry.Status, entry.Error, entry.SentAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert delivery log entry: %w", err)
	}

	return nil
}

// RecentDeliveries returns the newest delivery log rows, newest first.
func (db *DB) RecentDeliveries(ctx context.Context, limit int) ([]models.DeliveryEntry, error) {
	query := `
		SELECT id, channel, recipient, kind, booking_id, status, error, sent_at
		FROM delivery_log
		ORDER BY sent_at DESC
		LIMIT $1
	`

	rows, err := db.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query delivery log: %w", err)
	}
	defer rows.Close()

	var entries []models.DeliveryEntry
	for rows.Next() {
		var e models.DeliveryEntry
		err := rows.Scan(
			&e.ID, &e.Channel, &e.Recipient, &e.Kind,
			&e.BookingID, &e.Status, &e.Error, &e.SentAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan delivery log entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}
