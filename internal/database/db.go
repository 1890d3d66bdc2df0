package database

import (
	"database/sql"
	"fmt"
	"time"
)

// DB is the optional Postgres store for the delivery log. When DATABASE_URL
// is not configured the service runs without it and skips auditing.
type DB struct {
	conn *sql.DB
}

const deliveryLogSchema = `
CREATE TABLE IF NOT EXISTS delivery_log (
	id          BIGSERIAL PRIMARY KEY,
	channel     TEXT NOT NULL,
	recipient   TEXT NOT NULL,
	kind        TEXT NOT NULL,
	booking_id  TEXT NOT NULL,
	status      TEXT NOT NULL,
	error       TEXT NOT NULL DEFAULT '',
	sent_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// NewDB connects to Postgres and ensures the delivery_log table exists.
func NewDB(databaseURL string) (*DB, error) {
	conn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(5)
	conn.SetConnMaxLifetime(30 * time.Minute)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := conn.Exec(deliveryLogSchema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create delivery_log table: %w", err)
	}

	return &DB{conn: conn}, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

// GetConnection exposes the underlying connection for health checks.
func (db *DB) GetConnection() *sql.DB {
	return db.conn
}
