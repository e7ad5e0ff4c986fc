package database

import (
	"context"
	"fmt"

	"parking-api/core/logger"
)

const createSlotsTable = `
CREATE TABLE IF NOT EXISTS parking_slots (
	id SERIAL PRIMARY KEY,
	slot_number INTEGER UNIQUE NOT NULL,
	available BOOLEAN NOT NULL DEFAULT TRUE,
	ticket_id TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const createTicketsTable = `
CREATE TABLE IF NOT EXISTS tickets (
	id TEXT PRIMARY KEY,
	vehicle_number TEXT NOT NULL,
	vehicle_type TEXT NOT NULL,
	slot_id INTEGER NOT NULL REFERENCES parking_slots(slot_number),
	driver_name TEXT NOT NULL,
	contact_number TEXT NOT NULL,
	entry_time TIMESTAMPTZ NOT NULL,
	exit_time TIMESTAMPTZ,
	status TEXT NOT NULL DEFAULT 'active',
	fee NUMERIC(10,2),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const createTicketsIndex = `
CREATE INDEX IF NOT EXISTS idx_tickets_status_entry_time
	ON tickets (status, entry_time DESC)`

// Migrate creates the schema and seeds the fixed slot set. It runs before
// the server accepts requests and is safe to call on every startup: the
// seed only fires when the slot table is empty.
func Migrate(ctx context.Context, db IDatabase, slotCapacity int) error {
	for _, stmt := range []string{createSlotsTable, createTicketsTable, createTicketsIndex} {
		if err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
	}

	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM parking_slots`); err != nil {
		return fmt.Errorf("count parking slots: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := 1; i <= slotCapacity; i++ {
		if err := db.ExecContext(ctx,
			`INSERT INTO parking_slots (slot_number, available) VALUES ($1, TRUE)`, i); err != nil {
			return fmt.Errorf("seed slot %d: %w", i, err)
		}
	}

	logger.Info("Initialized parking slots", "count", slotCapacity)
	return nil
}
