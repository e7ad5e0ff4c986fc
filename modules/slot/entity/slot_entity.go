package entity

import "time"

// Slot is one numbered parking space. Occupied means available=false with
// the active ticket's id bound; both fields flip together inside the
// check-in/checkout transactions.
type Slot struct {
	ID         int       `db:"id" json:"-"`
	SlotNumber int       `db:"slot_number" json:"slot_number"`
	Available  bool      `db:"available" json:"available"`
	TicketID   *string   `db:"ticket_id" json:"ticket_id,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
