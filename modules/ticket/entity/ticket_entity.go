package entity

import "time"

// TicketStatus represents the lifecycle state of a ticket
type TicketStatus string

const (
	TicketStatusActive    TicketStatus = "active"
	TicketStatusCompleted TicketStatus = "completed"
)

// VehicleType is the rate class of a vehicle. Unknown values are accepted
// and billed at the default rate.
type VehicleType string

const (
	VehicleTypeCar        VehicleType = "car"
	VehicleTypeMotorcycle VehicleType = "motorcycle"
	VehicleTypeTruck      VehicleType = "truck"
	VehicleTypeSUV        VehicleType = "suv"
)

// Ticket records one vehicle's occupancy of one slot from entry to exit.
// ExitTime and Fee stay NULL until checkout and are set together in the
// completing update. The vehicle number is uppercased once at creation.
type Ticket struct {
	ID            string       `db:"id" json:"id"`
	VehicleNumber string       `db:"vehicle_number" json:"vehicle_number"`
	VehicleType   VehicleType  `db:"vehicle_type" json:"vehicle_type"`
	SlotID        int          `db:"slot_id" json:"slot_id"`
	DriverName    string       `db:"driver_name" json:"driver_name"`
	ContactNumber string       `db:"contact_number" json:"contact_number"`
	EntryTime     time.Time    `db:"entry_time" json:"entry_time"`
	ExitTime      *time.Time   `db:"exit_time" json:"exit_time,omitempty"`
	Status        TicketStatus `db:"status" json:"status"`
	Fee           *float64     `db:"fee" json:"fee,omitempty"`
	CreatedAt     time.Time    `db:"created_at" json:"created_at"`
}
