package dto

import (
	"strings"
	"time"

	"parking-api/core/controller"
	"parking-api/modules/ticket/entity"
)

// ===================== Request DTOs =====================

// CheckInRequest for POST /tickets. Field names follow the kiosk client wire format.
type CheckInRequest struct {
	VehicleNumber string `json:"vehicleNumber"`
	VehicleType   string `json:"vehicleType"`
	SlotID        int    `json:"slotId"`
	DriverName    string `json:"driverName"`
	ContactNumber string `json:"contactNumber"`
	TicketID      string `json:"ticketId"`
}

// Validate returns one entry per missing or malformed field.
func (r *CheckInRequest) Validate() []controller.ValidationError {
	var errs []controller.ValidationError

	if strings.TrimSpace(r.VehicleNumber) == "" {
		errs = append(errs, controller.NewValidationError("vehicleNumber", "vehicle number is required"))
	}
	if strings.TrimSpace(r.VehicleType) == "" {
		errs = append(errs, controller.NewValidationError("vehicleType", "vehicle type is required"))
	}
	if r.SlotID <= 0 {
		errs = append(errs, controller.NewValidationError("slotId", "slot id must be a positive integer"))
	}
	if strings.TrimSpace(r.DriverName) == "" {
		errs = append(errs, controller.NewValidationError("driverName", "driver name is required"))
	}
	if strings.TrimSpace(r.ContactNumber) == "" {
		errs = append(errs, controller.NewValidationError("contactNumber", "contact number is required"))
	}
	if strings.TrimSpace(r.TicketID) == "" {
		errs = append(errs, controller.NewValidationError("ticketId", "ticket id is required"))
	}

	return errs
}

// ===================== Response DTOs =====================

// ActiveTicketResponse omits exitTime and fee; used for check-in results
// and the active listing.
type ActiveTicketResponse struct {
	ID            string    `json:"id"`
	VehicleNumber string    `json:"vehicleNumber"`
	VehicleType   string    `json:"vehicleType"`
	SlotID        int       `json:"slotId"`
	DriverName    string    `json:"driverName"`
	ContactNumber string    `json:"contactNumber"`
	EntryTime     time.Time `json:"entryTime"`
	Status        string    `json:"status"`
}

// TicketResponse is the full ticket shape; exitTime and fee are null
// until checkout.
type TicketResponse struct {
	ID            string     `json:"id"`
	VehicleNumber string     `json:"vehicleNumber"`
	VehicleType   string     `json:"vehicleType"`
	SlotID        int        `json:"slotId"`
	DriverName    string     `json:"driverName"`
	ContactNumber string     `json:"contactNumber"`
	EntryTime     time.Time  `json:"entryTime"`
	ExitTime      *time.Time `json:"exitTime"`
	Status        string     `json:"status"`
	Fee           *float64   `json:"fee"`
}

func NewActiveTicketResponse(t *entity.Ticket) ActiveTicketResponse {
	return ActiveTicketResponse{
		ID:            t.ID,
		VehicleNumber: t.VehicleNumber,
		VehicleType:   string(t.VehicleType),
		SlotID:        t.SlotID,
		DriverName:    t.DriverName,
		ContactNumber: t.ContactNumber,
		EntryTime:     t.EntryTime,
		Status:        string(t.Status),
	}
}

func NewTicketResponse(t *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:            t.ID,
		VehicleNumber: t.VehicleNumber,
		VehicleType:   string(t.VehicleType),
		SlotID:        t.SlotID,
		DriverName:    t.DriverName,
		ContactNumber: t.ContactNumber,
		EntryTime:     t.EntryTime,
		ExitTime:      t.ExitTime,
		Status:        string(t.Status),
		Fee:           t.Fee,
	}
}
