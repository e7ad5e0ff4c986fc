package dto

import "parking-api/modules/slot/entity"

// SlotResponse mirrors the wire shape of GET /api/slots: ticketId is
// null while the slot is free.
type SlotResponse struct {
	ID        int     `json:"id"`
	Available bool    `json:"available"`
	TicketID  *string `json:"ticketId"`
}

// AvailableSlotResponse is the reduced shape of GET /api/slots/available.
type AvailableSlotResponse struct {
	ID        int  `json:"id"`
	Available bool `json:"available"`
}

func NewSlotResponse(s *entity.Slot) SlotResponse {
	return SlotResponse{
		ID:        s.SlotNumber,
		Available: s.Available,
		TicketID:  s.TicketID,
	}
}

func NewAvailableSlotResponse(s *entity.Slot) AvailableSlotResponse {
	return AvailableSlotResponse{
		ID:        s.SlotNumber,
		Available: true,
	}
}
