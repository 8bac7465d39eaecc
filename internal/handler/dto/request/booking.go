package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	SlotID      uuid.UUID `json:"slot_id" binding:"required"`
	RequesterID uuid.UUID `json:"requester_id" binding:"required"`
	VehicleID   uuid.UUID `json:"vehicle_id" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
}

type ExtendBookingRequest struct {
	NewEnd time.Time `json:"new_end" binding:"required"`
}
