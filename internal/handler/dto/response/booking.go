package response

import (
	"time"

	"parkcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID      `json:"id"`
	SlotID          uuid.UUID      `json:"slotId"`
	SlotCode        string         `json:"slotCode"`
	LocationID      uuid.UUID      `json:"locationId"`
	RequesterID     uuid.UUID      `json:"requesterId"`
	VehicleID       uuid.UUID      `json:"vehicleId"`
	Start           time.Time      `json:"start"`
	End             time.Time      `json:"end"`
	ActualEntry     *time.Time     `json:"actualEntry,omitempty"`
	ActualExit      *time.Time     `json:"actualExit,omitempty"`
	Status          string         `json:"status"`
	FeeCents        int64          `json:"feeCents"`
	AmountPaidCents int64          `json:"amountPaidCents"`
	HoldExpiresAt   *time.Time     `json:"holdExpiresAt,omitempty"`
	Overtime        bool           `json:"overtime"`
	Fines           []FineResponse `json:"fines,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

type FineResponse struct {
	ID          uuid.UUID `json:"id"`
	AmountCents int64     `json:"amountCents"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateBookingResponse struct {
	Booking   *BookingResponse `json:"booking"`
	GateToken string           `json:"gateToken"`
}

type CancelBookingResponse struct {
	Booking     *BookingResponse `json:"booking"`
	RefundCents int64            `json:"refundCents"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	// Field names line up one-to-one; copier keeps this conversion from
	// drifting when the view grows.
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	result := make([]*BookingResponse, len(views))
	for i, v := range views {
		result[i] = FromBookingView(v)
	}
	return result
}
