package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	SlotID          uuid.UUID  `json:"slot_id"`
	SlotCode        string     `json:"slot_code"`
	LocationID      uuid.UUID  `json:"location_id"`
	RequesterID     uuid.UUID  `json:"requester_id"`
	VehicleID       uuid.UUID  `json:"vehicle_id"`
	Start           time.Time  `json:"start"`
	End             time.Time  `json:"end"`
	ActualEntry     *time.Time `json:"actual_entry,omitempty"`
	ActualExit      *time.Time `json:"actual_exit,omitempty"`
	Status          string     `json:"status"`
	FeeCents        int64      `json:"fee_cents"`
	AmountPaidCents int64      `json:"amount_paid_cents"`
	HoldExpiresAt   *time.Time `json:"hold_expires_at,omitempty"`
	Overtime        bool       `json:"overtime"`
	Fines           []FineView `json:"fines,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type FineView struct {
	ID          uuid.UUID `json:"id"`
	AmountCents int64     `json:"amount_cents"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type SlotAvailabilityView struct {
	SlotID uuid.UUID `json:"slot_id"`
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
	Free   bool      `json:"free"`
}

type QuoteView struct {
	LocationID uuid.UUID          `json:"location_id"`
	From       time.Time          `json:"from"`
	To         time.Time          `json:"to"`
	FeeCents   int64              `json:"fee_cents"`
	DayUnits   int64              `json:"day_units"`
	Segments   []QuoteSegmentView `json:"segments"`
}

type QuoteSegmentView struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	RuleID     string    `json:"rule_id,omitempty"`
	Multiplier string    `json:"multiplier"`
	Amount     string    `json:"amount"`
}
