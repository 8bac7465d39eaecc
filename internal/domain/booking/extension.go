package booking

import (
	"time"

	"github.com/google/uuid"
)

// Extension is an append-only record of one widening of a reservation.
type Extension struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	PreviousEnd   time.Time
	NewEnd        time.Time
	ExtraFee      Money
	CreatedAt     time.Time
}

func NewExtension(reservationID uuid.UUID, previousEnd, newEnd time.Time, extraFee Money, now time.Time) *Extension {
	return &Extension{
		ID:            uuid.New(),
		ReservationID: reservationID,
		PreviousEnd:   previousEnd,
		NewEnd:        newEnd,
		ExtraFee:      extraFee,
		CreatedAt:     now,
	}
}

// Fine is issued by the automation sweep for overtime stays. UNPAID fines
// are raised in place when the overage grows; they are never duplicated.
type Fine struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Amount        Money
	Reason        string
	Status        FineStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type FineStatus string

const (
	FineUnpaid FineStatus = "UNPAID"
	FinePaid   FineStatus = "PAID"
)

func NewFine(reservationID uuid.UUID, amount Money, reason string, now time.Time) *Fine {
	return &Fine{
		ID:            uuid.New(),
		ReservationID: reservationID,
		Amount:        amount,
		Reason:        reason,
		Status:        FineUnpaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// PaymentRecord mirrors one interaction with the external payment sink.
type PaymentRecord struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	ExtensionID   *uuid.UUID
	Amount        Money
	Direction     PaymentDirection
	Status        PaymentStatus
	GatewayTxnID  string
	CreatedAt     time.Time
}

type PaymentDirection string

const (
	DirectionCharge PaymentDirection = "CHARGE"
	DirectionRefund PaymentDirection = "REFUND"
)

type PaymentStatus string

const (
	PaymentInitiated PaymentStatus = "INITIATED"
	PaymentSuccess   PaymentStatus = "SUCCESS"
	PaymentFailed    PaymentStatus = "FAILED"
)

// EntryExitEvent is one gate scan.
type EntryExitEvent struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Kind          EventKind
	OccurredAt    time.Time
}

type EventKind string

const (
	KindEntry EventKind = "ENTRY"
	KindExit  EventKind = "EXIT"
)
