// Package notify defines the signals the core emits for the notification
// collaborator. The core only produces (reservation, reason) pairs;
// delivery channels are someone else's problem.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Reason string

const (
	ReasonConfirmed Reason = "CONFIRMED"
	ReasonCancelled Reason = "CANCELLED"
	ReasonReminder  Reason = "REMINDER"
	ReasonFine      Reason = "FINE"
)

type Signal struct {
	ReservationID uuid.UUID
	RequesterID   uuid.UUID
	Reason        Reason
	Message       string
	EmittedAt     time.Time
}

// Recorder persists emitted signals. The notification log doubles as the
// dedupe source for sweep reminders: a reservation that already has a
// REMINDER entry is not signalled again.
type Recorder interface {
	Record(ctx context.Context, sig Signal) error
	Exists(ctx context.Context, reservationID uuid.UUID, reason Reason) (bool, error)
}
