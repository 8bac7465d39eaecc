package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotConfirmed    = errors.New("reservation is not confirmed")
	ErrAlreadyEntered  = errors.New("entry already recorded")
	ErrNotEntered      = errors.New("entry not recorded yet")
	ErrAlreadyExited   = errors.New("exit already recorded")
	ErrEntryBeforeSlot = errors.New("entry recorded before reservation start")
)

// Reservation is the unit the no-overlap invariant protects. State changes
// go through the transition table in status.go; nothing mutates status
// directly.
type Reservation struct {
	id            uuid.UUID
	slotID        uuid.UUID
	locationID    uuid.UUID
	requesterID   uuid.UUID
	vehicleID     uuid.UUID
	slot          TimeSlot
	actualEntry   *time.Time
	actualExit    *time.Time
	status        Status
	fee           Money
	amountPaid    Money
	holdExpiresAt time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// NewReservation creates a pending reservation holding its interval until
// holdExpiresAt; payment confirmation must land before then.
func NewReservation(
	slotID, locationID, requesterID, vehicleID uuid.UUID,
	slot TimeSlot,
	fee Money,
	now time.Time,
	holdFor time.Duration,
) *Reservation {
	return &Reservation{
		id:            uuid.New(),
		slotID:        slotID,
		locationID:    locationID,
		requesterID:   requesterID,
		vehicleID:     vehicleID,
		slot:          slot,
		status:        StatusPending,
		fee:           fee,
		holdExpiresAt: now.Add(holdFor),
		createdAt:     now,
		updatedAt:     now,
	}
}

func Reconstruct(
	id, slotID, locationID, requesterID, vehicleID uuid.UUID,
	slot TimeSlot,
	actualEntry, actualExit *time.Time,
	status Status,
	fee, amountPaid Money,
	holdExpiresAt, createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		slotID:        slotID,
		locationID:    locationID,
		requesterID:   requesterID,
		vehicleID:     vehicleID,
		slot:          slot,
		actualEntry:   actualEntry,
		actualExit:    actualExit,
		status:        status,
		fee:           fee,
		amountPaid:    amountPaid,
		holdExpiresAt: holdExpiresAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) SlotID() uuid.UUID       { return r.slotID }
func (r *Reservation) LocationID() uuid.UUID   { return r.locationID }
func (r *Reservation) RequesterID() uuid.UUID  { return r.requesterID }
func (r *Reservation) VehicleID() uuid.UUID    { return r.vehicleID }
func (r *Reservation) Slot() TimeSlot          { return r.slot }
func (r *Reservation) ActualEntry() *time.Time { return r.actualEntry }
func (r *Reservation) ActualExit() *time.Time  { return r.actualExit }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) Fee() Money              { return r.fee }
func (r *Reservation) AmountPaid() Money       { return r.amountPaid }
func (r *Reservation) HoldExpiresAt() time.Time {
	return r.holdExpiresAt
}
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

// HoldExpired reports whether a pending hold has lapsed. Confirmed
// reservations never expire this way.
func (r *Reservation) HoldExpired(now time.Time) bool {
	return r.status == StatusPending && !r.holdExpiresAt.After(now)
}

func (r *Reservation) Confirm(now time.Time) error {
	next, err := r.status.Transition(EventConfirm)
	if err != nil {
		return err
	}
	r.status = next
	r.amountPaid = r.fee
	r.updatedAt = now
	return nil
}

func (r *Reservation) Cancel(now time.Time) error {
	next, err := r.status.Transition(EventCancel)
	if err != nil {
		return err
	}
	r.status = next
	r.updatedAt = now
	return nil
}

func (r *Reservation) Expire(now time.Time) error {
	next, err := r.status.Transition(EventExpire)
	if err != nil {
		return err
	}
	r.status = next
	r.updatedAt = now
	return nil
}

func (r *Reservation) Complete(now time.Time) error {
	next, err := r.status.Transition(EventComplete)
	if err != nil {
		return err
	}
	r.status = next
	r.updatedAt = now
	return nil
}

// RecordEntry stamps the actual entry time. Only confirmed reservations
// without a prior entry accept one.
func (r *Reservation) RecordEntry(at time.Time) error {
	if r.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	if r.actualEntry != nil {
		return ErrAlreadyEntered
	}
	t := at.UTC()
	r.actualEntry = &t
	r.updatedAt = t
	return nil
}

// RecordExit stamps the actual exit and completes the reservation. An exit
// past the expected end is left for the sweep to fine; it is not rejected.
func (r *Reservation) RecordExit(at time.Time) error {
	if r.actualEntry == nil {
		return ErrNotEntered
	}
	if r.actualExit != nil {
		return ErrAlreadyExited
	}
	t := at.UTC()
	r.actualExit = &t
	return r.Complete(t)
}

// HasEntered reports whether an entry event exists; cancellation is only
// legal before this.
func (r *Reservation) HasEntered() bool {
	return r.actualEntry != nil
}

// Extend widens the expected interval and accrues the incremental fee.
func (r *Reservation) Extend(newEnd time.Time, extraFee Money, now time.Time) error {
	if r.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	widened, err := r.slot.WithEnd(newEnd)
	if err != nil {
		return err
	}
	if !newEnd.After(r.slot.End()) {
		return ErrInvalidInterval
	}
	r.slot = widened
	r.fee = r.fee.Add(extraFee)
	r.amountPaid = r.amountPaid.Add(extraFee)
	r.updatedAt = now
	return nil
}

// ApplyRefund reduces the paid amount after a successful refund.
func (r *Reservation) ApplyRefund(amount Money, now time.Time) {
	r.amountPaid = r.amountPaid.Sub(amount)
	if r.amountPaid.Cents() < 0 {
		r.amountPaid = NewMoney(0)
	}
	r.updatedAt = now
}

// Overdue reports whether a confirmed reservation has outstayed its
// expected end: either no exit was recorded and the end (plus grace) has
// passed, or the recorded exit is later than the expected end.
func (r *Reservation) Overdue(now time.Time, grace time.Duration) bool {
	if r.actualExit != nil {
		return r.actualExit.After(r.slot.End())
	}
	if r.status != StatusConfirmed {
		return false
	}
	return now.Sub(r.slot.End()) > grace
}

// OvertimeBy returns how far past the expected end the vehicle stayed (or
// is still staying); zero when not overdue.
func (r *Reservation) OvertimeBy(now time.Time) time.Duration {
	ref := now
	if r.actualExit != nil {
		ref = *r.actualExit
	}
	d := ref.Sub(r.slot.End())
	if d < 0 {
		return 0
	}
	return d
}
