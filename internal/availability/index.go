// Package availability tracks, per slot, the intervals held by confirmed
// reservations, live pending holds and maintenance windows. Reserve is the
// single synchronization point that prevents double-booking: the free check
// and the hold insert happen under the slot's lock in one step.
package availability

import (
	"errors"
	"sync"
	"time"

	"parkcore/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrBusy             = errors.New("slot interval already held")
	ErrUnderMaintenance = errors.New("slot under maintenance for interval")
	ErrHoldExpired      = errors.New("hold expired")
	ErrNotHeld          = errors.New("reservation does not hold this slot")
)

type entryKind int

const (
	kindPending entryKind = iota
	kindConfirmed
)

type entry struct {
	reservationID uuid.UUID
	slot          booking.TimeSlot
	kind          entryKind
	holdExpiresAt time.Time

	// delta is a provisional widening held during an extension; it counts
	// against competitors until committed, released or expired.
	delta          *booking.TimeSlot
	deltaExpiresAt time.Time
}

// live reports whether the entry still blocks the given instant's checks.
func (e *entry) live(now time.Time) bool {
	return e.kind == kindConfirmed || e.holdExpiresAt.After(now)
}

func (e *entry) deltaLive(now time.Time) bool {
	return e.delta != nil && e.deltaExpiresAt.After(now)
}

type slotBook struct {
	mu          sync.Mutex
	maintenance []booking.TimeSlot
	entries     map[uuid.UUID]*entry
}

type Index struct {
	mu    sync.RWMutex
	slots map[uuid.UUID]*slotBook
}

func NewIndex() *Index {
	return &Index{slots: make(map[uuid.UUID]*slotBook)}
}

func (ix *Index) book(slotID uuid.UUID) *slotBook {
	ix.mu.RLock()
	b, ok := ix.slots[slotID]
	ix.mu.RUnlock()
	if ok {
		return b
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if b, ok = ix.slots[slotID]; ok {
		return b
	}
	b = &slotBook{entries: make(map[uuid.UUID]*entry)}
	ix.slots[slotID] = b
	return b
}

// AddMaintenance registers a maintenance window; its interval blocks all
// overlap checks from now on.
func (ix *Index) AddMaintenance(slotID uuid.UUID, window booking.TimeSlot) {
	b := ix.book(slotID)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.maintenance = append(b.maintenance, window)
}

// SeedConfirmed restores a confirmed reservation into the book, used when
// rebuilding the index from the store at startup.
func (ix *Index) SeedConfirmed(slotID, reservationID uuid.UUID, slot booking.TimeSlot) {
	b := ix.book(slotID)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[reservationID] = &entry{
		reservationID: reservationID,
		slot:          slot,
		kind:          kindConfirmed,
	}
}

func (b *slotBook) underMaintenance(slot booking.TimeSlot) bool {
	for _, w := range b.maintenance {
		if w.Overlaps(slot) {
			return true
		}
	}
	return false
}

func (b *slotBook) conflicts(slot booking.TimeSlot, now time.Time, exclude uuid.UUID) bool {
	for id, e := range b.entries {
		if id == exclude {
			continue
		}
		if e.live(now) && e.slot.Overlaps(slot) {
			return true
		}
		if e.deltaLive(now) && e.delta.Overlaps(slot) {
			return true
		}
	}
	return false
}

// IsFree reports whether the interval is clear of maintenance windows,
// confirmed reservations and live pending holds. A hold whose expiry has
// passed does not count, even before the sweep removes it.
func (ix *Index) IsFree(slotID uuid.UUID, slot booking.TimeSlot, now time.Time, exclude uuid.UUID) bool {
	b := ix.book(slotID)
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.underMaintenance(slot) && !b.conflicts(slot, now, exclude)
}

// Reserve atomically re-checks availability and inserts a pending hold
// expiring at now+holdFor.
func (ix *Index) Reserve(slotID, reservationID uuid.UUID, slot booking.TimeSlot, now time.Time, holdFor time.Duration) error {
	b := ix.book(slotID)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.underMaintenance(slot) {
		return ErrUnderMaintenance
	}
	if b.conflicts(slot, now, reservationID) {
		return ErrBusy
	}
	b.entries[reservationID] = &entry{
		reservationID: reservationID,
		slot:          slot,
		kind:          kindPending,
		holdExpiresAt: now.Add(holdFor),
	}
	return nil
}

// Promote converts a pending hold to a confirmed booking. It succeeds only
// if it observes the hold as not yet expired at the moment of the check; a
// lapsed hold is dropped and reported, never resurrected.
func (ix *Index) Promote(slotID, reservationID uuid.UUID, now time.Time) error {
	b := ix.book(slotID)
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.entries[reservationID]
	if !ok || e.kind != kindPending {
		return ErrNotHeld
	}
	if !e.holdExpiresAt.After(now) {
		delete(b.entries, reservationID)
		return ErrHoldExpired
	}
	e.kind = kindConfirmed
	return nil
}

// Release drops a pending or confirmed reservation's hold on the index.
func (ix *Index) Release(slotID, reservationID uuid.UUID) {
	b := ix.book(slotID)
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.entries, reservationID)
}

// HoldDelta provisionally holds [current end, newEnd) for an extension of a
// confirmed reservation. The delta is checked against everyone else but the
// reservation's own interval.
func (ix *Index) HoldDelta(slotID, reservationID uuid.UUID, newEnd time.Time, now time.Time, holdFor time.Duration) (booking.TimeSlot, error) {
	b := ix.book(slotID)
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.entries[reservationID]
	if !ok || e.kind != kindConfirmed {
		return booking.TimeSlot{}, ErrNotHeld
	}
	delta, err := booking.NewTimeSlot(e.slot.End(), newEnd)
	if err != nil {
		return booking.TimeSlot{}, err
	}
	if b.underMaintenance(delta) {
		return booking.TimeSlot{}, ErrUnderMaintenance
	}
	if b.conflicts(delta, now, reservationID) {
		return booking.TimeSlot{}, ErrBusy
	}
	e.delta = &delta
	e.deltaExpiresAt = now.Add(holdFor)
	return delta, nil
}

// CommitDelta merges a live delta hold into the confirmed interval.
func (ix *Index) CommitDelta(slotID, reservationID uuid.UUID, now time.Time) error {
	b := ix.book(slotID)
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.entries[reservationID]
	if !ok || e.delta == nil {
		return ErrNotHeld
	}
	if !e.deltaExpiresAt.After(now) {
		e.delta = nil
		return ErrHoldExpired
	}
	widened, err := e.slot.WithEnd(e.delta.End())
	if err != nil {
		return err
	}
	e.slot = widened
	e.delta = nil
	return nil
}

// ReleaseDelta drops a provisional extension hold after a failed charge.
func (ix *Index) ReleaseDelta(slotID, reservationID uuid.UUID) {
	b := ix.book(slotID)
	b.mu.Lock()
	defer b.mu.Unlock()
	if e, ok := b.entries[reservationID]; ok {
		e.delta = nil
	}
}

// ExpiredHold identifies one lapsed pending hold removed by ExpireDue.
type ExpiredHold struct {
	SlotID        uuid.UUID
	ReservationID uuid.UUID
}

// ExpireDue removes every pending hold whose expiry has passed and returns
// them for the sweep to transition. Lapsed extension deltas are dropped
// silently; a live delta keeps its confirmed interval in the book. Confirmed
// intervals that fully elapsed are pruned too, so no-show overstays cannot
// grow the books without bound.
func (ix *Index) ExpireDue(now time.Time) []ExpiredHold {
	ix.mu.RLock()
	books := make(map[uuid.UUID]*slotBook, len(ix.slots))
	for id, b := range ix.slots {
		books[id] = b
	}
	ix.mu.RUnlock()

	var expired []ExpiredHold
	for slotID, b := range books {
		b.mu.Lock()
		for id, e := range b.entries {
			if e.delta != nil && !e.deltaExpiresAt.After(now) {
				e.delta = nil
			}
			switch {
			case e.kind == kindPending && !e.holdExpiresAt.After(now):
				delete(b.entries, id)
				expired = append(expired, ExpiredHold{SlotID: slotID, ReservationID: id})
			case e.kind == kindConfirmed && e.delta == nil && !e.slot.End().After(now):
				delete(b.entries, id)
			}
		}
		b.mu.Unlock()
	}
	return expired
}
