package commands

import (
	"context"
	"time"

	"parkcore/internal/domain/booking"
	"parkcore/internal/domain/policy"
	"parkcore/internal/domain/pricing"
	"parkcore/internal/domain/slot"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

type ReservationRepository interface {
	Create(ctx context.Context, res *booking.Reservation) error
	Update(ctx context.Context, res *booking.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error)
	// FindExpiredPending returns pending reservations whose hold lapsed at
	// or before now. The store is authoritative here so holds created
	// before a restart still expire.
	FindExpiredPending(ctx context.Context, now time.Time) ([]*booking.Reservation, error)
	// ExpirePending transitions a reservation to EXPIRED only while it is
	// still PENDING in the store, reporting whether the transition hit.
	// Rows a concurrent confirmation already moved on are left untouched.
	ExpirePending(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	// FindOvertimeCandidates returns confirmed reservations whose expected
	// end precedes the cutoff, plus completed ones whose recorded exit ran
	// past their expected end.
	FindOvertimeCandidates(ctx context.Context, cutoff time.Time) ([]*booking.Reservation, error)
	// FindEndingBetween returns confirmed reservations with expected end
	// inside [from, to), feeding the extend-or-incur-fines reminder.
	FindEndingBetween(ctx context.Context, from, to time.Time) ([]*booking.Reservation, error)
	// FindConfirmed returns all confirmed reservations, used to seed the
	// availability index at startup.
	FindConfirmed(ctx context.Context) ([]*booking.Reservation, error)
}

type ExtensionRepository interface {
	Create(ctx context.Context, ext *booking.Extension) error
}

type PaymentRecordRepository interface {
	Create(ctx context.Context, rec *booking.PaymentRecord) error
	// LastSuccessfulCharge returns the most recent successful charge for a
	// reservation; refunds are issued against its gateway transaction.
	LastSuccessfulCharge(ctx context.Context, reservationID uuid.UUID) (*booking.PaymentRecord, error)
}

type FineRepository interface {
	Create(ctx context.Context, fine *booking.Fine) error
	// FindUnpaidOvertime returns the reservation's open overtime fine, nil
	// when none exists.
	FindUnpaidOvertime(ctx context.Context, reservationID uuid.UUID) (*booking.Fine, error)
	UpdateAmount(ctx context.Context, fineID uuid.UUID, amount booking.Money, now time.Time) error
}

type SlotRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*slot.Slot, error)
	FindLocation(ctx context.Context, id uuid.UUID) (*slot.Location, error)
	// FindMaintenanceFrom lists maintenance windows ending at or after the
	// given instant, for seeding the availability index.
	FindMaintenanceFrom(ctx context.Context, from time.Time) ([]*slot.MaintenanceWindow, error)
}

type VehicleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*slot.Vehicle, error)
}

type PricingRepository interface {
	// RulesFor returns the location's rules plus the global ones; the
	// resolver's specificity ordering handles the rest.
	RulesFor(ctx context.Context, locationID uuid.UUID) ([]pricing.Rule, error)
}

type PolicyRepository interface {
	// PolicyFor resolves the cancellation policy for a location, falling
	// back to the global policy; nil when none is configured.
	PolicyFor(ctx context.Context, locationID uuid.UUID) (*policy.Policy, error)
}

type EntryLogRepository interface {
	Create(ctx context.Context, ev *booking.EntryExitEvent) error
}
