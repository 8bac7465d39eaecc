package queries

import (
	"context"
	"time"

	"parkcore/internal/availability"
	"parkcore/internal/domain/booking"
	"parkcore/internal/domain/pricing"
	"parkcore/internal/infra"
	"parkcore/internal/pkg/clock"
	"parkcore/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrLocationNotFound = errs.New("location not found")
)

// BookingReadStore is the read-side port; implementations assemble views
// straight from the store.
type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*BookingView, error)
}

type LocationReadStore interface {
	FindRates(ctx context.Context, locationID uuid.UUID) (hourlyCents, dailyCents int64, err error)
	FindRules(ctx context.Context, locationID uuid.UUID) ([]pricing.Rule, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*BookingView, error)
	SlotAvailability(ctx context.Context, slotID uuid.UUID, from, to time.Time) (*SlotAvailabilityView, error)
	QuotePreview(ctx context.Context, locationID uuid.UUID, from, to time.Time) (*QuoteView, error)
}

type bookingQueriesImpl struct {
	store     BookingReadStore
	locations LocationReadStore
	index     *availability.Index
	clock     clock.Clock
}

func NewBookingQueries(store BookingReadStore, locations LocationReadStore, index *availability.Index, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, locations: locations, index: index, clock: clock}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}
	view.Overtime = view.ActualExit != nil && view.ActualExit.After(view.End) ||
		view.ActualExit == nil && view.Status == booking.StatusConfirmed.String() && q.clock.Now().After(view.End)
	return view, nil
}

func (q *bookingQueriesImpl) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*BookingView, error) {
	return q.store.FindByRequester(ctx, requesterID)
}

// SlotAvailability answers "is slot S free for [from, to)?" against the
// live index, so lapsed holds already read as free before any sweep.
func (q *bookingQueriesImpl) SlotAvailability(_ context.Context, slotID uuid.UUID, from, to time.Time) (*SlotAvailabilityView, error) {
	ts, err := booking.NewTimeSlot(from, to)
	if err != nil {
		return nil, err
	}
	return &SlotAvailabilityView{
		SlotID: slotID,
		From:   ts.Start(),
		To:     ts.End(),
		Free:   q.index.IsFree(slotID, ts, q.clock.Now(), uuid.Nil),
	}, nil
}

// QuotePreview prices an interval without booking anything; the same
// computation CreateBooking runs, exposed for "what would this cost".
func (q *bookingQueriesImpl) QuotePreview(ctx context.Context, locationID uuid.UUID, from, to time.Time) (*QuoteView, error) {
	hourly, daily, err := q.locations.FindRates(ctx, locationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrLocationNotFound)
		}
		return nil, err
	}
	rules, err := q.locations.FindRules(ctx, locationID)
	if err != nil {
		return nil, err
	}
	quote, err := pricing.Compute(from, to, hourly, daily, rules)
	if err != nil {
		return nil, err
	}

	view := &QuoteView{
		LocationID: locationID,
		From:       from.UTC(),
		To:         to.UTC(),
		FeeCents:   quote.Fee.Cents(),
		DayUnits:   quote.DayUnits,
	}
	for _, seg := range quote.Segments {
		view.Segments = append(view.Segments, QuoteSegmentView{
			Start:      seg.Start,
			End:        seg.End,
			RuleID:     seg.RuleID,
			Multiplier: seg.Multiplier.String(),
			Amount:     seg.Amount.StringFixed(4),
		})
	}
	return view, nil
}
