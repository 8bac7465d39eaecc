package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"parkcore/internal/availability"
	"parkcore/internal/domain/booking"
	"parkcore/internal/domain/pricing"
	"parkcore/internal/domain/slot"
	"parkcore/internal/infra"
	"parkcore/internal/notify"
	"parkcore/internal/payment"
	"parkcore/internal/pkg/clock"
	"parkcore/internal/pkg/config"
	"parkcore/internal/pkg/errs"
	"parkcore/internal/pkg/gatetoken"
	"parkcore/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound            = errs.New("slot not found")
	ErrVehicleNotFound         = errs.New("vehicle not found")
	ErrLocationNotFound        = errs.New("location not found")
	ErrLocationInactive        = errs.New("location is not active")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrInvalidInterval         = errs.New("invalid interval")
	ErrVehicleClassMismatch    = errs.New("vehicle class not allowed on slot")
	ErrSlotDisabled            = errs.New("slot disabled")
	ErrSlotUnderMaintenance    = errs.New("slot under maintenance")
	ErrSlotUnavailable         = errs.New("slot unavailable for interval")
	ErrExtensionOverlap        = errs.New("extension interval conflicts with another booking")
	ErrPaymentFailed           = errs.New("payment failed")
	ErrAlreadyExpired          = errs.New("hold already expired")
	ErrNotConfirmed            = errs.New("reservation not confirmed")
	ErrAlreadyEntered          = errs.New("entry already recorded")
	ErrNotEntered              = errs.New("entry not recorded")
	ErrAlreadyExited           = errs.New("exit already recorded")
	ErrAlreadyStarted          = errs.New("reservation already started")
	ErrCancelNotAllowed        = errs.New("cancellation not allowed in current state")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
	// ErrReconciliationRequired flags a charge that succeeded while the
	// follow-up persistence failed; money moved, the record did not.
	ErrReconciliationRequired = errs.New("payment succeeded but state update failed, manual reconciliation required")
)

type CreateBookingInput struct {
	SlotID      uuid.UUID
	RequesterID uuid.UUID
	VehicleID   uuid.UUID
	Start       time.Time
	End         time.Time
}

type CreateBookingResult struct {
	Booking   *queries.BookingView
	GateToken string
}

type CancelBookingResult struct {
	Booking     *queries.BookingView
	RefundCents int64
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
	ExtendBooking(ctx context.Context, reservationID uuid.UUID, newEnd time.Time) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, reservationID uuid.UUID) (*CancelBookingResult, error)
	RecordEntry(ctx context.Context, reservationID uuid.UUID, at time.Time) (*queries.BookingView, error)
	RecordExit(ctx context.Context, reservationID uuid.UUID, at time.Time) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	reservations   ReservationRepository
	extensions     ExtensionRepository
	payments       PaymentRecordRepository
	slots          SlotRepository
	vehicles       VehicleRepository
	pricingRules   PricingRepository
	policies       PolicyRepository
	entryLog       EntryLogRepository
	index          *availability.Index
	gateway        payment.Gateway
	gate           *gatetoken.Service
	notifications  notify.Recorder
	bookingQueries queries.BookingQueries
	clock          clock.Clock
	holdFor        time.Duration
	currency       string
}

func NewBookingUseCase(
	reservations ReservationRepository,
	extensions ExtensionRepository,
	payments PaymentRecordRepository,
	slots SlotRepository,
	vehicles VehicleRepository,
	pricingRules PricingRepository,
	policies PolicyRepository,
	entryLog EntryLogRepository,
	index *availability.Index,
	gateway payment.Gateway,
	gate *gatetoken.Service,
	notifications notify.Recorder,
	bookingQueries queries.BookingQueries,
	clock clock.Clock,
	cfg config.Config,
) BookingCommands {
	return &bookingUseCaseImpl{
		reservations:   reservations,
		extensions:     extensions,
		payments:       payments,
		slots:          slots,
		vehicles:       vehicles,
		pricingRules:   pricingRules,
		policies:       policies,
		entryLog:       entryLog,
		index:          index,
		gateway:        gateway,
		gate:           gate,
		notifications:  notifications,
		bookingQueries: bookingQueries,
		clock:          clock,
		holdFor:        cfg.Booking.HoldDuration,
		currency:       cfg.Payment.Currency,
	}
}

// CreateBooking runs the reserve-charge-promote sequence. The interval is
// locked with a pending hold before the charge goes out, so no competitor
// can take it while payment is in flight; a failed charge releases the
// hold, a charge that lands after the hold lapsed is refunded.
func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
	now := u.clock.Now()

	ts, err := booking.NewTimeSlot(in.Start, in.End)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInterval)
	}

	sl, err := u.findSlot(ctx, in.SlotID)
	if err != nil {
		return nil, err
	}

	veh, err := u.vehicles.FindByID(ctx, in.VehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := sl.Validate(veh.Class); err != nil {
		return nil, u.mapSlotErr(err)
	}

	loc, err := u.findLocation(ctx, sl.LocationID)
	if err != nil {
		return nil, err
	}

	quote, err := u.price(ctx, loc.ID, loc.HourlyRateCents, loc.DailyRateCents, ts.Start(), ts.End())
	if err != nil {
		return nil, err
	}

	res := booking.NewReservation(sl.ID, loc.ID, in.RequesterID, in.VehicleID, ts, quote.Fee, now, u.holdFor)

	if err := u.index.Reserve(sl.ID, res.ID(), ts, now, u.holdFor); err != nil {
		return nil, u.mapIndexErr(err)
	}

	if err := u.reservations.Create(ctx, res); err != nil {
		u.index.Release(sl.ID, res.ID())
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	result, err := u.gateway.Charge(ctx, payment.Request{
		ReservationID: res.ID(),
		AmountCents:   quote.Fee.Cents(),
		Currency:      u.currency,
		Description:   fmt.Sprintf("parking %s %s", sl.Code, ts.String()),
	})
	if err != nil || result.Outcome != payment.OutcomeSuccess {
		u.abortUnpaid(ctx, res, result.GatewayTxnID)
		if err != nil {
			return nil, errs.Mark(err, ErrPaymentFailed)
		}
		return nil, ErrPaymentFailed
	}

	now = u.clock.Now()
	if err := u.index.Promote(sl.ID, res.ID(), now); err != nil {
		// The charge landed after the hold lapsed (or the sweep already
		// swept it). Pay back and expire; the slot may belong to someone
		// else by now.
		u.refundLateCharge(ctx, res, result.GatewayTxnID, quote.Fee)
		return nil, errs.Mark(err, ErrAlreadyExpired)
	}

	if err := res.Confirm(now); err != nil {
		return nil, errs.Mark(err, ErrReconciliationRequired)
	}
	if err := u.reservations.Update(ctx, res); err != nil {
		slog.Error("booking confirmed in memory but not persisted",
			"reservation_id", res.ID(), "gateway_txn_id", result.GatewayTxnID, "error", err)
		return nil, errs.Mark(err, ErrReconciliationRequired)
	}

	u.recordPayment(ctx, res.ID(), nil, quote.Fee, booking.DirectionCharge, booking.PaymentSuccess, result.GatewayTxnID, now)
	u.signal(ctx, res, notify.ReasonConfirmed, fmt.Sprintf("booking confirmed for slot %s %s", sl.Code, ts.String()), now)

	token, err := u.gate.Issue(res.ID(), sl.ID, now, ts.End())
	if err != nil {
		slog.Error("failed to issue gate token", "reservation_id", res.ID(), "error", err)
	}

	view, err := u.bookingQueries.GetByID(ctx, res.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &CreateBookingResult{Booking: view, GateToken: token}, nil
}

// ExtendBooking widens a confirmed reservation. Only the added interval is
// checked for conflicts and priced; the existing paid interval is never
// re-priced.
func (u *bookingUseCaseImpl) ExtendBooking(ctx context.Context, reservationID uuid.UUID, newEnd time.Time) (*queries.BookingView, error) {
	now := u.clock.Now()

	res, err := u.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status() != booking.StatusConfirmed {
		return nil, ErrNotConfirmed
	}

	delta, err := u.index.HoldDelta(res.SlotID(), res.ID(), newEnd.UTC(), now, u.holdFor)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidInterval):
			return nil, errs.Mark(err, ErrInvalidInterval)
		case errors.Is(err, availability.ErrNotHeld):
			return nil, errs.Mark(err, ErrNotConfirmed)
		case errors.Is(err, availability.ErrBusy):
			return nil, errs.Mark(err, ErrExtensionOverlap)
		default:
			return nil, u.mapIndexErr(err)
		}
	}

	loc, err := u.findLocation(ctx, res.LocationID())
	if err != nil {
		u.index.ReleaseDelta(res.SlotID(), res.ID())
		return nil, err
	}
	quote, err := u.price(ctx, loc.ID, loc.HourlyRateCents, loc.DailyRateCents, delta.Start(), delta.End())
	if err != nil {
		u.index.ReleaseDelta(res.SlotID(), res.ID())
		return nil, err
	}

	result, err := u.gateway.Charge(ctx, payment.Request{
		ReservationID: res.ID(),
		AmountCents:   quote.Fee.Cents(),
		Currency:      u.currency,
		Description:   fmt.Sprintf("parking extension %s", delta.String()),
	})
	if err != nil || result.Outcome != payment.OutcomeSuccess {
		u.index.ReleaseDelta(res.SlotID(), res.ID())
		u.recordPayment(ctx, res.ID(), nil, quote.Fee, booking.DirectionCharge, booking.PaymentFailed, result.GatewayTxnID, now)
		if err != nil {
			return nil, errs.Mark(err, ErrPaymentFailed)
		}
		return nil, ErrPaymentFailed
	}

	now = u.clock.Now()
	if err := u.index.CommitDelta(res.SlotID(), res.ID(), now); err != nil {
		u.refundLateCharge(ctx, res, result.GatewayTxnID, quote.Fee)
		return nil, errs.Mark(err, ErrAlreadyExpired)
	}

	previousEnd := res.Slot().End()
	if err := res.Extend(delta.End(), quote.Fee, now); err != nil {
		return nil, errs.Mark(err, ErrReconciliationRequired)
	}
	if err := u.reservations.Update(ctx, res); err != nil {
		slog.Error("extension charged but not persisted",
			"reservation_id", res.ID(), "gateway_txn_id", result.GatewayTxnID, "error", err)
		return nil, errs.Mark(err, ErrReconciliationRequired)
	}

	ext := booking.NewExtension(res.ID(), previousEnd, delta.End(), quote.Fee, now)
	if err := u.extensions.Create(ctx, ext); err != nil {
		slog.Error("failed to persist extension record", "reservation_id", res.ID(), "error", err)
	}
	u.recordPayment(ctx, res.ID(), &ext.ID, quote.Fee, booking.DirectionCharge, booking.PaymentSuccess, result.GatewayTxnID, now)

	return u.bookingQueries.GetByID(ctx, res.ID())
}

// CancelBooking cancels a pending or confirmed reservation and refunds the
// paid amount per the location's cancellation policy. Cancelling after an
// entry was recorded is refused.
func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, reservationID uuid.UUID) (*CancelBookingResult, error) {
	now := u.clock.Now()

	res, err := u.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.HasEntered() {
		return nil, ErrAlreadyEntered
	}
	if !res.Status().CanTransition(booking.EventCancel) {
		return nil, ErrCancelNotAllowed
	}

	refund := booking.NewMoney(0)
	if res.Status() == booking.StatusConfirmed && !res.AmountPaid().IsZero() {
		refund, err = u.computeRefund(ctx, res, now)
		if err != nil {
			return nil, err
		}
		if !refund.IsZero() {
			if err := u.issueRefund(ctx, res, refund, now); err != nil {
				return nil, err
			}
		}
	}

	if err := res.Cancel(now); err != nil {
		return nil, errs.Mark(err, ErrCancelNotAllowed)
	}
	res.ApplyRefund(refund, now)
	u.index.Release(res.SlotID(), res.ID())

	if err := u.reservations.Update(ctx, res); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	u.signal(ctx, res, notify.ReasonCancelled,
		fmt.Sprintf("booking cancelled, refund %d cents", refund.Cents()), now)

	view, err := u.bookingQueries.GetByID(ctx, res.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &CancelBookingResult{Booking: view, RefundCents: refund.Cents()}, nil
}

// RecordEntry stamps the gate scan on the reservation. The timestamp comes
// from the scanner, not from this process's clock.
func (u *bookingUseCaseImpl) RecordEntry(ctx context.Context, reservationID uuid.UUID, at time.Time) (*queries.BookingView, error) {
	res, err := u.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if err := res.RecordEntry(at); err != nil {
		switch {
		case errors.Is(err, booking.ErrNotConfirmed):
			return nil, errs.Mark(err, ErrNotConfirmed)
		case errors.Is(err, booking.ErrAlreadyEntered):
			return nil, errs.Mark(err, ErrAlreadyEntered)
		default:
			return nil, err
		}
	}

	if err := u.reservations.Update(ctx, res); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	u.logGateEvent(ctx, res.ID(), booking.KindEntry, at)

	return u.bookingQueries.GetByID(ctx, res.ID())
}

// RecordExit stamps the exit scan and completes the reservation. An exit
// past the expected end is accepted here; the sweep issues the fine.
func (u *bookingUseCaseImpl) RecordExit(ctx context.Context, reservationID uuid.UUID, at time.Time) (*queries.BookingView, error) {
	res, err := u.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if err := res.RecordExit(at); err != nil {
		switch {
		case errors.Is(err, booking.ErrNotEntered):
			return nil, errs.Mark(err, ErrNotEntered)
		case errors.Is(err, booking.ErrAlreadyExited):
			return nil, errs.Mark(err, ErrAlreadyExited)
		default:
			return nil, err
		}
	}

	// The vehicle is gone; the remainder of the interval goes back on the
	// market immediately.
	u.index.Release(res.SlotID(), res.ID())

	if err := u.reservations.Update(ctx, res); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	u.logGateEvent(ctx, res.ID(), booking.KindExit, at)

	return u.bookingQueries.GetByID(ctx, res.ID())
}

func (u *bookingUseCaseImpl) findSlot(ctx context.Context, id uuid.UUID) (*slot.Slot, error) {
	sl, err := u.slots.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return sl, nil
}

func (u *bookingUseCaseImpl) findLocation(ctx context.Context, id uuid.UUID) (*slot.Location, error) {
	loc, err := u.slots.FindLocation(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !loc.IsActive {
		return nil, ErrLocationInactive
	}
	return loc, nil
}

func (u *bookingUseCaseImpl) findReservation(ctx context.Context, id uuid.UUID) (*booking.Reservation, error) {
	res, err := u.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return res, nil
}

func (u *bookingUseCaseImpl) price(ctx context.Context, locationID uuid.UUID, hourlyCents, dailyCents int64, start, end time.Time) (*pricing.Quote, error) {
	rules, err := u.pricingRules.RulesFor(ctx, locationID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	quote, err := pricing.Compute(start, end, hourlyCents, dailyCents, rules)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInterval)
	}
	return quote, nil
}

func (u *bookingUseCaseImpl) computeRefund(ctx context.Context, res *booking.Reservation, now time.Time) (booking.Money, error) {
	pol, err := u.policies.PolicyFor(ctx, res.LocationID())
	if err != nil {
		return booking.Money{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if pol == nil {
		// No policy configured means no refund; the cancellation itself
		// still goes through.
		return booking.NewMoney(0), nil
	}
	fraction, err := pol.RefundFraction(res.Slot().Start(), now)
	if err != nil {
		return booking.Money{}, errs.Mark(err, ErrAlreadyStarted)
	}
	return res.AmountPaid().MulFraction(fraction), nil
}

func (u *bookingUseCaseImpl) issueRefund(ctx context.Context, res *booking.Reservation, refund booking.Money, now time.Time) error {
	charge, err := u.payments.LastSuccessfulCharge(ctx, res.ID())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	result, err := u.gateway.Refund(ctx, payment.Request{
		ReservationID: res.ID(),
		AmountCents:   refund.Cents(),
		Currency:      u.currency,
		Reference:     charge.GatewayTxnID,
	})
	if err != nil || result.Outcome != payment.OutcomeSuccess {
		u.recordPayment(ctx, res.ID(), nil, refund, booking.DirectionRefund, booking.PaymentFailed, result.GatewayTxnID, now)
		if err != nil {
			return errs.Mark(err, ErrPaymentFailed)
		}
		return ErrPaymentFailed
	}
	u.recordPayment(ctx, res.ID(), nil, refund, booking.DirectionRefund, booking.PaymentSuccess, result.GatewayTxnID, now)
	return nil
}

// abortUnpaid unwinds a reservation whose initial charge never succeeded:
// the hold is released and the record cancelled.
func (u *bookingUseCaseImpl) abortUnpaid(ctx context.Context, res *booking.Reservation, gatewayTxnID string) {
	now := u.clock.Now()
	u.index.Release(res.SlotID(), res.ID())
	u.recordPayment(ctx, res.ID(), nil, res.Fee(), booking.DirectionCharge, booking.PaymentFailed, gatewayTxnID, now)
	if err := res.Cancel(now); err != nil {
		slog.Error("failed to cancel unpaid reservation", "reservation_id", res.ID(), "error", err)
		return
	}
	if err := u.reservations.Update(ctx, res); err != nil {
		slog.Error("failed to persist cancelled unpaid reservation", "reservation_id", res.ID(), "error", err)
	}
}

// refundLateCharge pays back a charge that landed after its hold lapsed and
// expires the reservation.
func (u *bookingUseCaseImpl) refundLateCharge(ctx context.Context, res *booking.Reservation, gatewayTxnID string, amount booking.Money) {
	now := u.clock.Now()
	result, err := u.gateway.Refund(ctx, payment.Request{
		ReservationID: res.ID(),
		AmountCents:   amount.Cents(),
		Currency:      u.currency,
		Reference:     gatewayTxnID,
	})
	status := booking.PaymentSuccess
	if err != nil || result.Outcome != payment.OutcomeSuccess {
		status = booking.PaymentFailed
		slog.Error("failed to refund late charge, manual reconciliation required",
			"reservation_id", res.ID(), "gateway_txn_id", gatewayTxnID, "error", err)
	}
	u.recordPayment(ctx, res.ID(), nil, amount, booking.DirectionRefund, status, result.GatewayTxnID, now)

	if res.Status() == booking.StatusPending {
		if err := res.Expire(now); err != nil {
			slog.Error("failed to expire reservation", "reservation_id", res.ID(), "error", err)
			return
		}
		if err := u.reservations.Update(ctx, res); err != nil {
			slog.Error("failed to persist expired reservation", "reservation_id", res.ID(), "error", err)
		}
	}
}

func (u *bookingUseCaseImpl) recordPayment(
	ctx context.Context,
	reservationID uuid.UUID,
	extensionID *uuid.UUID,
	amount booking.Money,
	direction booking.PaymentDirection,
	status booking.PaymentStatus,
	gatewayTxnID string,
	now time.Time,
) {
	rec := &booking.PaymentRecord{
		ID:            uuid.New(),
		ReservationID: reservationID,
		ExtensionID:   extensionID,
		Amount:        amount,
		Direction:     direction,
		Status:        status,
		GatewayTxnID:  gatewayTxnID,
		CreatedAt:     now,
	}
	if err := u.payments.Create(ctx, rec); err != nil {
		slog.Error("failed to persist payment record", "reservation_id", reservationID, "error", err)
	}
}

func (u *bookingUseCaseImpl) signal(ctx context.Context, res *booking.Reservation, reason notify.Reason, msg string, now time.Time) {
	sig := notify.Signal{
		ReservationID: res.ID(),
		RequesterID:   res.RequesterID(),
		Reason:        reason,
		Message:       msg,
		EmittedAt:     now,
	}
	if err := u.notifications.Record(ctx, sig); err != nil {
		slog.Warn("failed to record notification signal", "reservation_id", res.ID(), "reason", reason, "error", err)
	}
}

func (u *bookingUseCaseImpl) logGateEvent(ctx context.Context, reservationID uuid.UUID, kind booking.EventKind, at time.Time) {
	ev := &booking.EntryExitEvent{
		ID:            uuid.New(),
		ReservationID: reservationID,
		Kind:          kind,
		OccurredAt:    at.UTC(),
	}
	if err := u.entryLog.Create(ctx, ev); err != nil {
		slog.Error("failed to persist gate event", "reservation_id", reservationID, "kind", kind, "error", err)
	}
}

func (u *bookingUseCaseImpl) mapSlotErr(err error) error {
	switch {
	case errors.Is(err, slot.ErrSlotDisabled):
		return errs.Mark(err, ErrSlotDisabled)
	case errors.Is(err, slot.ErrVehicleClassMismatch):
		return errs.Mark(err, ErrVehicleClassMismatch)
	default:
		return err
	}
}

func (u *bookingUseCaseImpl) mapIndexErr(err error) error {
	switch {
	case errors.Is(err, availability.ErrUnderMaintenance):
		return errs.Mark(err, ErrSlotUnderMaintenance)
	case errors.Is(err, availability.ErrBusy):
		return errs.Mark(err, ErrSlotUnavailable)
	case errors.Is(err, booking.ErrInvalidInterval):
		return errs.Mark(err, ErrInvalidInterval)
	default:
		return errs.Mark(err, ErrSlotUnavailable)
	}
}
