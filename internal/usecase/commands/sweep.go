package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"parkcore/internal/availability"
	"parkcore/internal/domain/booking"
	"parkcore/internal/notify"
	"parkcore/internal/pkg/config"
	"parkcore/internal/pkg/errs"
)

var ErrSweepRunning = errs.New("sweep already running")

// SweepReport summarizes one pass. Every counter is work actually done, so
// a second pass over the same instant reports all zeros.
type SweepReport struct {
	ExpiredHolds  int
	FinesIssued   int
	FinesRaised   int
	RemindersSent int
}

type SweepCommands interface {
	// Sweep expires lapsed holds, issues or raises overtime fines and
	// emits end-of-stay reminders, all as of the injected instant. It is
	// idempotent: re-running with the same now changes nothing.
	Sweep(ctx context.Context, now time.Time) (*SweepReport, error)
}

type sweepUseCaseImpl struct {
	mu            sync.Mutex
	reservations  ReservationRepository
	fines         FineRepository
	index         *availability.Index
	notifications notify.Recorder
	grace         time.Duration
	lookahead     time.Duration
	overtimeRate  int64 // cents per started hour
}

func NewSweepUseCase(
	reservations ReservationRepository,
	fines FineRepository,
	index *availability.Index,
	notifications notify.Recorder,
	cfg config.Config,
) SweepCommands {
	return &sweepUseCaseImpl{
		reservations:  reservations,
		fines:         fines,
		index:         index,
		notifications: notifications,
		grace:         cfg.Sweep.GraceWindow,
		lookahead:     cfg.Sweep.ReminderLookahead,
		overtimeRate:  cfg.Sweep.OvertimeRateCents,
	}
}

func (u *sweepUseCaseImpl) Sweep(ctx context.Context, now time.Time) (*SweepReport, error) {
	if !u.mu.TryLock() {
		return nil, ErrSweepRunning
	}
	defer u.mu.Unlock()

	now = now.UTC()
	report := &SweepReport{}

	if err := u.expireHolds(ctx, now, report); err != nil {
		return nil, err
	}
	if err := u.sweepOvertime(ctx, now, report); err != nil {
		return nil, err
	}
	if err := u.sendReminders(ctx, now, report); err != nil {
		return nil, err
	}

	slog.Info("sweep finished",
		"at", now,
		"expired_holds", report.ExpiredHolds,
		"fines_issued", report.FinesIssued,
		"fines_raised", report.FinesRaised,
		"reminders_sent", report.RemindersSent,
	)
	return report, nil
}

// expireHolds transitions pending reservations whose hold lapsed. The store
// is the source of truth; ExpireDue prunes the index under each slot's lock
// and never touches entries a concurrent charge already promoted.
func (u *sweepUseCaseImpl) expireHolds(ctx context.Context, now time.Time, report *SweepReport) error {
	u.index.ExpireDue(now)

	lapsed, err := u.reservations.FindExpiredPending(ctx, now)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	for _, res := range lapsed {
		if !res.HoldExpired(now) {
			continue
		}
		// Conditional transition: a row the booking path confirmed between
		// our read and this write is skipped, not overwritten.
		expired, err := u.reservations.ExpirePending(ctx, res.ID(), now)
		if err != nil {
			slog.Error("failed to expire lapsed hold", "reservation_id", res.ID(), "error", err)
			continue
		}
		if !expired {
			continue
		}
		report.ExpiredHolds++
	}
	return nil
}

// sweepOvertime issues one UNPAID overtime fine per overdue reservation and
// grows it while the vehicle stays. Amounts never shrink, and a fine whose
// overage stopped growing (the vehicle left) is left alone.
func (u *sweepUseCaseImpl) sweepOvertime(ctx context.Context, now time.Time, report *SweepReport) error {
	candidates, err := u.reservations.FindOvertimeCandidates(ctx, now.Add(-u.grace))
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	for _, res := range candidates {
		if !res.Overdue(now, u.grace) {
			continue
		}
		amount := u.overtimeAmount(res.OvertimeBy(now))
		if amount.IsZero() {
			continue
		}

		existing, err := u.fines.FindUnpaidOvertime(ctx, res.ID())
		if err != nil {
			slog.Error("failed to look up overtime fine", "reservation_id", res.ID(), "error", err)
			continue
		}

		switch {
		case existing == nil:
			fine := booking.NewFine(res.ID(), amount, "OVERTIME", now)
			if err := u.fines.Create(ctx, fine); err != nil {
				slog.Error("failed to create overtime fine", "reservation_id", res.ID(), "error", err)
				continue
			}
			report.FinesIssued++
			u.signalFine(ctx, res, amount, now)

		case amount.Cents() > existing.Amount.Cents():
			if err := u.fines.UpdateAmount(ctx, existing.ID, amount, now); err != nil {
				slog.Error("failed to raise overtime fine", "fine_id", existing.ID, "error", err)
				continue
			}
			report.FinesRaised++
		}
	}
	return nil
}

// overtimeAmount charges every started hour of overage.
func (u *sweepUseCaseImpl) overtimeAmount(overBy time.Duration) booking.Money {
	if overBy <= 0 {
		return booking.NewMoney(0)
	}
	hours := int64(overBy / time.Hour)
	if overBy%time.Hour != 0 {
		hours++
	}
	return booking.NewMoney(hours * u.overtimeRate)
}

// sendReminders signals confirmed reservations whose expected end falls
// within the lookahead window, prompting an extension before overtime fines
// start. One reminder per reservation: the notification log is the dedupe
// source.
func (u *sweepUseCaseImpl) sendReminders(ctx context.Context, now time.Time, report *SweepReport) error {
	upcoming, err := u.reservations.FindEndingBetween(ctx, now, now.Add(u.lookahead))
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	for _, res := range upcoming {
		sent, err := u.notifications.Exists(ctx, res.ID(), notify.ReasonReminder)
		if err != nil {
			slog.Error("failed to check reminder dedupe", "reservation_id", res.ID(), "error", err)
			continue
		}
		if sent {
			continue
		}
		sig := notify.Signal{
			ReservationID: res.ID(),
			RequesterID:   res.RequesterID(),
			Reason:        notify.ReasonReminder,
			Message:       fmt.Sprintf("parking ends at %s, extend to avoid overtime fines", res.Slot().End().Format(time.RFC3339)),
			EmittedAt:     now,
		}
		if err := u.notifications.Record(ctx, sig); err != nil {
			slog.Error("failed to record reminder", "reservation_id", res.ID(), "error", err)
			continue
		}
		report.RemindersSent++
	}
	return nil
}

func (u *sweepUseCaseImpl) signalFine(ctx context.Context, res *booking.Reservation, amount booking.Money, now time.Time) {
	sig := notify.Signal{
		ReservationID: res.ID(),
		RequesterID:   res.RequesterID(),
		Reason:        notify.ReasonFine,
		Message:       fmt.Sprintf("overtime fine of %d cents issued", amount.Cents()),
		EmittedAt:     now,
	}
	if err := u.notifications.Record(ctx, sig); err != nil {
		slog.Warn("failed to record fine notification", "reservation_id", res.ID(), "error", err)
	}
}
