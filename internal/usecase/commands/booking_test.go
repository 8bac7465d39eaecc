//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"parkcore/internal/availability"
	"parkcore/internal/domain/booking"
	"parkcore/internal/domain/policy"
	"parkcore/internal/domain/slot"
	"parkcore/internal/infra"
	"parkcore/internal/payment"
	"parkcore/internal/pkg/clock"
	"parkcore/internal/pkg/config"
	"parkcore/internal/pkg/gatetoken"
	"parkcore/internal/usecase/commands"
	"parkcore/internal/usecase/queries"
	"parkcore/tests/common/builder"
	commandsmock "parkcore/tests/mock/commands"
	notifymock "parkcore/tests/mock/notify"
	queriesmock "parkcore/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// chargeHook lets a test run code between the charge going out and the
// promote check, e.g. to lapse the hold while payment is in flight.
type chargeHook struct {
	payment.Gateway
	onCharge func()
}

func (g *chargeHook) Charge(ctx context.Context, req payment.Request) (payment.Result, error) {
	if g.onCharge != nil {
		g.onCharge()
	}
	return g.Gateway.Charge(ctx, req)
}

type BookingUseCaseTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	reservations  *commandsmock.MockReservationRepository
	extensions    *commandsmock.MockExtensionRepository
	payments      *commandsmock.MockPaymentRecordRepository
	slots         *commandsmock.MockSlotRepository
	vehicles      *commandsmock.MockVehicleRepository
	pricingRules  *commandsmock.MockPricingRepository
	policies      *commandsmock.MockPolicyRepository
	entryLog      *commandsmock.MockEntryLogRepository
	notifications *notifymock.MockRecorder
	bookingViews  *queriesmock.MockBookingQueries
	index         *availability.Index
	stub          *payment.StubGateway
	hook          *chargeHook
	clk           *clock.MockClock
	uc            commands.BookingCommands
	b             *builder.ReservationBuilder
}

func (s *BookingUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.reservations = commandsmock.NewMockReservationRepository(s.ctrl)
	s.extensions = commandsmock.NewMockExtensionRepository(s.ctrl)
	s.payments = commandsmock.NewMockPaymentRecordRepository(s.ctrl)
	s.slots = commandsmock.NewMockSlotRepository(s.ctrl)
	s.vehicles = commandsmock.NewMockVehicleRepository(s.ctrl)
	s.pricingRules = commandsmock.NewMockPricingRepository(s.ctrl)
	s.policies = commandsmock.NewMockPolicyRepository(s.ctrl)
	s.entryLog = commandsmock.NewMockEntryLogRepository(s.ctrl)
	s.notifications = notifymock.NewMockRecorder(s.ctrl)
	s.bookingViews = queriesmock.NewMockBookingQueries(s.ctrl)

	s.index = availability.NewIndex()
	s.stub = payment.NewStubGateway(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.hook = &chargeHook{Gateway: s.stub}

	s.b = builder.NewReservationBuilder()
	s.clk = clock.NewMockClock(s.b.Now)

	cfg := config.NewTestConfig()
	gate := gatetoken.NewService(cfg.Gate.TokenSecret, cfg.Gate.TokenLifetime)
	s.uc = commands.NewBookingUseCase(
		s.reservations, s.extensions, s.payments, s.slots, s.vehicles,
		s.pricingRules, s.policies, s.entryLog,
		s.index, s.hook, gate, s.notifications, s.bookingViews, s.clk, cfg,
	)
}

func (s *BookingUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(BookingUseCaseTestSuite))
}

func notFoundErr() error {
	return infra.WrapRepoErr("not found", errors.New("no rows in result set"), infra.KindNotFound)
}

func (s *BookingUseCaseTestSuite) createInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		SlotID:      s.b.SlotID,
		RequesterID: s.b.RequesterID,
		VehicleID:   s.b.VehicleID,
		Start:       s.b.Start,
		End:         s.b.End,
	}
}

func (s *BookingUseCaseTestSuite) expectLookups() {
	s.slots.EXPECT().FindByID(gomock.Any(), s.b.SlotID).Return(s.b.BuildSlot(), nil)
	s.vehicles.EXPECT().FindByID(gomock.Any(), s.b.VehicleID).Return(s.b.BuildVehicle(), nil)
	s.slots.EXPECT().FindLocation(gomock.Any(), s.b.LocationID).Return(s.b.BuildLocation(), nil)
	s.pricingRules.EXPECT().RulesFor(gomock.Any(), s.b.LocationID).Return(nil, nil)
}

func (s *BookingUseCaseTestSuite) expectView() {
	s.bookingViews.EXPECT().GetByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
			return &queries.BookingView{ID: id}, nil
		})
}

// ================================================================================
// CreateBooking
// ================================================================================

func (s *BookingUseCaseTestSuite) TestCreateBooking() {
	s.Run("success charges, confirms and locks the interval", func() {
		s.expectLookups()
		var created *booking.Reservation
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, res *booking.Reservation) error {
				created = res
				return nil
			})
		s.reservations.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.notifications.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
		s.expectView()

		result, err := s.uc.CreateBooking(context.Background(), s.createInput())
		s.Require().NoError(err)
		s.Require().NotNil(result)
		s.NotEmpty(result.GateToken)
		s.Equal(created.ID(), result.Booking.ID)
		s.Equal(booking.StatusConfirmed, created.Status())
		// 3h at 500c/h
		s.Equal(int64(1500), created.Fee().Cents())

		ts, err := s.b.Interval()
		s.Require().NoError(err)
		s.False(s.index.IsFree(s.b.SlotID, ts, s.clk.Now(), uuid.Nil))
		s.index.Release(s.b.SlotID, created.ID())
	})

	s.Run("declined charge releases the hold and cancels", func() {
		s.stub.FailCharges(true)
		defer s.stub.FailCharges(false)

		s.expectLookups()
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.reservations.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, res *booking.Reservation) error {
				s.Equal(booking.StatusCancelled, res.Status())
				return nil
			})
		var recorded *booking.PaymentRecord
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec *booking.PaymentRecord) error {
				recorded = rec
				return nil
			})

		_, err := s.uc.CreateBooking(context.Background(), s.createInput())
		s.Require().ErrorIs(err, commands.ErrPaymentFailed)
		s.Require().NotNil(recorded)
		s.Equal(booking.PaymentFailed, recorded.Status)
		s.Equal(booking.DirectionCharge, recorded.Direction)

		ts, tsErr := s.b.Interval()
		s.Require().NoError(tsErr)
		s.True(s.index.IsFree(s.b.SlotID, ts, s.clk.Now(), uuid.Nil))
	})

	s.Run("hold lapsing during the charge refunds and expires", func() {
		s.hook.onCharge = func() { s.clk.Add(s.b.HoldFor) }
		defer func() { s.hook.onCharge = nil }()

		s.expectLookups()
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.reservations.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, res *booking.Reservation) error {
				s.Equal(booking.StatusExpired, res.Status())
				return nil
			})
		var refund *booking.PaymentRecord
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec *booking.PaymentRecord) error {
				if rec.Direction == booking.DirectionRefund {
					refund = rec
				}
				return nil
			})

		_, err := s.uc.CreateBooking(context.Background(), s.createInput())
		s.Require().ErrorIs(err, commands.ErrAlreadyExpired)
		s.Require().NotNil(refund)
		s.Equal(booking.PaymentSuccess, refund.Status)
		s.Equal(int64(1500), refund.Amount.Cents())
	})

	s.Run("busy interval is refused before any charge", func() {
		ts, err := s.b.Interval()
		s.Require().NoError(err)
		neighbour := uuid.New()
		s.Require().NoError(s.index.Reserve(s.b.SlotID, neighbour, ts, s.clk.Now(), s.b.HoldFor))
		defer s.index.Release(s.b.SlotID, neighbour)

		s.expectLookups()
		_, err = s.uc.CreateBooking(context.Background(), s.createInput())
		s.ErrorIs(err, commands.ErrSlotUnavailable)
	})

	s.Run("maintenance window blocks the interval", func() {
		ts, err := s.b.Interval()
		s.Require().NoError(err)
		s.index.AddMaintenance(s.b.SlotID, ts)

		s.expectLookups()
		_, err = s.uc.CreateBooking(context.Background(), s.createInput())
		s.ErrorIs(err, commands.ErrSlotUnderMaintenance)
	})

	s.Run("validation failures", func() {
		cases := []struct {
			name   string
			expect func()
			mutate func(*commands.CreateBookingInput)
			errIs  error
		}{
			{
				name:   "inverted interval",
				expect: func() {},
				mutate: func(in *commands.CreateBookingInput) { in.End = in.Start },
				errIs:  commands.ErrInvalidInterval,
			},
			{
				name: "unknown slot",
				expect: func() {
					s.slots.EXPECT().FindByID(gomock.Any(), s.b.SlotID).Return(nil, notFoundErr())
				},
				errIs: commands.ErrSlotNotFound,
			},
			{
				name: "unknown vehicle",
				expect: func() {
					s.slots.EXPECT().FindByID(gomock.Any(), s.b.SlotID).Return(s.b.BuildSlot(), nil)
					s.vehicles.EXPECT().FindByID(gomock.Any(), s.b.VehicleID).Return(nil, notFoundErr())
				},
				errIs: commands.ErrVehicleNotFound,
			},
			{
				name: "disabled slot",
				expect: func() {
					sl := s.b.BuildSlot()
					sl.Status = slot.StatusDisabled
					s.slots.EXPECT().FindByID(gomock.Any(), s.b.SlotID).Return(sl, nil)
					s.vehicles.EXPECT().FindByID(gomock.Any(), s.b.VehicleID).Return(s.b.BuildVehicle(), nil)
				},
				errIs: commands.ErrSlotDisabled,
			},
			{
				name: "vehicle class mismatch",
				expect: func() {
					sl := s.b.BuildSlot()
					sl.AllowedClass = slot.ClassTwoWheeler
					s.slots.EXPECT().FindByID(gomock.Any(), s.b.SlotID).Return(sl, nil)
					s.vehicles.EXPECT().FindByID(gomock.Any(), s.b.VehicleID).Return(s.b.BuildVehicle(), nil)
				},
				errIs: commands.ErrVehicleClassMismatch,
			},
			{
				name: "inactive location",
				expect: func() {
					loc := s.b.BuildLocation()
					loc.IsActive = false
					s.slots.EXPECT().FindByID(gomock.Any(), s.b.SlotID).Return(s.b.BuildSlot(), nil)
					s.vehicles.EXPECT().FindByID(gomock.Any(), s.b.VehicleID).Return(s.b.BuildVehicle(), nil)
					s.slots.EXPECT().FindLocation(gomock.Any(), s.b.LocationID).Return(loc, nil)
				},
				errIs: commands.ErrLocationInactive,
			},
		}
		for _, c := range cases {
			s.Run(c.name, func() {
				in := s.createInput()
				if c.mutate != nil {
					c.mutate(&in)
				}
				c.expect()
				_, err := s.uc.CreateBooking(context.Background(), in)
				s.ErrorIs(err, c.errIs)
			})
		}
	})
}

// ================================================================================
// ExtendBooking
// ================================================================================

// confirmedInIndex builds a confirmed reservation and seeds its interval
// into the index the way startup seeding does.
func (s *BookingUseCaseTestSuite) confirmedInIndex() *booking.Reservation {
	res, err := s.b.BuildConfirmed()
	s.Require().NoError(err)
	s.index.SeedConfirmed(res.SlotID(), res.ID(), res.Slot())
	return res
}

func (s *BookingUseCaseTestSuite) TestExtendBooking() {
	newEnd := s.b.End.Add(2 * time.Hour)

	s.Run("success charges only the added interval", func() {
		res := s.confirmedInIndex()
		defer s.index.Release(res.SlotID(), res.ID())

		s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)
		s.slots.EXPECT().FindLocation(gomock.Any(), s.b.LocationID).Return(s.b.BuildLocation(), nil)
		s.pricingRules.EXPECT().RulesFor(gomock.Any(), s.b.LocationID).Return(nil, nil)
		s.reservations.EXPECT().Update(gomock.Any(), res).Return(nil)
		var ext *booking.Extension
		s.extensions.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *booking.Extension) error {
				ext = e
				return nil
			})
		var charge *booking.PaymentRecord
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec *booking.PaymentRecord) error {
				charge = rec
				return nil
			})
		s.expectView()

		view, err := s.uc.ExtendBooking(context.Background(), res.ID(), newEnd)
		s.Require().NoError(err)
		s.Equal(res.ID(), view.ID)

		// 2 added hours at 500c/h, on top of the original 1500
		s.Equal(int64(2500), res.Fee().Cents())
		s.Equal(newEnd, res.Slot().End())
		s.Require().NotNil(ext)
		s.Equal(s.b.End, ext.PreviousEnd)
		s.Equal(int64(1000), ext.ExtraFee.Cents())
		s.Require().NotNil(charge)
		s.Require().NotNil(charge.ExtensionID)
		s.Equal(ext.ID, *charge.ExtensionID)
	})

	s.Run("conflicting neighbour blocks the extension", func() {
		res := s.confirmedInIndex()
		defer s.index.Release(res.SlotID(), res.ID())

		tail, err := booking.NewTimeSlot(s.b.End, s.b.End.Add(time.Hour))
		s.Require().NoError(err)
		neighbour := uuid.New()
		s.Require().NoError(s.index.Reserve(res.SlotID(), neighbour, tail, s.clk.Now(), s.b.HoldFor))
		defer s.index.Release(res.SlotID(), neighbour)

		s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)
		_, err = s.uc.ExtendBooking(context.Background(), res.ID(), newEnd)
		s.ErrorIs(err, commands.ErrExtensionOverlap)
	})

	s.Run("declined charge releases the delta", func() {
		res := s.confirmedInIndex()
		defer s.index.Release(res.SlotID(), res.ID())

		s.stub.FailCharges(true)
		defer s.stub.FailCharges(false)

		s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)
		s.slots.EXPECT().FindLocation(gomock.Any(), s.b.LocationID).Return(s.b.BuildLocation(), nil)
		s.pricingRules.EXPECT().RulesFor(gomock.Any(), s.b.LocationID).Return(nil, nil)
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.uc.ExtendBooking(context.Background(), res.ID(), newEnd)
		s.Require().ErrorIs(err, commands.ErrPaymentFailed)

		tail, tsErr := booking.NewTimeSlot(s.b.End, newEnd)
		s.Require().NoError(tsErr)
		s.True(s.index.IsFree(res.SlotID(), tail, s.clk.Now(), uuid.Nil))
	})

	s.Run("pending reservation cannot extend", func() {
		res, err := s.b.BuildPending()
		s.Require().NoError(err)
		s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)

		_, err = s.uc.ExtendBooking(context.Background(), res.ID(), newEnd)
		s.ErrorIs(err, commands.ErrNotConfirmed)
	})

	s.Run("shrinking is refused", func() {
		res := s.confirmedInIndex()
		defer s.index.Release(res.SlotID(), res.ID())

		s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)
		_, err := s.uc.ExtendBooking(context.Background(), res.ID(), s.b.End.Add(-time.Hour))
		s.ErrorIs(err, commands.ErrInvalidInterval)
	})
}

// ================================================================================
// CancelBooking
// ================================================================================

func (s *BookingUseCaseTestSuite) standardPolicy() *policy.Policy {
	full, err := decimal.NewFromString("1")
	s.Require().NoError(err)
	half, err := decimal.NewFromString("0.5")
	s.Require().NoError(err)
	p, err := policy.New(uuid.New(), nil, []policy.Band{
		{MinLead: 24 * time.Hour, RefundFraction: full},
		{MinLead: time.Hour, RefundFraction: half},
	})
	s.Require().NoError(err)
	return p
}

func (s *BookingUseCaseTestSuite) TestCancelBooking() {
	s.Run("confirmed booking refunds per policy band", func() {
		res := s.confirmedInIndex()

		// cancelling 2h ahead of start lands in the 50% band
		s.policies.EXPECT().PolicyFor(gomock.Any(), s.b.LocationID).Return(s.standardPolicy(), nil)
		s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)
		s.payments.EXPECT().LastSuccessfulCharge(gomock.Any(), res.ID()).
			Return(&booking.PaymentRecord{GatewayTxnID: "stub-charge-1"}, nil)
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec *booking.PaymentRecord) error {
				s.Equal(booking.DirectionRefund, rec.Direction)
				s.Equal(booking.PaymentSuccess, rec.Status)
				return nil
			})
		s.reservations.EXPECT().Update(gomock.Any(), res).Return(nil)
		s.notifications.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
		s.expectView()

		result, err := s.uc.CancelBooking(context.Background(), res.ID())
		s.Require().NoError(err)
		s.Equal(int64(750), result.RefundCents)
		s.Equal(booking.StatusCancelled, res.Status())
		s.Equal(int64(750), res.AmountPaid().Cents())

		ts, tsErr := s.b.Interval()
		s.Require().NoError(tsErr)
		s.True(s.index.IsFree(s.b.SlotID, ts, s.clk.Now(), uuid.Nil))
	})

	s.Run("no policy configured cancels with zero refund", func() {
		res := s.confirmedInIndex()

		s.policies.EXPECT().PolicyFor(gomock.Any(), s.b.LocationID).Return(nil, nil)
		s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)
		s.reservations.EXPECT().Update(gomock.Any(), res).Return(nil)
		s.notifications.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
		s.expectView()

		result, err := s.uc.CancelBooking(context.Background(), res.ID())
		s.Require().NoError(err)
		s.Equal(int64(0), result.RefundCents)
		s.Equal(booking.StatusCancelled, res.Status())
	})

	s.Run("pending booking cancels without refund machinery", func() {
		res, err := s.b.BuildPending()
		s.Require().NoError(err)
		s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)
		s.reservations.EXPECT().Update(gomock.Any(), res).Return(nil)
		s.notifications.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
		s.expectView()

		result, err := s.uc.CancelBooking(context.Background(), res.ID())
		s.Require().NoError(err)
		s.Equal(int64(0), result.RefundCents)
	})

	s.Run("after entry cancellation is refused", func() {
		res, err := s.b.BuildEntered()
		s.Require().NoError(err)
		s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)

		_, err = s.uc.CancelBooking(context.Background(), res.ID())
		s.ErrorIs(err, commands.ErrAlreadyEntered)
	})

	s.Run("terminal states are refused", func() {
		res, err := s.b.BuildPending()
		s.Require().NoError(err)
		s.Require().NoError(res.Expire(s.clk.Now()))
		s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)

		_, err = s.uc.CancelBooking(context.Background(), res.ID())
		s.ErrorIs(err, commands.ErrCancelNotAllowed)
	})

	s.Run("after start without an after-start band", func() {
		res := s.confirmedInIndex()
		defer s.index.Release(res.SlotID(), res.ID())

		s.clk.Set(s.b.Start.Add(10 * time.Minute))
		defer s.clk.Set(s.b.Now)

		s.policies.EXPECT().PolicyFor(gomock.Any(), s.b.LocationID).Return(s.standardPolicy(), nil)
		s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)

		_, err := s.uc.CancelBooking(context.Background(), res.ID())
		s.ErrorIs(err, commands.ErrAlreadyStarted)
	})
}

// ================================================================================
// RecordEntry / RecordExit
// ================================================================================

func (s *BookingUseCaseTestSuite) TestRecordEntry() {
	s.Run("stamps the scan and logs the event", func() {
		res := s.confirmedInIndex()
		defer s.index.Release(res.SlotID(), res.ID())

		at := s.b.Start.Add(5 * time.Minute)
		s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)
		s.reservations.EXPECT().Update(gomock.Any(), res).Return(nil)
		s.entryLog.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev *booking.EntryExitEvent) error {
				s.Equal(booking.KindEntry, ev.Kind)
				s.True(ev.OccurredAt.Equal(at))
				return nil
			})
		s.expectView()

		_, err := s.uc.RecordEntry(context.Background(), res.ID(), at)
		s.Require().NoError(err)
		s.True(res.HasEntered())
	})

	s.Run("pending reservation is refused", func() {
		res, err := s.b.BuildPending()
		s.Require().NoError(err)
		s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)

		_, err = s.uc.RecordEntry(context.Background(), res.ID(), s.b.Start)
		s.ErrorIs(err, commands.ErrNotConfirmed)
	})

	s.Run("double scan is refused", func() {
		res, err := s.b.BuildEntered()
		s.Require().NoError(err)
		s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)

		_, err = s.uc.RecordEntry(context.Background(), res.ID(), s.b.Start)
		s.ErrorIs(err, commands.ErrAlreadyEntered)
	})
}

func (s *BookingUseCaseTestSuite) TestRecordExit() {
	s.Run("completes and frees the remainder", func() {
		res, err := s.b.BuildEntered()
		s.Require().NoError(err)
		s.index.SeedConfirmed(res.SlotID(), res.ID(), res.Slot())

		at := s.b.End.Add(-30 * time.Minute)
		s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)
		s.reservations.EXPECT().Update(gomock.Any(), res).Return(nil)
		s.entryLog.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev *booking.EntryExitEvent) error {
				s.Equal(booking.KindExit, ev.Kind)
				return nil
			})
		s.expectView()

		_, err = s.uc.RecordExit(context.Background(), res.ID(), at)
		s.Require().NoError(err)
		s.Equal(booking.StatusCompleted, res.Status())

		ts, tsErr := s.b.Interval()
		s.Require().NoError(tsErr)
		s.True(s.index.IsFree(res.SlotID(), ts, s.clk.Now(), uuid.Nil))
	})

	s.Run("without entry is refused", func() {
		res := s.confirmedInIndex()
		defer s.index.Release(res.SlotID(), res.ID())
		s.reservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)

		_, err := s.uc.RecordExit(context.Background(), res.ID(), s.b.End)
		s.ErrorIs(err, commands.ErrNotEntered)
	})

	s.Run("unknown reservation", func() {
		id := uuid.New()
		s.reservations.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

		_, err := s.uc.RecordExit(context.Background(), id, s.b.End)
		s.ErrorIs(err, commands.ErrReservationNotFound)
	})
}
