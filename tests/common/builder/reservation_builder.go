//go:build unit || e2e

package builder

import (
	"time"

	"parkcore/internal/domain/booking"
	"parkcore/internal/domain/slot"
	reqdto "parkcore/internal/handler/dto/request"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	SlotID      uuid.UUID
	LocationID  uuid.UUID
	RequesterID uuid.UUID
	VehicleID   uuid.UUID
	Start       time.Time
	End         time.Time
	FeeCents    int64
	Now         time.Time
	HoldFor     time.Duration
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		SlotID:      uuid.New(),
		LocationID:  uuid.New(),
		RequesterID: uuid.New(),
		VehicleID:   uuid.New(),
		Start:       now.Add(2 * time.Hour),
		End:         now.Add(5 * time.Hour),
		FeeCents:    1500,
		Now:         now,
		HoldFor:     10 * time.Minute,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) Interval() (booking.TimeSlot, error) {
	return booking.NewTimeSlot(r.Start, r.End)
}

// BuildPending constructs a freshly created reservation holding its interval.
func (r *ReservationBuilder) BuildPending() (*booking.Reservation, error) {
	ts, err := r.Interval()
	if err != nil {
		return nil, err
	}
	return booking.NewReservation(
		r.SlotID, r.LocationID, r.RequesterID, r.VehicleID,
		ts, booking.NewMoney(r.FeeCents), r.Now, r.HoldFor,
	), nil
}

// BuildConfirmed constructs a paid reservation.
func (r *ReservationBuilder) BuildConfirmed() (*booking.Reservation, error) {
	res, err := r.BuildPending()
	if err != nil {
		return nil, err
	}
	if err := res.Confirm(r.Now); err != nil {
		return nil, err
	}
	return res, nil
}

// BuildEntered constructs a confirmed reservation whose vehicle has entered
// at the scheduled start.
func (r *ReservationBuilder) BuildEntered() (*booking.Reservation, error) {
	res, err := r.BuildConfirmed()
	if err != nil {
		return nil, err
	}
	if err := res.RecordEntry(r.Start); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		SlotID:      r.SlotID,
		RequesterID: r.RequesterID,
		VehicleID:   r.VehicleID,
		StartTime:   r.Start,
		EndTime:     r.End,
	}
}

func (r *ReservationBuilder) BuildSlot() *slot.Slot {
	return &slot.Slot{
		ID:           r.SlotID,
		LocationID:   r.LocationID,
		Code:         "A-01",
		AllowedClass: slot.ClassAny,
		Status:       slot.StatusActive,
	}
}

func (r *ReservationBuilder) BuildLocation() *slot.Location {
	return &slot.Location{
		ID:              r.LocationID,
		Name:            "Central Garage",
		HourlyRateCents: 500,
		DailyRateCents:  4000,
		IsActive:        true,
	}
}

func (r *ReservationBuilder) BuildVehicle() *slot.Vehicle {
	return &slot.Vehicle{
		ID:      r.VehicleID,
		OwnerID: r.RequesterID,
		Plate:   "KA-01-HH-1234",
		Class:   slot.ClassFourWheeler,
	}
}
