package slot

import (
	"errors"

	"parkcore/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrSlotDisabled         = errors.New("slot is disabled")
	ErrVehicleClassMismatch = errors.New("vehicle class not allowed on this slot")
)

type Status string

const (
	StatusActive      Status = "ACTIVE"
	StatusMaintenance Status = "MAINTENANCE"
	StatusDisabled    Status = "DISABLED"
)

type VehicleClass string

const (
	ClassTwoWheeler   VehicleClass = "2W"
	ClassThreeWheeler VehicleClass = "3W"
	ClassFourWheeler  VehicleClass = "4W"
	ClassAny          VehicleClass = "ALL"
)

func (c VehicleClass) IsValid() bool {
	switch c {
	case ClassTwoWheeler, ClassThreeWheeler, ClassFourWheeler, ClassAny:
		return true
	default:
		return false
	}
}

type Slot struct {
	ID           uuid.UUID
	LocationID   uuid.UUID
	Code         string
	AllowedClass VehicleClass
	Status       Status
}

// Accepts reports whether a vehicle of the given class may park here.
// Reservations never change slot status; they only occupy time ranges.
func (s *Slot) Accepts(class VehicleClass) bool {
	return s.AllowedClass == ClassAny || s.AllowedClass == class
}

// Validate checks the slot can take new reservations at all; interval-level
// availability is the availability index's job.
func (s *Slot) Validate(class VehicleClass) error {
	if s.Status == StatusDisabled {
		return ErrSlotDisabled
	}
	if !s.Accepts(class) {
		return ErrVehicleClassMismatch
	}
	return nil
}

// MaintenanceWindow blocks its interval from reservation overlap checks.
// Windows in the past are immutable.
type MaintenanceWindow struct {
	ID     uuid.UUID
	SlotID uuid.UUID
	Window booking.TimeSlot
	Reason string
}

// Location carries the base rates the pricing engine starts from.
type Location struct {
	ID              uuid.UUID
	Name            string
	HourlyRateCents int64
	DailyRateCents  int64
	IsActive        bool
}

// Vehicle is the minimum the engine needs from the external registry: the
// class determines slot compatibility.
type Vehicle struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Plate   string
	Class   VehicleClass
}
