package repository

import (
	"context"
	"time"

	"parkcore/internal/domain/booking"
	"parkcore/internal/domain/slot"
	"parkcore/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SlotRepository struct {
	pool *pgxpool.Pool
}

func NewSlotRepository(pool *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{pool: pool}
}

func (r *SlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*slot.Slot, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, location_id, code, allowed_class, status
		FROM slots WHERE id = $1`, id)

	var s slot.Slot
	var allowedClass, status string
	if err := row.Scan(&s.ID, &s.LocationID, &s.Code, &allowedClass, &status); err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}
	s.AllowedClass = slot.VehicleClass(allowedClass)
	s.Status = slot.Status(status)
	return &s, nil
}

func (r *SlotRepository) FindLocation(ctx context.Context, id uuid.UUID) (*slot.Location, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, hourly_rate_cents, daily_rate_cents, is_active
		FROM locations WHERE id = $1`, id)

	var loc slot.Location
	if err := row.Scan(&loc.ID, &loc.Name, &loc.HourlyRateCents, &loc.DailyRateCents, &loc.IsActive); err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("location not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find location by ID", err)
	}
	return &loc, nil
}

func (r *SlotRepository) FindMaintenanceFrom(ctx context.Context, from time.Time) ([]*slot.MaintenanceWindow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, slot_id, starts_at, ends_at, reason
		FROM maintenance_windows
		WHERE ends_at >= $1`, from)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find maintenance windows", err)
	}
	defer rows.Close()

	var result []*slot.MaintenanceWindow
	for rows.Next() {
		var (
			id, slotID       uuid.UUID
			startsAt, endsAt time.Time
			reason           string
		)
		if err := rows.Scan(&id, &slotID, &startsAt, &endsAt, &reason); err != nil {
			return nil, infra.WrapRepoErr("failed to scan maintenance window", err)
		}
		ts, err := booking.NewTimeSlot(startsAt, endsAt)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid maintenance window interval", err)
		}
		result = append(result, &slot.MaintenanceWindow{ID: id, SlotID: slotID, Window: ts, Reason: reason})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate maintenance windows", err)
	}
	return result, nil
}
