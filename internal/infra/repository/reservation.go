package repository

import (
	"context"
	"time"

	"parkcore/internal/domain/booking"
	"parkcore/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reservationColumns = `
	id, slot_id, location_id, requester_id, vehicle_id,
	starts_at, ends_at, actual_entry, actual_exit,
	status, fee_cents, amount_paid_cents,
	hold_expires_at, created_at, updated_at`

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

func (r *ReservationRepository) Create(ctx context.Context, res *booking.Reservation) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO reservations (`+reservationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		res.ID(), res.SlotID(), res.LocationID(), res.RequesterID(), res.VehicleID(),
		res.Slot().Start(), res.Slot().End(), res.ActualEntry(), res.ActualExit(),
		res.Status().String(), res.Fee().Cents(), res.AmountPaid().Cents(),
		res.HoldExpiresAt(), res.CreatedAt(), res.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("duplicate reservation", err, infra.KindDuplicateKey)
		}
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("reservation references missing row", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *booking.Reservation) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE reservations
		SET ends_at = $2, actual_entry = $3, actual_exit = $4,
		    status = $5, fee_cents = $6, amount_paid_cents = $7, updated_at = $8
		WHERE id = $1`,
		res.ID(), res.Slot().End(), res.ActualEntry(), res.ActualExit(),
		res.Status().String(), res.Fee().Cents(), res.AmountPaid().Cents(), res.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)
	res, err := scanReservation(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return res, nil
}

func (r *ReservationRepository) FindExpiredPending(ctx context.Context, now time.Time) ([]*booking.Reservation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE status = 'PENDING' AND hold_expires_at <= $1`, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find expired pending reservations", err)
	}
	return collectReservations(rows)
}

func (r *ReservationRepository) ExpirePending(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE reservations
		SET status = 'EXPIRED', updated_at = $2
		WHERE id = $1 AND status = 'PENDING'`,
		id, at,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to expire pending reservation", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ReservationRepository) FindOvertimeCandidates(ctx context.Context, cutoff time.Time) ([]*booking.Reservation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE (status = 'CONFIRMED' AND actual_exit IS NULL AND ends_at < $1)
		   OR (status = 'COMPLETED' AND actual_exit > ends_at)`, cutoff)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overtime candidates", err)
	}
	return collectReservations(rows)
}

func (r *ReservationRepository) FindEndingBetween(ctx context.Context, from, to time.Time) ([]*booking.Reservation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE status = 'CONFIRMED' AND actual_exit IS NULL
		  AND ends_at >= $1 AND ends_at < $2`, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations nearing their end", err)
	}
	return collectReservations(rows)
}

func (r *ReservationRepository) FindConfirmed(ctx context.Context) ([]*booking.Reservation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE status = 'CONFIRMED'`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find confirmed reservations", err)
	}
	return collectReservations(rows)
}

func collectReservations(rows pgx.Rows) ([]*booking.Reservation, error) {
	defer rows.Close()
	var result []*booking.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return result, nil
}

func scanReservation(row pgx.Row) (*booking.Reservation, error) {
	var (
		id, slotID, locationID, requesterID, vehicleID uuid.UUID
		startsAt, endsAt                               time.Time
		actualEntry, actualExit                        *time.Time
		status                                         string
		feeCents, amountPaidCents                      int64
		holdExpiresAt, createdAt, updatedAt            time.Time
	)
	if err := row.Scan(
		&id, &slotID, &locationID, &requesterID, &vehicleID,
		&startsAt, &endsAt, &actualEntry, &actualExit,
		&status, &feeCents, &amountPaidCents,
		&holdExpiresAt, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	ts, err := booking.NewTimeSlot(startsAt, endsAt)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(
		id, slotID, locationID, requesterID, vehicleID,
		ts, actualEntry, actualExit,
		booking.Status(status),
		booking.NewMoney(feeCents), booking.NewMoney(amountPaidCents),
		holdExpiresAt, createdAt, updatedAt,
	), nil
}
