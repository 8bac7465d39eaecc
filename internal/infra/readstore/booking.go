package readstore

import (
	"context"
	"time"

	"parkcore/internal/infra"
	"parkcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingReadStore assembles booking views straight from the store,
// bypassing the domain entities.
type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

const bookingViewColumns = `
	r.id, r.slot_id, s.code, r.location_id, r.requester_id, r.vehicle_id,
	r.starts_at, r.ends_at, r.actual_entry, r.actual_exit,
	r.status, r.fee_cents, r.amount_paid_cents, r.hold_expires_at,
	r.created_at, r.updated_at`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+bookingViewColumns+`
		FROM reservations r
		JOIN slots s ON s.id = r.slot_id
		WHERE r.id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	fines, err := r.finesFor(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Fines = fines
	return view, nil
}

func (r *BookingReadStore) FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookingViewColumns+`
		FROM reservations r
		JOIN slots s ON s.id = r.slot_id
		WHERE r.requester_id = $1
		ORDER BY r.created_at DESC`, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by requester", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return views, nil
}

func (r *BookingReadStore) finesFor(ctx context.Context, reservationID uuid.UUID) ([]queries.FineView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, amount_cents, reason, status, created_at
		FROM fines
		WHERE reservation_id = $1
		ORDER BY created_at`, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find fines for booking", err)
	}
	defer rows.Close()

	var fines []queries.FineView
	for rows.Next() {
		var f queries.FineView
		if err := rows.Scan(&f.ID, &f.AmountCents, &f.Reason, &f.Status, &f.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan fine view", err)
		}
		fines = append(fines, f)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate fines", err)
	}
	return fines, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view          queries.BookingView
		holdExpiresAt time.Time
	)
	if err := row.Scan(
		&view.ID, &view.SlotID, &view.SlotCode, &view.LocationID, &view.RequesterID, &view.VehicleID,
		&view.Start, &view.End, &view.ActualEntry, &view.ActualExit,
		&view.Status, &view.FeeCents, &view.AmountPaidCents, &holdExpiresAt,
		&view.CreatedAt, &view.UpdatedAt,
	); err != nil {
		return nil, err
	}
	// The hold deadline only means something while the booking is pending.
	if view.Status == "PENDING" {
		view.HoldExpiresAt = &holdExpiresAt
	}
	return &view, nil
}
