package repository

import (
	"context"
	"time"

	"parkcore/internal/domain/booking"
	"parkcore/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FineRepository struct {
	pool *pgxpool.Pool
}

func NewFineRepository(pool *pgxpool.Pool) *FineRepository {
	return &FineRepository{pool: pool}
}

func (r *FineRepository) Create(ctx context.Context, fine *booking.Fine) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO fines (id, reservation_id, amount_cents, reason, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		fine.ID, fine.ReservationID, fine.Amount.Cents(), fine.Reason,
		string(fine.Status), fine.CreatedAt, fine.UpdatedAt,
	)
	if err != nil {
		// The partial unique index guards against a concurrent sweep
		// producing two open overtime fines for one reservation.
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("open overtime fine already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create fine", err)
	}
	return nil
}

func (r *FineRepository) FindUnpaidOvertime(ctx context.Context, reservationID uuid.UUID) (*booking.Fine, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, reservation_id, amount_cents, reason, status, created_at, updated_at
		FROM fines
		WHERE reservation_id = $1 AND status = 'UNPAID' AND reason = 'OVERTIME'`,
		reservationID)

	var (
		fine        booking.Fine
		amountCents int64
		status      string
	)
	err := row.Scan(&fine.ID, &fine.ReservationID, &amountCents, &fine.Reason, &status, &fine.CreatedAt, &fine.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find unpaid overtime fine", err)
	}
	fine.Amount = booking.NewMoney(amountCents)
	fine.Status = booking.FineStatus(status)
	return &fine, nil
}

func (r *FineRepository) UpdateAmount(ctx context.Context, fineID uuid.UUID, amount booking.Money, now time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE fines SET amount_cents = $2, updated_at = $3
		WHERE id = $1 AND status = 'UNPAID' AND amount_cents < $2`,
		fineID, amount.Cents(), now)
	if err != nil {
		return infra.WrapRepoErr("failed to update fine amount", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("fine not found or amount not larger", nil, infra.KindNotFound)
	}
	return nil
}
