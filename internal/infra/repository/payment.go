package repository

import (
	"context"

	"parkcore/internal/domain/booking"
	"parkcore/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRecordRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRecordRepository(pool *pgxpool.Pool) *PaymentRecordRepository {
	return &PaymentRecordRepository{pool: pool}
}

func (r *PaymentRecordRepository) Create(ctx context.Context, rec *booking.PaymentRecord) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO payment_records (id, reservation_id, extension_id, amount_cents, direction, status, gateway_txn_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.ReservationID, rec.ExtensionID, rec.Amount.Cents(),
		string(rec.Direction), string(rec.Status), rec.GatewayTxnID, rec.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment record", err)
	}
	return nil
}

func (r *PaymentRecordRepository) LastSuccessfulCharge(ctx context.Context, reservationID uuid.UUID) (*booking.PaymentRecord, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, reservation_id, extension_id, amount_cents, direction, status, gateway_txn_id, created_at
		FROM payment_records
		WHERE reservation_id = $1 AND direction = 'CHARGE' AND status = 'SUCCESS'
		ORDER BY created_at DESC
		LIMIT 1`, reservationID)

	var (
		rec         booking.PaymentRecord
		amountCents int64
		direction   string
		status      string
	)
	err := row.Scan(&rec.ID, &rec.ReservationID, &rec.ExtensionID, &amountCents,
		&direction, &status, &rec.GatewayTxnID, &rec.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("no successful charge for reservation", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find last successful charge", err)
	}
	rec.Amount = booking.NewMoney(amountCents)
	rec.Direction = booking.PaymentDirection(direction)
	rec.Status = booking.PaymentStatus(status)
	return &rec, nil
}
