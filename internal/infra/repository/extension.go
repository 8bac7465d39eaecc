package repository

import (
	"context"

	"parkcore/internal/domain/booking"
	"parkcore/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ExtensionRepository struct {
	pool *pgxpool.Pool
}

func NewExtensionRepository(pool *pgxpool.Pool) *ExtensionRepository {
	return &ExtensionRepository{pool: pool}
}

func (r *ExtensionRepository) Create(ctx context.Context, ext *booking.Extension) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO extensions (id, reservation_id, previous_end, new_end, extra_fee_cents, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		ext.ID, ext.ReservationID, ext.PreviousEnd, ext.NewEnd, ext.ExtraFee.Cents(), ext.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("extension references missing reservation", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create extension", err)
	}
	return nil
}
