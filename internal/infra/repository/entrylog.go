package repository

import (
	"context"

	"parkcore/internal/domain/booking"
	"parkcore/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EntryLogRepository appends gate scan events. The reservation row carries
// the actual entry/exit timestamps the commands consult; this log is the
// append-only audit trail behind them.
type EntryLogRepository struct {
	pool *pgxpool.Pool
}

func NewEntryLogRepository(pool *pgxpool.Pool) *EntryLogRepository {
	return &EntryLogRepository{pool: pool}
}

func (r *EntryLogRepository) Create(ctx context.Context, ev *booking.EntryExitEvent) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO entry_exit_events (id, reservation_id, kind, occurred_at)
		VALUES ($1, $2, $3, $4)`,
		ev.ID, ev.ReservationID, string(ev.Kind), ev.OccurredAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create gate event", err)
	}
	return nil
}
