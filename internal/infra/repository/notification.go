package repository

import (
	"context"

	"parkcore/internal/infra"
	"parkcore/internal/notify"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationLog persists emitted signals; it is the notify.Recorder the
// engine and the sweep write to, and the reminder dedupe source.
type NotificationLog struct {
	pool *pgxpool.Pool
}

func NewNotificationLog(pool *pgxpool.Pool) *NotificationLog {
	return &NotificationLog{pool: pool}
}

func (r *NotificationLog) Record(ctx context.Context, sig notify.Signal) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO notifications (id, reservation_id, requester_id, reason, message, emitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), sig.ReservationID, sig.RequesterID, string(sig.Reason), sig.Message, sig.EmittedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record notification", err)
	}
	return nil
}

func (r *NotificationLog) Exists(ctx context.Context, reservationID uuid.UUID, reason notify.Reason) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE reservation_id = $1 AND reason = $2
		)`, reservationID, string(reason)).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check notification existence", err)
	}
	return exists, nil
}
