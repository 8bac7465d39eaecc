package readstore

import (
	"context"
	"errors"

	"parkcore/internal/domain/pricing"
	"parkcore/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// LocationReadStore serves the rates and rules the quote preview needs.
type LocationReadStore struct {
	pool *pgxpool.Pool
}

func NewLocationReadStore(pool *pgxpool.Pool) *LocationReadStore {
	return &LocationReadStore{pool: pool}
}

func (r *LocationReadStore) FindRates(ctx context.Context, locationID uuid.UUID) (int64, int64, error) {
	var hourly, daily int64
	err := r.pool.QueryRow(ctx, `
		SELECT hourly_rate_cents, daily_rate_cents
		FROM locations WHERE id = $1`, locationID).Scan(&hourly, &daily)
	if err != nil {
		if isNoRows(err) {
			return 0, 0, infra.WrapRepoErr("location not found", err, infra.KindNotFound)
		}
		return 0, 0, infra.WrapRepoErr("failed to find location rates", err)
	}
	return hourly, daily, nil
}

func (r *LocationReadStore) FindRules(ctx context.Context, locationID uuid.UUID) ([]pricing.Rule, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, location_id, day_of_week, start_minute, end_minute, multiplier::text, priority
		FROM pricing_rules
		WHERE location_id = $1 OR location_id IS NULL`, locationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pricing rules", err)
	}
	defer rows.Close()

	var rules []pricing.Rule
	for rows.Next() {
		var (
			rule       pricing.Rule
			multiplier string
		)
		if err := rows.Scan(&rule.ID, &rule.LocationID, &rule.DayOfWeek,
			&rule.StartMinute, &rule.EndMinute, &multiplier, &rule.Priority); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing rule", err)
		}
		rule.Multiplier, err = decimal.NewFromString(multiplier)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid pricing rule multiplier", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pricing rules", err)
	}
	return rules, nil
}
