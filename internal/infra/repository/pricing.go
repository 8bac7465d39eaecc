package repository

import (
	"context"

	"parkcore/internal/domain/pricing"
	"parkcore/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PricingRepository struct {
	pool *pgxpool.Pool
}

func NewPricingRepository(pool *pgxpool.Pool) *PricingRepository {
	return &PricingRepository{pool: pool}
}

// RulesFor fetches the location's rules together with the global ones; the
// resolver's specificity ordering decides which wins per instant.
func (r *PricingRepository) RulesFor(ctx context.Context, locationID uuid.UUID) ([]pricing.Rule, error) {
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
