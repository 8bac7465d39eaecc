package repository

import (
	"context"
	"time"

	"parkcore/internal/domain/policy"
	"parkcore/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PolicyRepository struct {
	pool *pgxpool.Pool
}

func NewPolicyRepository(pool *pgxpool.Pool) *PolicyRepository {
	return &PolicyRepository{pool: pool}
}

// PolicyFor loads the location's cancellation policy, falling back to the
// global one. Returns nil when neither exists.
func (r *PolicyRepository) PolicyFor(ctx context.Context, locationID uuid.UUID) (*policy.Policy, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.location_id, b.min_lead_seconds, b.refund_fraction::text
		FROM cancellation_policies p
		JOIN cancellation_policy_bands b ON b.policy_id = p.id
		WHERE p.location_id = $1 OR p.location_id IS NULL`, locationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find cancellation policy", err)
	}
	defer rows.Close()

	type rawPolicy struct {
		id         uuid.UUID
		locationID *uuid.UUID
		bands      []policy.Band
	}
	byID := make(map[uuid.UUID]*rawPolicy)
	for rows.Next() {
		var (
			id          uuid.UUID
			locID       *uuid.UUID
			leadSeconds int64
			fraction    string
		)
		if err := rows.Scan(&id, &locID, &leadSeconds, &fraction); err != nil {
			return nil, infra.WrapRepoErr("failed to scan policy band", err)
		}
		frac, err := decimal.NewFromString(fraction)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid refund fraction", err)
		}
		p, ok := byID[id]
		if !ok {
			p = &rawPolicy{id: id, locationID: locID}
			byID[id] = p
		}
		p.bands = append(p.bands, policy.Band{
			MinLead:        time.Duration(leadSeconds) * time.Second,
			RefundFraction: frac,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate policy bands", err)
	}

	var global, scoped *rawPolicy
	for _, p := range byID {
		if p.locationID == nil {
			global = p
		} else {
			scoped = p
		}
	}
	chosen := scoped
	if chosen == nil {
		chosen = global
	}
	if chosen == nil {
		return nil, nil
	}

	pol, err := policy.New(chosen.id, chosen.locationID, chosen.bands)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid cancellation policy", err)
	}
	return pol, nil
}
