package repository

import (
	"context"

	"parkcore/internal/domain/slot"
	"parkcore/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VehicleRepository struct {
	pool *pgxpool.Pool
}

func NewVehicleRepository(pool *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{pool: pool}
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*slot.Vehicle, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, plate, class
		FROM vehicles WHERE id = $1`, id)

	var v slot.Vehicle
	var class string
	if err := row.Scan(&v.ID, &v.OwnerID, &v.Plate, &class); err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}
	v.Class = slot.VehicleClass(class)
	return &v, nil
}
