package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/quickbite/dispatch/internal/pkg/models"
	"github.com/quickbite/dispatch/services/dispatch"
)

// CourierRepo implements the courier repository interface over postgres
type CourierRepo struct {
	db *sqlx.DB
}

// NewCourierRepository creates a new courier repository
func NewCourierRepository(db *sqlx.DB) *CourierRepo {
	return &CourierRepo{db: db}
}

// GetCourier retrieves one courier by id
func (r *CourierRepo) GetCourier(ctx context.Context, courierID string) (*models.Courier, error) {
	query := `SELECT * FROM couriers WHERE id = $1`

	var courier models.Courier
	err := r.db.GetContext(ctx, &courier, query, courierID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", dispatch.ErrCourierNotFound, courierID)
		}
		return nil, fmt.Errorf("failed to get courier: %w", err)
	}
	return &courier, nil
}

// GetCouriersByIDs retrieves couriers matching the given ids. Unknown ids are
// silently absent from the result.
func (r *CourierRepo) GetCouriersByIDs(ctx context.Context, courierIDs []string) ([]*models.Courier, error) {
	if len(courierIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM couriers WHERE id IN (?)`, courierIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build courier query: %w", err)
	}
	query = r.db.Rebind(query)

	var couriers []*models.Courier
	if err := r.db.SelectContext(ctx, &couriers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}
	return couriers, nil
}

// FindAvailableInBoundingBox returns available, active couriers whose last
// known coordinate falls inside the box
func (r *CourierRepo) FindAvailableInBoundingBox(ctx context.Context, box models.BoundingBox) ([]*models.Courier, error) {
	query := `
		SELECT * FROM couriers
		WHERE is_available = true
		  AND is_active = true
		  AND current_latitude BETWEEN $1 AND $2
		  AND current_longitude BETWEEN $3 AND $4
		ORDER BY id
	`

	var couriers []*models.Courier
	err := r.db.SelectContext(ctx, &couriers, query, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng)
	if err != nil {
		return nil, fmt.Errorf("failed to query couriers in bounding box: %w", err)
	}
	return couriers, nil
}

// UpdateCourierLocation writes a courier's last known position
func (r *CourierRepo) UpdateCourierLocation(ctx context.Context, courierID string, location models.Location) error {
	query := `
		UPDATE couriers
		SET current_latitude = $1,
		    current_longitude = $2,
		    last_location_update = $3,
		    updated_at = $3
		WHERE id = $4
	`

	now := models.Now()
	result, err := r.db.ExecContext(ctx, query, location.Latitude, location.Longitude, now, courierID)
	if err != nil {
		return fmt.Errorf("failed to update courier location: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", dispatch.ErrCourierNotFound, courierID)
	}
	return nil
}

// CountCouriers returns the total and currently available courier counts
func (r *CourierRepo) CountCouriers(ctx context.Context) (int, int, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_available = true AND is_active = true)
		FROM couriers
	`

	var total, available int
	if err := r.db.QueryRowContext(ctx, query).Scan(&total, &available); err != nil {
		return 0, 0, fmt.Errorf("failed to count couriers: %w", err)
	}
	return total, available, nil
}
