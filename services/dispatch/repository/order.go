package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/quickbite/dispatch/internal/pkg/models"
	"github.com/quickbite/dispatch/services/dispatch"
)

// OrderRepo implements the order assignment repository over postgres
type OrderRepo struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sqlx.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// AssignCourier upserts the order to courier link and appends the audit row
// in one transaction. Re-running with the same pair is a no-op on the link;
// a different courier overwrites it. Returns the assignment id.
func (r *OrderRepo) AssignCourier(ctx context.Context, orderID string, courierID string, assignedAt time.Time) (string, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	upsertQuery := `
		INSERT INTO order_assignments (id, order_id, courier_id, assigned_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (order_id) DO UPDATE
		SET courier_id = EXCLUDED.courier_id,
		    assigned_at = EXCLUDED.assigned_at,
		    updated_at = EXCLUDED.updated_at
		RETURNING id
	`

	var assignmentID string
	err = tx.QueryRowContext(ctx, upsertQuery, uuid.NewString(), orderID, courierID, assignedAt).Scan(&assignmentID)
	if err != nil {
		return "", fmt.Errorf("failed to upsert assignment: %w", err)
	}

	auditQuery := `
		INSERT INTO assignment_audit_log (id, order_id, entry, created_at)
		VALUES ($1, $2, $3, $4)
	`

	entry := fmt.Sprintf("order %s assigned to courier %s", orderID, courierID)
	if _, err := tx.ExecContext(ctx, auditQuery, uuid.NewString(), orderID, entry, assignedAt); err != nil {
		return "", fmt.Errorf("failed to append audit log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit assignment: %w", err)
	}
	return assignmentID, nil
}

// GetOrderOrigin retrieves the pickup coordinate of an order
func (r *OrderRepo) GetOrderOrigin(ctx context.Context, orderID string) (*models.Location, error) {
	query := `SELECT origin_latitude, origin_longitude FROM orders WHERE id = $1`

	var origin models.Location
	err := r.db.QueryRowContext(ctx, query, orderID).Scan(&origin.Latitude, &origin.Longitude)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", dispatch.ErrOrderNotFound, orderID)
		}
		return nil, fmt.Errorf("failed to get order origin: %w", err)
	}
	return &origin, nil
}

// GetAssignedCourier returns the courier currently holding the order, or
// empty when unassigned
func (r *OrderRepo) GetAssignedCourier(ctx context.Context, orderID string) (string, error) {
	query := `SELECT courier_id FROM order_assignments WHERE order_id = $1`

	var courierID string
	err := r.db.QueryRowContext(ctx, query, orderID).Scan(&courierID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get assigned courier: %w", err)
	}
	return courierID, nil
}

// CountOrders returns the total and assigned order counts
func (r *OrderRepo) CountOrders(ctx context.Context) (int, int, error) {
	query := `
		SELECT (SELECT COUNT(*) FROM orders),
		       (SELECT COUNT(*) FROM order_assignments)
	`

	var total, assigned int
	if err := r.db.QueryRowContext(ctx, query).Scan(&total, &assigned); err != nil {
		return 0, 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return total, assigned, nil
}
