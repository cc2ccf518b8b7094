package dispatch

import (
	"context"
	"time"

	"github.com/quickbite/dispatch/internal/pkg/models"
)

// CourierRepo defines the interface for courier data access operations
type CourierRepo interface {
	GetCourier(ctx context.Context, courierID string) (*models.Courier, error)
	GetCouriersByIDs(ctx context.Context, courierIDs []string) ([]*models.Courier, error)
	FindAvailableInBoundingBox(ctx context.Context, box models.BoundingBox) ([]*models.Courier, error)
	UpdateCourierLocation(ctx context.Context, courierID string, location models.Location) error
	CountCouriers(ctx context.Context) (total int, available int, err error)
}

// OrderRepo defines the interface for order assignment persistence
type OrderRepo interface {
	// AssignCourier records the assignment and its audit row in one
	// transaction and returns the assignment id.
	AssignCourier(ctx context.Context, orderID string, courierID string, assignedAt time.Time) (string, error)
	GetOrderOrigin(ctx context.Context, orderID string) (*models.Location, error)
	GetAssignedCourier(ctx context.Context, orderID string) (string, error)
	CountOrders(ctx context.Context) (total int, assigned int, err error)
}

// LocationRepo defines the interface for the courier location cache
type LocationRepo interface {
	StoreCourierLocation(ctx context.Context, courierID string, location models.Location) error
	GetLastLocation(ctx context.Context, courierID string) (*models.Location, error)
	RemoveCourierLocation(ctx context.Context, courierID string) error
}
