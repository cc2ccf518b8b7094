package dispatch

import (
	"context"

	"github.com/quickbite/dispatch/internal/pkg/models"
)

// DispatchUC defines the interface for dispatch business logic
type DispatchUC interface {
	// Proximity search
	FindNearbyCouriers(ctx context.Context, origin models.Location, radiusKm float64) ([]models.CandidateCourier, error)
	SearchForOrder(ctx context.Context, orderID string, origin models.Location, radiusKm float64) (*models.ProximityResult, error)
	SearchForStoredOrder(ctx context.Context, orderID string, radiusKm float64) (*models.ProximityResult, error)

	// Assignment
	AssignOrder(ctx context.Context, courierID string, req models.AssignmentRequest) (*models.AssignmentResult, error)

	// Courier location ingestion from the websocket transport
	UpdateCourierLocation(ctx context.Context, courierID string, location models.Location) error

	// Dashboard queries
	GetConnectedCouriers(ctx context.Context) []models.ConnectedCourier
	GetSystemStats(ctx context.Context) (*models.SystemStats, error)
}
