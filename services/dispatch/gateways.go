package dispatch

import (
	"context"

	"github.com/quickbite/dispatch/internal/pkg/models"
)

// DispatchGW defines the dispatch gateways interface. Websocket deliveries
// report success as data, never as an error: an offline courier or an empty
// dashboard set is a normal runtime condition.
type DispatchGW interface {
	// Websocket fan-out
	SendToCourier(courierID string, message models.DispatchMessage) bool
	BroadcastToDashboards(message models.DispatchMessage) int
	NotifyProximityResults(result *models.ProximityResult) int
	NotifyOrderAssigned(courierID string, req models.AssignmentRequest, result *models.AssignmentResult) bool

	// Event stream
	PublishOrderAssigned(ctx context.Context, orderID string, courierID string, delivered bool) error
	PublishLocationUpdate(ctx context.Context, courierID string, location models.Location) error
}

// ConnectionRegistry is the subset of the websocket registry the use case
// reads from
type ConnectionRegistry interface {
	IsCourierConnected(courierID string) bool
	ConnectedCourierIDs() []string
	ConnectedCouriers() []models.ConnectedCourier
	Stats() models.ConnectionStats
}
