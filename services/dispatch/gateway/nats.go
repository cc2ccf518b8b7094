package gateway

import (
	"context"

	"github.com/quickbite/dispatch/internal/pkg/constants"
	"github.com/quickbite/dispatch/internal/pkg/models"
)

// orderAssignedEvent is the order.assigned stream payload
type orderAssignedEvent struct {
	OrderID    string `json:"order_id"`
	CourierID  string `json:"courier_id"`
	Delivered  bool   `json:"delivered"`
	AssignedAt string `json:"assigned_at"`
}

// locationUpdateEvent is the location.update stream payload
type locationUpdateEvent struct {
	CourierID string  `json:"courier_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp string  `json:"timestamp"`
}

// PublishOrderAssigned publishes an assignment outcome to the event stream
func (g *DispatchGateway) PublishOrderAssigned(ctx context.Context, orderID string, courierID string, delivered bool) error {
	return g.publisher.Publish(constants.SubjectOrderAssigned, orderAssignedEvent{
		OrderID:    orderID,
		CourierID:  courierID,
		Delivered:  delivered,
		AssignedAt: models.FormatTime(models.Now()),
	})
}

// PublishLocationUpdate publishes a courier position report to the event stream
func (g *DispatchGateway) PublishLocationUpdate(ctx context.Context, courierID string, location models.Location) error {
	return g.publisher.Publish(constants.SubjectLocationUpdate, locationUpdateEvent{
		CourierID: courierID,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Timestamp: models.FormatTime(models.Now()),
	})
}
