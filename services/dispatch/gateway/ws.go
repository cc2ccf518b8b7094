package gateway

import (
	"github.com/quickbite/dispatch/internal/pkg/models"
)

// SendToCourier delivers one message to a courier's live channel. False means
// the courier is offline or the send failed; the caller decides what that
// means for its own flow.
func (g *DispatchGateway) SendToCourier(courierID string, message models.DispatchMessage) bool {
	return g.registry.SendToCourier(courierID, message)
}

// BroadcastToDashboards delivers one message to every dashboard and returns
// the delivery count
func (g *DispatchGateway) BroadcastToDashboards(message models.DispatchMessage) int {
	return g.registry.BroadcastToDashboards(message)
}

// NotifyProximityResults sends the search result to every connected candidate
// and one summarizing broadcast to dashboards. Returns the number of couriers
// that received it.
func (g *DispatchGateway) NotifyProximityResults(result *models.ProximityResult) int {
	payload := models.ProximityResultsPayload{
		OrderID:        result.OrderID,
		Origin:         result.Origin,
		Candidates:     result.Candidates,
		SearchRadiusKm: result.SearchRadiusKm,
		TotalFound:     result.TotalFound,
		ConnectedCount: result.ConnectedCount,
	}

	notified := 0
	for _, candidate := range result.Candidates {
		if !candidate.Connected {
			continue
		}
		if g.registry.SendToCourier(candidate.CourierID, models.NewDispatchMessage(payload)) {
			notified++
		}
	}

	g.registry.BroadcastToDashboards(models.NewDispatchMessage(payload))
	return notified
}

// NotifyOrderAssigned sends the targeted assignment to the courier and a
// summary to all dashboards. The dashboard summary carries the courier
// delivery outcome and goes out regardless of it.
func (g *DispatchGateway) NotifyOrderAssigned(courierID string, req models.AssignmentRequest, result *models.AssignmentResult) bool {
	assignedAt := models.FormatTime(result.AssignedAt)

	delivered := g.registry.SendToCourier(courierID, models.NewDispatchMessage(models.OrderAssignmentPayload{
		OrderID:         req.OrderID,
		Description:     req.Description,
		CustomerName:    req.CustomerName,
		DeliveryAddress: req.DeliveryAddress,
		Priority:        req.Priority,
		AssignedAt:      assignedAt,
	}))

	g.registry.BroadcastToDashboards(models.NewDispatchMessage(models.OrderAssignedPayload{
		CourierID:       courierID,
		OrderID:         req.OrderID,
		DeliverySuccess: delivered,
		AssignedAt:      assignedAt,
	}))

	return delivered
}
