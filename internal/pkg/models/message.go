package models

import (
	"github.com/google/uuid"
)

// MessageType identifies a dispatch message variant
type MessageType string

const (
	MessageLocationUpdate      MessageType = "location_update"
	MessageOrderAssignment     MessageType = "order_assignment"
	MessageOrderAssigned       MessageType = "order_assigned"
	MessageCourierConnected    MessageType = "courier_connected"
	MessageCourierDisconnected MessageType = "courier_disconnected"
	MessageConnectedCouriers   MessageType = "connected_couriers"
	MessageProximityResults    MessageType = "proximity_search_results"
	MessageError               MessageType = "error"
)

// Connection status values carried by ConnectionStatusPayload
const (
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
)

// MessagePayload is implemented by every outbound payload variant. The method
// is unexported so the set of variants is closed to this package.
type MessagePayload interface {
	messageType() MessageType
}

// DispatchMessage is the envelope for every message pushed to couriers and
// dashboards. The message id exists for client-side dedup only; the server
// makes no delivery guarantee beyond a single best-effort send.
type DispatchMessage struct {
	Type      MessageType    `json:"type"`
	Data      MessagePayload `json:"data"`
	Timestamp string         `json:"timestamp"`
	MessageID string         `json:"message_id"`
}

// NewDispatchMessage wraps a payload in an envelope with a fresh message id
// and an RFC3339 timestamp
func NewDispatchMessage(payload MessagePayload) DispatchMessage {
	return DispatchMessage{
		Type:      payload.messageType(),
		Data:      payload,
		Timestamp: FormatTime(Now()),
		MessageID: uuid.NewString(),
	}
}

// LocationUpdatePayload notifies dashboards of a courier position change
type LocationUpdatePayload struct {
	CourierID string  `json:"courier_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Geohash   string  `json:"geohash,omitempty"`
	Timestamp string  `json:"timestamp"`
}

func (LocationUpdatePayload) messageType() MessageType { return MessageLocationUpdate }

// OrderAssignmentPayload is the targeted notification sent to the assigned courier
type OrderAssignmentPayload struct {
	OrderID         string `json:"order_id"`
	Description     string `json:"description"`
	CustomerName    string `json:"customer_name"`
	DeliveryAddress string `json:"delivery_address"`
	Priority        string `json:"priority"`
	AssignedAt      string `json:"assigned_at"`
}

func (OrderAssignmentPayload) messageType() MessageType { return MessageOrderAssignment }

// OrderAssignedPayload is the dashboard summary of an assignment, including
// whether the courier notification was delivered
type OrderAssignedPayload struct {
	CourierID       string `json:"courier_id"`
	OrderID         string `json:"order_id"`
	DeliverySuccess bool   `json:"delivery_success"`
	AssignedAt      string `json:"assigned_at"`
}

func (OrderAssignedPayload) messageType() MessageType { return MessageOrderAssigned }

// ConnectionStatusPayload notifies dashboards of a courier connecting or
// disconnecting
type ConnectionStatusPayload struct {
	CourierID string `json:"courier_id"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func (p ConnectionStatusPayload) messageType() MessageType {
	if p.Status == StatusConnected {
		return MessageCourierConnected
	}
	return MessageCourierDisconnected
}

// ConnectedCouriersPayload is the snapshot pushed to a newly connected dashboard
type ConnectedCouriersPayload struct {
	Couriers []ConnectedCourier `json:"couriers"`
}

func (ConnectedCouriersPayload) messageType() MessageType { return MessageConnectedCouriers }

// ProximityResultsPayload summarizes a proximity search for an order
type ProximityResultsPayload struct {
	OrderID        string             `json:"order_id"`
	Origin         Location           `json:"origin"`
	Candidates     []CandidateCourier `json:"candidates"`
	SearchRadiusKm float64            `json:"search_radius_km"`
	TotalFound     int                `json:"total_found"`
	ConnectedCount int                `json:"connected_count"`
}

func (ProximityResultsPayload) messageType() MessageType { return MessageProximityResults }

// ErrorPayload carries a structured error to a connected client
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (ErrorPayload) messageType() MessageType { return MessageError }
