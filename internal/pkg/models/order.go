package models

import "time"

// AssignmentRequest carries the details of one order to courier assignment.
// It is produced by the dispatch API or the order event consumer and consumed
// once by the dispatch use case.
type AssignmentRequest struct {
	OrderID         string `json:"order_id" validate:"required"`
	Description     string `json:"description"`
	CustomerName    string `json:"customer_name"`
	DeliveryAddress string `json:"delivery_address"`
	Priority        string `json:"priority"`
}

// AssignmentResult reports the outcome of an assignment. Recording and
// delivery are reported separately: a courier being offline never turns a
// recorded assignment into a failure.
type AssignmentResult struct {
	AssignmentID              string    `json:"assignment_id"`
	CourierID                 string    `json:"courier_id"`
	Delivered                 bool      `json:"delivered"`
	CourierUnavailableWarning bool      `json:"courier_unavailable_warning"`
	AssignedAt                time.Time `json:"assigned_at"`
}

// OrderCreatedEvent is the payload consumed from the order event stream when
// a new order needs candidate couriers.
type OrderCreatedEvent struct {
	OrderID string   `json:"order_id"`
	Origin  Location `json:"origin"`
}

// ProximityResult aggregates one proximity search for an order
type ProximityResult struct {
	OrderID        string             `json:"order_id"`
	Origin         Location           `json:"origin"`
	Candidates     []CandidateCourier `json:"candidates"`
	SearchRadiusKm float64            `json:"search_radius_km"`
	TotalFound     int                `json:"total_found"`
	ConnectedCount int                `json:"connected_count"`
}

// SystemStats reports connection and store counters for dashboards
type SystemStats struct {
	Connections    ConnectionStats `json:"connections"`
	TotalCouriers  int             `json:"total_couriers"`
	AvailableCount int             `json:"available_couriers"`
	TotalOrders    int             `json:"total_orders"`
	AssignedOrders int             `json:"assigned_orders"`
	Timestamp      time.Time       `json:"timestamp"`
}
