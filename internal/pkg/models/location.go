package models

import "time"

// Location represents a geographical coordinate
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// BoundingBox is a coarse rectangular area used to pre-filter courier queries.
// Membership in the box is an approximation; callers must re-check candidates
// against the exact distance.
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// LocationUpdate represents a courier location update event
type LocationUpdate struct {
	CourierID string    `json:"courier_id"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}
