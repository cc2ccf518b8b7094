package models

import "time"

// Courier represents a delivery courier tracked by the dispatch service
type Courier struct {
	ID                 string     `json:"id" db:"id"`
	Name               string     `json:"name" db:"name"`
	Phone              string     `json:"phone" db:"phone"`
	CurrentLatitude    *float64   `json:"current_latitude" db:"current_latitude"`
	CurrentLongitude   *float64   `json:"current_longitude" db:"current_longitude"`
	IsAvailable        bool       `json:"is_available" db:"is_available"`
	IsActive           bool       `json:"is_active" db:"is_active"`
	LastLocationUpdate *time.Time `json:"last_location_update" db:"last_location_update"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`
}

// HasLocation reports whether the courier has a known last location
func (c *Courier) HasLocation() bool {
	return c.CurrentLatitude != nil && c.CurrentLongitude != nil
}

// Location returns the courier's last known location. Callers must check
// HasLocation first.
func (c *Courier) Location() Location {
	return Location{
		Latitude:  *c.CurrentLatitude,
		Longitude: *c.CurrentLongitude,
	}
}

// CandidateCourier is a courier eligible to receive an order, produced by a
// proximity search. Candidates are ephemeral and recomputed per search.
type CandidateCourier struct {
	CourierID  string   `json:"courier_id"`
	Name       string   `json:"name"`
	Location   Location `json:"location"`
	DistanceKm float64  `json:"distance_km"`
	Connected  bool     `json:"connected"`
}

// ConnectedCourier describes one live courier connection reported to
// dashboards. Name, availability and location are joined in from the store
// when the snapshot is served over HTTP; registry-side snapshots carry the
// connection fields only.
type ConnectedCourier struct {
	CourierID    string    `json:"courier_id"`
	ConnectedAt  time.Time `json:"connected_at"`
	LastActivity time.Time `json:"last_activity"`
	Name         string    `json:"name,omitempty"`
	IsAvailable  bool      `json:"is_available,omitempty"`
	Location     *Location `json:"location,omitempty"`
}

// ConnectionStats summarizes current connection counts
type ConnectionStats struct {
	ConnectedCouriers   int `json:"connected_couriers"`
	ConnectedDashboards int `json:"connected_dashboards"`
	TotalConnections    int `json:"total_connections"`
}
