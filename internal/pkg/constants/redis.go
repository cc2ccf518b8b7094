package constants

// Redis key formats
const (
	KeyCourierLocation = "courier:location:%s" // Format: courier:location:{courier_id}
	KeyCourierGeo      = "couriers:geo"        // GEO set of all courier locations
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldGeohash   = "geohash"
	FieldTimestamp = "ts"
)
