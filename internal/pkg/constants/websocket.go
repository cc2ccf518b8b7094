package constants

// Connection roles
const (
	RoleCourier   = "courier"
	RoleDashboard = "dashboard"
)

// Inbound WebSocket event types
const (
	EventPing           = "ping"
	EventLocationUpdate = "location_update"
	EventCourierList    = "get_courier_list"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorUnauthorized     = "unauthorized"
	ErrorInternalError    = "internal_error"
	ErrorInvalidLocation  = "invalid_location"
)
