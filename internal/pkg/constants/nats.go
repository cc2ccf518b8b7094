package constants

// NATS Subjects
const (
	// Order events
	SubjectOrderCreated  = "order.created"
	SubjectOrderAssigned = "order.assigned"

	// Courier events
	SubjectLocationUpdate = "location.update"
)
