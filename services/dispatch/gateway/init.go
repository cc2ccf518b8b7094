package gateway

import (
	"github.com/quickbite/dispatch/internal/pkg/models"
)

// channelRegistry is the websocket fan-out surface the gateway delivers through
type channelRegistry interface {
	SendToCourier(courierID string, message models.DispatchMessage) bool
	BroadcastToDashboards(message models.DispatchMessage) int
}

// eventPublisher publishes JSON events to the message stream
type eventPublisher interface {
	Publish(subject string, message interface{}) error
}

// DispatchGateway fans dispatch events out over websocket channels and the
// NATS event stream
type DispatchGateway struct {
	registry  channelRegistry
	publisher eventPublisher
}

// NewDispatchGateway creates a new unified gateway over the connection
// registry and a NATS producer
func NewDispatchGateway(registry channelRegistry, publisher eventPublisher) *DispatchGateway {
	return &DispatchGateway{
		registry:  registry,
		publisher: publisher,
	}
}
