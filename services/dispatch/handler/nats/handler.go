package nats

import (
	"fmt"

	"github.com/quickbite/dispatch/internal/pkg/constants"
	"github.com/quickbite/dispatch/internal/pkg/models"
	natspkg "github.com/quickbite/dispatch/internal/pkg/nats"
	"github.com/quickbite/dispatch/services/dispatch"
)

// orderQueueGroup makes order.created delivery compete across dispatch
// replicas instead of fanning out to all of them
const orderQueueGroup = "dispatch-workers"

// DispatchHandler handles NATS subscriptions for the dispatch service
type DispatchHandler struct {
	cfg        *models.Config
	dispatchUC dispatch.DispatchUC
	natsClient *natspkg.Client
	consumers  []*natspkg.Consumer
}

// NewDispatchHandler creates a new dispatch NATS handler
func NewDispatchHandler(cfg *models.Config, dispatchUC dispatch.DispatchUC, client *natspkg.Client) *DispatchHandler {
	return &DispatchHandler{
		cfg:        cfg,
		dispatchUC: dispatchUC,
		natsClient: client,
	}
}

// InitNATSConsumers initializes all NATS consumers for the dispatch service
func (h *DispatchHandler) InitNATSConsumers() error {
	consumer, err := natspkg.NewConsumer(h.natsClient, constants.SubjectOrderCreated, orderQueueGroup, h.handleOrderCreated)
	if err != nil {
		return fmt.Errorf("failed to subscribe to order created events: %w", err)
	}
	h.consumers = append(h.consumers, consumer)

	return nil
}

// Stop unsubscribes all consumers
func (h *DispatchHandler) Stop() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
}
