package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quickbite/dispatch/internal/pkg/logger"
	"github.com/quickbite/dispatch/internal/pkg/models"
)

// handleOrderCreated runs a proximity search for every newly created order.
// An event without a usable origin falls back to the coordinate stored with
// the order.
func (h *DispatchHandler) handleOrderCreated(message []byte) error {
	var event models.OrderCreatedEvent
	if err := json.Unmarshal(message, &event); err != nil {
		return fmt.Errorf("failed to unmarshal order created event: %w", err)
	}
	if event.OrderID == "" {
		return fmt.Errorf("order created event without order id")
	}

	logger.Info("Received order created event",
		logger.String("order_id", event.OrderID))

	ctx := context.Background()
	radiusKm := h.cfg.Dispatch.SearchRadiusKm

	var err error
	if event.Origin.Latitude != 0 || event.Origin.Longitude != 0 {
		_, err = h.dispatchUC.SearchForOrder(ctx, event.OrderID, event.Origin, radiusKm)
	} else {
		_, err = h.dispatchUC.SearchForStoredOrder(ctx, event.OrderID, radiusKm)
	}
	if err != nil {
		return fmt.Errorf("proximity search for order %s failed: %w", event.OrderID, err)
	}
	return nil
}
