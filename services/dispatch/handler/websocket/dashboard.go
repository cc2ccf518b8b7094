package websocket

import (
	"context"

	"github.com/quickbite/dispatch/internal/pkg/models"
	wspkg "github.com/quickbite/dispatch/internal/pkg/websocket"
)

// handleCourierList replies to a dashboard with the current connected
// courier snapshot
func (h *WebSocketHandler) handleCourierList(channel wspkg.Channel) error {
	couriers := h.dispatchUC.GetConnectedCouriers(context.Background())
	return channel.Send(models.NewDispatchMessage(models.ConnectedCouriersPayload{
		Couriers: couriers,
	}))
}
