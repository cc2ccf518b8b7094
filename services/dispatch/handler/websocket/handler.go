package websocket

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/quickbite/dispatch/internal/pkg/constants"
	"github.com/quickbite/dispatch/internal/pkg/logger"
	"github.com/quickbite/dispatch/internal/pkg/models"
	wspkg "github.com/quickbite/dispatch/internal/pkg/websocket"
	"github.com/quickbite/dispatch/services/dispatch"
)

// WebSocketHandler owns the read loop of every courier and dashboard
// connection. All writes to a connection go through its registry channel so
// registry fan-outs and event replies never interleave mid-frame.
type WebSocketHandler struct {
	cfg        *models.Config
	dispatchUC dispatch.DispatchUC
	manager    *wspkg.Manager
	registry   *wspkg.Registry
}

// NewWebSocketHandler creates a new websocket handler
func NewWebSocketHandler(
	cfg *models.Config,
	dispatchUC dispatch.DispatchUC,
	manager *wspkg.Manager,
	registry *wspkg.Registry,
) *WebSocketHandler {
	return &WebSocketHandler{
		cfg:        cfg,
		dispatchUC: dispatchUC,
		manager:    manager,
		registry:   registry,
	}
}

// HandleCourierWebSocket handles GET /ws/courier: authenticate, upgrade, then
// serve the connection until it closes. The token's role must match the
// endpoint.
func (h *WebSocketHandler) HandleCourierWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.clientHandler(constants.RoleCourier))
}

// HandleDashboardWebSocket handles GET /ws/dashboard
func (h *WebSocketHandler) HandleDashboardWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.clientHandler(constants.RoleDashboard))
}

func (h *WebSocketHandler) clientHandler(expectedRole string) func(*models.WebSocketClient, *websocket.Conn) error {
	return func(client *models.WebSocketClient, conn *websocket.Conn) error {
		return h.handleClient(expectedRole, client, conn)
	}
}

func (h *WebSocketHandler) handleClient(expectedRole string, client *models.WebSocketClient, conn *websocket.Conn) error {
	if client.Role != expectedRole {
		logger.Warn("Rejecting websocket client, role does not match endpoint",
			logger.String("subject_id", client.SubjectID),
			logger.String("role", client.Role),
			logger.String("endpoint_role", expectedRole))
		return h.manager.SendErrorMessage(conn, constants.ErrorUnauthorized, "role not allowed on this endpoint")
	}
	client.Conn = conn

	timeout := time.Duration(h.cfg.Dispatch.SendTimeoutMs) * time.Millisecond
	channel := wspkg.NewChannel(conn, timeout)
	h.registry.Register(client.Role, client.SubjectID, channel)
	// Guarded removal: if a newer connection for this subject already took
	// over, this defer must not evict it.
	defer h.registry.UnregisterChannel(client.Role, client.SubjectID, channel)

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("Websocket read failed",
					logger.String("subject_id", client.SubjectID),
					logger.Err(err))
			}
			return nil
		}

		h.registry.Touch(client.Role, client.SubjectID)

		if err := h.routeMessage(client, channel, &msg); err != nil {
			logger.Warn("Failed to handle websocket message",
				logger.String("subject_id", client.SubjectID),
				logger.String("event", msg.Event),
				logger.Err(err))
		}
	}
}

func (h *WebSocketHandler) routeMessage(client *models.WebSocketClient, channel wspkg.Channel, msg *models.WSMessage) error {
	switch msg.Event {
	case constants.EventPing:
		// Activity timestamp already refreshed; nothing to reply
		return nil
	case constants.EventLocationUpdate:
		if client.Role != constants.RoleCourier {
			return h.sendError(channel, constants.ErrorUnauthorized, "only couriers report locations")
		}
		return h.handleLocationUpdate(client, channel, msg.Data)
	case constants.EventCourierList:
		if client.Role != constants.RoleDashboard {
			return h.sendError(channel, constants.ErrorUnauthorized, "only dashboards list couriers")
		}
		return h.handleCourierList(channel)
	default:
		return h.sendError(channel, constants.ErrorInvalidFormat, "unknown event: "+msg.Event)
	}
}

func (h *WebSocketHandler) sendError(channel wspkg.Channel, code string, message string) error {
	return channel.Send(models.NewDispatchMessage(models.ErrorPayload{
		Code:    code,
		Message: message,
	}))
}
