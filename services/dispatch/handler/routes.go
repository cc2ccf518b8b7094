package handler

import (
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/quickbite/dispatch/internal/pkg/database"
	"github.com/quickbite/dispatch/internal/pkg/middleware"
	"github.com/quickbite/dispatch/internal/pkg/models"
	natspkg "github.com/quickbite/dispatch/internal/pkg/nats"
	wspkg "github.com/quickbite/dispatch/internal/pkg/websocket"
	"github.com/quickbite/dispatch/services/dispatch"
	httpHandler "github.com/quickbite/dispatch/services/dispatch/handler/http"
	natsHandler "github.com/quickbite/dispatch/services/dispatch/handler/nats"
	wsHandler "github.com/quickbite/dispatch/services/dispatch/handler/websocket"
)

// Handler combines all protocol handlers for the dispatch service
type Handler struct {
	cfg          *models.Config
	redisClient  *database.RedisClient
	dispatchHTTP *httpHandler.DispatchHandler
	dispatchWS   *wsHandler.WebSocketHandler
	dispatchNATS *natsHandler.DispatchHandler
}

// NewHandler creates a new combined handler
func NewHandler(
	cfg *models.Config,
	dispatchUC dispatch.DispatchUC,
	manager *wspkg.Manager,
	registry *wspkg.Registry,
	natsClient *natspkg.Client,
	redisClient *database.RedisClient,
) *Handler {
	return &Handler{
		cfg:          cfg,
		redisClient:  redisClient,
		dispatchHTTP: httpHandler.NewDispatchHandler(dispatchUC, cfg),
		dispatchWS:   wsHandler.NewWebSocketHandler(cfg, dispatchUC, manager, registry),
		dispatchNATS: natsHandler.NewDispatchHandler(cfg, dispatchUC, natsClient),
	}
}

// jwtMiddleware returns the JWT middleware guarding the HTTP API
func (h *Handler) jwtMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
	})
}

// RegisterRoutes registers all HTTP and WebSocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// The websocket handshake does its own bearer-token validation
	e.GET("/ws/courier", h.dispatchWS.HandleCourierWebSocket)
	e.GET("/ws/dashboard", h.dispatchWS.HandleDashboardWebSocket)

	apiMiddleware := []echo.MiddlewareFunc{h.jwtMiddleware()}
	if h.cfg.Dispatch.RateLimit > 0 && h.redisClient != nil {
		apiMiddleware = append(apiMiddleware,
			middleware.UserRateLimiter(h.cfg.Dispatch.RateLimit, time.Minute, h.redisClient.GetClient()))
	}

	dispatchGroup := e.Group("/dispatch", apiMiddleware...)
	dispatchGroup.GET("/couriers", h.dispatchHTTP.GetConnectedCouriers)
	dispatchGroup.GET("/nearby", h.dispatchHTTP.FindNearbyCouriers)
	dispatchGroup.GET("/stats", h.dispatchHTTP.GetSystemStats)
	dispatchGroup.POST("/assign", h.dispatchHTTP.AssignOrder)
	dispatchGroup.GET("/orders/:orderID/nearby", h.dispatchHTTP.SearchForStoredOrder)
	dispatchGroup.POST("/orders/:orderID/search", h.dispatchHTTP.SearchForOrder)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.dispatchNATS.InitNATSConsumers()
}

// Stop releases NATS subscriptions
func (h *Handler) Stop() {
	h.dispatchNATS.Stop()
}
