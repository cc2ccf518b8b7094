package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/quickbite/dispatch/internal/pkg/models"
	"github.com/quickbite/dispatch/internal/utils"
	"github.com/quickbite/dispatch/services/dispatch"
)

// DispatchHandler handles HTTP requests for dispatch operations
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
	cfg        *models.Config
}

// NewDispatchHandler creates a new dispatch HTTP handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC, cfg *models.Config) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: dispatchUC,
		cfg:        cfg,
	}
}

// AssignRequest is the request body for order assignment
type AssignRequest struct {
	CourierID       string `json:"courier_id"`
	OrderID         string `json:"order_id"`
	Description     string `json:"description"`
	CustomerName    string `json:"customer_name"`
	DeliveryAddress string `json:"delivery_address"`
	Priority        string `json:"priority"`
}

// SearchRequest is the request body for an explicit proximity search
type SearchRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	RadiusKm  float64  `json:"radius_km"`
}

// FindNearbyCouriers handles GET /dispatch/nearby
func (h *DispatchHandler) FindNearbyCouriers(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "latitude is required and must be a number")
	}
	longitude, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "longitude is required and must be a number")
	}

	radiusKm := h.cfg.Dispatch.SearchRadiusKm
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "radius_km must be a number")
		}
	}

	origin := models.Location{Latitude: latitude, Longitude: longitude}
	candidates, err := h.dispatchUC.FindNearbyCouriers(c.Request().Context(), origin, radiusKm)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby couriers retrieved", echo.Map{
		"candidates":  candidates,
		"total_found": len(candidates),
	})
}

// SearchForOrder handles POST /dispatch/orders/:orderID/search. A body with a
// coordinate searches around it; an empty body falls back to the stored order
// origin.
func (h *DispatchHandler) SearchForOrder(c echo.Context) error {
	orderID := c.Param("orderID")
	if orderID == "" {
		return utils.BadRequestResponse(c, "order ID is required")
	}

	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body: "+err.Error())
	}

	radiusKm := req.RadiusKm
	if radiusKm == 0 {
		radiusKm = h.cfg.Dispatch.SearchRadiusKm
	}

	var result *models.ProximityResult
	var err error
	if req.Latitude != nil && req.Longitude != nil {
		origin := models.Location{Latitude: *req.Latitude, Longitude: *req.Longitude}
		result, err = h.dispatchUC.SearchForOrder(c.Request().Context(), orderID, origin, radiusKm)
	} else {
		result, err = h.dispatchUC.SearchForStoredOrder(c.Request().Context(), orderID, radiusKm)
	}
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Proximity search completed", result)
}

// SearchForStoredOrder handles GET /dispatch/orders/:orderID/nearby, searching
// around the order's stored origin
func (h *DispatchHandler) SearchForStoredOrder(c echo.Context) error {
	orderID := c.Param("orderID")
	if orderID == "" {
		return utils.BadRequestResponse(c, "order ID is required")
	}

	radiusKm := h.cfg.Dispatch.SearchRadiusKm
	if raw := c.QueryParam("radius_km"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "radius_km must be a number")
		}
		radiusKm = parsed
	}

	result, err := h.dispatchUC.SearchForStoredOrder(c.Request().Context(), orderID, radiusKm)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Proximity search completed", result)
}

// AssignOrder handles POST /dispatch/assign
func (h *DispatchHandler) AssignOrder(c echo.Context) error {
	var req AssignRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body: "+err.Error())
	}

	result, err := h.dispatchUC.AssignOrder(c.Request().Context(), req.CourierID, models.AssignmentRequest{
		OrderID:         req.OrderID,
		Description:     req.Description,
		CustomerName:    req.CustomerName,
		DeliveryAddress: req.DeliveryAddress,
		Priority:        req.Priority,
	})
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Order assigned", result)
}

// GetConnectedCouriers handles GET /dispatch/couriers
func (h *DispatchHandler) GetConnectedCouriers(c echo.Context) error {
	couriers := h.dispatchUC.GetConnectedCouriers(c.Request().Context())
	return utils.SuccessResponse(c, http.StatusOK, "Connected couriers retrieved", echo.Map{
		"couriers": couriers,
		"total":    len(couriers),
	})
}

// GetSystemStats handles GET /dispatch/stats
func (h *DispatchHandler) GetSystemStats(c echo.Context) error {
	stats, err := h.dispatchUC.GetSystemStats(c.Request().Context())
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "System stats retrieved", stats)
}

func (h *DispatchHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, dispatch.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, dispatch.ErrCourierNotFound), errors.Is(err, dispatch.ErrOrderNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, dispatch.ErrOrderAlreadyAssigned):
		return utils.ConflictResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, "internal error")
	}
}
