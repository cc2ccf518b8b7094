package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/quickbite/dispatch/internal/pkg/constants"
	"github.com/quickbite/dispatch/internal/pkg/models"
	wspkg "github.com/quickbite/dispatch/internal/pkg/websocket"
	"github.com/quickbite/dispatch/services/dispatch"
)

// locationReport is the location_update event payload sent by couriers
type locationReport struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// handleLocationUpdate processes a courier position report
func (h *WebSocketHandler) handleLocationUpdate(client *models.WebSocketClient, channel wspkg.Channel, data json.RawMessage) error {
	var report locationReport
	if err := json.Unmarshal(data, &report); err != nil {
		return h.sendError(channel, constants.ErrorInvalidFormat, "invalid location payload")
	}

	location := models.Location{
		Latitude:  report.Latitude,
		Longitude: report.Longitude,
		Timestamp: models.Now(),
	}

	err := h.dispatchUC.UpdateCourierLocation(context.Background(), client.SubjectID, location)
	if err != nil {
		if errors.Is(err, dispatch.ErrInvalidInput) {
			return h.sendError(channel, constants.ErrorInvalidLocation, err.Error())
		}
		return h.sendError(channel, constants.ErrorInternalError, "failed to process location update")
	}
	return nil
}
