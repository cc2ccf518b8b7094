package usecase

import (
	"context"
	"fmt"

	"github.com/quickbite/dispatch/internal/pkg/logger"
	"github.com/quickbite/dispatch/internal/pkg/models"
	"github.com/quickbite/dispatch/internal/utils"
	"github.com/quickbite/dispatch/services/dispatch"
)

// geohashPrecision gives roughly street-level cells, enough for dashboards
const geohashPrecision = 7

// UpdateCourierLocation records a courier position report. The relational
// store is authoritative; the location cache and the fan-outs are best-effort.
func (uc *DispatchUC) UpdateCourierLocation(ctx context.Context, courierID string, location models.Location) error {
	if courierID == "" {
		return fmt.Errorf("%w: courier id is required", dispatch.ErrInvalidInput)
	}
	if !utils.IsValidCoordinate(location) {
		return fmt.Errorf("%w: invalid coordinate (%f, %f)", dispatch.ErrInvalidInput, location.Latitude, location.Longitude)
	}

	if err := uc.courierRepo.UpdateCourierLocation(ctx, courierID, location); err != nil {
		return fmt.Errorf("failed to update courier location: %w", err)
	}

	if err := uc.locationRepo.StoreCourierLocation(ctx, courierID, location); err != nil {
		logger.Warn("Failed to cache courier location",
			logger.String("courier_id", courierID),
			logger.Err(err))
	}

	if err := uc.dispatchGW.PublishLocationUpdate(ctx, courierID, location); err != nil {
		logger.Warn("Failed to publish location update event",
			logger.String("courier_id", courierID),
			logger.Err(err))
	}

	uc.dispatchGW.BroadcastToDashboards(models.NewDispatchMessage(models.LocationUpdatePayload{
		CourierID: courierID,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Geohash:   utils.EncodeLocation(location, geohashPrecision),
		Timestamp: models.FormatTime(models.Now()),
	}))

	return nil
}
