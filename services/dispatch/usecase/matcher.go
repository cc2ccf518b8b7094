package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/quickbite/dispatch/internal/pkg/logger"
	"github.com/quickbite/dispatch/internal/pkg/models"
	"github.com/quickbite/dispatch/internal/utils"
	"github.com/quickbite/dispatch/services/dispatch"
)

// FindNearbyCouriers returns available couriers within radiusKm of origin,
// sorted ascending by distance, ties broken by courier id. The bounding box
// query is only a pre-filter; every candidate is re-checked against the
// exact haversine distance. An empty result is not an error.
func (uc *DispatchUC) FindNearbyCouriers(ctx context.Context, origin models.Location, radiusKm float64) ([]models.CandidateCourier, error) {
	if !utils.IsValidCoordinate(origin) {
		return nil, fmt.Errorf("%w: invalid origin coordinate (%f, %f)", dispatch.ErrInvalidInput, origin.Latitude, origin.Longitude)
	}
	if radiusKm <= 0 {
		return nil, fmt.Errorf("%w: search radius must be positive, got %f", dispatch.ErrInvalidInput, radiusKm)
	}

	box := utils.BoundingBox(origin, radiusKm)
	couriers, err := uc.courierRepo.FindAvailableInBoundingBox(ctx, box)
	if err != nil {
		return nil, fmt.Errorf("failed to query couriers in bounding box: %w", err)
	}

	candidates := make([]models.CandidateCourier, 0, len(couriers))
	for _, courier := range couriers {
		if !courier.HasLocation() {
			continue
		}
		location := courier.Location()

		// The box over-approximates near the poles and at large radii
		distance := utils.CalculateDistanceKm(origin, location)
		if distance > radiusKm {
			continue
		}

		candidates = append(candidates, models.CandidateCourier{
			CourierID:  courier.ID,
			Name:       courier.Name,
			Location:   location,
			DistanceKm: distance,
			Connected:  uc.registry.IsCourierConnected(courier.ID),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].DistanceKm != candidates[j].DistanceKm {
			return candidates[i].DistanceKm < candidates[j].DistanceKm
		}
		return candidates[i].CourierID < candidates[j].CourierID
	})

	return candidates, nil
}

// SearchForOrder runs a proximity search for an order and fans the result out
// to the connected candidates and all dashboards
func (uc *DispatchUC) SearchForOrder(ctx context.Context, orderID string, origin models.Location, radiusKm float64) (*models.ProximityResult, error) {
	candidates, err := uc.FindNearbyCouriers(ctx, origin, radiusKm)
	if err != nil {
		return nil, err
	}

	connected := 0
	for _, candidate := range candidates {
		if candidate.Connected {
			connected++
		}
	}

	result := &models.ProximityResult{
		OrderID:        orderID,
		Origin:         origin,
		Candidates:     candidates,
		SearchRadiusKm: radiusKm,
		TotalFound:     len(candidates),
		ConnectedCount: connected,
	}

	notified := uc.dispatchGW.NotifyProximityResults(result)
	logger.Info("Proximity search completed",
		logger.String("order_id", orderID),
		logger.Int("total_found", result.TotalFound),
		logger.Int("connected", result.ConnectedCount),
		logger.Int("notified", notified))

	return result, nil
}

// SearchForStoredOrder looks up the order's origin from the store and runs
// SearchForOrder with it
func (uc *DispatchUC) SearchForStoredOrder(ctx context.Context, orderID string, radiusKm float64) (*models.ProximityResult, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: order id is required", dispatch.ErrInvalidInput)
	}

	origin, err := uc.orderRepo.GetOrderOrigin(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return uc.SearchForOrder(ctx, orderID, *origin, radiusKm)
}
