package usecase

import (
	"context"
	"fmt"

	"github.com/quickbite/dispatch/internal/pkg/logger"
	"github.com/quickbite/dispatch/internal/pkg/models"
)

// GetConnectedCouriers returns a snapshot of live courier connections joined
// with courier details from the store. The join is best effort; a store
// failure degrades the snapshot to connection data only.
func (uc *DispatchUC) GetConnectedCouriers(ctx context.Context) []models.ConnectedCourier {
	snapshot := uc.registry.ConnectedCouriers()
	if len(snapshot) == 0 {
		return snapshot
	}

	ids := make([]string, 0, len(snapshot))
	for _, connected := range snapshot {
		ids = append(ids, connected.CourierID)
	}

	couriers, err := uc.courierRepo.GetCouriersByIDs(ctx, ids)
	if err != nil {
		logger.Warn("Failed to join courier details into connection snapshot",
			logger.Int("connected", len(snapshot)),
			logger.Err(err))
		return snapshot
	}

	byID := make(map[string]*models.Courier, len(couriers))
	for _, courier := range couriers {
		byID[courier.ID] = courier
	}

	for i := range snapshot {
		courier, ok := byID[snapshot[i].CourierID]
		if !ok {
			continue
		}
		snapshot[i].Name = courier.Name
		snapshot[i].IsAvailable = courier.IsAvailable
		if courier.HasLocation() {
			location := courier.Location()
			snapshot[i].Location = &location
		}
	}

	return snapshot
}

// GetSystemStats aggregates connection counts with store counters
func (uc *DispatchUC) GetSystemStats(ctx context.Context) (*models.SystemStats, error) {
	totalCouriers, available, err := uc.courierRepo.CountCouriers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count couriers: %w", err)
	}

	totalOrders, assigned, err := uc.orderRepo.CountOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	return &models.SystemStats{
		Connections:    uc.registry.Stats(),
		TotalCouriers:  totalCouriers,
		AvailableCount: available,
		TotalOrders:    totalOrders,
		AssignedOrders: assigned,
		Timestamp:      models.Now(),
	}, nil
}
