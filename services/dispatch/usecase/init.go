package usecase

import (
	"github.com/quickbite/dispatch/internal/pkg/models"
	"github.com/quickbite/dispatch/services/dispatch"
)

// DispatchUC implements the dispatch use case interface
type DispatchUC struct {
	cfg          *models.Config
	courierRepo  dispatch.CourierRepo
	orderRepo    dispatch.OrderRepo
	locationRepo dispatch.LocationRepo
	registry     dispatch.ConnectionRegistry
	dispatchGW   dispatch.DispatchGW
}

// NewDispatchUC creates a new dispatch use case
func NewDispatchUC(
	cfg *models.Config,
	courierRepo dispatch.CourierRepo,
	orderRepo dispatch.OrderRepo,
	locationRepo dispatch.LocationRepo,
	registry dispatch.ConnectionRegistry,
	dispatchGW dispatch.DispatchGW,
) *DispatchUC {
	return &DispatchUC{
		cfg:          cfg,
		courierRepo:  courierRepo,
		orderRepo:    orderRepo,
		locationRepo: locationRepo,
		registry:     registry,
		dispatchGW:   dispatchGW,
	}
}
