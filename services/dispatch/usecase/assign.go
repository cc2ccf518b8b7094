package usecase

import (
	"context"
	"fmt"

	"github.com/quickbite/dispatch/internal/pkg/logger"
	"github.com/quickbite/dispatch/internal/pkg/models"
	"github.com/quickbite/dispatch/services/dispatch"
)

// AssignOrder performs one order to courier assignment: validate the courier,
// durably record the link with its audit entry, then notify. Recording
// failure aborts the request; notification failure does not. The result always
// distinguishes "assignment recorded" from "notification delivered".
func (uc *DispatchUC) AssignOrder(ctx context.Context, courierID string, req models.AssignmentRequest) (*models.AssignmentResult, error) {
	if courierID == "" {
		return nil, fmt.Errorf("%w: courier id is required", dispatch.ErrInvalidInput)
	}
	if req.OrderID == "" {
		return nil, fmt.Errorf("%w: order id is required", dispatch.ErrInvalidInput)
	}

	courier, err := uc.courierRepo.GetCourier(ctx, courierID)
	if err != nil {
		return nil, err
	}

	// Unavailability is a warning, not a hard failure: dispatch may override
	warning := !courier.IsAvailable || !courier.IsActive
	if warning {
		logger.Warn("Assigning order to unavailable courier",
			logger.String("order_id", req.OrderID),
			logger.String("courier_id", courierID))
	}

	if uc.cfg.Dispatch.ReassignPolicy == models.ReassignReject {
		current, err := uc.orderRepo.GetAssignedCourier(ctx, req.OrderID)
		if err != nil {
			return nil, err
		}
		if current != "" && current != courierID {
			return nil, fmt.Errorf("%w: order %s is assigned to courier %s", dispatch.ErrOrderAlreadyAssigned, req.OrderID, current)
		}
	}

	assignedAt := models.Now()
	assignmentID, err := uc.orderRepo.AssignCourier(ctx, req.OrderID, courierID, assignedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to record assignment: %w", err)
	}

	result := &models.AssignmentResult{
		AssignmentID:              assignmentID,
		CourierID:                 courierID,
		CourierUnavailableWarning: warning,
		AssignedAt:                assignedAt,
	}

	// Best-effort delivery; the recorded assignment stands either way
	result.Delivered = uc.dispatchGW.NotifyOrderAssigned(courierID, req, result)

	if err := uc.dispatchGW.PublishOrderAssigned(ctx, req.OrderID, courierID, result.Delivered); err != nil {
		logger.Warn("Failed to publish order assigned event",
			logger.String("order_id", req.OrderID),
			logger.Err(err))
	}

	logger.Info("Order assigned",
		logger.String("order_id", req.OrderID),
		logger.String("courier_id", courierID),
		logger.Bool("delivered", result.Delivered),
		logger.Bool("unavailable_warning", warning))

	return result, nil
}
