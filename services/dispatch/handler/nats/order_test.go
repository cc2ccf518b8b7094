package nats

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/quickbite/dispatch/internal/pkg/models"
	"github.com/quickbite/dispatch/services/dispatch"
	"github.com/quickbite/dispatch/services/dispatch/mocks"
)

func setupNATSHandlerTest(t *testing.T) (*DispatchHandler, *mocks.MockDispatchUC, func()) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockDispatchUC(ctrl)

	cfg := &models.Config{
		Dispatch: models.DispatchConfig{SearchRadiusKm: 5.0},
	}
	handler := NewDispatchHandler(cfg, mockUC, nil)
	return handler, mockUC, ctrl.Finish
}

func TestHandleOrderCreated(t *testing.T) {
	handler, mockUC, finish := setupNATSHandlerTest(t)
	defer finish()

	origin := models.Location{Latitude: 6.453236, Longitude: 3.542878}
	mockUC.EXPECT().
		SearchForOrder(gomock.Any(), "order-1", origin, 5.0).
		Return(&models.ProximityResult{OrderID: "order-1"}, nil)

	message, _ := json.Marshal(models.OrderCreatedEvent{OrderID: "order-1", Origin: origin})
	err := handler.handleOrderCreated(message)

	assert.NoError(t, err)
}

func TestHandleOrderCreatedWithoutOriginUsesStoredOrder(t *testing.T) {
	handler, mockUC, finish := setupNATSHandlerTest(t)
	defer finish()

	mockUC.EXPECT().
		SearchForStoredOrder(gomock.Any(), "order-1", 5.0).
		Return(&models.ProximityResult{OrderID: "order-1"}, nil)

	message, _ := json.Marshal(models.OrderCreatedEvent{OrderID: "order-1"})
	err := handler.handleOrderCreated(message)

	assert.NoError(t, err)
}

func TestHandleOrderCreatedMalformedPayload(t *testing.T) {
	handler, _, finish := setupNATSHandlerTest(t)
	defer finish()

	err := handler.handleOrderCreated([]byte("not json"))
	assert.Error(t, err)
}

func TestHandleOrderCreatedMissingOrderID(t *testing.T) {
	handler, _, finish := setupNATSHandlerTest(t)
	defer finish()

	err := handler.handleOrderCreated([]byte(`{"origin":{"latitude":6.4,"longitude":3.5}}`))
	assert.Error(t, err)
}

func TestHandleOrderCreatedSearchFailure(t *testing.T) {
	handler, mockUC, finish := setupNATSHandlerTest(t)
	defer finish()

	mockUC.EXPECT().
		SearchForStoredOrder(gomock.Any(), "order-404", 5.0).
		Return(nil, dispatch.ErrOrderNotFound)

	message, _ := json.Marshal(models.OrderCreatedEvent{OrderID: "order-404"})
	err := handler.handleOrderCreated(message)

	assert.ErrorIs(t, err, dispatch.ErrOrderNotFound)
}
