package websocket

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbite/dispatch/internal/pkg/constants"
	"github.com/quickbite/dispatch/internal/pkg/models"
	wspkg "github.com/quickbite/dispatch/internal/pkg/websocket"
	"github.com/quickbite/dispatch/services/dispatch"
	"github.com/quickbite/dispatch/services/dispatch/mocks"
)

type captureChannel struct {
	sent []models.DispatchMessage
}

func (c *captureChannel) Send(message models.DispatchMessage) error {
	c.sent = append(c.sent, message)
	return nil
}

func (c *captureChannel) IsOpen() bool { return true }

func setupHandlerTest(t *testing.T) (*WebSocketHandler, *mocks.MockDispatchUC, func()) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockDispatchUC(ctrl)

	cfg := &models.Config{
		Dispatch: models.DispatchConfig{SendTimeoutMs: 250},
	}
	handler := NewWebSocketHandler(cfg, mockUC, wspkg.NewManager(models.JWTConfig{Secret: "test"}), wspkg.NewRegistry())
	return handler, mockUC, ctrl.Finish
}

func courierClient() *models.WebSocketClient {
	return &models.WebSocketClient{SubjectID: "courier-1", Role: constants.RoleCourier}
}

func dashboardClient() *models.WebSocketClient {
	return &models.WebSocketClient{SubjectID: "dash-1", Role: constants.RoleDashboard}
}

func TestRouteMessagePing(t *testing.T) {
	handler, _, finish := setupHandlerTest(t)
	defer finish()

	channel := &captureChannel{}
	err := handler.routeMessage(courierClient(), channel, &models.WSMessage{Event: constants.EventPing})

	assert.NoError(t, err)
	assert.Empty(t, channel.sent)
}

func TestRouteMessageLocationUpdate(t *testing.T) {
	handler, mockUC, finish := setupHandlerTest(t)
	defer finish()

	mockUC.EXPECT().
		UpdateCourierLocation(gomock.Any(), "courier-1", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, location models.Location) error {
			assert.Equal(t, 6.453236, location.Latitude)
			assert.Equal(t, 3.542878, location.Longitude)
			assert.False(t, location.Timestamp.IsZero())
			return nil
		})

	channel := &captureChannel{}
	data, _ := json.Marshal(map[string]float64{"latitude": 6.453236, "longitude": 3.542878})
	err := handler.routeMessage(courierClient(), channel, &models.WSMessage{Event: constants.EventLocationUpdate, Data: data})

	assert.NoError(t, err)
	assert.Empty(t, channel.sent)
}

func TestRouteMessageLocationUpdateInvalidCoordinate(t *testing.T) {
	handler, mockUC, finish := setupHandlerTest(t)
	defer finish()

	mockUC.EXPECT().
		UpdateCourierLocation(gomock.Any(), "courier-1", gomock.Any()).
		Return(dispatch.ErrInvalidInput)

	channel := &captureChannel{}
	data, _ := json.Marshal(map[string]float64{"latitude": 95, "longitude": 3.5})
	err := handler.routeMessage(courierClient(), channel, &models.WSMessage{Event: constants.EventLocationUpdate, Data: data})

	require.NoError(t, err)
	require.Len(t, channel.sent, 1)
	payload, ok := channel.sent[0].Data.(models.ErrorPayload)
	require.True(t, ok)
	assert.Equal(t, constants.ErrorInvalidLocation, payload.Code)
}

func TestRouteMessageLocationUpdateMalformedPayload(t *testing.T) {
	handler, _, finish := setupHandlerTest(t)
	defer finish()

	channel := &captureChannel{}
	err := handler.routeMessage(courierClient(), channel, &models.WSMessage{
		Event: constants.EventLocationUpdate,
		Data:  json.RawMessage(`"not an object"`),
	})

	require.NoError(t, err)
	require.Len(t, channel.sent, 1)
	payload := channel.sent[0].Data.(models.ErrorPayload)
	assert.Equal(t, constants.ErrorInvalidFormat, payload.Code)
}

func TestRouteMessageLocationUpdateFromDashboardRejected(t *testing.T) {
	handler, _, finish := setupHandlerTest(t)
	defer finish()

	channel := &captureChannel{}
	data, _ := json.Marshal(map[string]float64{"latitude": 6.4, "longitude": 3.5})
	err := handler.routeMessage(dashboardClient(), channel, &models.WSMessage{Event: constants.EventLocationUpdate, Data: data})

	require.NoError(t, err)
	require.Len(t, channel.sent, 1)
	payload := channel.sent[0].Data.(models.ErrorPayload)
	assert.Equal(t, constants.ErrorUnauthorized, payload.Code)
}

func TestRouteMessageCourierList(t *testing.T) {
	handler, mockUC, finish := setupHandlerTest(t)
	defer finish()

	mockUC.EXPECT().
		GetConnectedCouriers(gomock.Any()).
		Return([]models.ConnectedCourier{{CourierID: "courier-1"}})

	channel := &captureChannel{}
	err := handler.routeMessage(dashboardClient(), channel, &models.WSMessage{Event: constants.EventCourierList})

	require.NoError(t, err)
	require.Len(t, channel.sent, 1)
	assert.Equal(t, models.MessageConnectedCouriers, channel.sent[0].Type)

	payload := channel.sent[0].Data.(models.ConnectedCouriersPayload)
	require.Len(t, payload.Couriers, 1)
	assert.Equal(t, "courier-1", payload.Couriers[0].CourierID)
}

func TestRouteMessageCourierListFromCourierRejected(t *testing.T) {
	handler, _, finish := setupHandlerTest(t)
	defer finish()

	channel := &captureChannel{}
	err := handler.routeMessage(courierClient(), channel, &models.WSMessage{Event: constants.EventCourierList})

	require.NoError(t, err)
	require.Len(t, channel.sent, 1)
	payload := channel.sent[0].Data.(models.ErrorPayload)
	assert.Equal(t, constants.ErrorUnauthorized, payload.Code)
}

func TestRouteMessageUnknownEvent(t *testing.T) {
	handler, _, finish := setupHandlerTest(t)
	defer finish()

	channel := &captureChannel{}
	err := handler.routeMessage(courierClient(), channel, &models.WSMessage{Event: "self_destruct"})

	require.NoError(t, err)
	require.Len(t, channel.sent, 1)
	payload := channel.sent[0].Data.(models.ErrorPayload)
	assert.Equal(t, constants.ErrorInvalidFormat, payload.Code)
}
