package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbite/dispatch/internal/pkg/models"
	"github.com/quickbite/dispatch/services/dispatch"
	"github.com/quickbite/dispatch/services/dispatch/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Dispatch: models.DispatchConfig{SearchRadiusKm: 5.0},
	}
}

func TestFindNearbyCouriers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC, testConfig())

	origin := models.Location{Latitude: 6.453236, Longitude: 3.542878}
	mockUC.EXPECT().
		FindNearbyCouriers(gomock.Any(), origin, 5.0).
		Return([]models.CandidateCourier{
			{CourierID: "courier-1", DistanceKm: 0, Connected: true},
		}, nil)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/dispatch/nearby?latitude=6.453236&longitude=3.542878", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(request, rec)

	err := handler.FindNearbyCouriers(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			TotalFound int `json:"total_found"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Data.TotalFound)
}

func TestFindNearbyCouriersMissingCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewDispatchHandler(mocks.NewMockDispatchUC(ctrl), testConfig())

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/dispatch/couriers/nearby", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(request, rec)

	err := handler.FindNearbyCouriers(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindNearbyCouriersInvalidRadius(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC, testConfig())

	mockUC.EXPECT().
		FindNearbyCouriers(gomock.Any(), gomock.Any(), -3.0).
		Return(nil, dispatch.ErrInvalidInput)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/dispatch/couriers/nearby?latitude=6.4&longitude=3.5&radius_km=-3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(request, rec)

	err := handler.FindNearbyCouriers(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchForOrderWithExplicitOrigin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC, testConfig())

	origin := models.Location{Latitude: 6.453236, Longitude: 3.542878}
	mockUC.EXPECT().
		SearchForOrder(gomock.Any(), "order-1", origin, 3.0).
		Return(&models.ProximityResult{OrderID: "order-1", Origin: origin, SearchRadiusKm: 3}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"latitude":  6.453236,
		"longitude": 3.542878,
		"radius_km": 3,
	})

	e := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(body))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(request, rec)
	c.SetParamNames("orderID")
	c.SetParamValues("order-1")

	err := handler.SearchForOrder(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchForOrderFallsBackToStoredOrigin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC, testConfig())

	mockUC.EXPECT().
		SearchForStoredOrder(gomock.Any(), "order-1", 5.0).
		Return(&models.ProximityResult{OrderID: "order-1", SearchRadiusKm: 5}, nil)

	e := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("{}"))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(request, rec)
	c.SetParamNames("orderID")
	c.SetParamValues("order-1")

	err := handler.SearchForOrder(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchForStoredOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC, testConfig())

	mockUC.EXPECT().
		SearchForStoredOrder(gomock.Any(), "order-1", 2.5).
		Return(&models.ProximityResult{OrderID: "order-1", SearchRadiusKm: 2.5}, nil)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/?radius_km=2.5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(request, rec)
	c.SetParamNames("orderID")
	c.SetParamValues("order-1")

	err := handler.SearchForStoredOrder(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchForStoredOrderInvalidRadius(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC, testConfig())

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/?radius_km=wide", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(request, rec)
	c.SetParamNames("orderID")
	c.SetParamValues("order-1")

	err := handler.SearchForStoredOrder(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssignOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC, testConfig())

	mockUC.EXPECT().
		AssignOrder(gomock.Any(), "courier-1", models.AssignmentRequest{
			OrderID:     "order-1",
			Description: "2x nasi goreng",
			Priority:    "high",
		}).
		Return(&models.AssignmentResult{AssignmentID: "assign-1", CourierID: "courier-1", Delivered: true}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"courier_id":  "courier-1",
		"order_id":    "order-1",
		"description": "2x nasi goreng",
		"priority":    "high",
	})

	e := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/dispatch/assign", bytes.NewBuffer(body))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(request, rec)

	err := handler.AssignOrder(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAssignOrderErrorMapping(t *testing.T) {
	testCases := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{"courier not found", dispatch.ErrCourierNotFound, http.StatusNotFound},
		{"already assigned", dispatch.ErrOrderAlreadyAssigned, http.StatusConflict},
		{"invalid input", dispatch.ErrInvalidInput, http.StatusBadRequest},
		{"store failure", assertableErr("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockDispatchUC(ctrl)
			handler := NewDispatchHandler(mockUC, testConfig())

			mockUC.EXPECT().
				AssignOrder(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tc.ucErr)

			e := echo.New()
			request := httptest.NewRequest(http.MethodPost, "/dispatch/assign", bytes.NewBufferString(`{"courier_id":"courier-1","order_id":"order-1"}`))
			request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(request, rec)

			err := handler.AssignOrder(c)

			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestGetConnectedCouriers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC, testConfig())

	mockUC.EXPECT().
		GetConnectedCouriers(gomock.Any()).
		Return([]models.ConnectedCourier{{CourierID: "courier-1"}})

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/dispatch/couriers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(request, rec)

	err := handler.GetConnectedCouriers(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetSystemStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC, testConfig())

	mockUC.EXPECT().
		GetSystemStats(gomock.Any()).
		Return(&models.SystemStats{TotalCouriers: 10}, nil)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/dispatch/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(request, rec)

	err := handler.GetSystemStats(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

type assertableErr string

func (e assertableErr) Error() string { return string(e) }
