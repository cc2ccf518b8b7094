package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbite/dispatch/internal/pkg/models"
	"github.com/quickbite/dispatch/services/dispatch"
)

func TestUpdateCourierLocation(t *testing.T) {
	uc, m, finish := setupUsecaseTest(t, nil)
	defer finish()

	location := models.Location{Latitude: 6.453236, Longitude: 3.542878}

	m.courierRepo.EXPECT().UpdateCourierLocation(gomock.Any(), "courier-1", location).Return(nil)
	m.locationRepo.EXPECT().StoreCourierLocation(gomock.Any(), "courier-1", location).Return(nil)
	m.dispatchGW.EXPECT().PublishLocationUpdate(gomock.Any(), "courier-1", location).Return(nil)
	m.dispatchGW.EXPECT().
		BroadcastToDashboards(gomock.Any()).
		DoAndReturn(func(message models.DispatchMessage) int {
			payload, ok := message.Data.(models.LocationUpdatePayload)
			require.True(t, ok)
			assert.Equal(t, "courier-1", payload.CourierID)
			assert.Equal(t, 6.453236, payload.Latitude)
			assert.NotEmpty(t, payload.Geohash)
			return 1
		})

	err := uc.UpdateCourierLocation(context.Background(), "courier-1", location)
	assert.NoError(t, err)
}

func TestUpdateCourierLocationInvalidCoordinate(t *testing.T) {
	uc, _, finish := setupUsecaseTest(t, nil)
	defer finish()

	err := uc.UpdateCourierLocation(context.Background(), "courier-1", models.Location{Latitude: 95, Longitude: 3.5})
	assert.ErrorIs(t, err, dispatch.ErrInvalidInput)

	err = uc.UpdateCourierLocation(context.Background(), "", models.Location{Latitude: 6.4, Longitude: 3.5})
	assert.ErrorIs(t, err, dispatch.ErrInvalidInput)
}

func TestUpdateCourierLocationStoreFailure(t *testing.T) {
	uc, m, finish := setupUsecaseTest(t, nil)
	defer finish()

	location := models.Location{Latitude: 6.453236, Longitude: 3.542878}

	m.courierRepo.EXPECT().
		UpdateCourierLocation(gomock.Any(), "courier-1", location).
		Return(errors.New("connection refused"))

	// No cache write and no fan-out when the authoritative store fails
	err := uc.UpdateCourierLocation(context.Background(), "courier-1", location)
	assert.Error(t, err)
}

func TestUpdateCourierLocationCacheFailureIsBestEffort(t *testing.T) {
	uc, m, finish := setupUsecaseTest(t, nil)
	defer finish()

	location := models.Location{Latitude: 6.453236, Longitude: 3.542878}

	m.courierRepo.EXPECT().UpdateCourierLocation(gomock.Any(), "courier-1", location).Return(nil)
	m.locationRepo.EXPECT().
		StoreCourierLocation(gomock.Any(), "courier-1", location).
		Return(errors.New("redis: connection pool timeout"))
	m.dispatchGW.EXPECT().PublishLocationUpdate(gomock.Any(), "courier-1", location).Return(nil)
	m.dispatchGW.EXPECT().BroadcastToDashboards(gomock.Any()).Return(1)

	err := uc.UpdateCourierLocation(context.Background(), "courier-1", location)
	assert.NoError(t, err)
}

func TestGetConnectedCouriers(t *testing.T) {
	uc, m, finish := setupUsecaseTest(t, nil)
	defer finish()

	connected := []models.ConnectedCourier{{CourierID: "courier-1"}, {CourierID: "courier-2"}}
	m.registry.EXPECT().ConnectedCouriers().Return(connected)
	m.courierRepo.EXPECT().
		GetCouriersByIDs(gomock.Any(), []string{"courier-1", "courier-2"}).
		Return([]*models.Courier{courierAt("courier-1", "Ada", 6.403236, 3.502878)}, nil)

	result := uc.GetConnectedCouriers(context.Background())

	require.Len(t, result, 2)
	assert.Equal(t, "Ada", result[0].Name)
	require.NotNil(t, result[0].Location)
	assert.Equal(t, 6.403236, result[0].Location.Latitude)
	// courier-2 has no store row, connection fields only
	assert.Empty(t, result[1].Name)
	assert.Nil(t, result[1].Location)
}

func TestGetConnectedCouriersStoreFailureDegrades(t *testing.T) {
	uc, m, finish := setupUsecaseTest(t, nil)
	defer finish()

	connected := []models.ConnectedCourier{{CourierID: "courier-1"}}
	m.registry.EXPECT().ConnectedCouriers().Return(connected)
	m.courierRepo.EXPECT().
		GetCouriersByIDs(gomock.Any(), []string{"courier-1"}).
		Return(nil, errors.New("store down"))

	result := uc.GetConnectedCouriers(context.Background())

	require.Len(t, result, 1)
	assert.Equal(t, "courier-1", result[0].CourierID)
	assert.Empty(t, result[0].Name)
}

func TestGetConnectedCouriersEmpty(t *testing.T) {
	uc, m, finish := setupUsecaseTest(t, nil)
	defer finish()

	m.registry.EXPECT().ConnectedCouriers().Return(nil)

	assert.Empty(t, uc.GetConnectedCouriers(context.Background()))
}

func TestGetSystemStats(t *testing.T) {
	uc, m, finish := setupUsecaseTest(t, nil)
	defer finish()

	m.courierRepo.EXPECT().CountCouriers(gomock.Any()).Return(10, 4, nil)
	m.orderRepo.EXPECT().CountOrders(gomock.Any()).Return(25, 18, nil)
	m.registry.EXPECT().Stats().Return(models.ConnectionStats{ConnectedCouriers: 3, ConnectedDashboards: 1, TotalConnections: 4})

	stats, err := uc.GetSystemStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 10, stats.TotalCouriers)
	assert.Equal(t, 4, stats.AvailableCount)
	assert.Equal(t, 25, stats.TotalOrders)
	assert.Equal(t, 18, stats.AssignedOrders)
	assert.Equal(t, 3, stats.Connections.ConnectedCouriers)
}

func TestGetSystemStatsStoreError(t *testing.T) {
	uc, m, finish := setupUsecaseTest(t, nil)
	defer finish()

	m.courierRepo.EXPECT().CountCouriers(gomock.Any()).Return(0, 0, errors.New("connection refused"))

	stats, err := uc.GetSystemStats(context.Background())

	assert.Nil(t, stats)
	assert.Error(t, err)
}
