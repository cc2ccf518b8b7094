package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/quickbite/dispatch/internal/pkg/constants"
	"github.com/quickbite/dispatch/internal/pkg/database"
	"github.com/quickbite/dispatch/internal/pkg/models"
	"github.com/quickbite/dispatch/internal/utils"
)

// geohashPrecision matches roughly 150m cells, enough for dispatch display
const geohashPrecision = 7

// LocationRepo implements the courier location cache over redis. Each courier
// has a hash with the last report plus membership in one geo set used for
// radius queries.
type LocationRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(cfg *models.Config, redisClient *database.RedisClient) *LocationRepo {
	return &LocationRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

// StoreCourierLocation caches a courier's last report and refreshes its geo
// set membership
func (r *LocationRepo) StoreCourierLocation(ctx context.Context, courierID string, location models.Location) error {
	key := fmt.Sprintf(constants.KeyCourierLocation, courierID)

	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(location.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(location.Longitude, 'f', -1, 64),
		constants.FieldGeohash:   utils.EncodeLocation(location, geohashPrecision),
		constants.FieldTimestamp: models.FormatTime(models.Now()),
	}
	if err := r.redisClient.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store courier location: %w", err)
	}

	ttl := time.Duration(r.cfg.Dispatch.LocationCacheTTL) * time.Minute
	if err := r.redisClient.Expire(ctx, key, ttl); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyCourierGeo, location.Longitude, location.Latitude, courierID); err != nil {
		return fmt.Errorf("failed to update courier geo set: %w", err)
	}
	return nil
}

// GetLastLocation reads a courier's cached location, nil when absent or expired
func (r *LocationRepo) GetLastLocation(ctx context.Context, courierID string) (*models.Location, error) {
	key := fmt.Sprintf(constants.KeyCourierLocation, courierID)

	values, err := r.redisClient.HMGet(ctx, key, constants.FieldLatitude, constants.FieldLongitude, constants.FieldTimestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to get courier location: %w", err)
	}
	if values[0] == "" || values[1] == "" {
		return nil, nil
	}

	latitude, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt cached latitude %q: %w", values[0], err)
	}
	longitude, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt cached longitude %q: %w", values[1], err)
	}

	location := &models.Location{Latitude: latitude, Longitude: longitude}
	if values[2] != "" {
		if ts, err := models.ParseTime(values[2]); err == nil {
			location.Timestamp = ts
		}
	}
	return location, nil
}

// RemoveCourierLocation drops a courier from the cache and the geo set
func (r *LocationRepo) RemoveCourierLocation(ctx context.Context, courierID string) error {
	key := fmt.Sprintf(constants.KeyCourierLocation, courierID)

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to remove courier location: %w", err)
	}
	if err := r.redisClient.ZRem(ctx, constants.KeyCourierGeo, courierID); err != nil {
		return fmt.Errorf("failed to remove courier from geo set: %w", err)
	}
	return nil
}
