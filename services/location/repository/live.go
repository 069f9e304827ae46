package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/churchpool/churchpool/internal/pkg/constants"
	"github.com/churchpool/churchpool/internal/pkg/database"
	"github.com/churchpool/churchpool/internal/pkg/models"
)

// liveSampleTTL bounds how long a sharer's hot position outlives its
// last sample. Sessions that stop cleanly delete their key anyway.
const liveSampleTTL = time.Hour

// LiveLocationRepo implements location.LiveLocationRepo on Redis
type LiveLocationRepo struct {
	redisClient *database.RedisClient
}

// NewLiveLocationRepository creates a new live location repository
func NewLiveLocationRepository(redisClient *database.RedisClient) *LiveLocationRepo {
	return &LiveLocationRepo{
		redisClient: redisClient,
	}
}

// StoreSample writes the session's position hash and its entry in the
// shared geo set.
func (r *LiveLocationRepo) StoreSample(ctx context.Context, sessionID string, location models.Location) error {
	sampleKey := fmt.Sprintf(constants.KeySessionLocation, sessionID)
	sampleData := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(location.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(location.Longitude, 'f', -1, 64),
		constants.FieldAccuracy:  strconv.FormatFloat(location.Accuracy, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(location.Timestamp.Unix(), 10),
	}

	if err := r.redisClient.HMSet(ctx, sampleKey, sampleData); err != nil {
		return fmt.Errorf("failed to store location sample: %w", err)
	}

	if err := r.redisClient.Expire(ctx, sampleKey, liveSampleTTL); err != nil {
		return fmt.Errorf("failed to set sample TTL: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeySharerGeo, location.Longitude, location.Latitude, sessionID); err != nil {
		return fmt.Errorf("failed to update sharer geo set: %w", err)
	}

	return nil
}

// GetLastSample reads the hot position for a session, if any
func (r *LiveLocationRepo) GetLastSample(ctx context.Context, sessionID string) (*models.Location, error) {
	sampleKey := fmt.Sprintf(constants.KeySessionLocation, sessionID)

	values, err := r.redisClient.HMGet(ctx, sampleKey,
		constants.FieldLatitude, constants.FieldLongitude,
		constants.FieldAccuracy, constants.FieldTimestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to get location sample: %w", err)
	}

	hasValue := false
	for _, v := range values {
		if v != "" {
			hasValue = true
			break
		}
	}
	if !hasValue || len(values) != 4 {
		return nil, fmt.Errorf("no location sample for session %s", sessionID)
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}

	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	acc, err := strconv.ParseFloat(values[2], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid accuracy: %w", err)
	}

	ts, err := strconv.ParseInt(values[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	return &models.Location{
		Latitude:  lat,
		Longitude: lng,
		Accuracy:  acc,
		Timestamp: time.Unix(ts, 0),
	}, nil
}

// RemoveSharer clears the session's hot position and geo entry
func (r *LiveLocationRepo) RemoveSharer(ctx context.Context, sessionID string) error {
	sampleKey := fmt.Sprintf(constants.KeySessionLocation, sessionID)

	if err := r.redisClient.Delete(ctx, sampleKey); err != nil {
		return fmt.Errorf("failed to delete location sample: %w", err)
	}

	if err := r.redisClient.ZRem(ctx, constants.KeySharerGeo, sessionID); err != nil {
		return fmt.Errorf("failed to remove sharer from geo set: %w", err)
	}

	return nil
}
