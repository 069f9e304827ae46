package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/churchpool/churchpool/internal/pkg/constants"
	"github.com/churchpool/churchpool/internal/pkg/database"
	"github.com/churchpool/churchpool/internal/pkg/models"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}

func TestStoreSample(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewLiveLocationRepository(database.NewRedisClientFromExisting(client))

	ctx := context.Background()
	sessionID := "a1b8b9be-64a6-4b35-9bcd-1f77e40aef21"
	sample := models.Location{
		Latitude:  -6.175392,
		Longitude: 106.827153,
		Accuracy:  8,
		Timestamp: time.Now(),
	}

	err := repo.StoreSample(ctx, sessionID, sample)
	assert.NoError(t, err)

	sampleKey := fmt.Sprintf(constants.KeySessionLocation, sessionID)
	assert.True(t, mr.Exists(sampleKey))
	assert.True(t, mr.Exists(constants.KeySharerGeo))

	ttl := mr.TTL(sampleKey)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestStoreSample_ThenGetLastSample(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewLiveLocationRepository(database.NewRedisClientFromExisting(client))

	ctx := context.Background()
	sessionID := "b54d0c0f-3f0c-4a7b-b9ab-6f20f3e5a730"
	sent := models.Location{
		Latitude:  52.520008,
		Longitude: 13.404954,
		Accuracy:  15,
		Timestamp: time.Now().Truncate(time.Second),
	}

	require.NoError(t, repo.StoreSample(ctx, sessionID, sent))

	got, err := repo.GetLastSample(ctx, sessionID)

	assert.NoError(t, err)
	assert.InDelta(t, sent.Latitude, got.Latitude, 1e-9)
	assert.InDelta(t, sent.Longitude, got.Longitude, 1e-9)
	assert.InDelta(t, sent.Accuracy, got.Accuracy, 1e-9)
	assert.Equal(t, sent.Timestamp.Unix(), got.Timestamp.Unix())
}

func TestGetLastSample_Missing(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewLiveLocationRepository(database.NewRedisClientFromExisting(client))

	got, err := repo.GetLastSample(context.Background(), "no-such-session")

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestRemoveSharer(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewLiveLocationRepository(database.NewRedisClientFromExisting(client))

	ctx := context.Background()
	sessionID := "c0a7e8bb-11f3-43a3-9ec0-0cb2f3f74c3d"
	require.NoError(t, repo.StoreSample(ctx, sessionID, models.Location{
		Latitude:  1,
		Longitude: 1,
		Timestamp: time.Now(),
	}))

	err := repo.RemoveSharer(ctx, sessionID)

	assert.NoError(t, err)
	sampleKey := fmt.Sprintf(constants.KeySessionLocation, sessionID)
	assert.False(t, mr.Exists(sampleKey))
}

func TestRemoveSharer_RedisDown(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewLiveLocationRepository(database.NewRedisClientFromExisting(client))

	sessionID := "d3adbeef-0000-4000-8000-000000000000"
	sampleKey := fmt.Sprintf(constants.KeySessionLocation, sessionID)
	mock.ExpectDel(sampleKey).SetErr(errors.New("connection refused"))

	err := repo.RemoveSharer(context.Background(), sessionID)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
