package redis

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestImpressionKey(t *testing.T) {
	campaignID := uuid.MustParse("0b8f3c52-6c1e-4b5a-9a44-3f0c8f0b1a01")
	userID := uuid.MustParse("7d2a9e10-1f4b-4c7d-8e21-5a6b7c8d9e02")

	assert.Equal(t,
		"ads:impression:0b8f3c52-6c1e-4b5a-9a44-3f0c8f0b1a01:7d2a9e10-1f4b-4c7d-8e21-5a6b7c8d9e02",
		impressionKey("ads", campaignID, userID),
	)
}

func TestNewRedisGate_DefaultPrefix(t *testing.T) {
	gate := newRedisGate(nil, "")
	assert.Equal(t, defaultKeyPrefix, gate.prefix)
}

func TestOpenGate(t *testing.T) {
	gate := openGate{}

	ok, err := gate.Acquire(context.Background(), uuid.New(), uuid.New(), time.Hour)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, gate.Release(context.Background(), uuid.New(), uuid.New()))
}
