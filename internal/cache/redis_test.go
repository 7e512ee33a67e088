package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopLockerAlwaysGrants(t *testing.T) {
	locker := NewLocker(nil)

	for range 2 {
		unlock, ok, err := locker.TryLock(context.Background(), "interview:questions:r1", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
		unlock()
	}
}

func TestRedisLockerReportsUnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	_, ok, err := NewLocker(client).TryLock(context.Background(), "k", time.Second)

	assert.Error(t, err)
	assert.False(t, ok)
}

func TestPingWithoutRedis(t *testing.T) {
	assert.NoError(t, Ping(context.Background(), nil))
}
