package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucketDrainsAndRefills(t *testing.T) {
	clock := time.Unix(1000, 0)
	tb := NewTokenBucket(2, 1)
	tb.now = func() time.Time { return clock }
	tb.lastRefill = clock

	assert.True(t, tb.TakeToken())
	assert.True(t, tb.TakeToken())
	assert.False(t, tb.TakeToken())

	clock = clock.Add(time.Second)
	assert.True(t, tb.TakeToken())
	assert.False(t, tb.TakeToken())
}

func TestTokenBucketClampsInvalidValues(t *testing.T) {
	tb := NewTokenBucket(0, -5)
	assert.Equal(t, float64(1), tb.capacity)
	assert.Equal(t, float64(1), tb.refillRate)
}

func TestWaitHonoursContext(t *testing.T) {
	clock := time.Unix(1000, 0)
	tb := NewTokenBucket(1, 1)
	tb.now = func() time.Time { return clock }
	tb.lastRefill = clock
	require.True(t, tb.TakeToken())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, tb.Wait(ctx), context.Canceled)
}
