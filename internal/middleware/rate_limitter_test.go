package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := newRateLimiter(1, 1)
	limiter.now = func() time.Time { return now }
	limiter.lastSweep = now

	first := limiter.GetLimiterFrom("10.0.0.1")
	second := limiter.GetLimiterFrom("10.0.0.2")
	assert.Equal(t, 2, limiter.size())
	assert.Same(t, first, limiter.GetLimiterFrom("10.0.0.1"))

	now = now.Add(limiterIdleTTL / 2)
	limiter.GetLimiterFrom("10.0.0.1")

	now = now.Add(limiterIdleTTL/2 + time.Minute)
	limiter.GetLimiterFrom("10.0.0.3")

	assert.Equal(t, 2, limiter.size())
	assert.Same(t, first, limiter.GetLimiterFrom("10.0.0.1"))
	assert.NotSame(t, second, limiter.GetLimiterFrom("10.0.0.2"))
}

func TestRateLimiterKeepsBucketPerClient(t *testing.T) {
	limiter := newRateLimiter(1, 1)

	assert.True(t, limiter.GetLimiterFrom("10.0.0.1").Allow())
	assert.False(t, limiter.GetLimiterFrom("10.0.0.1").Allow())
	assert.True(t, limiter.GetLimiterFrom("10.0.0.2").Allow())
}
