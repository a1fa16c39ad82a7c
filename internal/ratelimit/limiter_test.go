package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWaitAllowsBurst(t *testing.T) {
	limiter := New("test", 10)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	for i := 0; i < 5; i++ {
		require.NoError(t, limiter.Wait(ctx))
	}
}

func TestWaitCancelledContext(t *testing.T) {
	limiter := New("test", 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Burn the initial burst token so the next Wait has to block.
	_ = limiter.Wait(context.Background())

	err := limiter.Wait(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "rate limit wait for test")
}

func TestName(t *testing.T) {
	require.Equal(t, "ingest", New("ingest", 1).Name())
}
