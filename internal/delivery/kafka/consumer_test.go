package kafka

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"orderdesk/internal/service"
)

func TestBackoff_GrowsAndCaps(t *testing.T) {
	base := 200 * time.Millisecond

	require.Equal(t, time.Duration(0), backoff(0, base))
	require.Equal(t, base, backoff(1, base))
	require.Equal(t, 2*base, backoff(2, base))
	require.Equal(t, 4*base, backoff(3, base))
	require.Equal(t, 5*time.Second, backoff(10, base))
}

func TestSleepCtx_ReturnsEarlyOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	require.False(t, sleepCtx(ctx, 5*time.Second))
	require.Less(t, time.Since(start), time.Second)

	require.False(t, sleepCtx(ctx, 0))
	require.True(t, sleepCtx(context.Background(), time.Millisecond))
}

func TestIsNonRetryable(t *testing.T) {
	require.True(t, isNonRetryable(service.ErrDecode))
	require.True(t, isNonRetryable(fmt.Errorf("submission rejected: %w", service.ErrValidation)))
	require.True(t, isNonRetryable(service.ErrNotAuthenticated))
	require.True(t, isNonRetryable(service.ErrProfileNotFound))
	require.True(t, isNonRetryable(service.ErrRetailerNotFound))
	require.False(t, isNonRetryable(fmt.Errorf("broker hiccup")))
}

func TestNewPublisher_BrokerList(t *testing.T) {
	_, err := NewPublisher(nil, "order-submissions")
	require.Error(t, err)

	p, err := NewPublisher([]string{"broker-1:9092", "broker-2:9092"}, "order-submissions")
	require.NoError(t, err)
	defer p.Close()

	addr := p.writer.Addr.String()
	require.Contains(t, addr, "broker-1:9092")
	require.Contains(t, addr, "broker-2:9092")
}
