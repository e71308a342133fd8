package asyncx_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Abraxas-365/corekit/pkg/asyncx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllPreservesOrder(t *testing.T) {
	results, err := asyncx.All(context.Background(),
		func(ctx context.Context) (int, error) { time.Sleep(20 * time.Millisecond); return 1, nil },
		func(ctx context.Context) (int, error) { return 2, nil },
		func(ctx context.Context) (int, error) { time.Sleep(5 * time.Millisecond); return 3, nil },
	)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, results)
}

func TestAllShortCircuitsOnError(t *testing.T) {
	boom := errors.New("boom")
	results, err := asyncx.All(context.Background(),
		func(ctx context.Context) (int, error) { return 1, nil },
		func(ctx context.Context) (int, error) { return 0, boom },
	)

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, results)
}

func TestAllSettledNeverShortCircuits(t *testing.T) {
	boom := errors.New("boom")
	results := asyncx.AllSettled(context.Background(),
		func(ctx context.Context) (int, error) { return 1, nil },
		func(ctx context.Context) (int, error) { return 0, boom },
	)

	require.Len(t, results, 2)
	assert.True(t, results[0].OK())
	assert.Equal(t, 1, results[0].Value)
	assert.False(t, results[1].OK())
	assert.ErrorIs(t, results[1].Err, boom)
}

func TestRaceReturnsFirst(t *testing.T) {
	v, err := asyncx.Race(context.Background(),
		func(ctx context.Context) (string, error) {
			time.Sleep(100 * time.Millisecond)
			return "slow", nil
		},
		func(ctx context.Context) (string, error) { return "fast", nil },
	)

	require.NoError(t, err)
	assert.Equal(t, "fast", v)
}

func TestMap(t *testing.T) {
	items := []int{1, 2, 3, 4}
	doubled, err := asyncx.Map(context.Background(), items, func(ctx context.Context, v int) (int, error) {
		return v * 2, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6, 8}, doubled)
}

func TestForEachReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	err := asyncx.ForEach(context.Background(), []int{1, 2, 3}, func(ctx context.Context, v int) error {
		if v == 2 {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
}

func TestPoolBoundsConcurrency(t *testing.T) {
	const workers = 3
	var current, peak atomic.Int32

	items := make([]int, 24)
	for i := range items {
		items[i] = i
	}

	results, err := asyncx.Pool(context.Background(), workers, items, func(ctx context.Context, v int) (int, error) {
		n := current.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		current.Add(-1)
		return v, nil
	})

	require.NoError(t, err)
	assert.Equal(t, items, results)
	assert.LessOrEqual(t, peak.Load(), int32(workers))
}

func TestPoolPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := asyncx.Pool(context.Background(), 2, []int{1, 2, 3, 4}, func(ctx context.Context, v int) (int, error) {
		if v == 3 {
			return 0, boom
		}
		return v, nil
	})

	assert.ErrorIs(t, err, boom)
}

func TestRetrySucceedsEventually(t *testing.T) {
	var calls atomic.Int32
	v, err := asyncx.Retry(context.Background(), 5, func(ctx context.Context) (int, error) {
		if calls.Add(1) < 3 {
			return 0, errors.New("transient")
		}
		return 99, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 99, v)
	assert.EqualValues(t, 3, calls.Load())
}

func TestRetryReturnsLastError(t *testing.T) {
	last := errors.New("still broken")
	_, err := asyncx.Retry(context.Background(), 3, func(ctx context.Context) (int, error) {
		return 0, last
	})

	assert.ErrorIs(t, err, last)
}

func TestRetryWithBackoffHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := asyncx.RetryWithBackoff(ctx, 3, time.Second, func(ctx context.Context) (int, error) {
		return 0, errors.New("never")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithTimeout(t *testing.T) {
	_, err := asyncx.WithTimeout(context.Background(), 10*time.Millisecond, func(ctx context.Context) (int, error) {
		select {
		case <-time.After(time.Second):
			return 1, nil
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)

	v, err := asyncx.WithTimeout(context.Background(), time.Second, func(ctx context.Context) (int, error) {
		return 5, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestDebouncedCoalesces(t *testing.T) {
	var calls atomic.Int32
	debounced := asyncx.Debounced(20*time.Millisecond, func() { calls.Add(1) })

	for i := 0; i < 5; i++ {
		debounced()
		time.Sleep(time.Millisecond)
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 },
		time.Second, 5*time.Millisecond)
}

func TestThrottledDropsBurst(t *testing.T) {
	var calls atomic.Int32
	throttled := asyncx.Throttled(time.Hour, func() { calls.Add(1) })

	for i := 0; i < 5; i++ {
		throttled()
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 },
		time.Second, 5*time.Millisecond)
}
