package lazyx_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Abraxas-365/corekit/pkg/errx"
	"github.com/Abraxas-365/corekit/pkg/lazyx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoizeComputesOnce(t *testing.T) {
	var calls atomic.Int32
	s := lazyx.Memoize(func() int {
		return int(calls.Add(1))
	})

	assert.False(t, s.Initialized())
	assert.Equal(t, 1, s.Get())
	assert.Equal(t, 1, s.Get())
	assert.True(t, s.Initialized())
	assert.EqualValues(t, 1, calls.Load())
}

func TestMemoizeConcurrentCallersSeeOneValue(t *testing.T) {
	const n = 64

	var calls atomic.Int32
	s := lazyx.Memoize(func() int {
		return int(calls.Add(1))
	})

	start := make(chan struct{})
	results := make([]int, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			<-start
			results[i] = s.Get()
		}()
	}
	close(start)
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load(), "initializer must run exactly once")
	for i := 0; i < n; i++ {
		assert.Equal(t, 1, results[i])
	}
}

func TestMemoizeReturnsIdenticalReference(t *testing.T) {
	type box struct{ n int }
	s := lazyx.Memoize(func() *box { return &box{n: 1} })

	assert.Same(t, s.Get(), s.Get())
}

func TestMemoizeNilInitializerPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected construction to panic")

		err, ok := r.(*errx.Error)
		require.True(t, ok)
		assert.Equal(t, errx.TypeValidation, err.Type)
	}()

	lazyx.Memoize[int](nil)
}

func TestMemoizeNilValuePanicsOnFirstGet(t *testing.T) {
	s := lazyx.Memoize(func() *int { return nil })

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected Get to panic")

		err, ok := r.(*errx.Error)
		require.True(t, ok)
		assert.Equal(t, errx.TypeIllegalState, err.Type)
	}()

	s.Get()
}

func TestMemoizeZeroValueTypesAreNotAbsent(t *testing.T) {
	var calls atomic.Int32
	s := lazyx.Memoize(func() int {
		calls.Add(1)
		return 0
	})

	assert.Equal(t, 0, s.Get())
	assert.Equal(t, 0, s.Get())
	assert.EqualValues(t, 1, calls.Load(), "zero int is a present value, not a miss")
}

func TestMemoizeErrCachesFailure(t *testing.T) {
	var calls atomic.Int32
	boom := errors.New("boom")

	fn := lazyx.MemoizeErr(func() (int, error) {
		calls.Add(1)
		return 0, boom
	})

	_, err := fn()
	assert.ErrorIs(t, err, boom)
	_, err = fn()
	assert.ErrorIs(t, err, boom)
	assert.EqualValues(t, 1, calls.Load())
}

func TestGroupCollapsesConcurrentLoads(t *testing.T) {
	const n = 32

	var calls atomic.Int32
	var g lazyx.Group[int]

	gate := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			<-gate
			v, err := g.Get("key", func() (int, error) {
				calls.Add(1)
				return 7, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, 7, v)
		}()
	}
	close(gate)
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
	assert.True(t, g.Has("key"))
}

func TestGroupDoesNotCacheErrors(t *testing.T) {
	var calls atomic.Int32
	var g lazyx.Group[string]

	boom := errors.New("boom")
	_, err := g.Get("k", func() (string, error) {
		calls.Add(1)
		return "", boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, g.Has("k"))

	v, err := g.Get("k", func() (string, error) {
		calls.Add(1)
		return "second", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "second", v)
	assert.EqualValues(t, 2, calls.Load())
}

func TestGroupForget(t *testing.T) {
	var g lazyx.Group[int]

	_, err := g.Get("k", func() (int, error) { return 1, nil })
	require.NoError(t, err)

	g.Forget("k")

	v, err := g.Get("k", func() (int, error) { return 2, nil })
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}
