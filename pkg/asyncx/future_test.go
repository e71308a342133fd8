package asyncx_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Abraxas-365/corekit/pkg/asyncx"
	"github.com/Abraxas-365/corekit/pkg/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Keep absorbed-failure warnings out of test output.
	asyncx.SetLogger(logx.NewNopLogger())
}

func TestFutureAwait(t *testing.T) {
	f := asyncx.Run(func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 7, nil
	})

	v, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	// Await again: same settled value.
	v, err = f.Await()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.True(t, f.Settled())
}

func TestFutureAwaitFromManyGoroutines(t *testing.T) {
	f := asyncx.Run(func() (string, error) {
		time.Sleep(5 * time.Millisecond)
		return "done", nil
	})

	const n = 16
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			v, err := f.Await()
			assert.NoError(t, err)
			assert.Equal(t, "done", v)
		}()
	}
	wg.Wait()
}

func TestFutureAwaitCtxCancelled(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	f := asyncx.Run(func() (int, error) {
		<-block
		return 1, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.AwaitCtx(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, f.Settled())
}

func TestResolvedAndFailed(t *testing.T) {
	v, err := asyncx.Resolved(42).Await()
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	boom := errors.New("boom")
	_, err = asyncx.Failed[int](boom).Await()
	assert.ErrorIs(t, err, boom)
}

func TestConsumeInvokesConsumerExactlyOnce(t *testing.T) {
	f := asyncx.Run(func() (string, error) { return "value", nil })

	var got []string
	asyncx.Consume(f, func(v string) { got = append(got, v) })

	assert.Equal(t, []string{"value"}, got)
}

func TestConsumeAbsorbsFailure(t *testing.T) {
	f := asyncx.Failed[string](errors.New("computation failed"))

	invoked := false
	assert.NotPanics(t, func() {
		asyncx.Consume(f, func(string) { invoked = true })
	})
	assert.False(t, invoked, "consumer must be skipped on failure")
}

func TestConsumeCtxAbsorbsCancellation(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	f := asyncx.Run(func() (int, error) {
		<-block
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	invoked := false
	assert.NotPanics(t, func() {
		asyncx.ConsumeCtx(ctx, f, func(int) { invoked = true })
	})
	assert.False(t, invoked)
}

func TestConsumeLogsAbsorbedFailure(t *testing.T) {
	cfg := logx.DefaultConfig()
	cfg.Format = logx.FormatConsole
	cfg.EnableColors = false
	logger := logx.NewLogger(cfg)

	buf := &syncBuffer{}
	logger.SetOutput(buf)

	asyncx.SetLogger(logger.Named("asyncx"))
	defer asyncx.SetLogger(logx.NewNopLogger())

	f := asyncx.Failed[int](errors.New("dropped on purpose"))
	asyncx.Consume(f, func(int) {})

	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "dropped on purpose")
	assert.Contains(t, out, f.ID())
}

type syncBuffer struct {
	mu  sync.Mutex
	buf []byte
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf = append(b.buf, p...)
	return len(p), nil
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.buf)
}
