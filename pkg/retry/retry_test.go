package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	waits []time.Duration
}

func (r *recorder) sleep(_ context.Context, d time.Duration) error {
	r.waits = append(r.waits, d)
	return nil
}

func TestDo_SucceedsAfterFailures(t *testing.T) {
	rec := &recorder{}
	calls := 0

	err := Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("boom")
		}
		return nil
	}, WithMaxAttempts(3), WithBaseDelay(2*time.Second), WithSleep(rec.sleep))

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, rec.waits)
}

func TestDo_Exhausted(t *testing.T) {
	rec := &recorder{}
	cause := errors.New("still failing")

	err := Do(context.Background(), func() error {
		return cause
	}, WithMaxAttempts(3), WithSleep(rec.sleep))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.ErrorIs(t, err, cause)
	assert.Len(t, rec.waits, 2)
}

func TestDo_RetryIfStops(t *testing.T) {
	rec := &recorder{}
	calls := 0
	permanent := errors.New("permanent")

	err := Do(context.Background(), func() error {
		calls++
		return permanent
	}, WithRetryIf(func(err error) bool { return !errors.Is(err, permanent) }), WithSleep(rec.sleep))

	assert.Equal(t, permanent, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, rec.waits)
}

func TestDo_BaseDelayPerError(t *testing.T) {
	rec := &recorder{}
	throttled := errors.New("429")
	calls := 0

	_ = Do(context.Background(), func() error {
		calls++
		if calls == 1 {
			return throttled
		}
		return errors.New("network")
	}, WithMaxAttempts(3), WithMaxDelay(0), WithSleep(rec.sleep), WithBaseDelayFunc(func(err error) time.Duration {
		if errors.Is(err, throttled) {
			return 30 * time.Second
		}
		return 2 * time.Second
	}))

	assert.Equal(t, []time.Duration{30 * time.Second, 4 * time.Second}, rec.waits)
}

func TestDo_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Do(ctx, func() error {
		return errors.New("fail")
	}, WithMaxAttempts(3), WithBaseDelay(time.Hour))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestBackoff(t *testing.T) {
	assert.Equal(t, 1*time.Second, Backoff(0, time.Second, 30*time.Second))
	assert.Equal(t, 8*time.Second, Backoff(3, time.Second, 30*time.Second))
	assert.Equal(t, 30*time.Second, Backoff(10, time.Second, 30*time.Second))
	assert.Equal(t, 120*time.Second, Backoff(2, 30*time.Second, 0))
}
