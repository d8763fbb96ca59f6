package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponential(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Millisecond, 4*time.Millisecond)
	ctx := context.Background()

	req.Equal(time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(ctx))
	req.Equal(2*time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(ctx))
	req.Equal(4*time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(ctx))
	req.Equal(4*time.Millisecond, b.NextDuration, "capped by limit")
	req.Equal(3, b.Count())

	b.Reset()
	req.Equal(0, b.Count())
	req.Equal(time.Millisecond, b.NextDuration)
}

func TestLinear(t *testing.T) {
	req := require.New(t)
	b := NewLinear(time.Millisecond, 0)
	req.Equal(time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(2*time.Millisecond, b.NextDuration)
}

func TestBackoffCanceled(t *testing.T) {
	req := require.New(t)
	b := NewLinear(time.Hour, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req.ErrorIs(b.Backoff(ctx), context.Canceled)
	req.Equal(0, b.Count())
}

func TestRetry(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	calls := 0
	err := Retry(ctx, NewLinear(time.Millisecond, 0), 3, func(int) (bool, error) {
		calls++
		return calls == 2, nil
	})
	req.NoError(err)
	req.Equal(2, calls)

	calls = 0
	err = Retry(ctx, NewLinear(time.Millisecond, 0), 3, func(int) (bool, error) {
		calls++
		return false, nil
	})
	req.ErrorIs(err, ErrAttemptsExhausted)
	req.Equal(3, calls)

	boom := errors.New("boom")
	err = Retry(ctx, NewLinear(time.Millisecond, 0), 3, func(int) (bool, error) {
		return false, boom
	})
	req.ErrorIs(err, boom)
}
