package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_Delay(t *testing.T) {
	p := Policy{Initial: 2 * time.Second, Max: 30 * time.Second, Multiplier: 2}

	assert.Equal(t, 2*time.Second, p.Delay(1))
	assert.Equal(t, 4*time.Second, p.Delay(2))
	assert.Equal(t, 8*time.Second, p.Delay(3))
	assert.Equal(t, 16*time.Second, p.Delay(4))
	assert.Equal(t, 30*time.Second, p.Delay(5), "capped at Max")
	assert.Equal(t, 30*time.Second, p.Delay(10))
}

func TestPolicy_Retry_StopsOnSuccess(t *testing.T) {
	p := Policy{Initial: time.Millisecond, Max: time.Millisecond, Multiplier: 1, MaxAttempts: 10}

	calls := 0
	err := p.Retry(context.Background(), func(ctx context.Context) (bool, error) {
		calls++
		if calls < 3 {
			return true, errors.New("transient")
		}
		return false, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestPolicy_Retry_MaxAttempts(t *testing.T) {
	p := Policy{Initial: time.Millisecond, Max: time.Millisecond, Multiplier: 1, MaxAttempts: 4}

	transient := errors.New("transient")
	calls := 0
	err := p.Retry(context.Background(), func(ctx context.Context) (bool, error) {
		calls++
		return true, transient
	})

	assert.ErrorIs(t, err, transient)
	assert.Equal(t, 4, calls)
}

func TestPolicy_Retry_ContextCancelled(t *testing.T) {
	p := Policy{Initial: time.Minute, Max: time.Minute, Multiplier: 1}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := p.Retry(ctx, func(ctx context.Context) (bool, error) {
		return true, errors.New("keep going")
	})

	assert.ErrorIs(t, err, context.Canceled)
}
