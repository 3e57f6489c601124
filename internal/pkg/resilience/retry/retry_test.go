package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fastRetry(attempts uint) Retry {
	return New(
		WithAttempts(attempts),
		WithDelay(time.Millisecond),
		WithMaxDelay(5*time.Millisecond),
	)
}

func TestRetry_Execute(t *testing.T) {
	t.Run("should call a successful operation once", func(t *testing.T) {
		callCount := 0

		err := fastRetry(3).Execute(t.Context(), func() error {
			callCount++
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, callCount)
	})

	t.Run("should retry until success", func(t *testing.T) {
		callCount := 0

		err := fastRetry(3).Execute(t.Context(), func() error {
			callCount++
			if callCount < 2 {
				return errors.New("connection refused")
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, callCount)
	})

	t.Run("should return the last error when attempts are exhausted", func(t *testing.T) {
		callCount := 0
		expectedErr := errors.New("still warming up")

		err := fastRetry(3).Execute(t.Context(), func() error {
			callCount++
			return expectedErr
		})

		assert.ErrorIs(t, err, expectedErr)
		assert.Equal(t, 3, callCount)
	})

	t.Run("should stop when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		err := New(WithAttempts(5), WithDelay(time.Second)).Execute(ctx, func() error {
			return errors.New("unreachable")
		})

		assert.Error(t, err)
	})
}
