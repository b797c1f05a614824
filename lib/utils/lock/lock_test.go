package lock

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	ctx := context.Background()

	t.Run("runs and returns the error", func(t *testing.T) {
		ok, err := WithDelay(ctx, "a", time.Second, func() error {
			return errors.New("boom")
		})
		require.True(t, ok)
		require.EqualError(t, err, "boom")
	})

	t.Run("busy key times out", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = WithDelay(ctx, "b", time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		called := false
		ok, err := WithDelay(ctx, "b", 100*time.Millisecond, func() error {
			called = true
			return nil
		})
		require.NoError(t, err)
		require.False(t, ok)
		require.False(t, called)
		close(release)
		<-done

		ok, err = WithDelay(ctx, "b", time.Second, func() error { return nil })
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("cancelled context gives up", func(t *testing.T) {
		lockMap.Store("c", true)
		defer lockMap.Delete("c")
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		ok, err := WithDelay(cancelled, "c", time.Second, func() error { return nil })
		require.NoError(t, err)
		require.False(t, ok)
	})
}
