package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEachVisitsEveryItemOnce(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}
	seen := make([]int32, len(items))

	err := Each(context.Background(), items, 4, func(_ context.Context, i int, item int) error {
		atomic.AddInt32(&seen[i], 1)
		assert.Equal(t, i, item)
		return nil
	})
	require.NoError(t, err)
	for i, n := range seen {
		assert.Equal(t, int32(1), n, "item %d", i)
	}
}

func TestEachRespectsLimit(t *testing.T) {
	var inFlight, peak int32
	err := Each(context.Background(), make([]struct{}, 64), 3, func(context.Context, int, struct{}) error {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		atomic.AddInt32(&inFlight, -1)
		return nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
}

func TestEachReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	err := Each(context.Background(), []int{1, 2, 3}, 1, func(_ context.Context, _ int, item int) error {
		if item == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestEachCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := Each(ctx, []int{1, 2}, 0, func(context.Context, int, int) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestEachIgnoresCancellationAfterSuccess(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err := Each(ctx, []int{1}, 0, func(context.Context, int, int) error {
		cancel()
		return nil
	})
	assert.NoError(t, err)
}
