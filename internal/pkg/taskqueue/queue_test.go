package taskqueue

import (
	"context"
	"testing"
	"time"

	"walletstate/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeferDoesNotRunInline(t *testing.T) {
	q := New(logger.NewNop(), nil)
	ran := false
	q.Defer(func() { ran = true })

	assert.False(t, ran)
	assert.Equal(t, 1, q.Pending())

	assert.Equal(t, 1, q.Drain())
	assert.True(t, ran)
	assert.Equal(t, 0, q.Pending())
}

func TestDrainKeepsFIFOOrderAndRunsNestedTasks(t *testing.T) {
	q := New(logger.NewNop(), nil)
	var order []int
	q.Defer(func() {
		order = append(order, 1)
		q.Defer(func() { order = append(order, 3) })
	})
	q.Defer(func() { order = append(order, 2) })

	assert.Equal(t, 3, q.Drain())
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestPanickingTaskDoesNotStopDrain(t *testing.T) {
	q := New(logger.NewNop(), nil)
	ran := false
	q.Defer(func() { panic("boom") })
	q.Defer(func() { ran = true })

	assert.Equal(t, 2, q.Drain())
	assert.True(t, ran)
}

func TestOnDeferCallback(t *testing.T) {
	count := 0
	q := New(logger.NewNop(), func() { count++ })
	q.Defer(func() {})
	q.Defer(nil)
	q.Defer(func() {})
	assert.Equal(t, 2, count)
}

func TestRunDrainsUntilCancelled(t *testing.T) {
	q := New(logger.NewNop(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- q.Run(ctx) }()

	done := make(chan struct{})
	q.Defer(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("deferred task was not run")
	}

	cancel()
	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
