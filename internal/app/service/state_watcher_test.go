package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletstate/internal/pkg/logger"
)

type stubTicker struct {
	name  string
	err   error
	order *[]string
}

func (s *stubTicker) Name() string { return s.name }

func (s *stubTicker) Tick() error {
	*s.order = append(*s.order, s.name)
	return s.err
}

type chanNotifier chan struct{}

func (c chanNotifier) Subscribe() <-chan struct{} { return c }

func TestStateWatcher_TickAllContinuesAfterFailure(t *testing.T) {
	var order []string
	recorder := newCountingRecorder()
	w := NewStateWatcher(make(chanNotifier), WatcherSettings{}, recorder, logger.NewNop(),
		&stubTicker{name: "chains", err: errors.New("boom"), order: &order},
		&stubTicker{name: "origins", order: &order},
	)

	w.TickAll()

	assert.Equal(t, []string{"chains", "origins"}, order)
	assert.Equal(t, 1, recorder.ticks["chains"])
	assert.Equal(t, 1, recorder.ticks["origins"])
	assert.Equal(t, 1, recorder.failures["chains"])
	assert.Equal(t, 0, recorder.failures["origins"])
}

func TestStateWatcher_RunTicksOnSignal(t *testing.T) {
	signals := make(chanNotifier, 1)
	done := make(chan struct{})
	var order []string
	ticker := &stubTicker{name: "chains", order: &order}
	w := NewStateWatcher(signals, WatcherSettings{TicksPerSecond: 1000, Burst: 10}, newCountingRecorder(), logger.NewNop(),
		ticker, tickerFunc{name: "probe", fn: func() { close(done) }})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	signals <- struct{}{}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not tick")
	}

	cancel()
	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
	assert.Equal(t, []string{"chains"}, order)
}

type tickerFunc struct {
	name string
	fn   func()
}

func (f tickerFunc) Name() string { return f.name }

func (f tickerFunc) Tick() error {
	f.fn()
	return nil
}
