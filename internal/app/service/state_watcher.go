package service

import (
	"context"

	"golang.org/x/time/rate"

	"walletstate/internal/app/port"
)

// WatcherSettings limits how often observers are ticked.
type WatcherSettings struct {
	TicksPerSecond float64
	Burst          int
}

// StateWatcher ticks the registered observers after store mutations.
// All ticks run on the goroutine calling Run, in registration order.
type StateWatcher struct {
	changes  port.ChangeNotifier
	limiter  *rate.Limiter
	tickers  []port.Ticker
	recorder port.TickRecorder
	logger   port.Logger
}

// NewStateWatcher creates a watcher. A non-positive TicksPerSecond disables limiting.
func NewStateWatcher(
	changes port.ChangeNotifier,
	settings WatcherSettings,
	recorder port.TickRecorder,
	logger port.Logger,
	tickers ...port.Ticker,
) *StateWatcher {
	limit := rate.Inf
	if settings.TicksPerSecond > 0 {
		limit = rate.Limit(settings.TicksPerSecond)
	}
	burst := settings.Burst
	if burst <= 0 {
		burst = 1
	}
	return &StateWatcher{
		changes:  changes,
		limiter:  rate.NewLimiter(limit, burst),
		tickers:  tickers,
		recorder: recorder,
		logger:   logger,
	}
}

// Run waits for change signals until ctx is done.
func (w *StateWatcher) Run(ctx context.Context) error {
	signals := w.changes.Subscribe()
	w.logger.Info("State watcher started", "observers", len(w.tickers))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("State watcher stopped")
			return ctx.Err()
		case <-signals:
			if err := w.limiter.Wait(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				w.logger.Warn("Tick limiter rejected wait", "error", err)
				continue
			}
			w.TickAll()
		}
	}
}

// TickAll ticks every observer once. A failing observer doesn't stop the others.
func (w *StateWatcher) TickAll() {
	for _, t := range w.tickers {
		w.recorder.ObserveTick(t.Name())
		if err := t.Tick(); err != nil {
			w.recorder.ObserveTickFailure(t.Name())
			w.logger.Error("Observer tick failed", "observer", t.Name(), "error", err)
		}
	}
}
