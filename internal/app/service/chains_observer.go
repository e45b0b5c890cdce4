package service

import (
	"fmt"
	"sync"

	"walletstate/internal/app/port"
	"walletstate/internal/domain/entity"
)

// ChainsObserver detects changes of the active chain snapshot and schedules a chainsChanged notification.
// Tick must not be called concurrently; Snapshot may be called from any goroutine.
type ChainsObserver struct {
	reader   port.StateReader
	resolve  port.ColorResolver
	deferrer port.Deferrer
	handler  port.ChainsChangedHandler
	logger   port.Logger

	mu        sync.RWMutex
	available entity.ActiveChains
}

// NewChainsObserver builds the initial snapshot synchronously. No notification is sent for it.
func NewChainsObserver(
	reader port.StateReader,
	resolve port.ColorResolver,
	deferrer port.Deferrer,
	handler port.ChainsChangedHandler,
	logger port.Logger,
) (*ChainsObserver, error) {
	initial, err := ActiveChainsFrom(reader, resolve)
	if err != nil {
		return nil, fmt.Errorf("building initial chain snapshot: %w", err)
	}
	logger.Debug("Chains observer initialized", "active_chains", len(initial))

	return &ChainsObserver{
		reader:    reader,
		resolve:   resolve,
		deferrer:  deferrer,
		handler:   handler,
		logger:    logger,
		available: initial,
	}, nil
}

// Name implements port.Ticker.
func (o *ChainsObserver) Name() string { return "chains" }

// Tick rebuilds the snapshot and, if it changed, defers delivery to the handler.
// The selected account is read when the notification runs, not when the change is detected.
func (o *ChainsObserver) Tick() error {
	current, err := ActiveChainsFrom(o.reader, o.resolve)
	if err != nil {
		return fmt.Errorf("building chain snapshot: %w", err)
	}

	if current.Equal(o.Snapshot()) {
		return nil
	}
	o.mu.Lock()
	o.available = current
	o.mu.Unlock()
	o.logger.Debug("Active chains changed", "active_chains", len(current))

	o.deferrer.Defer(func() {
		account := o.reader.SelectedAccount()
		o.handler.ChainsChanged(account, current)
	})
	return nil
}

// Snapshot returns the retained snapshot.
func (o *ChainsObserver) Snapshot() entity.ActiveChains {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.available
}
