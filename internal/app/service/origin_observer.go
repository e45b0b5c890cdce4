package service

import (
	"sync"

	"walletstate/internal/app/port"
)

// OriginChainObserver emits chainChanged and networkChanged when an origin switches chains.
// Events are emitted synchronously within Tick, while the observer lock is held.
type OriginChainObserver struct {
	reader  port.StateReader
	handler port.OriginChainHandler
	logger  port.Logger

	mu    sync.RWMutex
	known map[string]uint64
}

// NewOriginChainObserver creates an observer with no remembered origins.
func NewOriginChainObserver(reader port.StateReader, handler port.OriginChainHandler, logger port.Logger) *OriginChainObserver {
	return &OriginChainObserver{
		reader:  reader,
		handler: handler,
		logger:  logger,
		known:   make(map[string]uint64),
	}
}

// Name implements port.Ticker.
func (o *OriginChainObserver) Name() string { return "origins" }

// Tick compares every present origin with its last seen chain. A first sighting only records the chain.
func (o *OriginChainObserver) Tick() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, origin := range o.reader.Origins() {
		current := origin.Chain.ID
		previous, seen := o.known[origin.ID]

		if seen && previous != current {
			o.logger.Debug("Origin switched chain", "origin", origin.ID, "from", previous, "to", current)
			o.handler.ChainChanged(current, origin.ID)
			// networkId is the chain id
			o.handler.NetworkChanged(current, origin.ID)
		}

		o.known[origin.ID] = current
	}
	return nil
}

// Known returns the last chain id recorded for originID.
func (o *OriginChainObserver) Known(originID string) (uint64, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	id, ok := o.known[originID]
	return id, ok
}
