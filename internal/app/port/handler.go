package port

import "walletstate/internal/domain/entity"

// ChainsChangedHandler receives the active chain snapshot whenever it changes.
type ChainsChangedHandler interface {
	ChainsChanged(account string, chains entity.ActiveChains)
}

// ChainChangedHandler receives per-origin chain switches.
type ChainChangedHandler interface {
	ChainChanged(chainID uint64, originID string)
}

// NetworkChangedHandler receives per-origin network switches.
type NetworkChangedHandler interface {
	NetworkChanged(networkID uint64, originID string)
}

// OriginChainHandler is implemented by consumers of both per-origin events.
type OriginChainHandler interface {
	ChainChangedHandler
	NetworkChangedHandler
}
