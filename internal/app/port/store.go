package port

import (
	"time"

	"walletstate/internal/domain/entity"
)

// Branch is an ordered, point-in-time view of an interior store node.
type Branch interface {
	Keys() []string
	Get(key string) (any, bool)
}

// Store is a path-addressable read view over the shared application state.
// Each path segment may itself be a dotted path. Interior nodes are returned as a Branch.
type Store interface {
	Get(path ...string) (any, bool)
}

// StateReader is the typed read port consumed by the observers and derivations.
// Every call reads the current state; nothing is cached.
type StateReader interface {
	Chains() map[uint64]entity.Chain
	ChainsMeta() map[uint64]entity.ChainMetadata
	Colorway() entity.Colorway
	// Origins returns the connected origins in insertion order.
	Origins() []entity.Origin
	SelectedAccount() string
	Rates() map[string]entity.Rate
	Balances(address string) []entity.RawBalance
}

// PopulatedChains exposes freshness windows of per-chain cached data.
type PopulatedChains interface {
	Populated() map[uint64]entity.PopulatedChain
}

// ColorResolver maps a theme color token to a concrete color for a colorway.
type ColorResolver func(token string, colorway entity.Colorway) entity.Color

// ChangeNotifier signals store mutations. Signals coalesce; a receiver sees at least one per burst of writes.
type ChangeNotifier interface {
	Subscribe() <-chan struct{}
}

// StoreWriter mutates the shared state. Paths are dotted.
type StoreWriter interface {
	Set(path string, value any)
	Update(path string, fn func(current any, found bool) any)
	Delete(path ...string) bool
}

// PopulatedMarker records that a chain's cached data was refreshed. A non-positive ttl never expires.
type PopulatedMarker interface {
	MarkPopulated(chainID uint64, ttl time.Duration)
}
