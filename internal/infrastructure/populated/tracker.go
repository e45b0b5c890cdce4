package populated

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"walletstate/internal/app/port"
	"walletstate/internal/domain/entity"
)

// Tracker remembers which chains have fresh cached data, and until when.
type Tracker struct {
	entries *cache.Cache
	logger  port.Logger
}

// New creates a Tracker whose janitor evicts expired entries every cleanupInterval.
// A non-positive interval disables the janitor.
func New(cleanupInterval time.Duration, logger port.Logger) *Tracker {
	if cleanupInterval <= 0 {
		cleanupInterval = -1
	}
	return &Tracker{
		entries: cache.New(cache.NoExpiration, cleanupInterval),
		logger:  logger,
	}
}

func key(chainID uint64) string {
	return strconv.FormatUint(chainID, 10)
}

// MarkPopulated records chainID as fresh for ttl. A non-positive ttl never expires.
func (t *Tracker) MarkPopulated(chainID uint64, ttl time.Duration) {
	d := ttl
	if d <= 0 {
		d = cache.NoExpiration
	}
	t.entries.Set(key(chainID), struct{}{}, d)
	t.logger.Debug("Chain marked populated", "chain_id", chainID, "ttl", ttl.String())
}

// Forget drops the entry for chainID.
func (t *Tracker) Forget(chainID uint64) {
	t.entries.Delete(key(chainID))
}

// Populated returns the unexpired entries with their expiry times.
func (t *Tracker) Populated() map[uint64]entity.PopulatedChain {
	items := t.entries.Items()
	out := make(map[uint64]entity.PopulatedChain, len(items))
	for k, item := range items {
		id, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			continue
		}
		expires := entity.NeverExpires
		if item.Expiration > 0 {
			expires = time.Unix(0, item.Expiration)
		}
		out[id] = entity.PopulatedChain{Expires: expires}
	}
	return out
}

var (
	_ port.PopulatedChains = (*Tracker)(nil)
	_ port.PopulatedMarker = (*Tracker)(nil)
)
