package storeapi

import (
	"fmt"
	"strconv"
	"strings"

	"walletstate/internal/app/port"
	"walletstate/internal/domain/entity"
)

// Reader implements port.StateReader over a path-addressable store.
type Reader struct {
	store       port.Store
	networkType string
	logger      port.Logger
}

// NewReader creates a Reader. An empty networkType selects entity.DefaultNetworkType.
func NewReader(store port.Store, networkType string, logger port.Logger) *Reader {
	if networkType == "" {
		networkType = entity.DefaultNetworkType
	}
	return &Reader{store: store, networkType: networkType, logger: logger}
}

// NetworkType returns the namespace used under main.networks.
func (r *Reader) NetworkType() string { return r.networkType }

func (r *Reader) branch(path ...string) port.Branch {
	v, ok := r.store.Get(path...)
	if !ok {
		return nil
	}
	b, ok := v.(port.Branch)
	if !ok {
		r.logger.Warn("Expected a branch in store", "path", strings.Join(path, "."), "type", fmt.Sprintf("%T", v))
		return nil
	}
	return b
}

func (r *Reader) skip(path, key string, v any) {
	r.logger.Warn("Skipping malformed store entry", "path", path, "key", key, "type", fmt.Sprintf("%T", v))
}

// Chains returns the configured chains keyed by chain id.
func (r *Reader) Chains() map[uint64]entity.Chain {
	out := make(map[uint64]entity.Chain)
	b := r.branch(NetworksRoot, r.networkType)
	if b == nil {
		return out
	}
	for _, key := range b.Keys() {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			r.skip(NetworksRoot, key, key)
			continue
		}
		v, _ := b.Get(key)
		var chain entity.Chain
		switch c := v.(type) {
		case entity.Chain:
			chain = c
		case *entity.Chain:
			if c == nil {
				r.skip(NetworksRoot, key, v)
				continue
			}
			chain = *c
		default:
			r.skip(NetworksRoot, key, v)
			continue
		}
		chain.ID = id
		out[id] = chain
	}
	return out
}

// ChainsMeta returns chain metadata keyed by chain id.
func (r *Reader) ChainsMeta() map[uint64]entity.ChainMetadata {
	out := make(map[uint64]entity.ChainMetadata)
	b := r.branch(NetworksMetaRoot, r.networkType)
	if b == nil {
		return out
	}
	for _, key := range b.Keys() {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			r.skip(NetworksMetaRoot, key, key)
			continue
		}
		v, _ := b.Get(key)
		switch m := v.(type) {
		case entity.ChainMetadata:
			out[id] = m
		case *entity.ChainMetadata:
			if m != nil {
				out[id] = *m
			}
		default:
			r.skip(NetworksMetaRoot, key, v)
		}
	}
	return out
}

// Colorway returns the selected theme, dark when unset.
func (r *Reader) Colorway() entity.Colorway {
	v, ok := r.store.Get(ColorwayPath)
	if !ok {
		return entity.ColorwayDark
	}
	switch c := v.(type) {
	case entity.Colorway:
		return c
	case string:
		return entity.Colorway(c)
	}
	r.skip(ColorwayPath, "", v)
	return entity.ColorwayDark
}

// Origins returns the origins in the order they were first stored.
func (r *Reader) Origins() []entity.Origin {
	b := r.branch(OriginsRoot)
	if b == nil {
		return nil
	}
	keys := b.Keys()
	out := make([]entity.Origin, 0, len(keys))
	for _, key := range keys {
		v, _ := b.Get(key)
		var origin entity.Origin
		switch o := v.(type) {
		case entity.Origin:
			origin = o
		case *entity.Origin:
			if o == nil {
				r.skip(OriginsRoot, key, v)
				continue
			}
			origin = *o
		default:
			r.skip(OriginsRoot, key, v)
			continue
		}
		if origin.ID == "" {
			origin.ID = key
		}
		out = append(out, origin)
	}
	return out
}

// SelectedAccount returns the current account id or an empty string.
func (r *Reader) SelectedAccount() string {
	v, ok := r.store.Get(SelectedPath)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.skip(SelectedPath, "", v)
		return ""
	}
	return s
}

// Rates returns a copy of the price table keyed by token address or symbol.
// The table is one leaf so that keys may contain dots ("USDC.e").
func (r *Reader) Rates() map[string]entity.Rate {
	out := make(map[string]entity.Rate)
	v, ok := r.store.Get(RatesRoot)
	if !ok {
		return out
	}
	table, ok := v.(map[string]entity.Rate)
	if !ok {
		r.skip(RatesRoot, "", v)
		return out
	}
	for key, rate := range table {
		out[key] = rate
	}
	return out
}

// Balances returns the raw balances stored for address.
func (r *Reader) Balances(address string) []entity.RawBalance {
	if address == "" {
		return nil
	}
	v, ok := r.store.Get(BalancesRoot, address)
	if !ok {
		v, ok = r.store.Get(BalancesRoot, strings.ToLower(address))
	}
	if !ok {
		return nil
	}
	balances, ok := v.([]entity.RawBalance)
	if !ok {
		r.skip(BalancesRoot, address, v)
		return nil
	}
	out := make([]entity.RawBalance, len(balances))
	copy(out, balances)
	return out
}

var _ port.StateReader = (*Reader)(nil)
