package stateloader

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	jsoniter "github.com/json-iterator/go"

	"walletstate/internal/app/port"
	"walletstate/internal/app/service"
	"walletstate/internal/domain/entity"
	"walletstate/internal/infrastructure/storeapi"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Seed is the on-disk snapshot used to initialise the store.
type Seed struct {
	Networks     map[uint64]entity.Chain         `json:"networks"`
	NetworksMeta map[uint64]entity.ChainMetadata `json:"networksMeta"`
	Colorway     entity.Colorway                 `json:"colorway"`
	Origins      []entity.Origin                 `json:"origins"`
	Selected     string                          `json:"selected"`
	Rates        map[string]entity.Rate          `json:"rates"`
	Balances     map[string][]SeedBalance        `json:"balances"`
	Populated    map[uint64]int64                `json:"populated"`
}

// SeedBalance is a raw balance whose amount is a hex or decimal string.
type SeedBalance struct {
	ChainID  uint64 `json:"chainId"`
	Address  string `json:"address"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int32  `json:"decimals"`
	LogoURI  string `json:"logoURI,omitempty"`
	Amount   string `json:"amount"`
}

// Loader writes seed files into the store and the populated tracker.
type Loader struct {
	store       port.StoreWriter
	populated   port.PopulatedMarker
	networkType string
	logger      port.Logger
}

// NewLoader creates a new Loader.
func NewLoader(store port.StoreWriter, populated port.PopulatedMarker, networkType string, logger port.Logger) *Loader {
	if networkType == "" {
		networkType = entity.DefaultNetworkType
	}
	return &Loader{
		store:       store,
		populated:   populated,
		networkType: networkType,
		logger:      logger,
	}
}

// LoadFile reads and applies the seed at path.
func (l *Loader) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	if err := l.Load(data); err != nil {
		return fmt.Errorf("failed to load seed file %s: %w", path, err)
	}
	l.logger.Info("State seed loaded", "path", path)
	return nil
}

// Load decodes seed data and applies it. Nothing is written if the seed is invalid.
func (l *Loader) Load(data []byte) error {
	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("decoding seed: %w", err)
	}

	balances, err := convertBalances(seed.Balances)
	if err != nil {
		return err
	}
	for i, origin := range seed.Origins {
		if origin.ID == "" || strings.Contains(origin.ID, ".") {
			return fmt.Errorf("origin %d: invalid id %q", i, origin.ID)
		}
	}

	l.apply(seed, balances)
	return nil
}

func (l *Loader) apply(seed Seed, balances map[string][]entity.RawBalance) {
	for id, chain := range seed.Networks {
		chain.ID = id
		l.store.Set(storeapi.NetworkPath(l.networkType, id), chain)
	}
	for id, meta := range seed.NetworksMeta {
		l.store.Set(storeapi.NetworkMetaPath(l.networkType, id), meta)
	}
	if seed.Colorway != "" {
		l.store.Set(storeapi.ColorwayPath, seed.Colorway)
	}
	for _, origin := range seed.Origins {
		l.store.Set(storeapi.OriginPath(origin.ID), origin)
	}
	if seed.Selected != "" {
		l.store.Set(storeapi.SelectedPath, seed.Selected)
	}
	if len(seed.Rates) > 0 {
		rates := make(map[string]entity.Rate, len(seed.Rates))
		for key, rate := range seed.Rates {
			if common.IsHexAddress(key) {
				key = strings.ToLower(key)
			}
			rates[key] = rate
		}
		l.store.Set(storeapi.RatesRoot, rates)
	}
	for address, list := range balances {
		l.store.Set(storeapi.BalancesPath(address), list)
	}
	for id, ttlSeconds := range seed.Populated {
		l.populated.MarkPopulated(id, time.Duration(ttlSeconds)*time.Second)
	}

	l.logger.Debug("Seed applied",
		"networks", len(seed.Networks),
		"networks_meta", len(seed.NetworksMeta),
		"origins", len(seed.Origins),
		"rates", len(seed.Rates),
		"accounts", len(balances),
		"populated", len(seed.Populated))
}

func convertBalances(in map[string][]SeedBalance) (map[string][]entity.RawBalance, error) {
	out := make(map[string][]entity.RawBalance, len(in))
	for address, list := range in {
		if !common.IsHexAddress(address) {
			return nil, fmt.Errorf("balances: invalid account address %q", address)
		}
		converted := make([]entity.RawBalance, 0, len(list))
		for i, b := range list {
			amount, err := service.ParseQuantity(b.Amount)
			if err != nil {
				return nil, fmt.Errorf("balances[%s][%d]: amount: %w", address, i, err)
			}
			converted = append(converted, entity.RawBalance{
				ChainID:  b.ChainID,
				Address:  strings.ToLower(b.Address),
				Name:     b.Name,
				Symbol:   b.Symbol,
				Decimals: b.Decimals,
				LogoURI:  b.LogoURI,
				Amount:   amount,
			})
		}
		out[strings.ToLower(address)] = converted
	}
	return out, nil
}
