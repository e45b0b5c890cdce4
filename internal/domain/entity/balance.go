package entity

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// NativeCurrencyAddress is the address used for a chain's native asset in balance records.
const NativeCurrencyAddress = "0x0000000000000000000000000000000000000000"

// NativeDefaultDecimals is used when a chain's metadata doesn't specify decimals.
const NativeDefaultDecimals int32 = 18

// RawBalance is a balance of one asset for one account on one chain, in base units.
type RawBalance struct {
	ChainID  uint64   `json:"chainId"`
	Address  string   `json:"address"`
	Name     string   `json:"name"`
	Symbol   string   `json:"symbol"`
	Decimals int32    `json:"decimals"`
	LogoURI  string   `json:"logoURI,omitempty"`
	Amount   *big.Int `json:"amount"`
}

// Rate is a price table entry keyed by token address or symbol.
type Rate struct {
	USD *Quote `json:"usd,omitempty"`
}

// UsdRate is the USD price applied to a balance. Available is false when no quote exists.
type UsdRate struct {
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
}

// BalanceView is a normalized balance with its derived values.
type BalanceView struct {
	RawBalance
	UsdRate        UsdRate         `json:"usdRate"`
	TotalValue     decimal.Decimal `json:"totalValue"`
	DisplayBalance string          `json:"displayBalance"`
	Price          string          `json:"price"`
	PriceChange    string          `json:"priceChange,omitempty"`
	DisplayValue   string          `json:"displayValue"`
}

// BalanceSummary is the sorted, filtered balance list of one account.
type BalanceSummary struct {
	Balances          []BalanceView   `json:"balances"`
	TotalValue        decimal.Decimal `json:"totalValue"`
	TotalDisplayValue string          `json:"totalDisplayValue"`
}

// NeverExpires is the expiry reported for chains marked populated without a ttl.
var NeverExpires = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// PopulatedChain records until when a chain's cached data is considered fresh.
type PopulatedChain struct {
	Expires time.Time `json:"expires"`
}

// Fresh reports whether the entry is still valid at now. Entries with expires <= now are stale.
func (p PopulatedChain) Fresh(now time.Time) bool {
	return p.Expires.After(now)
}
