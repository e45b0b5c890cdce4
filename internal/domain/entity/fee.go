package entity

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// GasFeesSourceFrame marks gas values computed by the wallet itself.
const GasFeesSourceFrame = "Frame"

// TxFeeRequest is the fee-relevant part of a pending transaction request.
// Quantities are hex ("0x5208") or decimal strings, as received from dapps.
type TxFeeRequest struct {
	ChainID           uint64 `json:"chainId"`
	Type              string `json:"type,omitempty"`
	GasLimit          string `json:"gasLimit"`
	GasPrice          string `json:"gasPrice,omitempty"`
	MaxFeePerGas      string `json:"maxFeePerGas,omitempty"`
	GasFeesSource     string `json:"gasFeesSource,omitempty"`
	FeesUpdatedByUser bool   `json:"feesUpdatedByUser,omitempty"`
}

// FeeValue is an exact amount in native base units.
type FeeValue struct {
	r *big.Rat
}

// NewFeeValue wraps r. A nil r is zero.
func NewFeeValue(r *big.Rat) FeeValue {
	if r == nil {
		r = new(big.Rat)
	}
	return FeeValue{r: r}
}

// Rat returns a copy of the exact value.
func (v FeeValue) Rat() *big.Rat {
	if v.r == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(v.r)
}

// Sign returns -1, 0 or +1.
func (v FeeValue) Sign() int {
	if v.r == nil {
		return 0
	}
	return v.r.Sign()
}

// Cmp compares v and o.
func (v FeeValue) Cmp(o FeeValue) int {
	return v.Rat().Cmp(o.Rat())
}

// Decimal rounds the value to the given number of fractional digits.
func (v FeeValue) Decimal(places int32) decimal.Decimal {
	r := v.Rat()
	num := decimal.NewFromBigInt(r.Num(), 0)
	den := decimal.NewFromBigInt(r.Denom(), 0)
	return num.DivRound(den, places)
}

// FeeRange is the displayed fee bracket of a transaction.
type FeeRange struct {
	MinFee        FeeValue
	MaxFee        FeeValue
	FeeBasis      FeeValue
	UsesFeeMarket bool
}

// USDValue is a converted amount. Available is false when no exchange rate exists.
type USDValue struct {
	Value     decimal.Decimal `json:"value"`
	Display   string          `json:"display"`
	Available bool            `json:"available"`
}

// GasDisplay renders the per-gas fee basis.
type GasDisplay struct {
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

// FeeDisplay is the presentation of a fee range for one request.
type FeeDisplay struct {
	ChainID       uint64     `json:"chainId"`
	Symbol        string     `json:"symbol"`
	UsesFeeMarket bool       `json:"usesFeeMarket"`
	MinFee        string     `json:"minFee"`
	MaxFee        string     `json:"maxFee"`
	DisplayNative string     `json:"displayNative"`
	Gas           GasDisplay `json:"gas"`
	MinFeeUSD     USDValue   `json:"minFeeUsd"`
	MaxFeeUSD     USDValue   `json:"maxFeeUsd"`
	DisplayUSD    string     `json:"displayUsd"`
	Warn          bool       `json:"warn"`
	SourceNote    string     `json:"sourceNote,omitempty"`
	IsTestnet     bool       `json:"isTestnet"`
}
