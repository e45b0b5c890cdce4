package service

import (
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"walletstate/internal/domain/entity"
	"walletstate/internal/pkg/utils"
)

const minBalanceDecimals = 2

// AggregateInput is everything the balance aggregation reads.
type AggregateInput struct {
	Balances  []entity.RawBalance
	Rates     map[string]entity.Rate
	Chains    map[uint64]entity.Chain
	Meta      map[uint64]entity.ChainMetadata
	Populated map[uint64]entity.PopulatedChain
	Filter    string
	Now       time.Time
}

// AggregateBalances filters, values and sorts the balances of one account.
// Records on disconnected chains are dropped before any other step.
func AggregateBalances(in AggregateInput) entity.BalanceSummary {
	views := make([]entity.BalanceView, 0, len(in.Balances))
	for _, raw := range in.Balances {
		chain, ok := in.Chains[raw.ChainID]
		if !ok || !chain.Connection.Connected() {
			continue
		}

		meta, hasMeta := in.Meta[raw.ChainID]
		balance, quote := normalizeBalance(raw, chain, meta, hasMeta, in.Rates)

		populated, ok := in.Populated[raw.ChainID]
		if !ok || !populated.Fresh(in.Now) {
			continue
		}
		if !utils.MatchFilter(in.Filter, chain.Name, balance.Name, balance.Symbol) {
			continue
		}

		views = append(views, valueBalance(balance, quote, chain.IsTestnet))
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].TotalValue.GreaterThan(views[j].TotalValue)
	})

	total := decimal.Zero
	for _, v := range views {
		total = total.Add(v.TotalValue)
	}

	return entity.BalanceSummary{
		Balances:          views,
		TotalValue:        total,
		TotalDisplayValue: utils.FormatUSD(total, 0),
	}
}

// IsNativeCurrency reports whether address denotes a chain's native asset.
func IsNativeCurrency(address string) bool {
	if !common.IsHexAddress(address) {
		return false
	}
	return common.HexToAddress(address) == (common.Address{})
}

func normalizeBalance(
	raw entity.RawBalance,
	chain entity.Chain,
	meta entity.ChainMetadata,
	hasMeta bool,
	rates map[string]entity.Rate,
) (entity.RawBalance, *entity.Quote) {
	if !IsNativeCurrency(raw.Address) {
		return raw, lookupRate(rates, raw)
	}
	if !hasMeta {
		return raw, nil
	}

	native := meta.NativeCurrency
	raw.Name = native.Name
	if raw.Name == "" {
		raw.Name = chain.Name
	}
	raw.Decimals = native.Decimals
	if raw.Decimals == 0 {
		raw.Decimals = entity.NativeDefaultDecimals
	}
	if native.Symbol != "" {
		raw.Symbol = native.Symbol
	}
	if native.Icon != "" {
		raw.LogoURI = native.Icon
	}
	return raw, native.USD
}

// lookupRate keys tokens by address. The symbol is used only for records without one.
func lookupRate(rates map[string]entity.Rate, raw entity.RawBalance) *entity.Quote {
	key := raw.Address
	if key == "" {
		key = raw.Symbol
	}
	if key == "" {
		return nil
	}
	if rate, ok := rates[key]; ok && rate.USD != nil {
		return rate.USD
	}
	if rate, ok := rates[strings.ToLower(key)]; ok && rate.USD != nil {
		return rate.USD
	}
	return nil
}

func valueBalance(raw entity.RawBalance, quote *entity.Quote, testnet bool) entity.BalanceView {
	amount := utils.ToUnits(raw.Amount, raw.Decimals)

	// Testnet assets are priced at zero whether or not a quote exists.
	rate := entity.UsdRate{Price: decimal.Zero, Available: quote != nil || testnet}
	if quote != nil && !testnet {
		rate.Price = decimal.NewFromFloat(quote.Price)
	}
	total := amount.Mul(rate.Price)

	view := entity.BalanceView{
		RawBalance:     raw,
		UsdRate:        rate,
		TotalValue:     total,
		DisplayBalance: displayBalance(amount, rate.Price),
		Price:          "?",
		DisplayValue:   "0",
	}
	if rate.Available {
		view.Price = rate.Price.StringFixed(usdDisplayPlaces)
		if !rate.Price.IsZero() {
			view.PriceChange = decimal.NewFromFloat(quote.Change24hr).StringFixed(usdDisplayPlaces)
		}
	}
	if !total.IsZero() {
		view.DisplayValue = utils.FormatUSD(total, 0)
	}
	return view
}

// displayBalance shows more decimals for pricier assets.
func displayBalance(amount, price decimal.Decimal) string {
	digits := int32(len(price.Mul(decimal.NewFromInt(10)).Truncate(0).Abs().String()))
	if digits < minBalanceDecimals {
		digits = minBalanceDecimals
	}
	s := utils.FormatTrimmed(amount, digits)
	return strings.Replace(s, "< ", "<", 1)
}
