package service

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"

	"walletstate/internal/app/port"
	"walletstate/internal/domain/entity"
	"walletstate/internal/pkg/utils"
)

const (
	usdDisplayPlaces    int32 = 2
	gweiDisplayDecimals int32 = 3
	txTypeFeeMarket           = "0x2"
	usdBelowMinimum           = "< 0.01"
	usdUnavailable            = "?"
)

var (
	// basis is divided by this twice to estimate the lowest plausible fee per gas
	feeBasisStep = big.NewRat(9, 8)
	// gas limit is divided by this to estimate actual usage
	gasUsageFactor = big.NewRat(3, 2)

	usdMinimum = decimal.New(1, -usdDisplayPlaces)
	weiPerGwei = big.NewInt(1_000_000_000)
)

// EstimateFeeRange computes the displayed fee bracket. All values are exact.
func EstimateFeeRange(gasLimit, feeBasis *big.Int, usesFeeMarket bool) entity.FeeRange {
	basis := ratOf(feeBasis)
	limit := ratOf(gasLimit)

	maxFee := new(big.Rat).Mul(basis, limit)

	minBasis := new(big.Rat).Quo(basis, feeBasisStep)
	minBasis.Quo(minBasis, feeBasisStep)
	minGas := new(big.Rat).Quo(limit, gasUsageFactor)
	minFee := new(big.Rat).Mul(minBasis, minGas)

	return entity.FeeRange{
		MinFee:        entity.NewFeeValue(minFee),
		MaxFee:        entity.NewFeeValue(maxFee),
		FeeBasis:      entity.NewFeeValue(basis),
		UsesFeeMarket: usesFeeMarket,
	}
}

func ratOf(v *big.Int) *big.Rat {
	if v == nil {
		return new(big.Rat)
	}
	return new(big.Rat).SetInt(v)
}

// FeeSettings controls fee presentation.
type FeeSettings struct {
	WarningThresholdUSD   decimal.Decimal
	NativeDisplayDecimals int32
}

// DefaultFeeSettings returns the settings used when nothing is configured.
func DefaultFeeSettings() FeeSettings {
	return FeeSettings{
		WarningThresholdUSD:   decimal.NewFromInt(50),
		NativeDisplayDecimals: 6,
	}
}

// FeeService describes fee ranges of pending transaction requests.
type FeeService struct {
	reader   port.StateReader
	settings FeeSettings
	logger   port.Logger
}

// NewFeeService creates a new FeeService.
func NewFeeService(reader port.StateReader, settings FeeSettings, logger port.Logger) *FeeService {
	if settings.NativeDisplayDecimals <= 0 {
		settings.NativeDisplayDecimals = DefaultFeeSettings().NativeDisplayDecimals
	}
	return &FeeService{
		reader:   reader,
		settings: settings,
		logger:   logger,
	}
}

// Describe estimates the fee range of req and renders it in native and USD terms.
func (s *FeeService) Describe(req entity.TxFeeRequest) (entity.FeeDisplay, error) {
	chain, ok := s.reader.Chains()[req.ChainID]
	if !ok {
		return entity.FeeDisplay{}, fmt.Errorf("chain %d: %w", req.ChainID, entity.ErrUnknownChain)
	}
	meta, ok := s.reader.ChainsMeta()[req.ChainID]
	if !ok {
		return entity.FeeDisplay{}, &entity.MissingMetadataError{ChainID: req.ChainID}
	}

	gasLimit, err := ParseQuantity(req.GasLimit)
	if err != nil {
		return entity.FeeDisplay{}, fmt.Errorf("gasLimit: %w", err)
	}

	usesFeeMarket := req.Type == txTypeFeeMarket || req.MaxFeePerGas != ""
	basisField, basisRaw := "gasPrice", req.GasPrice
	if usesFeeMarket {
		basisField, basisRaw = "maxFeePerGas", req.MaxFeePerGas
	}
	basis, err := ParseQuantity(basisRaw)
	if err != nil {
		return entity.FeeDisplay{}, fmt.Errorf("%s: %w", basisField, err)
	}

	fees := EstimateFeeRange(gasLimit, basis, usesFeeMarket)

	decimals := meta.NativeCurrency.Decimals
	if decimals == 0 {
		decimals = entity.NativeDefaultDecimals
	}
	minUnits := toNativeUnits(fees.MinFee, decimals)
	maxUnits := toNativeUnits(fees.MaxFee, decimals)

	minUSD := s.usdValue(minUnits, chain, meta)
	maxUSD := s.usdValue(maxUnits, chain, meta)

	display := entity.FeeDisplay{
		ChainID:       req.ChainID,
		Symbol:        meta.NativeCurrency.Symbol,
		UsesFeeMarket: usesFeeMarket,
		MinFee:        fees.MinFee.Decimal(0).String(),
		MaxFee:        fees.MaxFee.Decimal(0).String(),
		DisplayNative: utils.FormatTrimmed(maxUnits, s.settings.NativeDisplayDecimals),
		Gas:           gasDisplay(basis),
		MinFeeUSD:     minUSD,
		MaxFeeUSD:     maxUSD,
		DisplayUSD:    usdRange(minUSD, maxUSD),
		Warn:          maxUSD.Available && maxUSD.Value.GreaterThan(s.settings.WarningThresholdUSD),
		SourceNote:    sourceNote(req),
		IsTestnet:     chain.IsTestnet,
	}
	if display.Warn {
		s.logger.Debug("Fee above warning threshold", "chain_id", req.ChainID, "max_fee_usd", maxUSD.Display)
	}
	return display, nil
}

func (s *FeeService) usdValue(units decimal.Decimal, chain entity.Chain, meta entity.ChainMetadata) entity.USDValue {
	if chain.IsTestnet {
		return entity.USDValue{Value: decimal.Zero, Display: formatUSDValue(decimal.Zero), Available: true}
	}
	quote := meta.NativeCurrency.USD
	if quote == nil {
		return entity.USDValue{Value: decimal.Zero, Display: usdUnavailable}
	}
	value := units.Mul(decimal.NewFromFloat(quote.Price))
	return entity.USDValue{Value: value, Display: formatUSDValue(value), Available: true}
}

// toNativeUnits converts a base-unit fee to whole native units with enough precision for display.
func toNativeUnits(fee entity.FeeValue, decimals int32) decimal.Decimal {
	scaled := fee.Rat()
	scaled.Quo(scaled, new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)))
	return entity.NewFeeValue(scaled).Decimal(decimals + 18)
}

func formatUSDValue(v decimal.Decimal) string {
	switch {
	case v.IsZero():
		return decimal.Zero.StringFixed(usdDisplayPlaces)
	case v.LessThan(usdMinimum):
		return usdBelowMinimum
	default:
		return utils.FormatUSD(v, usdDisplayPlaces)
	}
}

func usdRange(minUSD, maxUSD entity.USDValue) string {
	if !maxUSD.Available {
		return usdUnavailable
	}
	if maxUSD.Display == usdBelowMinimum {
		return usdBelowMinimum
	}
	return minUSD.Display + " - " + maxUSD.Display
}

func gasDisplay(basis *big.Int) entity.GasDisplay {
	gwei := decimal.NewFromBigInt(basis, 0).Div(decimal.NewFromBigInt(weiPerGwei, 0))
	value := utils.FormatTrimmed(gwei, gweiDisplayDecimals)
	if value == "0" || strings.HasPrefix(value, "<") {
		return entity.GasDisplay{Value: basis.String(), Unit: "Wei"}
	}
	return entity.GasDisplay{Value: value, Unit: "Gwei"}
}

func sourceNote(req entity.TxFeeRequest) string {
	if req.FeesUpdatedByUser {
		return "Gas values set by user"
	}
	if req.GasFeesSource != "" && req.GasFeesSource != entity.GasFeesSourceFrame {
		return "Gas values set by " + req.GasFeesSource
	}
	return ""
}

// ParseQuantity decodes a hex ("0x5208") or decimal quantity. An empty string is zero.
func ParseQuantity(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return new(big.Int), nil
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits := s[2:]
		if trimmed := strings.TrimLeft(digits, "0"); trimmed != digits {
			// hexutil rejects leading zero digits.
			digits = trimmed
			if digits == "" {
				digits = "0"
			}
		}
		v, err := hexutil.DecodeBig("0x" + digits)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", entity.ErrInvalidQuantity, s, err)
		}
		return v, nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidQuantity, s)
	}
	return v, nil
}
