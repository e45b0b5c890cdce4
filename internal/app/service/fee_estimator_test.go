package service

import (
	"errors"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletstate/internal/domain/entity"
	"walletstate/internal/pkg/logger"
)

func TestEstimateFeeRange_Exact(t *testing.T) {
	fees := EstimateFeeRange(big.NewInt(21000), big.NewInt(100), false)

	assert.Equal(t, 0, fees.MaxFee.Rat().Cmp(big.NewRat(2_100_000, 1)))
	assert.Equal(t, 0, fees.MinFee.Rat().Cmp(big.NewRat(89_600_000, 81)))
	assert.Equal(t, 0, fees.FeeBasis.Rat().Cmp(big.NewRat(100, 1)))
	assert.False(t, fees.UsesFeeMarket)
	assert.Equal(t, "1106172.84", fees.MinFee.Decimal(2).String())
}

func TestEstimateFeeRange_MinIsFixedFractionOfMax(t *testing.T) {
	cases := []struct {
		gasLimit int64
		basis    int64
	}{
		{21000, 20_000_000_000},
		{1, 1},
		{65000, 3},
		{300000, 123_456_789},
	}
	for _, tc := range cases {
		fees := EstimateFeeRange(big.NewInt(tc.gasLimit), big.NewInt(tc.basis), true)
		ratio := new(big.Rat).Quo(fees.MinFee.Rat(), fees.MaxFee.Rat())
		assert.Equal(t, 0, ratio.Cmp(big.NewRat(128, 243)), "gasLimit=%d basis=%d", tc.gasLimit, tc.basis)
		assert.True(t, fees.UsesFeeMarket)
	}
}

func TestEstimateFeeRange_Zero(t *testing.T) {
	fees := EstimateFeeRange(big.NewInt(0), big.NewInt(1_000_000_000), false)
	assert.Equal(t, 0, fees.MinFee.Sign())
	assert.Equal(t, 0, fees.MaxFee.Sign())

	fees = EstimateFeeRange(nil, nil, false)
	assert.Equal(t, 0, fees.MaxFee.Sign())
}

func TestParseQuantity(t *testing.T) {
	v, err := ParseQuantity("0x5208")
	require.NoError(t, err)
	assert.Equal(t, int64(21000), v.Int64())

	for _, padded := range []string{"0x05208", "0X005208"} {
		v, err = ParseQuantity(padded)
		require.NoError(t, err, padded)
		assert.Equal(t, int64(21000), v.Int64(), padded)
	}

	v, err = ParseQuantity("0x000")
	require.NoError(t, err)
	assert.Equal(t, 0, v.Sign())

	v, err = ParseQuantity("21000")
	require.NoError(t, err)
	assert.Equal(t, int64(21000), v.Int64())

	v, err = ParseQuantity("")
	require.NoError(t, err)
	assert.Equal(t, 0, v.Sign())

	for _, bad := range []string{"0xzz", "abc", "-5", "0x"} {
		_, err = ParseQuantity(bad)
		assert.True(t, errors.Is(err, entity.ErrInvalidQuantity), bad)
	}
}

func newFeeFixture(price float64) (*fakeState, *FeeService) {
	state := newFakeState()
	state.addChain(1, "Ethereum", true)
	m := state.meta[1]
	if price > 0 {
		m.NativeCurrency.USD = &entity.Quote{Price: price, Change24hr: 1.5}
	}
	state.meta[1] = m
	return state, NewFeeService(state, DefaultFeeSettings(), logger.NewNop())
}

func TestFeeService_Describe_Legacy(t *testing.T) {
	_, svc := newFeeFixture(2000)

	d, err := svc.Describe(entity.TxFeeRequest{
		ChainID:  1,
		GasLimit: "0x5208",
		GasPrice: "0x4a817c800", // 20 gwei
	})
	require.NoError(t, err)

	assert.False(t, d.UsesFeeMarket)
	assert.Equal(t, "ETH", d.Symbol)
	assert.Equal(t, "420000000000000", d.MaxFee)
	assert.Equal(t, "0.00042", d.DisplayNative)
	assert.Equal(t, entity.GasDisplay{Value: "20", Unit: "Gwei"}, d.Gas)
	assert.True(t, d.MaxFeeUSD.Available)
	assert.True(t, d.MaxFeeUSD.Value.Equal(decimal.RequireFromString("0.84")))
	assert.Equal(t, "0.84", d.MaxFeeUSD.Display)
	assert.Equal(t, "0.44", d.MinFeeUSD.Display)
	assert.Equal(t, "0.44 - 0.84", d.DisplayUSD)
	assert.False(t, d.Warn)
	assert.Empty(t, d.SourceNote)
}

func TestFeeService_Describe_FeeMarket(t *testing.T) {
	_, svc := newFeeFixture(2000)

	d, err := svc.Describe(entity.TxFeeRequest{
		ChainID:      1,
		Type:         "0x2",
		GasLimit:     "1000000",
		GasPrice:     "0x1",
		MaxFeePerGas: "0x174876e800", // 100 gwei
	})
	require.NoError(t, err)

	assert.True(t, d.UsesFeeMarket)
	assert.Equal(t, entity.GasDisplay{Value: "100", Unit: "Gwei"}, d.Gas)
	assert.Equal(t, "0.1", d.DisplayNative)
	assert.Equal(t, "200.00", d.MaxFeeUSD.Display)
	assert.Equal(t, "105.35", d.MinFeeUSD.Display)
	assert.True(t, d.Warn)
}

func TestFeeService_Describe_TinyFeeCollapses(t *testing.T) {
	_, svc := newFeeFixture(2000)

	d, err := svc.Describe(entity.TxFeeRequest{ChainID: 1, GasLimit: "21000", GasPrice: "100"})
	require.NoError(t, err)

	assert.Equal(t, "< 0.01", d.MaxFeeUSD.Display)
	assert.Equal(t, "< 0.01", d.DisplayUSD)
	assert.Equal(t, "< 0.000001", d.DisplayNative)
	assert.Equal(t, entity.GasDisplay{Value: "100", Unit: "Wei"}, d.Gas)
}

func TestFeeService_Describe_MissingQuote(t *testing.T) {
	_, svc := newFeeFixture(0)

	d, err := svc.Describe(entity.TxFeeRequest{ChainID: 1, GasLimit: "0x5208", GasPrice: "0x4a817c800"})
	require.NoError(t, err)

	assert.False(t, d.MaxFeeUSD.Available)
	assert.False(t, d.MinFeeUSD.Available)
	assert.Equal(t, "?", d.DisplayUSD)
	assert.False(t, d.Warn)
}

func TestFeeService_Describe_TestnetIsFree(t *testing.T) {
	state, svc := newFeeFixture(2000)
	c := state.chains[1]
	c.IsTestnet = true
	state.chains[1] = c

	d, err := svc.Describe(entity.TxFeeRequest{ChainID: 1, GasLimit: "1000000", GasPrice: "0x174876e800"})
	require.NoError(t, err)

	assert.True(t, d.IsTestnet)
	assert.True(t, d.MaxFeeUSD.Available)
	assert.True(t, d.MaxFeeUSD.Value.IsZero())
	assert.Equal(t, "0.00 - 0.00", d.DisplayUSD)
	assert.False(t, d.Warn)
}

func TestFeeService_Describe_SourceNote(t *testing.T) {
	_, svc := newFeeFixture(2000)
	base := entity.TxFeeRequest{ChainID: 1, GasLimit: "21000", GasPrice: "1"}

	req := base
	req.FeesUpdatedByUser = true
	d, err := svc.Describe(req)
	require.NoError(t, err)
	assert.Equal(t, "Gas values set by user", d.SourceNote)

	req = base
	req.GasFeesSource = "app.uniswap.org"
	d, err = svc.Describe(req)
	require.NoError(t, err)
	assert.Equal(t, "Gas values set by app.uniswap.org", d.SourceNote)

	req = base
	req.GasFeesSource = entity.GasFeesSourceFrame
	d, err = svc.Describe(req)
	require.NoError(t, err)
	assert.Empty(t, d.SourceNote)
}

func TestFeeService_Describe_Errors(t *testing.T) {
	state, svc := newFeeFixture(2000)

	_, err := svc.Describe(entity.TxFeeRequest{ChainID: 999, GasLimit: "21000"})
	assert.True(t, errors.Is(err, entity.ErrUnknownChain))

	state.addChain(10, "Optimism", true)
	delete(state.meta, 10)
	_, err = svc.Describe(entity.TxFeeRequest{ChainID: 10, GasLimit: "21000"})
	assert.True(t, errors.Is(err, entity.ErrMissingMetadata))

	_, err = svc.Describe(entity.TxFeeRequest{ChainID: 1, GasLimit: "0xnope"})
	assert.True(t, errors.Is(err, entity.ErrInvalidQuantity))
}
