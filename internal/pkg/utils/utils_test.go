package utils

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAddCommas(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"123", "123"},
		{"1234", "1,234"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
		{"1234.56", "1,234.56"},
		{"-1234", "-1,234"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, AddCommas(tt.input), "AddCommas(%q)", tt.input)
	}
}

func TestToUnits(t *testing.T) {
	amount, _ := new(big.Int).SetString("1234500000000000000", 10)
	assert.Equal(t, "1.2345", ToUnits(amount, 18).String())
	assert.True(t, ToUnits(nil, 18).IsZero())
	assert.Equal(t, "42", ToUnits(big.NewInt(42), 0).String())
}

func TestFormatTrimmed(t *testing.T) {
	tests := []struct {
		input    string
		places   int32
		expected string
	}{
		{"1.23456789", 6, "1.234567"},
		{"1.5", 6, "1.5"},
		{"2", 6, "2"},
		{"0", 6, "0"},
		{"0.0000001", 6, "< 0.000001"},
		{"0.001", 2, "< 0.01"},
	}

	for _, tt := range tests {
		d := decimal.RequireFromString(tt.input)
		assert.Equal(t, tt.expected, FormatTrimmed(d, tt.places), "FormatTrimmed(%s, %d)", tt.input, tt.places)
	}
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "1,234.57", FormatUSD(decimal.RequireFromString("1234.5678"), 2))
	assert.Equal(t, "105", FormatUSD(decimal.RequireFromString("104.5"), 0))
	assert.Equal(t, "0.00", FormatUSD(decimal.Zero, 2))
}

func TestMatchFilter(t *testing.T) {
	assert.True(t, MatchFilter("", "anything"))
	assert.True(t, MatchFilter("eth", "Mainnet", "Ether", "ETH"))
	assert.True(t, MatchFilter("MAIN", "Mainnet"))
	assert.False(t, MatchFilter("usdc", "Mainnet", "Ether", "ETH"))
	assert.False(t, MatchFilter("eth main", "Ethereum Mainnet"))
}
