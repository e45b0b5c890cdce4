package utils

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ToUnits converts a base-unit amount into whole units.
// Example: amount=1234500000000000000, decimals=18 => 1.2345
func ToUnits(amount *big.Int, decimals int32) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(amount, -decimals)
}

// TrimZeros removes trailing fractional zeros and a dangling decimal point.
func TrimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// FormatTrimmed rounds d down to places and trims trailing zeros.
// A non-zero value that rounds to zero renders as "< 0.0…1".
func FormatTrimmed(d decimal.Decimal, places int32) string {
	truncated := d.Truncate(places)
	if truncated.IsZero() && !d.IsZero() && places > 0 {
		return "< " + smallestUnit(places)
	}
	return TrimZeros(truncated.StringFixed(places))
}

func smallestUnit(places int32) string {
	return "0." + strings.Repeat("0", int(places-1)) + "1"
}

// AddCommas inserts thousands separators into the integer part of a numeric string.
func AddCommas(s string) string {
	if len(s) == 0 {
		return s
	}
	parts := strings.SplitN(s, ".", 2)
	integerPart := parts[0]
	sign := ""
	if strings.HasPrefix(integerPart, "-") {
		sign = "-"
		integerPart = integerPart[1:]
	}

	n := len(integerPart)
	if n <= 3 {
		return s
	}

	var result strings.Builder
	result.WriteString(sign)
	remainder := n % 3
	if remainder > 0 {
		result.WriteString(integerPart[:remainder])
		result.WriteString(",")
	}
	for i := remainder; i < n; i += 3 {
		if i > remainder {
			result.WriteString(",")
		}
		result.WriteString(integerPart[i : i+3])
	}

	if len(parts) > 1 {
		result.WriteString(".")
		result.WriteString(parts[1])
	}
	return result.String()
}

// FormatUSD rounds d to places and adds thousands separators.
func FormatUSD(d decimal.Decimal, places int32) string {
	return AddCommas(d.StringFixed(places))
}
