package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/korea-connect/app-platform/internal/currency"
)

func TestConvertKRWToVND(t *testing.T) {
	// (10000 / 1365.50) * 25450.00 = 186378.61..., shown without minor units.
	result := currency.Convert("10000", currency.KRW, currency.VND)
	require.Equal(t, "186379", result.Round(0).String())
	require.Equal(t, "186,379", currency.Format(result, currency.VND))
}

func TestConvertThroughUSDBase(t *testing.T) {
	result := currency.Convert("100", currency.USD, currency.CNY)
	require.Equal(t, "724.00", currency.Format(result, currency.CNY))
}

func TestConvertIdentity(t *testing.T) {
	result := currency.Convert("1000000", currency.KRW, currency.KRW)
	require.Equal(t, "1,000,000", currency.Format(result, currency.KRW))
}

func TestConvertMalformedAmountYieldsZero(t *testing.T) {
	for _, amount := range []string{"abc", "", "12,000", "1.2.3"} {
		result := currency.Convert(amount, currency.USD, currency.KRW)
		require.True(t, result.IsZero(), "amount %q", amount)
	}
}

func TestConvertUnknownCodeYieldsZero(t *testing.T) {
	require.True(t, currency.Convert("100", "JPY", currency.KRW).IsZero())
	require.True(t, currency.Convert("100", currency.KRW, "JPY").IsZero())
}

func TestConvertRoundTrip(t *testing.T) {
	amount := decimal.RequireFromString("12345.67")
	tolerance := decimal.RequireFromString("0.01")

	for _, from := range currency.Codes {
		for _, to := range currency.Codes {
			there := currency.Convert(amount.String(), from, to)
			back := currency.Convert(there.String(), to, from)
			diff := back.Sub(amount).Abs()
			require.True(t, diff.LessThanOrEqual(tolerance),
				"%s -> %s -> back drifted by %s", from, to, diff)
		}
	}
}

func TestFormatMinorDigits(t *testing.T) {
	v := decimal.RequireFromString("1234.5678")
	require.Equal(t, "1,235", currency.Format(v, currency.KRW))
	require.Equal(t, "1,235", currency.Format(v, currency.VND))
	require.Equal(t, "1,234.57", currency.Format(v, currency.USD))
	require.Equal(t, "1,234.57", currency.Format(v, currency.CNY))
}

func TestParseCode(t *testing.T) {
	code, ok := currency.ParseCode("krw")
	require.True(t, ok)
	require.Equal(t, currency.KRW, code)

	_, ok = currency.ParseCode("JPY")
	require.False(t, ok)
}
