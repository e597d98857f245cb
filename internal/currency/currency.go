// Package currency provides the wallet's fixed-rate currency converter.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Code is a supported currency code.
type Code string

const (
	USD Code = "USD"
	KRW Code = "KRW"
	VND Code = "VND"
	CNY Code = "CNY"
)

// Codes lists the supported currencies in display order.
var Codes = []Code{KRW, VND, CNY, USD}

// rates are expressed relative to USD (base 1). Static sample data, not a
// live feed.
var rates = map[Code]decimal.Decimal{
	USD: decimal.NewFromInt(1),
	KRW: decimal.RequireFromString("1365.50"),
	VND: decimal.RequireFromString("25450.00"),
	CNY: decimal.RequireFromString("7.24"),
}

// ParseCode maps a string to a supported currency code.
func ParseCode(s string) (Code, bool) {
	code := Code(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := rates[code]; ok {
		return code, true
	}
	return "", false
}

// Rate returns the USD-relative rate for a currency.
func Rate(code Code) (decimal.Decimal, bool) {
	r, ok := rates[code]
	return r, ok
}

// Convert exchanges amount from one currency to another through the USD
// base: result = (amount / rate[from]) * rate[to]. A non-numeric amount or
// an unknown code yields zero; malformed input is not an error condition.
func Convert(amount string, from, to Code) decimal.Decimal {
	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return decimal.Zero
	}
	fromRate, ok := rates[from]
	if !ok {
		return decimal.Zero
	}
	toRate, ok := rates[to]
	if !ok {
		return decimal.Zero
	}
	return value.Div(fromRate).Mul(toRate)
}

// MinorDigits returns the number of fraction digits customarily shown for
// a currency. KRW and VND have no minor unit in everyday display.
func MinorDigits(code Code) int32 {
	switch code {
	case KRW, VND:
		return 0
	default:
		return 2
	}
}

// Format renders a converted value for display in the target currency:
// integer rounding for no-minor-unit currencies, two fraction digits
// otherwise, with thousands grouping.
func Format(value decimal.Decimal, code Code) string {
	return group(value.Round(MinorDigits(code)).StringFixed(MinorDigits(code)))
}

// group inserts comma separators into the integer part of a plain decimal
// string.
func group(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
