package view

import (
	"context"

	"github.com/korea-connect/app-platform/internal/currency"
	"github.com/korea-connect/app-platform/internal/i18n"
)

// WalletPayload is the wallet view content: the converter defaults and
// the sample rate chart.
type WalletPayload struct {
	Balance       string               `json:"balance"`
	Currencies    []currency.Code      `json:"currencies"`
	DefaultAmount string               `json:"default_amount"`
	DefaultFrom   currency.Code        `json:"default_from"`
	DefaultTo     currency.Code        `json:"default_to"`
	Converted     string               `json:"converted"`
	Series        []currency.RatePoint `json:"series"`
}

// WalletRenderer renders the wallet screen.
type WalletRenderer struct{}

// NewWalletRenderer creates the wallet renderer.
func NewWalletRenderer() *WalletRenderer { return &WalletRenderer{} }

func (r *WalletRenderer) Tag() Selector { return ViewWallet }

func (r *WalletRenderer) Payload(_ context.Context, _ i18n.Locale) any {
	const (
		defaultAmount = "10000"
		defaultFrom   = currency.KRW
		defaultTo     = currency.VND
	)
	converted := currency.Convert(defaultAmount, defaultFrom, defaultTo)

	return WalletPayload{
		Balance:       "₩ 2,450,000",
		Currencies:    currency.Codes,
		DefaultAmount: defaultAmount,
		DefaultFrom:   defaultFrom,
		DefaultTo:     defaultTo,
		Converted:     currency.Format(converted, defaultTo),
		Series:        currency.WeeklySeries(),
	}
}
