package handler

import (
	"encoding/json"
	"net/http"

	"github.com/korea-connect/app-platform/internal/currency"
	"github.com/korea-connect/app-platform/internal/middleware"
)

// WalletHandler exposes currency conversion.
type WalletHandler struct{}

// NewWalletHandler creates a new wallet handler.
func NewWalletHandler() *WalletHandler { return &WalletHandler{} }

type convertRequest struct {
	Amount string `json:"amount"`
	From   string `json:"from"`
	To     string `json:"to"`
}

type convertResponse struct {
	Amount    string        `json:"amount"`
	From      currency.Code `json:"from"`
	To        currency.Code `json:"to"`
	Result    string        `json:"result"`
	Formatted string        `json:"formatted"`
}

// Convert handles POST /api/v1/currency/convert
//
// Malformed amounts convert to zero rather than erroring; unknown
// currency codes are rejected.
func (h *WalletHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := middleware.ValidateAmount(req.Amount); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	from, ok := currency.ParseCode(req.From)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown source currency")
		return
	}
	to, ok := currency.ParseCode(req.To)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown target currency")
		return
	}

	result := currency.Convert(req.Amount, from, to)
	writeJSON(w, http.StatusOK, convertResponse{
		Amount:    req.Amount,
		From:      from,
		To:        to,
		Result:    result.Round(currency.MinorDigits(to)).String(),
		Formatted: currency.Format(result, to),
	})
}

type ratesResponse struct {
	Base   currency.Code            `json:"base"`
	Rates  map[currency.Code]string `json:"rates"`
	Series []currency.RatePoint     `json:"series"`
}

// Rates handles GET /api/v1/currency/rates
func (h *WalletHandler) Rates(w http.ResponseWriter, r *http.Request) {
	rates := make(map[currency.Code]string, len(currency.Codes))
	for _, code := range currency.Codes {
		if r, ok := currency.Rate(code); ok {
			rates[code] = r.String()
		}
	}

	writeJSON(w, http.StatusOK, ratesResponse{
		Base:   currency.USD,
		Rates:  rates,
		Series: currency.WeeklySeries(),
	})
}
