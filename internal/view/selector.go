// Package view owns the application's screen routing: the view selector,
// the active locale, and the renderer bound to each screen.
package view

// Selector identifies one of the application screens.
type Selector string

const (
	ViewDashboard  Selector = "dashboard"
	ViewWallet     Selector = "wallet"
	ViewVisa       Selector = "visa"
	ViewTransport  Selector = "transport"
	ViewTranslator Selector = "translator"
	ViewCommunity  Selector = "community"
	ViewMedical    Selector = "medical"
	ViewShopping   Selector = "shopping"
	ViewAdmin      Selector = "admin"
)

// DefaultView is the screen shown at start and for unknown tags.
const DefaultView = ViewDashboard

// Selectors lists every screen.
var Selectors = []Selector{
	ViewDashboard,
	ViewWallet,
	ViewVisa,
	ViewTransport,
	ViewTranslator,
	ViewCommunity,
	ViewMedical,
	ViewShopping,
	ViewAdmin,
}

// Known reports whether the selector names a real screen.
func (s Selector) Known() bool {
	switch s {
	case ViewDashboard, ViewWallet, ViewVisa, ViewTransport, ViewTranslator,
		ViewCommunity, ViewMedical, ViewShopping, ViewAdmin:
		return true
	}
	return false
}
