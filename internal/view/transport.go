package view

import (
	"context"

	"github.com/korea-connect/app-platform/internal/i18n"
	"github.com/korea-connect/app-platform/internal/platform"
)

// RouteFinder is the assistant surface the transport view depends on.
// Satisfied by *assistant.Gateway.
type RouteFinder interface {
	Route(ctx context.Context, origin, destination string, locale i18n.Locale) string
	ReverseGeocode(ctx context.Context, lat, lon float64, locale i18n.Locale) (string, bool)
}

// TransportPayload is the transport view content. Origin is empty when no
// position is available; the client falls back to manual entry.
type TransportPayload struct {
	Origin         string `json:"origin"`
	FindRouteLabel string `json:"find_route_label"`
}

// TransportRenderer renders the route-finding screen.
type TransportRenderer struct {
	finder  RouteFinder
	locator platform.Locator
	table   *i18n.Table
}

// NewTransportRenderer creates the transport renderer.
func NewTransportRenderer(finder RouteFinder, locator platform.Locator, table *i18n.Table) *TransportRenderer {
	return &TransportRenderer{finder: finder, locator: locator, table: table}
}

func (r *TransportRenderer) Tag() Selector { return ViewTransport }

// Payload resolves the origin field: the device position reverse-geocoded
// to an address, raw coordinates when geocoding is unavailable, and empty
// when there is no position at all.
func (r *TransportRenderer) Payload(ctx context.Context, locale i18n.Locale) any {
	payload := TransportPayload{
		FindRouteLabel: r.table.Lookup(i18n.KeyFindRoute, locale),
	}

	pos, err := r.locator.Current(ctx)
	if err == nil {
		if addr, ok := r.finder.ReverseGeocode(ctx, pos.Latitude, pos.Longitude, locale); ok {
			payload.Origin = addr
		} else {
			payload.Origin = pos.String()
		}
	}

	return payload
}

// FindRoute asks the assistant for directions between two points.
func (r *TransportRenderer) FindRoute(ctx context.Context, origin, destination string, locale i18n.Locale) string {
	return r.finder.Route(ctx, origin, destination, locale)
}
