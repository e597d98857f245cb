package platform

import (
	"context"
	"fmt"
)

// Position is a one-shot geolocation fix.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// String renders the raw coordinate pair shown when reverse geocoding is
// absent.
func (p Position) String() string {
	return fmt.Sprintf("%.4f, %.4f", p.Latitude, p.Longitude)
}

// Locator acquires the device position once. No continuous tracking.
type Locator interface {
	Current(ctx context.Context) (Position, error)
}

// FixedLocator reports a static position. Used when the shell forwards a
// client-acquired fix, and in tests.
type FixedLocator struct {
	Position Position
}

func (l FixedLocator) Current(context.Context) (Position, error) {
	return l.Position, nil
}

// NoLocator is the unavailable variant: geolocation denied or absent.
// Callers degrade silently to manual entry, with no user-visible notice.
type NoLocator struct{}

func (NoLocator) Current(context.Context) (Position, error) {
	return Position{}, ErrUnavailable
}
