package view

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/korea-connect/app-platform/internal/i18n"
	"github.com/korea-connect/app-platform/pkg/logger"
	"github.com/korea-connect/app-platform/pkg/metrics"
)

// Renderer is the view-specific unit bound to one selector tag.
type Renderer interface {
	Tag() Selector
	Payload(ctx context.Context, locale i18n.Locale) any
}

// TearDowner is implemented by renderers with per-instance state that must
// be dropped when navigation leaves their view.
type TearDowner interface {
	Teardown()
}

// Registry holds the nine renderers.
type Registry struct {
	Dashboard  Renderer
	Wallet     Renderer
	Visa       Renderer
	Transport  Renderer
	Translator Renderer
	Community  Renderer
	Medical    Renderer
	Shopping   Renderer
	Admin      Renderer
}

// Controller owns the only process-wide mutable state: the active view
// selector and the active locale. Mutations are synchronous; reads always
// see the latest write.
type Controller struct {
	mu       sync.RWMutex
	view     Selector
	locale   i18n.Locale
	registry Registry
	logger   *logger.Logger
}

// NewController creates a controller starting on the default view and
// locale.
func NewController(registry Registry, log *logger.Logger) *Controller {
	return &Controller{
		view:     DefaultView,
		locale:   i18n.DefaultLocale,
		registry: registry,
		logger:   log,
	}
}

// SetView switches the active screen. An unknown tag fails closed to the
// default view instead of erroring. Leaving a view tears its renderer's
// transient state down.
func (c *Controller) SetView(tag string) Selector {
	next := Selector(tag)
	if !next.Known() {
		c.logger.Warn("unknown view tag, falling back to default",
			zap.String("tag", tag))
		next = DefaultView
	}

	c.mu.Lock()
	previous := c.view
	c.view = next
	c.mu.Unlock()

	if previous != next {
		if td, ok := c.resolve(previous).(TearDowner); ok {
			td.Teardown()
		}
	}

	metrics.ViewSwitchesTotal.WithLabelValues(string(next)).Inc()
	return next
}

// SetLocale switches the active locale. Unknown codes resolve to the
// default locale.
func (c *Controller) SetLocale(code string) i18n.Locale {
	locale := i18n.ParseLocale(code)

	c.mu.Lock()
	c.locale = locale
	c.mu.Unlock()

	metrics.LocaleSwitchesTotal.WithLabelValues(string(locale)).Inc()
	return locale
}

// View returns the active selector.
func (c *Controller) View() Selector {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.view
}

// Locale returns the active locale.
func (c *Controller) Locale() i18n.Locale {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.locale
}

// ActiveRenderer resolves the renderer for the active view.
func (c *Controller) ActiveRenderer() Renderer {
	return c.resolve(c.View())
}

func (c *Controller) resolve(tag Selector) Renderer {
	switch tag {
	case ViewDashboard:
		return c.registry.Dashboard
	case ViewWallet:
		return c.registry.Wallet
	case ViewVisa:
		return c.registry.Visa
	case ViewTransport:
		return c.registry.Transport
	case ViewTranslator:
		return c.registry.Translator
	case ViewCommunity:
		return c.registry.Community
	case ViewMedical:
		return c.registry.Medical
	case ViewShopping:
		return c.registry.Shopping
	case ViewAdmin:
		return c.registry.Admin
	default:
		return c.registry.Dashboard
	}
}
