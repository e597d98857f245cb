package view

import (
	"context"

	"github.com/korea-connect/app-platform/internal/i18n"
	"github.com/korea-connect/app-platform/internal/model"
)

// ServiceTile is one entry in the dashboard service grid.
type ServiceTile struct {
	View  Selector `json:"view"`
	Label string   `json:"label"`
}

// DashboardPayload is the dashboard view content.
type DashboardPayload struct {
	Greeting      string               `json:"greeting"`
	TimelineTitle string               `json:"timeline_title"`
	ViewAll       string               `json:"view_all"`
	ServicesTitle string               `json:"services_title"`
	Services      []ServiceTile        `json:"services"`
	Notifications []model.Notification `json:"notifications"`
}

// DashboardRenderer renders the home screen.
type DashboardRenderer struct {
	table *i18n.Table
}

// NewDashboardRenderer creates the dashboard renderer.
func NewDashboardRenderer(table *i18n.Table) *DashboardRenderer {
	return &DashboardRenderer{table: table}
}

func (r *DashboardRenderer) Tag() Selector { return ViewDashboard }

func (r *DashboardRenderer) Payload(_ context.Context, locale i18n.Locale) any {
	services := []struct {
		view Selector
		key  string
	}{
		{ViewVisa, i18n.KeyServiceVisa},
		{ViewTransport, i18n.KeyServiceTransport},
		{ViewWallet, i18n.KeyServiceWallet},
		{ViewMedical, i18n.KeyServiceMedical},
		{ViewShopping, i18n.KeyServiceShopping},
		{ViewCommunity, i18n.KeyServiceCommunity},
		{ViewTranslator, i18n.KeyServiceTranslator},
		{ViewAdmin, i18n.KeyServiceAdmin},
	}

	tiles := make([]ServiceTile, len(services))
	for i, s := range services {
		tiles[i] = ServiceTile{View: s.view, Label: r.table.Lookup(s.key, locale)}
	}

	return DashboardPayload{
		Greeting:      r.table.Lookup(i18n.KeyGreeting, locale),
		TimelineTitle: r.table.Lookup(i18n.KeyTimelineTitle, locale),
		ViewAll:       r.table.Lookup(i18n.KeyViewAll, locale),
		ServicesTitle: r.table.Lookup(i18n.KeyServices, locale),
		Services:      tiles,
		Notifications: model.SampleNotifications(),
	}
}
