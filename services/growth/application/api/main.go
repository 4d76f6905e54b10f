package api

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/growthtrack/pkg/app"
	"github.com/ghuser/growthtrack/services/growth/application/handlers"
	appsvcs "github.com/ghuser/growthtrack/services/growth/application/services"
	"github.com/ghuser/growthtrack/services/growth/application/subscribers"
)

// GrowthRoutes wires the growth services, renders the initial views and
// registers the page and JSON endpoints on the provided chi router.
func GrowthRoutes(ctx context.Context, r chi.Router, a *app.Application) (*appsvcs.Services, error) {
	table := handlers.NewTableView()
	svcs, err := appsvcs.New(ctx, a, table)
	if err != nil {
		return nil, err
	}
	if err := svcs.Controller.Refresh(ctx); err != nil {
		a.Logger.Warn("initial render failed", "error", err)
	}

	if a.EventBus != nil {
		if err := subscribers.NewActivityLog(a.Logger).Register(ctx, a.EventBus); err != nil {
			return nil, fmt.Errorf("growth subscribers: %w", err)
		}
	}

	page := handlers.NewPage(svcs, table, a.Locale, a.Now, a.Logger)
	api := handlers.NewAPI(svcs, table, a.Logger)

	r.Group(func(r chi.Router) {
		r.Get("/", page.Index)
		r.Get("/chart.png", page.Chart)
		r.Route("/records", func(r chi.Router) {
			r.Post("/", page.AddRecord)
			r.Get("/{id}/delete", page.ConfirmDelete)
			r.Post("/{id}/delete", page.DeleteRecord)
		})
		r.Route("/api", func(r chi.Router) {
			r.Get("/records", api.ListRecords)
			r.Post("/records", api.CreateRecord)
			r.Delete("/records/{id}", api.DeleteRecord)
			r.Get("/chart", api.ChartData)
		})
	})
	return svcs, nil
}
