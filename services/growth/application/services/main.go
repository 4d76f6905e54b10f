package services

import (
	"context"
	"fmt"

	"github.com/ghuser/growthtrack/pkg/app"
	"github.com/ghuser/growthtrack/services/growth/application/views"
	"github.com/ghuser/growthtrack/services/growth/domain/repositories"
	"github.com/ghuser/growthtrack/services/growth/infrastructure/chart"
	"github.com/ghuser/growthtrack/services/growth/infrastructure/persistence/kvstore"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Store      *RecordStore
	Controller *Controller
	Chart      *chart.Adapter
}

// New wires the growth services with infrastructure from the Application
// container. table receives every table projection the Controller renders.
func New(ctx context.Context, a *app.Application, table views.TableRenderer) (*Services, error) {
	var repo repositories.RecordRepository = kvstore.NewRecordRepository(a.Store)
	if a.Config.SeedDemoData {
		repo = kvstore.NewSeedingRepository(repo, a.Logger)
	}

	store, err := NewRecordStore(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("growth services: %w", err)
	}

	adapter := chart.NewAdapter(a.Config.ChartWidth, a.Config.ChartHeight, a.Logger)

	opts := []ControllerOption{WithClock(a.Now)}
	if a.EventBus != nil {
		opts = append(opts, WithPublisher(a.EventBus))
	}
	ctrl := NewController(store, views.NewProjector(a.Locale), adapter, table, a.IDs, a.Logger, opts...)

	return &Services{Store: store, Controller: ctrl, Chart: adapter}, nil
}
