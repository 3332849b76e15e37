package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-massage-link/internal/config"
	"github.com/MKhiriev/go-massage-link/internal/logger"
	"github.com/MKhiriev/go-massage-link/internal/service"
	"github.com/MKhiriev/go-massage-link/internal/workers"
)

type App struct {
	ui      UI
	workers *workers.Workers
	logger  *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || services.HealthJob == nil {
		return nil, errors.New("health job is required")
	}
	if ui == nil {
		return nil, errors.New("ui is required")
	}

	return &App{
		ui:      ui,
		workers: workers.NewWorkers(workers.NewHealthWorker(services.HealthJob, cfg.HealthInterval, ui.SetConnection)),
		logger:  log,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.logger.Info().Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	a.logger.Info().Msg("client stopped")

	return nil
}
