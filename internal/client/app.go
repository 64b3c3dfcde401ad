// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/regulatrix/early-access/internal/adapter"
	"github.com/regulatrix/early-access/internal/config"
	"github.com/regulatrix/early-access/internal/logger"
	"github.com/regulatrix/early-access/internal/service"
	"github.com/regulatrix/early-access/internal/telemetry"
	"github.com/regulatrix/early-access/internal/tui"
	"github.com/regulatrix/early-access/internal/workers"
	"github.com/regulatrix/early-access/models"
)

type App struct {
	ui      UI
	workers workers.Worker

	logger *logger.Logger
}

// NewApp wires the client: API client, telemetry emitter, services and the
// terminal UI, all sharing cfg.
func NewApp(cfg *config.EnvConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	apiClient := adapter.NewHTTPAPIClient(cfg, log)
	emitter := telemetry.New(cfg, apiClient, log)
	services := service.NewClientServices(apiClient, emitter, log)

	ui, err := tui.New(services, emitter, buildInfo, cfg.Release, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	log.Info().
		Str("api_base_url", cfg.APIBaseURL).
		Str("early_access_url", cfg.EarlyAccessURL()).
		Str("app_env", string(cfg.AppEnv)).
		Str("release", cfg.Release).
		Bool("telemetry", cfg.Telemetry.Enabled).
		Msg("client app created")

	return newApp(ui, workers.NewWorkers(emitter), log), nil
}

func newApp(ui UI, w workers.Worker, log *logger.Logger) *App {
	return &App{ui: ui, workers: w, logger: log}
}

// Run runs the app until the UI exits or the process receives SIGINT or
// SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.RunContext(ctx)
}

// RunContext starts background workers, runs the UI and stops the workers
// once the UI returns, flushing pending telemetry.
func (a *App) RunContext(ctx context.Context) error {
	a.workers.Start(ctx)
	defer a.workers.Stop()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Msg("client app stopped")
	return nil
}
