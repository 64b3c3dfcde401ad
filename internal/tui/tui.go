// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the early-access client.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/regulatrix/early-access/internal/logger"
	"github.com/regulatrix/early-access/internal/service"
	"github.com/regulatrix/early-access/internal/telemetry"
	"github.com/regulatrix/early-access/models"
)

// PageTitle is reported with the page_view event when the form opens.
const PageTitle = "Request early access"

type TUI struct {
	forms     service.FormService
	tracker   telemetry.Tracker
	buildInfo models.AppBuildInfo
	release   string

	options []tea.ProgramOption
	logger  *logger.Logger
}

func New(services *service.ClientServices, tracker telemetry.Tracker, buildInfo models.AppBuildInfo, release string, log *logger.Logger) (*TUI, error) {
	if services == nil || services.FormService == nil {
		return nil, errors.New("tui: form service is required")
	}
	if tracker == nil {
		tracker = telemetry.Nop{}
	}

	return &TUI{
		forms:     services.FormService,
		tracker:   tracker,
		buildInfo: buildInfo,
		release:   release,
		options:   []tea.ProgramOption{tea.WithAltScreen()},
		logger:    log,
	}, nil
}

// Run shows the form until the user quits or ctx is done. A crash of the
// program is reported as a frontend_error event before it is returned.
func (t *TUI) Run(ctx context.Context) error {
	telemetry.TrackPageView(t.tracker, PageTitle)

	root := NewRootModel(NewFormModel(ctx, t.forms), t.buildInfo, t.release)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)

	final, err := tea.NewProgram(root, opts...).Run()
	switch {
	case err == nil:
		if closedByUser(final) {
			t.logger.Debug().Msg("tui closed by user")
		}
		return nil
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		return nil
	case errors.Is(err, tea.ErrInterrupted):
		return nil
	}

	t.logger.Err(err).Msg("tui stopped with error")
	telemetry.TrackError(t.tracker, err, nil)
	return fmt.Errorf("run tui: %w", err)
}

// closedByUser reports whether the program ended on the quit key rather than
// on context cancellation.
func closedByUser(m tea.Model) bool {
	root, ok := m.(RootModel)
	return ok && root.quitByUser
}
