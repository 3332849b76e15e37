// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the terminal session view: a home screen with the
// client and masseuse entry forms, and the client and masseuse screens the
// home screen leads to.
package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-massage-link/internal/logger"
	"github.com/MKhiriev/go-massage-link/internal/service"
	"github.com/MKhiriev/go-massage-link/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services   *service.ClientServices
	buildInfo  models.AppBuildInfo
	backendURL string
	logger     *logger.Logger

	mu         sync.Mutex
	program    *tea.Program
	connection connectionState
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, backendURL string, log *logger.Logger) (*TUI, error) {
	if services == nil || services.SessionService == nil {
		return nil, errors.New("tui: session service is required")
	}
	return &TUI{
		services:   services,
		buildInfo:  buildInfo,
		backendURL: backendURL,
		logger:     log,
	}, nil
}

// Run blocks until the user quits or ctx is cancelled. Cancellation is not
// reported as an error.
func (t *TUI) Run(ctx context.Context) error {
	model := newSessionView(ctx, t.services.SessionService, t.buildInfo, t.backendURL, t.logger)

	t.mu.Lock()
	model.connection = t.connection
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	t.program = program
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if result, ok := finalModel.(sessionView); ok {
		t.logger.Info().Stringer("view", result.view).Str("session_id", result.sessionID).Msg("session view closed")
	}
	return nil
}

// SetConnection records the latest backend health result and forwards it to
// the running program. Safe to call from any goroutine, before or during Run.
func (t *TUI) SetConnection(online bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if online {
		t.connection = connectionOnline
	} else {
		t.connection = connectionOffline
	}
	if t.program != nil {
		go t.program.Send(connectionMsg{online: online})
	}
}
