// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-massage-link/internal/logger"
	"github.com/MKhiriev/go-massage-link/internal/service"
	"github.com/MKhiriev/go-massage-link/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Home screen inputs, in tab order.
const (
	inputClientName = iota
	inputSessionID
	inputCount
)

type connectionState int

const (
	connectionUnknown connectionState = iota
	connectionOnline
	connectionOffline
)

func (c connectionState) String() string {
	switch c {
	case connectionOnline:
		return "online"
	case connectionOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// sessionView is the single Bubble Tea model of the client. It owns the view
// state and every piece of UI state; network calls run as tea.Cmds and come
// back as messages.
type sessionView struct {
	ctx      context.Context
	sessions service.ClientSessionService
	logger   *logger.Logger

	view models.ViewState

	inputs     []textinput.Model
	focus      int
	submitting bool
	loading    bool
	spinner    spinner.Model

	sessionID  string
	clientName string
	session    *models.Session

	connection connectionState
	backendURL string

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	showError    bool
	errorOverlay errorOverlayModel
	status       string

	copyToClipboard func(string) error
}

func newSessionView(
	ctx context.Context,
	sessions service.ClientSessionService,
	buildInfo models.AppBuildInfo,
	backendURL string,
	log *logger.Logger,
) sessionView {
	nameInput := textinput.New()
	nameInput.Placeholder = "Enter your name"
	nameInput.CharLimit = 64
	nameInput.Width = 40
	nameInput.Focus()

	sessionInput := textinput.New()
	sessionInput.Placeholder = "Enter session ID"
	sessionInput.CharLimit = 128
	sessionInput.Width = 40

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return sessionView{
		ctx:             ctx,
		sessions:        sessions,
		logger:          log,
		view:            models.ViewHome,
		inputs:          []textinput.Model{nameInput, sessionInput},
		spinner:         s,
		backendURL:      backendURL,
		buildInfo:       buildInfo,
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m sessionView) Init() tea.Cmd {
	return textinput.Blink
}

func (m sessionView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case sessionCreatedMsg:
		return m.handleSessionCreated(msg)
	case sessionLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.showErrorf(lookupSessionErrorMessage(msg.err))
			return m, nil
		}
		session := msg.session
		m.session = &session
		return m, nil
	case connectionMsg:
		if msg.online {
			m.connection = connectionOnline
		} else {
			m.connection = connectionOffline
		}
		return m, nil
	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.showErrorf(fmt.Sprintf("Copy to clipboard failed: %v", msg.err))
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.submitting && !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.view {
	case models.ViewHome:
		return m.updateHome(msg)
	case models.ViewClient:
		return m.updateClient(msg)
	case models.ViewMasseuse:
		return m.updateMasseuse(msg)
	default:
		return m, nil
	}
}

func (m sessionView) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.version):
			m.showBuildInfo = true
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.focus == inputClientName {
				return m.createSession()
			}
			return m.joinAsMasseuse()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m sessionView) updateClient(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopyToClipboard(m.sessionID)
	case key.Matches(keyMsg, keys.refresh):
		return m.refreshSession()
	}
	return m, nil
}

func (m sessionView) updateMasseuse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.refresh):
		return m.refreshSession()
	}
	return m, nil
}

// canCreate reports whether the create-session control is enabled.
func (m sessionView) canCreate() bool {
	return strings.TrimSpace(m.inputs[inputClientName].Value()) != ""
}

// canJoin reports whether the join-as-masseuse control is enabled.
func (m sessionView) canJoin() bool {
	return strings.TrimSpace(m.inputs[inputSessionID].Value()) != ""
}

func (m sessionView) createSession() (tea.Model, tea.Cmd) {
	if m.submitting || !m.canCreate() {
		return m, nil
	}

	m.submitting = true
	m.clientName = m.inputs[inputClientName].Value()
	return m, tea.Batch(m.spinner.Tick, m.cmdCreateSession(m.clientName))
}

func (m sessionView) handleSessionCreated(msg sessionCreatedMsg) (tea.Model, tea.Cmd) {
	m.submitting = false

	err := msg.err
	if err == nil && strings.TrimSpace(msg.session.ID) == "" {
		err = fmt.Errorf("%w: %w", service.ErrSessionCreationFailure, service.ErrMissingSessionID)
	}
	if err != nil {
		m.logger.Error().Err(err).Msg("session creation failed, staying on home view")
		m.showErrorf(createSessionErrorMessage(err))
		return m, nil
	}

	if !m.transition(models.ViewClient) {
		return m, nil
	}

	session := msg.session
	m.session = &session
	m.sessionID = session.ID
	return m, nil
}

func (m sessionView) joinAsMasseuse() (tea.Model, tea.Cmd) {
	if !m.canJoin() {
		return m, nil
	}

	sessionID, err := m.sessions.JoinSession(m.inputs[inputSessionID].Value())
	if err != nil {
		return m, nil
	}

	if !m.transition(models.ViewMasseuse) {
		return m, nil
	}
	m.sessionID = sessionID
	return m, nil
}

func (m sessionView) refreshSession() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.cmdLoadSession(m.sessionID))
}

func (m *sessionView) transition(next models.ViewState) bool {
	if !m.view.CanTransitionTo(next) {
		m.logger.Warn().Stringer("from", m.view).Stringer("to", next).Msg("view transition rejected")
		return false
	}

	m.logger.Info().Stringer("from", m.view).Stringer("to", next).Msg("view changed")
	m.view = next
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return true
}

func (m *sessionView) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *sessionView) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % inputCount
	m.inputs[m.focus].Focus()
}

func (m *sessionView) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + inputCount) % inputCount
	m.inputs[m.focus].Focus()
}

func (m sessionView) cmdCreateSession(clientName string) tea.Cmd {
	ctx := m.ctx
	svc := m.sessions

	return func() tea.Msg {
		session, err := svc.CreateSession(ctx, clientName)
		return sessionCreatedMsg{session: session, err: err}
	}
}

func (m sessionView) cmdLoadSession(sessionID string) tea.Cmd {
	ctx := m.ctx
	svc := m.sessions

	return func() tea.Msg {
		session, err := svc.GetSession(ctx, sessionID)
		return sessionLoadedMsg{session: session, err: err}
	}
}

func (m sessionView) cmdCopyToClipboard(text string) tea.Cmd {
	copyFn := m.copyToClipboard

	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
