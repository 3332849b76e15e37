package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-massage-link/internal/adapter"
	"github.com/MKhiriev/go-massage-link/internal/logger"
	"github.com/MKhiriev/go-massage-link/internal/validators"
	"github.com/MKhiriev/go-massage-link/models"
)

type clientSessionService struct {
	backend   adapter.SessionBackend
	validator validators.Validator
	logger    *logger.Logger
}

// NewClientSessionService creates the [ClientSessionService] backed by the
// given session backend.
func NewClientSessionService(backend adapter.SessionBackend, log *logger.Logger) ClientSessionService {
	return &clientSessionService{
		backend:   backend,
		validator: validators.NewSessionValidator(),
		logger:    log,
	}
}

// CreateSession implements [ClientSessionService].
func (s *clientSessionService) CreateSession(ctx context.Context, clientName string) (models.Session, error) {
	req := models.CreateSessionRequest{ClientName: clientName}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Session{}, err
	}

	session, err := s.backend.CreateSession(ctx, req)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrSessionCreationFailure, mapAdapterError(err))
		s.logger.Error().Err(err).Str("client_name", clientName).Msg("failed to create session")
		return models.Session{}, err
	}

	if err = s.validator.Validate(ctx, session, validators.FieldSessionID); err != nil {
		err = fmt.Errorf("%w: %w: %w", ErrSessionCreationFailure, ErrMissingSessionID, err)
		s.logger.Error().Err(err).Str("client_name", clientName).Msg("failed to create session")
		return models.Session{}, err
	}

	s.logger.Info().Str("session_id", session.ID).Str("client_name", clientName).Msg("session created")
	return session, nil
}

// JoinSession implements [ClientSessionService].
func (s *clientSessionService) JoinSession(sessionID string) (string, error) {
	if err := s.validator.Validate(context.Background(), models.Session{ID: sessionID}, validators.FieldSessionID); err != nil {
		return "", err
	}

	s.logger.Info().Str("session_id", sessionID).Msg("joined session as masseuse")
	return sessionID, nil
}

// GetSession implements [ClientSessionService]. The id is trimmed before the
// lookup since masseuses may paste it with surrounding whitespace.
func (s *clientSessionService) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return models.Session{}, ErrEmptySessionID
	}

	session, err := s.backend.GetSession(ctx, sessionID)
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to load session")
		return models.Session{}, err
	}

	return session, nil
}
