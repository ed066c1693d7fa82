package app

import (
	"context"
	"fmt"

	"github.com/example/fieldreport/internal/models"
	"github.com/example/fieldreport/internal/ports/primary"
	"github.com/example/fieldreport/internal/ports/secondary"
)

// AuthServiceImpl implements the AuthService interface. It keeps the
// persisted session and the gateway's in-memory session in lockstep.
type AuthServiceImpl struct {
	gateway secondary.ReportGateway
	store   secondary.SessionStore
}

// NewAuthService creates a new AuthService with injected dependencies.
func NewAuthService(gateway secondary.ReportGateway, store secondary.SessionStore) *AuthServiceImpl {
	return &AuthServiceImpl{gateway: gateway, store: store}
}

// Login authenticates and persists the resulting session.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (*models.Session, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", primary.ErrValidation)
	}

	session, err := s.gateway.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	if err := s.store.Save(session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	s.gateway.SetSession(session)

	return session, nil
}

// Register creates an account and persists its initial session.
func (s *AuthServiceImpl) Register(ctx context.Context, username, email, password string) (*models.Session, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email, and password are required", primary.ErrValidation)
	}

	session, err := s.gateway.Register(ctx, username, email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	if err := s.store.Save(session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	s.gateway.SetSession(session)

	return session, nil
}

// Logout discards the persisted session.
func (s *AuthServiceImpl) Logout(ctx context.Context) error {
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.gateway.SetSession(nil)
	return nil
}

// Current returns the persisted session, or nil when logged out.
func (s *AuthServiceImpl) Current(ctx context.Context) (*models.Session, error) {
	return s.store.Load()
}

// Ensure AuthServiceImpl implements the interface
var _ primary.AuthService = (*AuthServiceImpl)(nil)
