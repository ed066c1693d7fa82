package primary

import (
	"context"

	"github.com/example/fieldreport/internal/models"
)

// AuthService defines the primary port for account and session lifecycle.
// The session is loaded from disk at startup, replaced on login/logout, and
// read-only everywhere else.
type AuthService interface {
	// Login authenticates and persists the resulting session.
	Login(ctx context.Context, username, password string) (*models.Session, error)

	// Register creates an account and persists its initial session.
	Register(ctx context.Context, username, email, password string) (*models.Session, error)

	// Logout discards the persisted session.
	Logout(ctx context.Context) error

	// Current returns the persisted session, or nil when logged out.
	Current(ctx context.Context) (*models.Session, error)
}
