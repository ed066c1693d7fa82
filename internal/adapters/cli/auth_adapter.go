package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/fieldreport/internal/ports/primary"
)

// AuthAdapter translates CLI operations to AuthService calls.
type AuthAdapter struct {
	service primary.AuthService
	out     io.Writer
}

// NewAuthAdapter creates a new AuthAdapter with the given service.
func NewAuthAdapter(service primary.AuthService, out io.Writer) *AuthAdapter {
	return &AuthAdapter{
		service: service,
		out:     out,
	}
}

// Login authenticates and persists the session.
func (a *AuthAdapter) Login(ctx context.Context, username, password string) error {
	session, err := a.service.Login(ctx, username, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Logged in as %s\n", session.User.Username)
	return nil
}

// Register creates an account and persists its session.
func (a *AuthAdapter) Register(ctx context.Context, username, email, password string) error {
	session, err := a.service.Register(ctx, username, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Account created, logged in as %s\n", session.User.Username)
	return nil
}

// Logout discards the persisted session.
func (a *AuthAdapter) Logout(ctx context.Context) error {
	if err := a.service.Logout(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "✓ Logged out")
	return nil
}

// WhoAmI prints the current session, if any.
func (a *AuthAdapter) WhoAmI(ctx context.Context) error {
	session, err := a.service.Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}

	if session == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "Logged in as %s", session.User.Username)
	if session.User.Role != "" {
		fmt.Fprintf(a.out, " (%s)", session.User.Role)
	}
	fmt.Fprintln(a.out)
	return nil
}
