package ports

import (
	"context"

	"github.com/userhub/userhub/internal/core/domain"
)

// AuthService defines the interface for credential checking and signup.
type AuthService interface {
	// Login verifies the email/password pair, stamps the last-login time
	// and returns the account on success.
	Login(ctx context.Context, email, password string) (*domain.User, error)
	// Signup registers a new account. The caller is not logged in as a
	// side effect.
	Signup(ctx context.Context, username, email, password string) (*domain.User, error)
	// Users returns all accounts in insertion order. Admin views only.
	Users(ctx context.Context) ([]*domain.User, error)
}
