package ports

import (
	"context"
	"time"

	"github.com/userhub/userhub/internal/core/domain"
)

// UserRepository defines the interface for credential storage.
type UserRepository interface {
	// FindByEmail returns the account whose email matches exactly, or
	// domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create appends a new account. The first account ever created is
	// assigned the admin role; all later accounts get the user role.
	// Returns domain.ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, username, email, passwordHash string) (*domain.User, error)
	// RecordLogin stamps the account's last-login time.
	RecordLogin(ctx context.Context, id int, ts time.Time) error
	// List returns all accounts in insertion order.
	List(ctx context.Context) ([]*domain.User, error)
}
