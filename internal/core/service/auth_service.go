package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/userhub/userhub/internal/core/domain"
	"github.com/userhub/userhub/internal/core/ports"
)

const defaultBcryptCost = 10

// AuthService implements login and signup over a user repository.
type AuthService struct {
	repo ports.UserRepository
	cost int
	log  zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, bcryptCost int, log zerolog.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = defaultBcryptCost
	}
	return &AuthService{repo: repo, cost: bcryptCost, log: log}
}

// Login verifies the email/password pair against the repository. On success
// it stamps the account's last-login time and returns the account with the
// stamp applied.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrFieldsRequired
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.repo.RecordLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now

	s.log.Info().
		Str("username", user.Username).
		Time("last_login", now).
		Msg("user logged in")

	return user, nil
}

// Signup hashes the password and registers a new account. Role assignment
// and email uniqueness are owned by the repository.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrFieldsRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, username, email, string(hash))
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("username", created.Username).
		Str("role", created.Role).
		Int("id", created.ID).
		Msg("new user registered")

	return created, nil
}

// Users returns the full account list in insertion order.
func (s *AuthService) Users(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
