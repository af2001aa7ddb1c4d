// Package memory provides the in-process credential store. Records live in a
// slice guarded by a mutex and are lost on restart; there is no durability
// layer by design.
package memory

import (
	"context"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/userhub/userhub/internal/core/domain"
)

// UserStore is an in-memory user repository. Create holds the store lock
// across the uniqueness check and the append, so two concurrent signups with
// the same email cannot both succeed.
type UserStore struct {
	mu     sync.Mutex
	users  []*domain.User
	nextID int
}

// NewUserStore builds a store pre-populated with the given seed records.
// Seed records are copied; ids are renumbered sequentially from 1.
func NewUserStore(seed ...*domain.User) *UserStore {
	s := &UserStore{nextID: 1}
	for _, u := range seed {
		clone := *u
		clone.ID = s.nextID
		s.nextID++
		s.users = append(s.users, &clone)
	}
	return s
}

// FindByEmail returns the account with an exactly matching email.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findLocked(email)
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// Create appends a new account, assigning the next sequential id. The admin
// role is assigned only when the store is empty at creation time; every later
// account gets the user role.
func (s *UserStore) Create(ctx context.Context, username, email, passwordHash string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findLocked(email) != nil {
		return nil, domain.ErrEmailTaken
	}

	role := domain.RoleUser
	if len(s.users) == 0 {
		role = domain.RoleAdmin
	}

	u := &domain.User{
		ID:           s.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	s.nextID++
	s.users = append(s.users, u)

	clone := *u
	return &clone, nil
}

// RecordLogin stamps the account's last-login time in place.
func (s *UserStore) RecordLogin(ctx context.Context, id int, ts time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			u.LastLogin = &ts
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// List returns copies of all accounts in insertion order.
func (s *UserStore) List(ctx context.Context) ([]*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (s *UserStore) findLocked(email string) *domain.User {
	for _, u := range s.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

// DefaultSeed builds the three development accounts the service ships with,
// hashing their passwords at the given bcrypt cost. Note the first seeded
// account is the only admin; because the store never starts empty in this
// configuration, the first-signup-is-admin rule in Create stays dormant.
func DefaultSeed(bcryptCost int) ([]*domain.User, error) {
	accounts := []struct {
		username, email, password, role string
	}{
		{"AdminUser", "admin@example.com", "admin123", domain.RoleAdmin},
		{"RegularUser", "user@example.com", "user123", domain.RoleUser},
		{"SonicTheHeadge", "SonicTHeadge@Beans.com", "password123", domain.RoleUser},
	}

	seed := make([]*domain.User, 0, len(accounts))
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcryptCost)
		if err != nil {
			return nil, err
		}
		seed = append(seed, &domain.User{
			Username:     a.username,
			Email:        a.email,
			PasswordHash: string(hash),
			Role:         a.role,
		})
	}
	return seed, nil
}
