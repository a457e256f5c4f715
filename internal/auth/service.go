package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"agencycms/internal/model"
	"agencycms/internal/repository"
)

// ErrInvalidCredentials is returned for any failed sign-in attempt. The
// message never distinguishes an unknown email from a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Service provides email/password authentication backed by the users table
// and the Redis session store.
type Service struct {
	users      repository.UserRepository
	sessions   *SessionStore
	bcryptCost int
}

// NewService creates a new auth service.
func NewService(users repository.UserRepository, sessions *SessionStore, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		users:      users,
		sessions:   sessions,
		bcryptCost: bcryptCost,
	}
}

// SignIn authenticates a user and opens a session, returning the token the
// client carries in its session cookie.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, *model.User, error) {
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		// Run a dummy compare so unknown emails cost the same as wrong
		// passwords.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"), []byte(password))
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}
	return token, user, nil
}

// SignOut revokes the session for the given token.
func (s *Service) SignOut(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

// Authenticate resolves a session token to its session data.
func (s *Service) Authenticate(ctx context.Context, token string) (SessionData, error) {
	if token == "" {
		return SessionData{}, ErrSessionNotFound
	}
	return s.sessions.Lookup(ctx, token)
}

// Register creates a new admin account. Intended for bootstrap tooling, not
// exposed over HTTP.
func (s *Service) Register(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" {
		return nil, errors.New("email is required")
	}
	if len(password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &model.User{Email: email, PasswordHash: string(hash)})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
