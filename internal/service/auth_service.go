package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mvachon/userd/internal/domain"
	"github.com/mvachon/userd/internal/hashing"
	"github.com/mvachon/userd/internal/repository"
	"github.com/mvachon/userd/internal/session"
)

type AuthService struct {
	users    repository.UserRepository
	sessions *session.Manager
}

func NewAuthService(users repository.UserRepository, sessions *session.Manager) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
	}
}

// Authenticate resolves login to a user, verifies the password, and creates
// a session on the response.
//
// Lookup order: login is tried as a username first; only on a username miss
// is it retried as an email. A string that is one user's username and another
// user's email therefore always resolves to the username match.
//
// Lookup miss, password mismatch, and a malformed stored hash all collapse
// to domain.ErrInvalidCredentials; the caller learns nothing about which
// step failed. Session-store failure is the one distinct error: the user was
// authenticated, but no session exists, and treating that as success would
// leave the client unauthenticated without knowing it.
func (s *AuthService) Authenticate(ctx context.Context, w http.ResponseWriter, login, password string) (*domain.User, error) {
	user, err := s.users.GetByName(ctx, login)
	if errors.Is(err, domain.ErrUserNotFound) {
		user, err = s.users.GetByEmail(ctx, login)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := hashing.Verify([]byte(password), user.Password)
	if err != nil {
		// A malformed stored hash fails closed rather than crashing the
		// request or leaking the cause.
		slog.Error("stored password hash is malformed", slog.Int64("user_id", user.ID), slog.Any("error", err))
		return nil, domain.ErrInvalidCredentials
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.sessions.Create(ctx, w, user.Name); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	slog.Info("user authenticated", slog.String("name", user.Name))
	return user, nil
}

// Register hashes the raw password and inserts the user record. Unique
// collisions surface as domain.ErrNameTaken / domain.ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, username, email, password string) error {
	hash, err := hashing.Hash([]byte(password))
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		Name:     username,
		Email:    email,
		Password: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	slog.Info("user created", slog.String("email", email))
	return nil
}

// Logout ends the request's session.
func (s *AuthService) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return s.sessions.End(ctx, w, r)
}
