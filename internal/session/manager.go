package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mvachon/userd/internal/domain"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "userd_session"

// Manager issues and resolves sessions. The cookie value is an HS256 JWT
// wrapping the opaque session ID, so a forged or tampered cookie is rejected
// before the store is ever consulted.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewManager(store Store, secret []byte, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		store:  store,
		secret: secret,
		ttl:    ttl,
		secure: secure,
	}
}

// Create binds principal to a fresh session and sets the session cookie on
// the response.
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, principal string) error {
	id := uuid.New().String()

	if err := m.store.Set(ctx, id, principal, m.ttl); err != nil {
		return err
	}

	token, err := m.signToken(id)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSessionStore, err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.ttl.Seconds()),
	})
	return nil
}

// Identity returns the principal bound to the request's session, or
// domain.ErrNoSession when the request carries no valid session.
func (m *Manager) Identity(r *http.Request) (string, error) {
	id, err := m.sessionID(r)
	if err != nil {
		return "", err
	}
	return m.store.Get(r.Context(), id)
}

// End deletes the request's session and expires the cookie. Ending a request
// that has no session is a no-op.
func (m *Manager) End(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := m.sessionID(r)
	if err == nil {
		if err := m.store.Delete(ctx, id); err != nil {
			return err
		}
	} else if !errors.Is(err, domain.ErrNoSession) {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	return nil
}

func (m *Manager) signToken(id string) (string, error) {
	claims := jwt.MapClaims{
		"sid": id,
		"exp": time.Now().Add(m.ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// sessionID extracts and verifies the session ID from the request cookie.
// Any failure (missing cookie, bad signature, expired token, missing claim)
// collapses to domain.ErrNoSession.
func (m *Manager) sessionID(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", domain.ErrNoSession
	}

	token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrNoSession
	}
	id, ok := claims["sid"].(string)
	if !ok || id == "" {
		return "", domain.ErrNoSession
	}
	return id, nil
}
