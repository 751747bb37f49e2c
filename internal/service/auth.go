package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/milkledger/server/internal/logger"
	"github.com/milkledger/server/internal/model"
)

// Credentials is the single shared credential pair gating the API.
type Credentials struct {
	Username string
	Password string
}

// Match compares the pair in constant time.
func (c Credentials) Match(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
	return userOK && passOK
}

// Auth issues and validates login sessions against the shared credentials.
type Auth struct {
	sessions model.SessionStore
	creds    Credentials
	ttl      time.Duration
	idgen    model.IDGenerator
	logger   *logger.Logger
	now      func() time.Time
}

// NewAuth creates a new Auth service. A non-positive ttl falls back to the
// default session duration.
func NewAuth(sessions model.SessionStore, creds Credentials, ttl time.Duration, idgen model.IDGenerator, logger *logger.Logger) *Auth {
	if ttl <= 0 {
		ttl = model.SessionDuration
	}
	return &Auth{
		sessions: sessions,
		creds:    creds,
		ttl:      ttl,
		idgen:    idgen,
		logger:   logger,
		now:      time.Now,
	}
}

// Login checks the shared credentials and opens a session.
func (a *Auth) Login(ctx context.Context, username, password string) (model.Session, error) {
	if !a.creds.Match(username, password) {
		a.logger.Info("Auth service: login rejected", "username", username)
		return model.Session{}, model.NewAuthenticationError("invalid credentials")
	}

	now := a.now().UTC()
	session := model.Session{
		Token:     a.idgen.NewID(),
		CreatedAt: now,
		ExpiresAt: now.Add(a.ttl),
	}

	if err := a.sessions.Create(ctx, session); err != nil {
		return model.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	a.logger.Info("Auth service: session opened", "expires_at", session.ExpiresAt)
	return session, nil
}

// Authenticate validates a session token. Missing, unknown and expired
// tokens all surface as the same generic unauthenticated error; expired
// sessions are evicted.
func (a *Auth) Authenticate(ctx context.Context, token string) error {
	if token == "" {
		return model.NewAuthenticationError("unauthenticated")
	}

	session, err := a.sessions.GetByToken(ctx, token)
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAuthenticationError("unauthenticated")
	}
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	if a.now().UTC().After(session.ExpiresAt) {
		if err := a.sessions.Delete(ctx, session.Token); err != nil {
			a.logger.Error("Auth service: failed to evict expired session", "error", err)
		}
		return model.NewAuthenticationError("unauthenticated")
	}

	return nil
}

// Logout invalidates the session immediately. Unknown tokens are a no-op.
func (a *Auth) Logout(ctx context.Context, token string) error {
	if err := a.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
