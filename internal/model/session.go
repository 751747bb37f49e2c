package model

import (
	"context"
	"time"
)

// SessionDuration is the fixed lifetime of a login session.
const SessionDuration = 24 * time.Hour

// Session represents an authenticated login session tied to an opaque
// token.
type Session struct {
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionStore persists active login sessions. Sessions are not part of
// the snapshot and do not survive a restart.
type SessionStore interface {
	Create(ctx context.Context, session Session) error
	GetByToken(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
}
