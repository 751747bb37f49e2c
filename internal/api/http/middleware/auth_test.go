package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/milkledger/server/internal/model"
	"github.com/milkledger/server/internal/testutil"
)

type fakeAuthenticator struct {
	validToken string
	err        error
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, token string) error {
	if f.err != nil {
		return f.err
	}
	if token != f.validToken {
		return model.NewAuthenticationError("unauthenticated")
	}
	return nil
}

func newTestEngine(auth Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/protected", Authenticate(auth, testutil.MakeNoopLogger()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return engine
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		auth       Authenticator
		setRequest func(*http.Request)
		wantStatus int
	}{
		{
			name:       "valid cookie passes",
			auth:       &fakeAuthenticator{validToken: "tok"},
			setRequest: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok"}) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid bearer header passes",
			auth:       &fakeAuthenticator{validToken: "tok"},
			setRequest: func(r *http.Request) { r.Header.Set("Authorization", "Bearer tok") },
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing token is rejected",
			auth:       &fakeAuthenticator{validToken: "tok"},
			setRequest: func(r *http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong token is rejected",
			auth:       &fakeAuthenticator{validToken: "tok"},
			setRequest: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "bad"}) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "store failure maps to 500",
			auth:       &fakeAuthenticator{err: errors.New("boom")},
			setRequest: func(r *http.Request) { r.Header.Set("Authorization", "Bearer tok") },
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(tt.auth)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			tt.setRequest(req)

			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestTokenFromRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("prefers the cookie", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.AddCookie(&http.Cookie{Name: SessionCookie, Value: "cookie-tok"})
		c.Request.Header.Set("Authorization", "Bearer header-tok")

		assert.Equal(t, "cookie-tok", TokenFromRequest(c))
	})

	t.Run("falls back to the bearer header", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", "Bearer header-tok")

		assert.Equal(t, "header-tok", TokenFromRequest(c))
	})

	t.Run("empty when neither is set", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		assert.Equal(t, "", TokenFromRequest(c))
	})
}
