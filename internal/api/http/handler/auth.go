package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/milkledger/server/internal/api/http/middleware"
	"github.com/milkledger/server/internal/logger"
	"github.com/milkledger/server/internal/model"
	"github.com/milkledger/server/internal/service"
)

// Auth handles login and logout.
type Auth struct {
	service *service.Auth
	logger  *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(service *service.Auth, logger *logger.Logger) *Auth {
	return &Auth{service: service, logger: logger}
}

func (h *Auth) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, h.logger, model.NewValidationError("invalid request body"))
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	maxAge := int(time.Until(session.ExpiresAt) / time.Second)
	c.SetCookie(middleware.SessionCookie, session.Token, maxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"token": session.Token, "expires_at": session.ExpiresAt})
}

func (h *Auth) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), middleware.TokenFromRequest(c)); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
