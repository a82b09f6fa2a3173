package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/encomendas/internal/domain/model"
	pkgAuth "github.com/polkiloo/encomendas/internal/pkg/auth"
	"github.com/polkiloo/encomendas/internal/server/http/dto"
	"github.com/polkiloo/encomendas/internal/session"
)

const (
	// IdentityContextKey is a gin context key for the authenticated identity.
	IdentityContextKey = "identity"
	authCookieName     = "encomendas_token"
)

// TokenParser resolves the identity carried by a session token.
type TokenParser interface {
	ParseToken(token string) (model.Identity, error)
}

// AuthRequired ensures user is authenticated before accessing handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "não autenticado"})
			return
		}

		identity, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "sessão expirada"})
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		attach(c, identity)
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is present and never aborts.
func OptionalAuth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if identity, err := parser.ParseToken(token); err == nil {
				attach(c, identity)
			}
		}
		c.Next()
	}
}

func attach(c *gin.Context, identity model.Identity) {
	c.Set(IdentityContextKey, identity)
	c.Request = c.Request.WithContext(session.WithIdentity(c.Request.Context(), identity))
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie expires the auth cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
}
