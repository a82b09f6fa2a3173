package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/encomendas/internal/domain/errors"
	"github.com/polkiloo/encomendas/internal/domain/model"
	"github.com/polkiloo/encomendas/internal/server/http/dto"
	"github.com/polkiloo/encomendas/internal/server/http/middleware"
)

// AuthHandler processes registration, login and logout.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/user/register. A successful sign-up is also a sign-in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "requisição inválida")
		return
	}

	identity, token, err := h.facade.Register(c.Request.Context(), model.Registration{
		FullName:     req.Nome,
		Username:     req.Usuario,
		Password:     req.Senha,
		Confirmation: req.Senha2,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			badRequest(c, "preencha todos os campos")
			return
		}
		WriteError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, toIdentityResponse(identity))
}

// Login handles POST /api/user/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "requisição inválida")
		return
	}

	identity, token, err := h.facade.Authenticate(c.Request.Context(), req.Usuario, req.Senha)
	if err != nil {
		WriteError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, toIdentityResponse(identity))
}

// Logout handles POST /api/user/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.facade.Logout(c.Request.Context()); err != nil {
		WriteError(c, err)
		return
	}
	middleware.ClearAuthCookie(c)
	c.Status(http.StatusNoContent)
}

// Me handles GET /api/user/me.
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		WriteError(c, domainErrors.ErrUnauthenticated)
		return
	}
	c.JSON(http.StatusOK, toIdentityResponse(identity))
}

func toIdentityResponse(identity model.Identity) dto.IdentityResponse {
	return dto.IdentityResponse{ID: identity.UserID, Email: identity.Email, FullName: identity.FullName}
}
