package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/encomendas/internal/domain/errors"
	"github.com/polkiloo/encomendas/internal/domain/model"
	"github.com/polkiloo/encomendas/internal/server/http/dto"
	"github.com/polkiloo/encomendas/internal/server/http/middleware"
)

// CurrentIdentity extracts the authenticated identity from context.
func CurrentIdentity(c *gin.Context) (model.Identity, bool) {
	val, ok := c.Get(middleware.IdentityContextKey)
	if !ok {
		return model.Identity{}, false
	}
	id, ok := val.(model.Identity)
	return id, ok
}

// StatusFor maps domain errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidOrder),
		errors.Is(err, domainErrors.ErrCredentialsRequired),
		errors.Is(err, domainErrors.ErrInvalidStatus),
		errors.Is(err, domainErrors.ErrPasswordMismatch),
		errors.Is(err, domainErrors.ErrNothingToExport):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrInvalidCredentials),
		errors.Is(err, domainErrors.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error, status int) string {
	switch {
	case status == http.StatusInternalServerError:
		return "erro interno"
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		return "usuário ou senha inválidos"
	case errors.Is(err, domainErrors.ErrCredentialsRequired):
		return "Informe usuário e senha."
	case errors.Is(err, domainErrors.ErrPasswordMismatch):
		return "as senhas não conferem"
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return "usuário já cadastrado"
	case errors.Is(err, domainErrors.ErrNothingToExport):
		return "Não há registros para exportar"
	case errors.Is(err, domainErrors.ErrInvalidOrder):
		return "preencha cliente, contato e produto"
	case errors.Is(err, domainErrors.ErrInvalidStatus):
		return "status inválido"
	case errors.Is(err, domainErrors.ErrNotFound):
		return "pedido não encontrado"
	case errors.Is(err, domainErrors.ErrUnauthenticated):
		return "não autenticado"
	default:
		return err.Error()
	}
}

// WriteError responds with {"error": message} and the status mapped from err.
func WriteError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: messageFor(err, status)})
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "id inválido")
		return 0, false
	}
	return id, true
}
