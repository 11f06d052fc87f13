package handlers

import (
	"errors"
	"net/http"

	request "locotraq/internal/adapter/http/dto/request"
	response "locotraq/internal/adapter/http/dto/response"
	"locotraq/internal/adapter/http/middleware"
	"locotraq/internal/usecase"
	"locotraq/pkg"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles admin login, session introspection and logout.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(response.LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User: response.SessionUser{
			ID:    session.UserID,
			Email: session.Email,
			Role:  string(session.Role),
		},
	}))
}

// Session returns the resolved session for the current bearer token. It runs
// behind the auth middleware, so the session is always present here.
func (h *AuthHandler) Session(c *gin.Context) {
	session := middleware.SessionFrom(c)
	c.JSON(http.StatusOK, response.OK(response.SessionUser{
		ID:    session.UserID,
		Email: session.Email,
		Role:  string(session.Role),
	}))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context(), middleware.BearerToken(c)); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(gin.H{"loggedOut": true}))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserInactive):
		return pkg.NewDomainErrorSimple("USER_INACTIVE", "Account is deactivated", http.StatusForbidden)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session expired or not found", http.StatusUnauthorized)
	default:
		return internalError(err)
	}
}
