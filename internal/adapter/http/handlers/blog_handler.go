package handlers

import (
	"errors"
	"net/http"

	request "locotraq/internal/adapter/http/dto/request"
	response "locotraq/internal/adapter/http/dto/response"
	"locotraq/internal/usecase"
	"locotraq/pkg"

	"github.com/gin-gonic/gin"
)

// BlogHandler handles admin blog requests and the public article endpoint.

type BlogHandler struct {
	usecase usecase.IBlogUseCase
}

func NewBlogHandler(uc usecase.IBlogUseCase) *BlogHandler {
	return &BlogHandler{usecase: uc}
}

func (h *BlogHandler) List(c *gin.Context) {
	blogs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapBlogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(blogs))
}

func (h *BlogHandler) Get(c *gin.Context) {
	blog, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBlogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(blog))
}

func (h *BlogHandler) Create(c *gin.Context) {
	var payload request.BlogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapBlogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.OK(created))
}

func (h *BlogHandler) Update(c *gin.Context) {
	var payload request.BlogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapBlogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(updated))
}

func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapBlogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(gin.H{"deleted": true}))
}

func mapBlogError(err error) *pkg.AppError {
	if appErr := asValidationError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidBlogID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBlogNotFound):
		return pkg.NewDomainErrorSimple("BLOG_NOT_FOUND", "Blog not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
