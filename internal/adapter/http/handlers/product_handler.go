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

// ProductHandler handles admin catalog requests and the public product
// detail endpoint.

type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// List godoc
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/admin/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(products))
}

// Create godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Success 201 {object} response.Envelope
// @Router /api/admin/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.OK(created))
}

// Update godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} response.Envelope
// @Router /api/admin/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(updated))
}

// Delete godoc
// @Summary Delete a product
// @Tags products
// @Param id path string true "product id"
// @Success 200 {object} response.Envelope
// @Router /api/admin/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(gin.H{"deleted": true}))
}

// Detail godoc
// @Summary Public product detail with related products
// @Tags products
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} response.Envelope
// @Router /api/products/{id} [get]
func (h *ProductHandler) Detail(c *gin.Context) {
	product, related, err := h.usecase.Related(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(gin.H{
		"product":         product,
		"relatedProducts": related,
	}))
}

func mapProductError(err error) *pkg.AppError {
	if appErr := asValidationError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
