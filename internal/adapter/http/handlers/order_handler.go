package handlers

import (
	"errors"
	"net/http"

	request "locotraq/internal/adapter/http/dto/request"
	response "locotraq/internal/adapter/http/dto/response"
	"locotraq/internal/domain/entities"
	"locotraq/internal/usecase"
	"locotraq/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles checkout and admin order requests.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(orders))
}

func (h *OrderHandler) Create(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.OK(created))
}

// SetStatus applies a partial status change. The advance flag, or an empty
// status, moves the order one step through the fulfillment cycle.
func (h *OrderHandler) SetStatus(c *gin.Context) {
	var payload request.OrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	var (
		updated entities.Order
		err     error
	)
	if payload.Advance || payload.Status == "" {
		updated, err = h.usecase.AdvanceStatus(c.Request.Context(), c.Param("id"))
	} else {
		updated, err = h.usecase.SetStatus(c.Request.Context(), c.Param("id"), entities.OrderStatus(payload.Status))
	}
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(updated))
}

func (h *OrderHandler) ConfirmPayment(c *gin.Context) {
	var payload request.OrderPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.ConfirmPayment(c.Request.Context(), c.Param("id"), payload.GatewayPayload)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(updated))
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(gin.H{"deleted": true}))
}

func mapOrderError(err error) *pkg.AppError {
	if appErr := asValidationError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderStatus),
		errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Order already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
