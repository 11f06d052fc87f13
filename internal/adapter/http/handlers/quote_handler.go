package handlers

import (
	"net/http"

	request "locotraq/internal/adapter/http/dto/request"
	response "locotraq/internal/adapter/http/dto/response"
	"locotraq/internal/usecase"
	"locotraq/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles the public quote calculator and form submission, and
// the admin lead listing.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Estimate recomputes the cost from the complete selection on every call.
func (h *QuoteHandler) Estimate(c *gin.Context) {
	var payload request.QuoteEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	cost := h.usecase.Estimate(payload.ToSelection())
	c.JSON(http.StatusOK, response.OK(response.EstimateResponse{EstimatedCost: cost}))
}

func (h *QuoteHandler) Submit(c *gin.Context) {
	var payload request.QuoteSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.OK(response.FromQuote(created)))
}

func (h *QuoteHandler) List(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, response.FromQuote(q))
	}
	c.JSON(http.StatusOK, response.OK(out))
}

func mapQuoteError(err error) *pkg.AppError {
	if appErr := asValidationError(err); appErr != nil {
		return appErr
	}
	return internalError(err)
}
