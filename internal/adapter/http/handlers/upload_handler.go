package handlers

import (
	"io"
	"net/http"
	"strings"

	response "locotraq/internal/adapter/http/dto/response"
	"locotraq/internal/usecase/interfaces"
	"locotraq/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxUploadBytes = 5 * 1024 * 1024

// UploadHandler stores product and blog images in the asset store.

type UploadHandler struct {
	assets interfaces.IAssetStore
	log    *zap.Logger
}

func NewUploadHandler(assets interfaces.IAssetStore, log *zap.Logger) *UploadHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &UploadHandler{assets: assets, log: log}
}

// Upload accepts a multipart form with a single "file" part, capped at 5MB
// and restricted to image content types.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_UPLOAD", "Missing file", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if fileHeader.Size > maxUploadBytes {
		appErr := pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "File exceeds the 5MB limit", http.StatusRequestEntityTooLarge)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		appErr := pkg.NewDomainErrorSimple("UNSUPPORTED_TYPE", "Only image uploads are accepted", http.StatusUnsupportedMediaType)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		appErr := internalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	body, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		appErr := internalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(body) > maxUploadBytes {
		appErr := pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "File exceeds the 5MB limit", http.StatusRequestEntityTooLarge)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	stored, err := h.assets.Put(c.Request.Context(), fileHeader.Filename, contentType, body)
	if err != nil {
		h.log.Error("asset upload failed", zap.Error(err))
		appErr := internalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.OK(response.UploadResponse{
		URL:      stored.URL,
		PublicID: stored.PublicID,
	}))
}

// Remove deletes a stored asset. The operation is idempotent on the store
// side; a missing key is not an error.
func (h *UploadHandler) Remove(c *gin.Context) {
	var payload struct {
		PublicID string `json:"public_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	if err := h.assets.Delete(c.Request.Context(), payload.PublicID); err != nil {
		h.log.Warn("asset delete failed", zap.String("public_id", payload.PublicID), zap.Error(err))
		appErr := internalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(gin.H{"deleted": true}))
}
