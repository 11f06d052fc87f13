package handlers

import (
	"errors"
	"net/http"

	"locotraq/internal/domain/entities"
	"locotraq/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)

// asValidationError converts a domain validation failure into a 400 with the
// field-specific message, or returns nil for other errors.
func asValidationError(err error) *pkg.AppError {
	var ve *entities.ValidationError
	if errors.As(err, &ve) {
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", ve.Error(), http.StatusBadRequest)
	}
	return nil
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
