package admin

import "fmt"

// Error taxonomy for admin operations. Validation failures reuse
// entities.ValidationError since drafts are checked with the same ordered
// rules the server applies.

// AuthError marks an HTTP 401. The unauthorized hook has already fired by the
// time a caller sees it; no inline message is expected.
type AuthError struct{}

func (AuthError) Error() string { return "unauthorized" }

// FetchFailedError is raised when a list fetch returns a non-2xx status other
// than 401.
type FetchFailedError struct {
	Status int
}

func (e FetchFailedError) Error() string {
	return fmt.Sprintf("fetch failed with status %d", e.Status)
}

// ServerError carries the server-supplied message of a failed mutation, or a
// generic fallback when the body had none. Network failures are wrapped into
// the same type so callers handle one shape.
type ServerError struct {
	Status  int
	Message string
	Err     error
}

func (e ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return genericServerMessage
}

func (e ServerError) Unwrap() error { return e.Err }

const genericServerMessage = "Something went wrong. Please try again."

// UploadError covers both local pre-check rejections (size, type) and a
// server response missing the asset URL.
type UploadError struct {
	Reason string
}

func (e UploadError) Error() string { return e.Reason }

// ConflictError is returned when a mutation is attempted for an identifier
// that already has one in flight.
type ConflictError struct {
	ID string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("operation already in progress for %q", e.ID)
}
