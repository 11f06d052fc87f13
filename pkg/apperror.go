package pkg

// AppError is the application-level error carried from use cases up to the
// HTTP layer. Handlers map domain sentinel errors into AppError values and
// serialize them with ToHTTPError.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the JSON body written for failed requests.
//
// The `success:false` envelope matches what the admin clients expect: they
// read `error` when present and fall back to a generic message otherwise.
type HTTPError struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Success: false, Code: e.Code, Error: e.Message}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}
