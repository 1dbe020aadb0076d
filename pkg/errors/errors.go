package errors

import (
	"errors"
	"fmt"
)

// Domain taxonomy. Every operation boundary recovers these into a
// structured response; nothing propagates as an unhandled fault.
var (
	ErrNotFound              = errors.New("record not found")
	ErrEquipmentScrapped     = errors.New("equipment is scrapped and no longer accepts maintenance requests")
	ErrInvalidTransition     = errors.New("status transition is not permitted")
	ErrNoTechnicianAvailable = errors.New("no technician is available for assignment")
	ErrServiceUnavailable    = errors.New("assistant service is currently unavailable")

	// Auth
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token has expired")
	ErrEmptyAuthHeader    = errors.New("authorization header is missing")
	ErrInvalidAuthHeader  = errors.New("authorization header is malformed")

	ErrBadRequest = errors.New("bad request")
)

// InvalidInputError marks input rejected before touching the store.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError carries the status code and user-facing message for the
// response envelope, plus the wrapped cause and log context.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}
