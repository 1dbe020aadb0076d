package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "gearguard/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

// sentinelCodes maps domain errors to response codes. Anything not listed
// falls through to 500 with a generic message.
var sentinelCodes = map[error]int{
	apperrors.ErrNotFound:              http.StatusNotFound,
	apperrors.ErrEquipmentScrapped:     http.StatusConflict,
	apperrors.ErrInvalidTransition:     http.StatusConflict,
	apperrors.ErrNoTechnicianAvailable: http.StatusUnprocessableEntity,
	apperrors.ErrServiceUnavailable:    http.StatusServiceUnavailable,
	apperrors.ErrInvalidCredentials:    http.StatusUnauthorized,
	apperrors.ErrEmailTaken:            http.StatusConflict,
	apperrors.ErrInvalidToken:          http.StatusUnauthorized,
	apperrors.ErrTokenExpired:          http.StatusUnauthorized,
	apperrors.ErrEmptyAuthHeader:       http.StatusUnauthorized,
	apperrors.ErrInvalidAuthHeader:     http.StatusUnauthorized,
	apperrors.ErrBadRequest:            http.StatusBadRequest,
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		return c.JSON(httpErr.Code, &HTTPResponse{Status: false, Message: httpErr.Message})
	}

	var invalidInput *apperrors.InvalidInputError
	if errors.As(err, &invalidInput) {
		return c.JSON(http.StatusBadRequest, &HTTPResponse{Status: false, Message: invalidInput.Message})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed validation '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, &HTTPResponse{
			Status:  false,
			Message: "Invalid input: " + strings.Join(msgs, "; "),
		})
	}

	for sentinel, code := range sentinelCodes {
		if errors.Is(err, sentinel) {
			return c.JSON(code, &HTTPResponse{Status: false, Message: sentinel.Error()})
		}
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, &HTTPResponse{
		Status:  false,
		Message: "Internal server error",
	})
}
