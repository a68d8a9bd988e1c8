// Package apierr maps domain and validation failures to the JSON
// error body of the API, a single statusMessage field.
package apierr

import (
	"errors"
	"net/http"

	govalidator "github.com/go-playground/validator/v10"

	"github.com/tuanvumaihuynh/commerce-mock/internal/apperr"
	"github.com/tuanvumaihuynh/commerce-mock/pkg/validator"
)

// ErrorResponse is the error body for the API.
type ErrorResponse struct {
	StatusMessage string `json:"statusMessage"`

	// StatusCode is the HTTP status for the response, not part of
	// the body.
	StatusCode int `json:"-"`
}

var InternalServerErr = ErrorResponse{
	StatusMessage: "Internal server error",
	StatusCode:    http.StatusInternalServerError,
}

// New converts any error into the response to serve.
func New(err error) ErrorResponse {
	var appErr apperr.Error
	if errors.As(err, &appErr) {
		return ErrorResponse{
			StatusMessage: appErr.Msg(),
			StatusCode:    statusToHTTPStatus(appErr.Status()),
		}
	}

	var validationErrs govalidator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return ErrorResponse{
			StatusMessage: validator.ValidationErrorMessage(validationErrs[0]),
			StatusCode:    http.StatusBadRequest,
		}
	}

	return InternalServerErr
}

func statusToHTTPStatus(status apperr.Status) int {
	switch status {
	case apperr.StatusNotFound:
		return http.StatusNotFound
	case apperr.StatusBadRequest:
		return http.StatusBadRequest
	case apperr.StatusConflict:
		// Duplicate products answer 400, not 409, for contract
		// parity with the service this one replaces.
		return http.StatusBadRequest
	case apperr.StatusNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
