// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/growthtrack/pkg/httpx"
	growthdomain "github.com/ghuser/growthtrack/services/growth/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Validation errors carry their per-field messages under "fields".
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)

	var ve *growthdomain.ValidationError
	if errors.As(err, &ve) {
		httpx.JSON(w, status, map[string]any{
			"error":  "Validation failed",
			"fields": ve.Fields,
		})
		return
	}
	httpx.JSONError(w, status, err.Error())
}

// Status returns the HTTP status for err.
func Status(err error) int {
	return mapErrorToStatus(err)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, growthdomain.ErrRecordNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, growthdomain.ErrInvalidRecord):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, growthdomain.ErrConfirmationRequired):
		return http.StatusPreconditionRequired // 428
	case errors.Is(err, growthdomain.ErrPersistence):
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}
