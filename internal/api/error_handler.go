package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
)

// failedResponse is the canonical error envelope: every non-2xx body carries
// status "Failed" and a message.
type failedResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the consistent envelope: {"status":"Failed","message":"<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, failedResponse{Status: "Failed", Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrNoUsersFound):
		return http.StatusNotFound, "No users found"
	case errors.Is(err, domain.ErrRoleNotFound):
		return http.StatusBadRequest, "Invalid Role ID"
	case errors.Is(err, domain.ErrEmailExists):
		return http.StatusBadRequest, "Email ID already exists"
	case errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound, "Client not found"
	case errors.Is(err, domain.ErrAssociationNotFound):
		return http.StatusNotFound, "Association not found"
	case errors.Is(err, domain.ErrChargerNotFound):
		return http.StatusNotFound, "Charger not found"
	case errors.Is(err, domain.ErrResellerNotFound):
		return http.StatusNotFound, "Reseller not found"
	case errors.Is(err, domain.ErrNothingModified):
		// A matched document with zero modified fields is treated as an
		// internal failure, not a silent no-op success.
		return http.StatusInternalServerError, "Update had no effect"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal Server Error"
}
