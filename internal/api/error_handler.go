package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dwirez99/majunkita/internal/api/metrics"
	"github.com/dwirez99/majunkita/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Details
// carries the downstream message when the identity provider rejected the
// request.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the domain error taxonomy to its HTTP status codes.
//   - Forwards identity-provider failures with their message, as 400.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Downstream admin-API failure: status flattened to 400, message forwarded.
	var pe *domain.ProviderError
	if errors.As(err, &pe) {
		metrics.ProviderErrorsTotal.WithLabelValues(c.Path()).Inc()
		log.Error().Int("provider_status", pe.Status).Str("op", pe.Op).Msg("identity provider rejected request")
		return http.StatusBadRequest, errorResponse{
			Error:   fmt.Sprintf("failed to %s", pe.Op),
			Details: pe.Message,
		}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, errorResponse{Error: "unauthorized - invalid token"}
	case errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrRoleNotAllowed):
		return http.StatusForbidden, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrSelfDelete),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
