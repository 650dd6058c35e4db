package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/apperr"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/logging"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/metrics"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/util"
)

// writeError renders err as {message, errors?} with the status of its
// category. 5xx causes are logged and never sent to the client.
func writeError(c echo.Context, err error) error {
	appErr, ok := apperr.As(err)
	if !ok {
		appErr = apperr.Internal("internal server error")
	}

	status := apperr.StatusOf(err)
	if status >= http.StatusInternalServerError {
		if appErr.Kind == apperr.KindDatabase {
			metrics.DatastoreErrors.Inc()
		}
		log := logging.WithComponent("http")
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("route", c.Path()).
			Msg("request failed")
	}
	return c.JSON(status, util.Error(appErr.Message, appErr.Errors...))
}

func badRequest(c echo.Context, message string) error {
	return writeError(c, apperr.BadRequest(message))
}

// pathUUID parses a required path parameter. A missing value and a value that
// is not a UUID are both BadRequest.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Param(name))
	if raw == "" {
		return uuid.Nil, apperr.BadRequest(name + " is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.BadRequest(name + " must be a valid UUID")
	}
	return id, nil
}

// optionalUUID parses a query parameter or body field that may be absent.
func optionalUUID(raw, name string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperr.BadRequest(name + " must be a valid UUID")
	}
	return &id, nil
}

var errInvalidBody = apperr.BadRequest("invalid request body")

func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusUnsupportedMediaType {
			return apperr.BadRequest("request body must be JSON")
		}
		return errInvalidBody
	}
	return nil
}
