package http

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/apperr"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/service"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/util"
)

const contextSpotterKey = "spotter_id"

var errInvalidIdentity = apperr.Unauthorized("caller identity is invalid")

// CallerIdentity resolves the calling spotter from the trusted identity header
// or, when jwt is set, from a bearer token. Requests without an identity pass
// through anonymously; RequireSpotter rejects them where one is needed.
func CallerIdentity(header string, jwt *util.JWTManager) echo.MiddlewareFunc {
	if strings.TrimSpace(header) == "" {
		header = "X-Spotter"
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if raw := strings.TrimSpace(c.Request().Header.Get(header)); raw != "" {
				id, err := uuid.Parse(raw)
				if err != nil {
					return writeError(c, errInvalidIdentity)
				}
				c.Set(contextSpotterKey, id)
				return next(c)
			}

			if jwt == nil {
				return next(c)
			}
			authHeader := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
			if authHeader == "" {
				return next(c)
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return writeError(c, errInvalidIdentity)
			}
			claims, err := jwt.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				return writeError(c, errInvalidIdentity)
			}
			c.Set(contextSpotterKey, claims.SpotterID)
			return next(c)
		}
	}
}

// RequireSpotter rejects requests that carry no caller identity.
func RequireSpotter() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentSpotter(c) == nil {
				return writeError(c, service.ErrMissingIdentity)
			}
			return next(c)
		}
	}
}

// RequireBandMember lets the request through only when the caller belongs to
// the band named by the :travelBandId path parameter.
func RequireBandMember(authz *service.AuthorizationService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			bandID, err := pathUUID(c, "travelBandId")
			if err != nil {
				return writeError(c, err)
			}
			if err := authz.IsAuthorizedFromCaller(c.Request().Context(), CurrentSpotter(c), bandID); err != nil {
				return writeError(c, err)
			}
			return next(c)
		}
	}
}

// CurrentSpotter returns the caller's spotter ID, or nil when anonymous.
func CurrentSpotter(c echo.Context) *uuid.UUID {
	id, ok := c.Get(contextSpotterKey).(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}
