package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/metrics"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/util"
)

type RouterConfig struct {
	AllowOrigins  []string
	SpotterHeader string
	// JWT enables bearer-token identity next to the trusted header. Optional.
	JWT *util.JWTManager
}

// NewRouter builds the echo instance with the shared middleware stack and
// the operational endpoints. Resource routes hang off the returned group.
func NewRouter(cfg RouterConfig) (*echo.Echo, *echo.Group) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	allowCredentials := true
	for _, origin := range cfg.AllowOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	spotterHeader := cfg.SpotterHeader
	if spotterHeader == "" {
		spotterHeader = "X-Spotter"
	}

	registerLogging(e)

	e.Use(middleware.Recover())
	e.Use(recordMetrics())
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderAuthorization,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderOrigin,
			echo.HeaderXRequestedWith,
			spotterHeader,
		},
		AllowCredentials: allowCredentials,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"ok": true})
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := e.Group("/api/v1", CallerIdentity(spotterHeader, cfg.JWT))
	return e, api
}
