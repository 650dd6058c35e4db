package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/metrics"
)

// recordMetrics labels requests by route template, never by raw path.
func recordMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			status := c.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}
			method := c.Request().Method
			metrics.APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			metrics.APIRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
