package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/service"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/util"
)

type SpotterHandler struct {
	spotters *service.SpotterService
	bands    *service.TravelBandService
	bookings *service.BookingService
}

func RegisterSpotters(api *echo.Group, spotters *service.SpotterService, bands *service.TravelBandService, bookings *service.BookingService) {
	handler := &SpotterHandler{spotters: spotters, bands: bands, bookings: bookings}

	api.GET("/spotters", handler.searchSpotters)
	api.GET("/spotters/me", handler.getMe, RequireSpotter())
	api.GET("/spotters/me/travel-bands", handler.listMyTravelBands, RequireSpotter())
	api.GET("/bookings", handler.listMyBookings, RequireSpotter())
}

func (h *SpotterHandler) searchSpotters(c echo.Context) error {
	spotters, err := h.spotters.SearchSpotters(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("spotters", spotters))
}

func (h *SpotterHandler) getMe(c echo.Context) error {
	spotter, err := h.spotters.GetSpotter(c.Request().Context(), *CurrentSpotter(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("spotter", spotter))
}

func (h *SpotterHandler) listMyTravelBands(c echo.Context) error {
	bands, err := h.bands.ListTravelBandsForSpotter(c.Request().Context(), *CurrentSpotter(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("travelBands", bands))
}

func (h *SpotterHandler) listMyBookings(c echo.Context) error {
	bookings, err := h.bookings.ListAllBookings(c.Request().Context(), *CurrentSpotter(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("bookings", bookings))
}
