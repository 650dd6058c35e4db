package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/apperr"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/service"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/util"
)

type ActivityHandler struct {
	activities *service.ActivityService
	share      *service.ShareService
}

func RegisterActivities(api *echo.Group, activities *service.ActivityService, share *service.ShareService) {
	handler := &ActivityHandler{activities: activities, share: share}

	api.GET("/activities", handler.listActivities)
	api.GET("/activities/highlights", handler.listHighlights)
	api.GET("/activities/:activityId", handler.getActivity)
	api.GET("/activities/:activityId/availabilities", handler.listAvailabilities)
	api.POST("/activities/:activityId/share", handler.shareActivity)
	api.POST("/activities/:activityId/availability-requests", handler.requestAvailability, RequireSpotter())
	api.GET("/categories", handler.listCategories)
}

func (h *ActivityHandler) listActivities(c echo.Context) error {
	filter, err := parseActivityListFilter(c)
	if err != nil {
		return writeError(c, err)
	}
	page, err := h.activities.ListActivities(c.Request().Context(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"activities":      page.Activities,
		"lastEvaluatedId": page.LastEvaluatedID,
	})
}

func parseActivityListFilter(c echo.Context) (domain.ActivityListFilter, error) {
	var filter domain.ActivityListFilter

	cursor, err := optionalUUID(c.QueryParam("lastEvaluatedId"), "lastEvaluatedId")
	if err != nil {
		return filter, err
	}
	filter.LastEvaluatedID = cursor

	if raw := strings.TrimSpace(c.QueryParam("itemsPerPage")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return filter, apperr.BadRequest("itemsPerPage must be a positive integer")
		}
		filter.ItemsPerPage = n
	}

	parsePrice := func(key string, dst *float64) error {
		raw := strings.TrimSpace(c.QueryParam(key))
		if raw == "" {
			return nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return apperr.BadRequest(key + " must be a non-negative number")
		}
		*dst = v
		return nil
	}
	if err := parsePrice("priceMin", &filter.PriceMin); err != nil {
		return filter, err
	}
	if err := parsePrice("priceMax", &filter.PriceMax); err != nil {
		return filter, err
	}

	filter.Category = strings.TrimSpace(c.QueryParam("category"))
	filter.Query = c.QueryParam("q")
	return filter, nil
}

func (h *ActivityHandler) listHighlights(c echo.Context) error {
	activities, err := h.activities.ListHighlightedActivities(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("activities", activities))
}

func (h *ActivityHandler) getActivity(c echo.Context) error {
	id, err := pathUUID(c, "activityId")
	if err != nil {
		return writeError(c, err)
	}
	activity, err := h.activities.ViewActivity(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("activity", activity))
}

func (h *ActivityHandler) listAvailabilities(c echo.Context) error {
	id, err := pathUUID(c, "activityId")
	if err != nil {
		return writeError(c, err)
	}
	availabilities, err := h.activities.ListAvailabilities(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("availabilities", availabilities))
}

func (h *ActivityHandler) shareActivity(c echo.Context) error {
	activityID, err := pathUUID(c, "activityId")
	if err != nil {
		return writeError(c, err)
	}

	var req struct {
		TravelBandID string `json:"travelBandId"`
		FolderID     string `json:"folderId"`
	}
	if err := bindBody(c, &req); err != nil {
		return writeError(c, err)
	}
	if strings.TrimSpace(req.TravelBandID) == "" {
		return badRequest(c, "travelBandId is required")
	}
	bandID, err := optionalUUID(req.TravelBandID, "travelBandId")
	if err != nil {
		return writeError(c, err)
	}
	folderID, err := optionalUUID(req.FolderID, "folderId")
	if err != nil {
		return writeError(c, err)
	}

	shared, err := h.share.ShareActivity(c.Request().Context(), activityID, *bandID, folderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{"activity": shared, "shared": true})
}

func (h *ActivityHandler) requestAvailability(c echo.Context) error {
	activityID, err := pathUUID(c, "activityId")
	if err != nil {
		return writeError(c, err)
	}

	var req struct {
		Date string `json:"date"`
	}
	if err := bindBody(c, &req); err != nil {
		return writeError(c, err)
	}
	date, err := parseRequestDate(req.Date)
	if err != nil {
		return writeError(c, err)
	}

	activity, err := h.activities.RequestAvailability(c.Request().Context(), *CurrentSpotter(c), activityID, date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{"activity": activity, "date": date.Format("2006-01-02")})
}

// parseRequestDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
func parseRequestDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, apperr.BadRequest("date is required")
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, apperr.BadRequest("date must be YYYY-MM-DD or RFC 3339")
}

func (h *ActivityHandler) listCategories(c echo.Context) error {
	categories, err := h.activities.ListCategories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{"categories": categories, "count": len(categories)})
}
