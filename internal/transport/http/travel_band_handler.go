package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/media"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/service"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/util"
)

type TravelBandFeatures struct {
	// Thumbnails registers the upload route; it needs object storage.
	Thumbnails bool
}

type TravelBandHandler struct {
	bands    *service.TravelBandService
	folders  *service.FolderService
	spotters *service.SpotterService
}

func RegisterTravelBands(api *echo.Group, authz *service.AuthorizationService, bands *service.TravelBandService, folders *service.FolderService, spotters *service.SpotterService, features TravelBandFeatures) {
	handler := &TravelBandHandler{bands: bands, folders: folders, spotters: spotters}

	api.GET("/travel-bands", handler.listTravelBands)
	api.POST("/travel-bands", handler.createTravelBand)
	api.POST("/travel-bands/:travelBandId/folders", handler.createFolder)

	member := api.Group("/travel-bands/:travelBandId", RequireBandMember(authz))
	member.GET("", handler.getTravelBand)
	member.GET("/activities", handler.listActivities)
	member.GET("/spotters", handler.listSpotters)
	member.POST("/spotters", handler.inviteSpotter)
	member.GET("/bookings", handler.listBookings)
	member.GET("/folders", handler.listFolders)
	member.GET("/folders/:folderId", handler.getFolder)
	member.GET("/folders/:folderId/activities", handler.listFolderActivities)
	if features.Thumbnails {
		member.POST("/thumbnail", handler.uploadThumbnail)
	}
}

func (h *TravelBandHandler) listTravelBands(c echo.Context) error {
	bands, err := h.bands.ListTravelBands(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("travelBands", bands))
}

func (h *TravelBandHandler) createTravelBand(c echo.Context) error {
	var input domain.TravelBandInput
	if err := bindBody(c, &input); err != nil {
		return writeError(c, err)
	}
	band, err := h.bands.CreateTravelBand(c.Request().Context(), CurrentSpotter(c), input)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Data("travelBand", band))
}

func (h *TravelBandHandler) getTravelBand(c echo.Context) error {
	bandID, err := pathUUID(c, "travelBandId")
	if err != nil {
		return writeError(c, err)
	}
	band, err := h.bands.GetTravelBand(c.Request().Context(), bandID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("travelBand", band))
}

func (h *TravelBandHandler) listActivities(c echo.Context) error {
	bandID, err := pathUUID(c, "travelBandId")
	if err != nil {
		return writeError(c, err)
	}
	activities, err := h.bands.ListActivities(c.Request().Context(), bandID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("activities", activities))
}

func (h *TravelBandHandler) listSpotters(c echo.Context) error {
	bandID, err := pathUUID(c, "travelBandId")
	if err != nil {
		return writeError(c, err)
	}
	spotters, err := h.bands.ListSpotters(c.Request().Context(), bandID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("spotters", spotters))
}

func (h *TravelBandHandler) inviteSpotter(c echo.Context) error {
	bandID, err := pathUUID(c, "travelBandId")
	if err != nil {
		return writeError(c, err)
	}
	var req struct {
		SpotterID string `json:"spotterId"`
	}
	if err := bindBody(c, &req); err != nil {
		return writeError(c, err)
	}
	if strings.TrimSpace(req.SpotterID) == "" {
		return badRequest(c, "spotterId is required")
	}
	spotterID, err := optionalUUID(req.SpotterID, "spotterId")
	if err != nil {
		return writeError(c, err)
	}

	spotter, err := h.spotters.InviteSpotter(c.Request().Context(), *spotterID, bandID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("spotter", spotter))
}

func (h *TravelBandHandler) listBookings(c echo.Context) error {
	bandID, err := pathUUID(c, "travelBandId")
	if err != nil {
		return writeError(c, err)
	}
	bookings, err := h.bands.ListBookings(c.Request().Context(), bandID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("bookings", bookings))
}

func (h *TravelBandHandler) createFolder(c echo.Context) error {
	bandID, err := pathUUID(c, "travelBandId")
	if err != nil {
		return writeError(c, err)
	}
	var input domain.FolderInput
	if err := bindBody(c, &input); err != nil {
		return writeError(c, err)
	}
	folder, err := h.folders.CreateFolder(c.Request().Context(), bandID, input)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Data("folder", folder))
}

func (h *TravelBandHandler) listFolders(c echo.Context) error {
	bandID, err := pathUUID(c, "travelBandId")
	if err != nil {
		return writeError(c, err)
	}
	folders, err := h.folders.ListFolders(c.Request().Context(), bandID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("folders", folders))
}

func (h *TravelBandHandler) getFolder(c echo.Context) error {
	bandID, err := pathUUID(c, "travelBandId")
	if err != nil {
		return writeError(c, err)
	}
	folderID, err := pathUUID(c, "folderId")
	if err != nil {
		return writeError(c, err)
	}
	folder, err := h.folders.GetFolder(c.Request().Context(), bandID, folderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("folder", folder))
}

func (h *TravelBandHandler) listFolderActivities(c echo.Context) error {
	bandID, err := pathUUID(c, "travelBandId")
	if err != nil {
		return writeError(c, err)
	}
	folderID, err := pathUUID(c, "folderId")
	if err != nil {
		return writeError(c, err)
	}
	activities, err := h.folders.ListActivitiesInFolder(c.Request().Context(), bandID, folderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("activities", activities))
}

func (h *TravelBandHandler) uploadThumbnail(c echo.Context) error {
	bandID, err := pathUUID(c, "travelBandId")
	if err != nil {
		return writeError(c, err)
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "unable to read file")
	}
	defer file.Close()

	band, err := h.bands.UploadThumbnail(c.Request().Context(), bandID, media.Upload{
		Reader:      file,
		Size:        fileHeader.Size,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("travelBand", band))
}
