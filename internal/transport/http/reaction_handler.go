package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/service"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/util"
)

type ReactionHandler struct {
	reactions *service.ReactionService
}

// RegisterReactions mounts the reaction routes. Membership is checked by the
// service against the caller's own band list.
func RegisterReactions(api *echo.Group, reactions *service.ReactionService) {
	handler := &ReactionHandler{reactions: reactions}

	group := api.Group("/travel-bands/:travelBandId/activities/:activityId/reactions", RequireSpotter())
	group.POST("", handler.createReaction)
	group.DELETE("", handler.deleteReaction)
}

func (h *ReactionHandler) target(c echo.Context) (service.ReactionTarget, error) {
	bandID, err := pathUUID(c, "travelBandId")
	if err != nil {
		return service.ReactionTarget{}, err
	}
	activityID, err := pathUUID(c, "activityId")
	if err != nil {
		return service.ReactionTarget{}, err
	}
	folderID, err := optionalUUID(c.QueryParam("folderId"), "folderId")
	if err != nil {
		return service.ReactionTarget{}, err
	}
	return service.ReactionTarget{
		SpotterID:    *CurrentSpotter(c),
		TravelBandID: bandID,
		ActivityID:   activityID,
		FolderID:     folderID,
	}, nil
}

func (h *ReactionHandler) createReaction(c echo.Context) error {
	target, err := h.target(c)
	if err != nil {
		return writeError(c, err)
	}
	var req struct {
		Like *bool `json:"like"`
	}
	if err := bindBody(c, &req); err != nil {
		return writeError(c, err)
	}
	if req.Like == nil {
		return badRequest(c, "like must be a boolean")
	}

	reaction, err := h.reactions.CreateReaction(c.Request().Context(), target, *req.Like)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Data("reaction", reaction))
}

func (h *ReactionHandler) deleteReaction(c echo.Context) error {
	target, err := h.target(c)
	if err != nil {
		return writeError(c, err)
	}
	reaction, err := h.reactions.DeleteReaction(c.Request().Context(), target)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("reaction", reaction))
}
