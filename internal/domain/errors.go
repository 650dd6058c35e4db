package domain

import "github.com/njprem/TravelBand_APP_BackEnd/internal/apperr"

var (
	ErrActivityNotFound       = apperr.NotFound("activity not found")
	ErrSharedActivityNotFound = apperr.NotFound("activity is not shared with this travel band")
	ErrTravelBandNotFound     = apperr.NotFound("travel band not found")
	ErrFolderNotFound         = apperr.NotFound("folder not found")
	ErrSpotterNotFound        = apperr.NotFound("spotter not found")

	ErrActivityAlreadyShared = apperr.BadRequest("activity already shared to this folder")
	ErrAlreadyMember         = apperr.BadRequest("spotter is already a member of this travel band")
)
