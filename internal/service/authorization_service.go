package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/apperr"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/ports"
)

var (
	ErrMissingIdentity          = apperr.Unauthorized("caller identity is required")
	ErrUnauthorizedOnTravelBand = apperr.Unauthorized("you are not a member of this travel band")
)

type AuthorizationService struct {
	spotters ports.SpotterRepository
}

func NewAuthorizationService(spotters ports.SpotterRepository) *AuthorizationService {
	return &AuthorizationService{spotters: spotters}
}

// IsAuthorizedOnTravelBand returns nil only when the spotter's band list
// contains travelBandID. Lookup failures of any kind are reported as the same
// Unauthorized error.
func (s *AuthorizationService) IsAuthorizedOnTravelBand(ctx context.Context, spotterID, travelBandID uuid.UUID) error {
	ids, err := s.spotters.TravelBandIDs(ctx, spotterID)
	if err != nil {
		return ErrUnauthorizedOnTravelBand
	}
	want := travelBandID.String()
	for _, id := range ids {
		if id == want {
			return nil
		}
	}
	return ErrUnauthorizedOnTravelBand
}

// IsAuthorizedFromCaller checks an optional caller identity against a band.
func (s *AuthorizationService) IsAuthorizedFromCaller(ctx context.Context, callerID *uuid.UUID, travelBandID uuid.UUID) error {
	if callerID == nil {
		return ErrMissingIdentity
	}
	return s.IsAuthorizedOnTravelBand(ctx, *callerID, travelBandID)
}
