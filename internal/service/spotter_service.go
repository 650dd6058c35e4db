package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/apperr"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/metrics"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/ports"
)

const spotterSearchLimit = 20

var ErrEmptySearch = apperr.BadRequest("search query is required")

type SpotterService struct {
	spotters ports.SpotterRepository
}

func NewSpotterService(store ports.Datastore) *SpotterService {
	return &SpotterService{spotters: store.Spotters()}
}

func (s *SpotterService) GetSpotter(ctx context.Context, id uuid.UUID) (*domain.Spotter, error) {
	return s.spotters.Get(ctx, id)
}

// InviteSpotter adds the spotter to the band. The caller's own membership is
// checked beforehand by the authorization service. The returned spotter has
// the band appended locally; it is not re-read.
func (s *SpotterService) InviteSpotter(ctx context.Context, spotterID, travelBandID uuid.UUID) (*domain.Spotter, error) {
	spotter, err := s.spotters.Get(ctx, spotterID)
	if err != nil {
		return nil, err
	}
	if spotter.IsMemberOf(travelBandID) {
		return nil, domain.ErrAlreadyMember
	}
	if err := s.spotters.Invite(ctx, travelBandID, spotter.Ref()); err != nil {
		return nil, err
	}
	metrics.SpottersInvited.Inc()

	spotter.TravelBands = append(spotter.TravelBands, travelBandID.String())
	return spotter, nil
}

// SearchSpotters matches username or email. Results are public profiles only;
// band membership is not exposed.
func (s *SpotterService) SearchSpotters(ctx context.Context, query string) ([]domain.SpotterRef, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptySearch
	}
	found, err := s.spotters.Search(ctx, query, spotterSearchLimit)
	if err != nil {
		return nil, err
	}
	refs := make([]domain.SpotterRef, 0, len(found))
	for _, spotter := range found {
		refs = append(refs, spotter.Ref())
	}
	return refs, nil
}
