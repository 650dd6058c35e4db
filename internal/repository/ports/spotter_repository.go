package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
)

type SpotterRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Spotter, error)
	ListForTravelBand(ctx context.Context, travelBandID uuid.UUID) ([]domain.SpotterRef, error)
	TravelBandIDs(ctx context.Context, spotterID uuid.UUID) ([]string, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Spotter, error)
	// Invite appends the band to the spotter and the spotter to the band in one
	// transaction.
	Invite(ctx context.Context, travelBandID uuid.UUID, spotter domain.SpotterRef) error
}
