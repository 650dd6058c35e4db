package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
)

type TravelBandRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.TravelBand, error)
	ListAll(ctx context.Context) ([]domain.TravelBand, error)
	ListForSpotter(ctx context.Context, spotterID uuid.UUID) ([]domain.TravelBand, error)
	// CreateWithSpotter inserts the band and appends its ID to the spotter's
	// band list in one transaction.
	CreateWithSpotter(ctx context.Context, band *domain.TravelBand, spotterID uuid.UUID) error
	UpdateThumbnail(ctx context.Context, id uuid.UUID, thumbnailURL string) error
}
