package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
)

type BookingRepository interface {
	ListForTravelBand(ctx context.Context, travelBandID uuid.UUID) ([]domain.Booking, error)
	ListForTravelBands(ctx context.Context, travelBandIDs []uuid.UUID) ([]domain.Booking, error)
}
