package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
)

type SharedActivityRepository interface {
	ListByTravelBand(ctx context.Context, travelBandID uuid.UUID) ([]domain.SharedActivity, error)
	// GetByTravelBand returns the earliest shared record of the activity in the
	// band, or the one in folderID when it is set.
	GetByTravelBand(ctx context.Context, travelBandID, activityID uuid.UUID, folderID *uuid.UUID) (*domain.SharedActivity, error)
	ExistsInFolder(ctx context.Context, travelBandID, folderID, activityID uuid.UUID) (bool, error)
	// Share stores the record and increments the band's activity count atomically.
	Share(ctx context.Context, shared *domain.SharedActivity) error
	Update(ctx context.Context, shared *domain.SharedActivity) error
}
