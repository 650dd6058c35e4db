package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
}

type AvailabilityRepository interface {
	ListByActivity(ctx context.Context, activityID uuid.UUID) ([]domain.Availability, error)
}
