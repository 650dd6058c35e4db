package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
)

type ActivityRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	List(ctx context.Context, filter domain.ActivityListFilter) (*domain.ActivityPage, error)
	ListHighlighted(ctx context.Context, limit int) ([]domain.Activity, error)
	Upsert(ctx context.Context, activity *domain.Activity) error
}
