package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/ports"
)

type CategoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepo(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	const query = `
		SELECT id, name, description, thumbnail_url, icon
		FROM category
		ORDER BY name
	`
	categories := make([]domain.Category, 0)
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, translate(err, nil)
	}
	return categories, nil
}

type AvailabilityRepository struct {
	db *sqlx.DB
}

func NewAvailabilityRepo(db *sqlx.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) ListByActivity(ctx context.Context, activityID uuid.UUID) ([]domain.Availability, error) {
	const query = `
		SELECT id, activity_id, start_at, end_at, capacity
		FROM availability
		WHERE activity_id = $1
		ORDER BY start_at
	`
	availabilities := make([]domain.Availability, 0)
	if err := r.db.SelectContext(ctx, &availabilities, query, activityID); err != nil {
		return nil, translate(err, nil)
	}
	return availabilities, nil
}

var (
	_ ports.CategoryRepository     = (*CategoryRepository)(nil)
	_ ports.AvailabilityRepository = (*AvailabilityRepository)(nil)
)
