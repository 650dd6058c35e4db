package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/ports"
)

const sharedActivityColumns = `
	travel_band_id,
	folder_id,
	activity_id,
	name,
	pictures,
	price,
	mark,
	nb_votes,
	location,
	reactions,
	shared_at
`

type SharedActivityRepository struct {
	db *sqlx.DB
}

func NewSharedActivityRepo(db *sqlx.DB) *SharedActivityRepository {
	return &SharedActivityRepository{db: db}
}

func (r *SharedActivityRepository) ListByTravelBand(ctx context.Context, travelBandID uuid.UUID) ([]domain.SharedActivity, error) {
	query := `SELECT ` + sharedActivityColumns + `
		FROM shared_activity
		WHERE travel_band_id = $1
		ORDER BY shared_at, activity_id`

	items := make([]domain.SharedActivity, 0)
	if err := r.db.SelectContext(ctx, &items, query, travelBandID); err != nil {
		return nil, translate(err, nil)
	}
	return items, nil
}

func (r *SharedActivityRepository) GetByTravelBand(ctx context.Context, travelBandID, activityID uuid.UUID, folderID *uuid.UUID) (*domain.SharedActivity, error) {
	query := `SELECT ` + sharedActivityColumns + `
		FROM shared_activity
		WHERE travel_band_id = $1
		  AND activity_id = $2
		  AND ($3::uuid IS NULL OR folder_id = $3::uuid)
		ORDER BY shared_at, folder_id
		LIMIT 1`

	var shared domain.SharedActivity
	if err := r.db.GetContext(ctx, &shared, query, travelBandID, activityID, folderID); err != nil {
		return nil, translate(err, domain.ErrSharedActivityNotFound)
	}
	return &shared, nil
}

func (r *SharedActivityRepository) ExistsInFolder(ctx context.Context, travelBandID, folderID, activityID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM shared_activity
			WHERE travel_band_id = $1 AND folder_id = $2 AND activity_id = $3
		)
	`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, travelBandID, folderID, activityID); err != nil {
		return false, translate(err, nil)
	}
	return exists, nil
}

func (r *SharedActivityRepository) Share(ctx context.Context, shared *domain.SharedActivity) error {
	const insert = `
		INSERT INTO shared_activity (
			travel_band_id, folder_id, activity_id, name, pictures, price,
			mark, nb_votes, location, reactions, shared_at
		)
		VALUES (
			:travel_band_id, :folder_id, :activity_id, :name, :pictures, :price,
			:mark, :nb_votes, :location, :reactions, :shared_at
		)
	`
	const increment = `
		UPDATE travel_band
		SET activity_count = activity_count + 1
		WHERE id = $1
	`

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, insert, shared); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrActivityAlreadyShared
			}
			return translate(err, nil)
		}
		result, err := tx.ExecContext(ctx, increment, shared.TravelBandID)
		if err != nil {
			return translate(err, nil)
		}
		return expectAffected(result, domain.ErrTravelBandNotFound)
	})
}

// Update overwrites the mutable part of the record. Concurrent updates to the
// same record are last-writer-wins.
func (r *SharedActivityRepository) Update(ctx context.Context, shared *domain.SharedActivity) error {
	const query = `
		UPDATE shared_activity
		SET name = :name,
			pictures = :pictures,
			price = :price,
			mark = :mark,
			nb_votes = :nb_votes,
			location = :location,
			reactions = :reactions
		WHERE travel_band_id = :travel_band_id
		  AND folder_id = :folder_id
		  AND activity_id = :activity_id
	`
	result, err := r.db.NamedExecContext(ctx, query, shared)
	if err != nil {
		return translate(err, nil)
	}
	return expectAffected(result, domain.ErrSharedActivityNotFound)
}

var _ ports.SharedActivityRepository = (*SharedActivityRepository)(nil)
