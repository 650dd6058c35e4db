package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/ports"
)

const travelBandColumns = `
	id,
	name,
	description,
	thumbnail_url,
	COALESCE(spotters, '[]'::jsonb) AS spotters,
	COALESCE(folders, '[]'::jsonb) AS folders,
	COALESCE(bookings, '[]'::jsonb) AS bookings,
	activity_count,
	created_at
`

type TravelBandRepository struct {
	db *sqlx.DB
}

func NewTravelBandRepo(db *sqlx.DB) *TravelBandRepository {
	return &TravelBandRepository{db: db}
}

func (r *TravelBandRepository) Get(ctx context.Context, id uuid.UUID) (*domain.TravelBand, error) {
	query := `SELECT ` + travelBandColumns + ` FROM travel_band WHERE id = $1`

	var band domain.TravelBand
	if err := r.db.GetContext(ctx, &band, query, id); err != nil {
		return nil, translate(err, domain.ErrTravelBandNotFound)
	}
	return &band, nil
}

func (r *TravelBandRepository) ListAll(ctx context.Context) ([]domain.TravelBand, error) {
	query := `SELECT ` + travelBandColumns + ` FROM travel_band ORDER BY created_at, id`

	bands := make([]domain.TravelBand, 0)
	if err := r.db.SelectContext(ctx, &bands, query); err != nil {
		return nil, translate(err, nil)
	}
	return bands, nil
}

func (r *TravelBandRepository) ListForSpotter(ctx context.Context, spotterID uuid.UUID) ([]domain.TravelBand, error) {
	query := `SELECT ` + travelBandColumns + `
		FROM travel_band
		WHERE id::text = ANY(
			SELECT unnest(COALESCE(travel_bands, '{}'::text[])) FROM spotter WHERE id = $1
		)
		ORDER BY created_at, id`

	bands := make([]domain.TravelBand, 0)
	if err := r.db.SelectContext(ctx, &bands, query, spotterID); err != nil {
		return nil, translate(err, nil)
	}
	return bands, nil
}

func (r *TravelBandRepository) CreateWithSpotter(ctx context.Context, band *domain.TravelBand, spotterID uuid.UUID) error {
	const insert = `
		INSERT INTO travel_band (
			id, name, description, thumbnail_url, spotters, folders, bookings,
			activity_count, created_at
		)
		VALUES (
			:id, :name, :description, :thumbnail_url, :spotters, :folders, :bookings,
			:activity_count, :created_at
		)
	`
	const appendBand = `
		UPDATE spotter
		SET travel_bands = array_append(COALESCE(travel_bands, '{}'::text[]), $2)
		WHERE id = $1
	`

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, insert, band); err != nil {
			return translate(err, nil)
		}
		result, err := tx.ExecContext(ctx, appendBand, spotterID, band.ID.String())
		if err != nil {
			return translate(err, nil)
		}
		return expectAffected(result, domain.ErrSpotterNotFound)
	})
}

func (r *TravelBandRepository) UpdateThumbnail(ctx context.Context, id uuid.UUID, thumbnailURL string) error {
	const query = `UPDATE travel_band SET thumbnail_url = $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, thumbnailURL)
	if err != nil {
		return translate(err, nil)
	}
	return expectAffected(result, domain.ErrTravelBandNotFound)
}

var _ ports.TravelBandRepository = (*TravelBandRepository)(nil)
