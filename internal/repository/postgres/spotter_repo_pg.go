package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/ports"
)

type spotterRow struct {
	ID           uuid.UUID      `db:"id"`
	Username     string         `db:"username"`
	Email        string         `db:"email"`
	ThumbnailURL string         `db:"thumbnail_url"`
	TravelBands  pq.StringArray `db:"travel_bands"`
}

func (row spotterRow) toDomain() domain.Spotter {
	bands := make([]string, len(row.TravelBands))
	copy(bands, row.TravelBands)
	return domain.Spotter{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		ThumbnailURL: row.ThumbnailURL,
		TravelBands:  bands,
	}
}

type SpotterRepository struct {
	db *sqlx.DB
}

func NewSpotterRepo(db *sqlx.DB) *SpotterRepository {
	return &SpotterRepository{db: db}
}

func (r *SpotterRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Spotter, error) {
	const query = `
		SELECT id, username, email, thumbnail_url, COALESCE(travel_bands, '{}'::text[]) AS travel_bands
		FROM spotter
		WHERE id = $1
	`
	var row spotterRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, translate(err, domain.ErrSpotterNotFound)
	}
	spotter := row.toDomain()
	return &spotter, nil
}

func (r *SpotterRepository) ListForTravelBand(ctx context.Context, travelBandID uuid.UUID) ([]domain.SpotterRef, error) {
	const query = `SELECT COALESCE(spotters, '[]'::jsonb) FROM travel_band WHERE id = $1`

	var refs domain.SpotterRefs
	if err := r.db.GetContext(ctx, &refs, query, travelBandID); err != nil {
		return nil, translate(err, domain.ErrTravelBandNotFound)
	}
	return refs, nil
}

func (r *SpotterRepository) TravelBandIDs(ctx context.Context, spotterID uuid.UUID) ([]string, error) {
	const query = `SELECT COALESCE(travel_bands, '{}'::text[]) FROM spotter WHERE id = $1`

	var ids pq.StringArray
	if err := r.db.GetContext(ctx, &ids, query, spotterID); err != nil {
		return nil, translate(err, domain.ErrSpotterNotFound)
	}
	return []string(ids), nil
}

func (r *SpotterRepository) Search(ctx context.Context, query string, limit int) ([]domain.Spotter, error) {
	const statement = `
		SELECT id, username, email, thumbnail_url, COALESCE(travel_bands, '{}'::text[]) AS travel_bands
		FROM spotter
		WHERE username ILIKE '%' || $1 || '%'
		   OR email ILIKE '%' || $1 || '%'
		ORDER BY username, id
		LIMIT $2
	`
	rows := make([]spotterRow, 0)
	if err := r.db.SelectContext(ctx, &rows, statement, query, limit); err != nil {
		return nil, translate(err, nil)
	}
	spotters := make([]domain.Spotter, 0, len(rows))
	for _, row := range rows {
		spotters = append(spotters, row.toDomain())
	}
	return spotters, nil
}

func (r *SpotterRepository) Invite(ctx context.Context, travelBandID uuid.UUID, spotter domain.SpotterRef) error {
	const appendBand = `
		UPDATE spotter
		SET travel_bands = array_append(COALESCE(travel_bands, '{}'::text[]), $2)
		WHERE id = $1
	`
	const appendSpotter = `
		UPDATE travel_band
		SET spotters = COALESCE(spotters, '[]'::jsonb) || $2::jsonb
		WHERE id = $1
	`

	refs := domain.SpotterRefs{spotter}
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, appendBand, spotter.SpotterID, travelBandID.String())
		if err != nil {
			return translate(err, nil)
		}
		if err := expectAffected(result, domain.ErrSpotterNotFound); err != nil {
			return err
		}
		result, err = tx.ExecContext(ctx, appendSpotter, travelBandID, refs)
		if err != nil {
			return translate(err, nil)
		}
		return expectAffected(result, domain.ErrTravelBandNotFound)
	})
}

var _ ports.SpotterRepository = (*SpotterRepository)(nil)
