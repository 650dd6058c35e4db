package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/ports"
)

type BookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepo(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) ListForTravelBand(ctx context.Context, travelBandID uuid.UUID) ([]domain.Booking, error) {
	const query = `
		SELECT id, travel_band_id, activity, start_at, end_at
		FROM booking
		WHERE travel_band_id = $1
		ORDER BY start_at, id
	`
	bookings := make([]domain.Booking, 0)
	if err := r.db.SelectContext(ctx, &bookings, query, travelBandID); err != nil {
		return nil, translate(err, nil)
	}
	return bookings, nil
}

func (r *BookingRepository) ListForTravelBands(ctx context.Context, travelBandIDs []uuid.UUID) ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0)
	if len(travelBandIDs) == 0 {
		return bookings, nil
	}

	ids := make([]string, 0, len(travelBandIDs))
	for _, id := range travelBandIDs {
		ids = append(ids, id.String())
	}

	const query = `
		SELECT id, travel_band_id, activity, start_at, end_at
		FROM booking
		WHERE travel_band_id = ANY($1::uuid[])
		ORDER BY start_at, id
	`
	if err := r.db.SelectContext(ctx, &bookings, query, pq.Array(ids)); err != nil {
		return nil, translate(err, nil)
	}
	return bookings, nil
}

var _ ports.BookingRepository = (*BookingRepository)(nil)
