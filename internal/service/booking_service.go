package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/ports"
)

type BookingService struct {
	spotters ports.SpotterRepository
	bookings ports.BookingRepository
}

func NewBookingService(store ports.Datastore) *BookingService {
	return &BookingService{
		spotters: store.Spotters(),
		bookings: store.Bookings(),
	}
}

// ListAllBookings gathers the bookings of every band the spotter belongs to.
// Band IDs that do not parse are skipped.
func (s *BookingService) ListAllBookings(ctx context.Context, spotterID uuid.UUID) ([]domain.Booking, error) {
	ids, err := s.spotters.TravelBandIDs(ctx, spotterID)
	if err != nil {
		return nil, err
	}
	bandIDs := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		bandIDs = append(bandIDs, id)
	}
	return s.bookings.ListForTravelBands(ctx, bandIDs)
}
