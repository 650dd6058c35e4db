package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/apperr"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/logging"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/media"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/metrics"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/ports"
)

const (
	DefaultTravelBandThumbnail = "https://timedotcom.files.wordpress.com/2018/12/how-to-travel-for-free.jpg?quality=50"
	DefaultFolderThumbnail     = "https://activeforlife.com/content/uploads/2015/06/boy-girl-beach-ball.jpg"
)

var (
	ErrThumbnailStorageDisabled = apperr.BadRequest("thumbnail uploads are not enabled")
	ErrInvalidThumbnail         = apperr.BadRequest("thumbnail must be a jpeg, png, gif or webp image within the size limits")
)

type TravelBandServiceConfig struct {
	DefaultThumbnailURL       string
	DefaultFolderThumbnailURL string
	ThumbnailBucket           string
	ThumbnailMaxDimension     int
}

type TravelBandService struct {
	travelBands ports.TravelBandRepository
	spotters    ports.SpotterRepository
	shared      ports.SharedActivityRepository
	bookings    ports.BookingRepository
	storage     ports.ObjectStorage
	images      media.Processor
	validator   *inputValidator
	cfg         TravelBandServiceConfig
	newID       func() uuid.UUID
	now         func() time.Time
}

// NewTravelBandService builds the service. storage and images may be nil, in
// which case thumbnail uploads are rejected.
func NewTravelBandService(store ports.Datastore, storage ports.ObjectStorage, images media.Processor, cfg TravelBandServiceConfig) *TravelBandService {
	if strings.TrimSpace(cfg.DefaultThumbnailURL) == "" {
		cfg.DefaultThumbnailURL = DefaultTravelBandThumbnail
	}
	if strings.TrimSpace(cfg.DefaultFolderThumbnailURL) == "" {
		cfg.DefaultFolderThumbnailURL = DefaultFolderThumbnail
	}
	return &TravelBandService{
		travelBands: store.TravelBands(),
		spotters:    store.Spotters(),
		shared:      store.SharedActivities(),
		bookings:    store.Bookings(),
		storage:     storage,
		images:      images,
		validator:   newInputValidator(),
		cfg:         cfg,
		newID:       uuid.New,
		now:         time.Now,
	}
}

// CreateTravelBand creates a band owned by the caller, with one default
// folder, and records it in the caller's band list in the same transaction.
func (s *TravelBandService) CreateTravelBand(ctx context.Context, callerID *uuid.UUID, input domain.TravelBandInput) (*domain.TravelBand, error) {
	if err := s.validator.Check("travel band is invalid", input); err != nil {
		return nil, err
	}
	if callerID == nil {
		return nil, ErrMissingIdentity
	}

	spotter, err := s.spotters.Get(ctx, *callerID)
	if err != nil {
		return nil, err
	}

	band := &domain.TravelBand{
		ID:           s.newID(),
		Name:         input.Name,
		Description:  input.Description,
		ThumbnailURL: s.cfg.DefaultThumbnailURL,
		Spotters:     domain.SpotterRefs{spotter.Ref()},
		Folders: domain.Folders{{
			ID:           s.newID(),
			Name:         domain.DefaultFolderName,
			Description:  "Activities shared without a folder",
			ThumbnailURL: s.cfg.DefaultFolderThumbnailURL,
			IsDefault:    true,
		}},
		Bookings:      domain.Bookings{},
		ActivityCount: 0,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.travelBands.CreateWithSpotter(ctx, band, spotter.ID); err != nil {
		return nil, err
	}
	metrics.TravelBandsCreated.Inc()
	return band, nil
}

func (s *TravelBandService) GetTravelBand(ctx context.Context, id uuid.UUID) (*domain.TravelBand, error) {
	return s.travelBands.Get(ctx, id)
}

func (s *TravelBandService) ListTravelBands(ctx context.Context) ([]domain.TravelBand, error) {
	return s.travelBands.ListAll(ctx)
}

func (s *TravelBandService) ListTravelBandsForSpotter(ctx context.Context, spotterID uuid.UUID) ([]domain.TravelBand, error) {
	return s.travelBands.ListForSpotter(ctx, spotterID)
}

func (s *TravelBandService) ListActivities(ctx context.Context, travelBandID uuid.UUID) ([]domain.SharedActivity, error) {
	if _, err := s.travelBands.Get(ctx, travelBandID); err != nil {
		return nil, err
	}
	return s.shared.ListByTravelBand(ctx, travelBandID)
}

func (s *TravelBandService) ListSpotters(ctx context.Context, travelBandID uuid.UUID) ([]domain.SpotterRef, error) {
	return s.spotters.ListForTravelBand(ctx, travelBandID)
}

func (s *TravelBandService) ListBookings(ctx context.Context, travelBandID uuid.UUID) ([]domain.Booking, error) {
	if _, err := s.travelBands.Get(ctx, travelBandID); err != nil {
		return nil, err
	}
	return s.bookings.ListForTravelBand(ctx, travelBandID)
}

// UploadThumbnail stores a new band picture and points the band at it. The
// uploaded object is removed again when the band update fails.
func (s *TravelBandService) UploadThumbnail(ctx context.Context, travelBandID uuid.UUID, upload media.Upload) (*domain.TravelBand, error) {
	if s.storage == nil || s.images == nil || s.cfg.ThumbnailBucket == "" {
		return nil, ErrThumbnailStorageDisabled
	}
	band, err := s.travelBands.Get(ctx, travelBandID)
	if err != nil {
		return nil, err
	}

	image, err := s.images.Process(ctx, upload, s.cfg.ThumbnailMaxDimension)
	if err != nil {
		return nil, ErrInvalidThumbnail
	}

	objectName := fmt.Sprintf("travel-bands/%s/%s%s", band.ID, s.newID(), image.Extension)
	url, err := s.storage.Upload(ctx, s.cfg.ThumbnailBucket, objectName, image.ContentType, bytes.NewReader(image.Bytes), int64(len(image.Bytes)))
	if err != nil {
		return nil, fmt.Errorf("upload thumbnail: %w", err)
	}

	if err := s.travelBands.UpdateThumbnail(ctx, band.ID, url); err != nil {
		if rmErr := s.storage.Remove(ctx, s.cfg.ThumbnailBucket, objectName); rmErr != nil {
			log := logging.WithComponent("travel_band_service")
			log.Warn().Err(rmErr).Str("object", objectName).Msg("remove orphaned thumbnail")
		}
		return nil, err
	}
	band.ThumbnailURL = url
	return band, nil
}
