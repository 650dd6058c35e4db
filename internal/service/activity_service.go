package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/apperr"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/logging"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/ports"
)

const highlightedActivitiesLimit = 10

var ErrAvailabilityRequestFailed = apperr.Internal("unable to send the availability request")

// AvailabilityMailer delivers availability requests to an activity's office.
type AvailabilityMailer interface {
	SendAvailabilityRequest(ctx context.Context, to string, request domain.AvailabilityRequest) error
}

type ActivityService struct {
	activities     ports.ActivityRepository
	availabilities ports.AvailabilityRepository
	categories     ports.CategoryRepository
	spotters       ports.SpotterRepository
	mailer         AvailabilityMailer
}

// NewActivityService builds the catalog service. mailer may be nil, in which
// case availability requests are accepted without being forwarded.
func NewActivityService(store ports.Datastore, mailer AvailabilityMailer) *ActivityService {
	return &ActivityService{
		activities:     store.Activities(),
		availabilities: store.Availabilities(),
		categories:     store.Categories(),
		spotters:       store.Spotters(),
		mailer:         mailer,
	}
}

func (s *ActivityService) ListActivities(ctx context.Context, filter domain.ActivityListFilter) (*domain.ActivityPage, error) {
	filter.ItemsPerPage = normalizeItemsPerPage(filter.ItemsPerPage)
	page, err := s.activities.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if page.Activities == nil {
		page.Activities = []domain.Activity{}
	}
	return page, nil
}

func normalizeItemsPerPage(n int) int {
	if n <= 0 {
		return domain.DefaultItemsPerPage
	}
	if n > domain.MaxItemsPerPage {
		return domain.MaxItemsPerPage
	}
	return n
}

// ViewActivity returns the activity with its availabilities attached.
func (s *ActivityService) ViewActivity(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	activity, err := s.activities.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	availabilities, err := s.availabilities.ListByActivity(ctx, id)
	if err != nil {
		return nil, err
	}
	activity.Availabilities = availabilities
	return activity, nil
}

func (s *ActivityService) ListHighlightedActivities(ctx context.Context) ([]domain.Activity, error) {
	return s.activities.ListHighlighted(ctx, highlightedActivitiesLimit)
}

func (s *ActivityService) ListAvailabilities(ctx context.Context, activityID uuid.UUID) ([]domain.Availability, error) {
	return s.availabilities.ListByActivity(ctx, activityID)
}

func (s *ActivityService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// RequestAvailability asks the activity's office whether the activity can be
// booked on date.
func (s *ActivityService) RequestAvailability(ctx context.Context, spotterID, activityID uuid.UUID, date time.Time) (*domain.Activity, error) {
	spotter, err := s.spotters.Get(ctx, spotterID)
	if err != nil {
		return nil, err
	}
	activity, err := s.activities.Get(ctx, activityID)
	if err != nil {
		return nil, err
	}

	log := logging.WithComponent("activity_service")
	if s.mailer == nil || activity.Office == nil || activity.Office.Email == "" {
		log.Info().Str("activity_id", activity.ID.String()).Msg("availability request not forwarded: no office mailbox")
		return activity, nil
	}

	request := domain.AvailabilityRequest{Activity: *activity, Spotter: *spotter, Date: date}
	if err := s.mailer.SendAvailabilityRequest(ctx, activity.Office.Email, request); err != nil {
		log.Error().Err(err).Str("activity_id", activity.ID.String()).Msg("send availability request")
		return nil, ErrAvailabilityRequestFailed
	}
	return activity, nil
}
