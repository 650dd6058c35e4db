package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/apperr"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/metrics"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/ports"
)

var ErrNoDefaultFolder = apperr.Internal("travel band has no default folder")

type ShareService struct {
	activities  ports.ActivityRepository
	shared      ports.SharedActivityRepository
	travelBands ports.TravelBandRepository
	now         func() time.Time
}

func NewShareService(store ports.Datastore) *ShareService {
	return &ShareService{
		activities:  store.Activities(),
		shared:      store.SharedActivities(),
		travelBands: store.TravelBands(),
		now:         time.Now,
	}
}

// ShareActivity places a snapshot of the activity in a folder of the band and
// increments the band's activity count. Without folderID the band's default
// folder is used.
func (s *ShareService) ShareActivity(ctx context.Context, activityID, travelBandID uuid.UUID, folderID *uuid.UUID) (*domain.SharedActivity, error) {
	band, err := s.travelBands.Get(ctx, travelBandID)
	if err != nil {
		return nil, err
	}

	var folder domain.Folder
	if folderID == nil {
		defaultFolder, ok := band.Folders.Default()
		if !ok {
			return nil, ErrNoDefaultFolder
		}
		folder = defaultFolder
	} else {
		found, ok := band.Folders.ByID(*folderID)
		if !ok {
			return nil, domain.ErrFolderNotFound
		}
		folder = found
	}

	exists, err := s.shared.ExistsInFolder(ctx, band.ID, folder.ID, activityID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrActivityAlreadyShared
	}

	activity, err := s.activities.Get(ctx, activityID)
	if err != nil {
		return nil, err
	}

	shared := domain.NewSharedActivity(*activity, band.ID, folder.ID, s.now().UTC())
	if err := s.shared.Share(ctx, &shared); err != nil {
		return nil, err
	}
	metrics.ActivitiesShared.Inc()
	return &shared, nil
}
