package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/apperr"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/metrics"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/ports"
)

var ErrFolderNameTaken = apperr.BadRequest("a folder with this name already exists in the travel band")

type FolderServiceConfig struct {
	// CountConcurrency bounds the parallel count queries of ListFolders.
	CountConcurrency int
}

type FolderService struct {
	travelBands      ports.TravelBandRepository
	folders          ports.FolderRepository
	validator        *inputValidator
	countConcurrency int
	newID            func() uuid.UUID
}

func NewFolderService(store ports.Datastore, cfg FolderServiceConfig) *FolderService {
	concurrency := cfg.CountConcurrency
	if concurrency <= 0 {
		concurrency = 8
	}
	return &FolderService{
		travelBands:      store.TravelBands(),
		folders:          store.Folders(),
		validator:        newInputValidator(),
		countConcurrency: concurrency,
		newID:            uuid.New,
	}
}

// CreateFolder appends a folder to the band. The name check and the write are
// separate calls and the write replaces the whole folder list, so two
// concurrent creations can lose one folder.
func (s *FolderService) CreateFolder(ctx context.Context, travelBandID uuid.UUID, input domain.FolderInput) (*domain.Folder, error) {
	if err := s.validator.Check("folder is invalid", input); err != nil {
		return nil, err
	}

	band, err := s.travelBands.Get(ctx, travelBandID)
	if err != nil {
		return nil, err
	}
	if band.Folders.HasName(input.Name) {
		return nil, ErrFolderNameTaken
	}

	folder := domain.Folder{
		ID:          s.newID(),
		Name:        input.Name,
		Description: input.Description,
	}
	folders := append(append(domain.Folders{}, band.Folders...), folder)
	if err := s.folders.SaveFolders(ctx, band.ID, folders); err != nil {
		return nil, err
	}
	metrics.FoldersCreated.Inc()
	return &folder, nil
}

// ListFolders returns the band's folders with their activity counts. Counts
// are fetched concurrently and matched back by position.
func (s *FolderService) ListFolders(ctx context.Context, travelBandID uuid.UUID) ([]domain.Folder, error) {
	folders, err := s.folders.ListForTravelBand(ctx, travelBandID)
	if err != nil {
		return nil, err
	}

	counts := make([]int, len(folders))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.countConcurrency)
	for i := range folders {
		g.Go(func() error {
			count, err := s.folders.CountActivities(gctx, travelBandID, folders[i].ID)
			if err != nil {
				return err
			}
			counts[i] = count
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]domain.Folder, len(folders))
	for i, folder := range folders {
		count := counts[i]
		folder.NbActivities = &count
		out[i] = folder
	}
	return out, nil
}

func (s *FolderService) GetFolder(ctx context.Context, travelBandID, folderID uuid.UUID) (*domain.Folder, error) {
	return s.folders.Get(ctx, travelBandID, folderID)
}

func (s *FolderService) ListActivitiesInFolder(ctx context.Context, travelBandID, folderID uuid.UUID) ([]domain.SharedActivity, error) {
	if _, err := s.folders.Get(ctx, travelBandID, folderID); err != nil {
		return nil, err
	}
	return s.folders.ListActivities(ctx, travelBandID, folderID)
}
