package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
)

type FolderRepository interface {
	ListForTravelBand(ctx context.Context, travelBandID uuid.UUID) (domain.Folders, error)
	Get(ctx context.Context, travelBandID, folderID uuid.UUID) (*domain.Folder, error)
	// SaveFolders overwrites the band's whole folder list.
	SaveFolders(ctx context.Context, travelBandID uuid.UUID, folders domain.Folders) error
	ListActivities(ctx context.Context, travelBandID, folderID uuid.UUID) ([]domain.SharedActivity, error)
	CountActivities(ctx context.Context, travelBandID, folderID uuid.UUID) (int, error)
}
