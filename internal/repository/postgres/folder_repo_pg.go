package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/ports"
)

// FolderRepository reads and writes the folder list embedded in travel_band.
type FolderRepository struct {
	db *sqlx.DB
}

func NewFolderRepo(db *sqlx.DB) *FolderRepository {
	return &FolderRepository{db: db}
}

func (r *FolderRepository) ListForTravelBand(ctx context.Context, travelBandID uuid.UUID) (domain.Folders, error) {
	const query = `SELECT COALESCE(folders, '[]'::jsonb) FROM travel_band WHERE id = $1`

	var folders domain.Folders
	if err := r.db.GetContext(ctx, &folders, query, travelBandID); err != nil {
		return nil, translate(err, domain.ErrTravelBandNotFound)
	}
	return folders, nil
}

func (r *FolderRepository) Get(ctx context.Context, travelBandID, folderID uuid.UUID) (*domain.Folder, error) {
	folders, err := r.ListForTravelBand(ctx, travelBandID)
	if err != nil {
		return nil, err
	}
	folder, ok := folders.ByID(folderID)
	if !ok {
		return nil, domain.ErrFolderNotFound
	}
	return &folder, nil
}

func (r *FolderRepository) SaveFolders(ctx context.Context, travelBandID uuid.UUID, folders domain.Folders) error {
	const query = `UPDATE travel_band SET folders = $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, travelBandID, folders)
	if err != nil {
		return translate(err, nil)
	}
	return expectAffected(result, domain.ErrTravelBandNotFound)
}

func (r *FolderRepository) ListActivities(ctx context.Context, travelBandID, folderID uuid.UUID) ([]domain.SharedActivity, error) {
	query := `SELECT ` + sharedActivityColumns + `
		FROM shared_activity
		WHERE travel_band_id = $1 AND folder_id = $2
		ORDER BY shared_at, activity_id`

	items := make([]domain.SharedActivity, 0)
	if err := r.db.SelectContext(ctx, &items, query, travelBandID, folderID); err != nil {
		return nil, translate(err, nil)
	}
	return items, nil
}

func (r *FolderRepository) CountActivities(ctx context.Context, travelBandID, folderID uuid.UUID) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM shared_activity
		WHERE travel_band_id = $1 AND folder_id = $2
	`
	var count int
	if err := r.db.GetContext(ctx, &count, query, travelBandID, folderID); err != nil {
		return 0, translate(err, nil)
	}
	return count, nil
}

var _ ports.FolderRepository = (*FolderRepository)(nil)
