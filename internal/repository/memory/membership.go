package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
)

type folderRepo struct{ d *Datastore }

func (r folderRepo) ListForTravelBand(ctx context.Context, travelBandID uuid.UUID) (domain.Folders, error) {
	if err := r.d.check(ctx); err != nil {
		return nil, err
	}
	band, ok := r.d.TravelBand(travelBandID)
	if !ok {
		return nil, domain.ErrTravelBandNotFound
	}
	return band.Folders, nil
}

func (r folderRepo) Get(ctx context.Context, travelBandID, folderID uuid.UUID) (*domain.Folder, error) {
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

func (r folderRepo) SaveFolders(ctx context.Context, travelBandID uuid.UUID, folders domain.Folders) error {
	if err := r.d.check(ctx); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	band, ok := r.d.travelBands[travelBandID]
	if !ok {
		return domain.ErrTravelBandNotFound
	}
	band.Folders = cloneFolders(folders)
	r.d.travelBands[travelBandID] = band
	return nil
}

func (r folderRepo) ListActivities(ctx context.Context, travelBandID, folderID uuid.UUID) ([]domain.SharedActivity, error) {
	if err := r.d.check(ctx); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	return r.d.sortedShared(func(s domain.SharedActivity) bool {
		return s.TravelBandID == travelBandID && s.FolderID == folderID
	}), nil
}

func (r folderRepo) CountActivities(ctx context.Context, travelBandID, folderID uuid.UUID) (int, error) {
	items, err := r.ListActivities(ctx, travelBandID, folderID)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

type spotterRepo struct{ d *Datastore }

func (r spotterRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Spotter, error) {
	if err := r.d.check(ctx); err != nil {
		return nil, err
	}
	spotter, ok := r.d.Spotter(id)
	if !ok {
		return nil, domain.ErrSpotterNotFound
	}
	return &spotter, nil
}

func (r spotterRepo) ListForTravelBand(ctx context.Context, travelBandID uuid.UUID) ([]domain.SpotterRef, error) {
	if err := r.d.check(ctx); err != nil {
		return nil, err
	}
	band, ok := r.d.TravelBand(travelBandID)
	if !ok {
		return nil, domain.ErrTravelBandNotFound
	}
	return band.Spotters, nil
}

func (r spotterRepo) TravelBandIDs(ctx context.Context, spotterID uuid.UUID) ([]string, error) {
	spotter, err := r.Get(ctx, spotterID)
	if err != nil {
		return nil, err
	}
	return spotter.TravelBands, nil
}

func (r spotterRepo) Search(ctx context.Context, query string, limit int) ([]domain.Spotter, error) {
	if err := r.d.check(ctx); err != nil {
		return nil, err
	}
	needle := strings.ToLower(query)

	r.d.mu.RLock()
	matches := make([]domain.Spotter, 0)
	for _, spotter := range r.d.spotters {
		if strings.Contains(strings.ToLower(spotter.Username), needle) || strings.Contains(strings.ToLower(spotter.Email), needle) {
			matches = append(matches, cloneSpotter(spotter))
		}
	}
	r.d.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool { return matches[i].Username < matches[j].Username })
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (r spotterRepo) Invite(ctx context.Context, travelBandID uuid.UUID, ref domain.SpotterRef) error {
	if err := r.d.check(ctx); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	spotter, ok := r.d.spotters[ref.SpotterID]
	if !ok {
		return domain.ErrSpotterNotFound
	}
	band, ok := r.d.travelBands[travelBandID]
	if !ok {
		return domain.ErrTravelBandNotFound
	}
	spotter.TravelBands = append(cloneStrings(spotter.TravelBands), travelBandID.String())
	band.Spotters = append(append(domain.SpotterRefs{}, band.Spotters...), ref)
	r.d.spotters[spotter.ID] = spotter
	r.d.travelBands[band.ID] = band
	return nil
}

type bookingRepo struct{ d *Datastore }

func (r bookingRepo) ListForTravelBand(ctx context.Context, travelBandID uuid.UUID) ([]domain.Booking, error) {
	return r.ListForTravelBands(ctx, []uuid.UUID{travelBandID})
}

func (r bookingRepo) ListForTravelBands(ctx context.Context, travelBandIDs []uuid.UUID) ([]domain.Booking, error) {
	if err := r.d.check(ctx); err != nil {
		return nil, err
	}
	wanted := make(map[uuid.UUID]struct{}, len(travelBandIDs))
	for _, id := range travelBandIDs {
		wanted[id] = struct{}{}
	}

	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := make([]domain.Booking, 0)
	for _, booking := range r.d.bookings {
		if _, ok := wanted[booking.TravelBandID]; ok {
			out = append(out, booking)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

type catalogRepo struct{ d *Datastore }

func (r catalogRepo) List(ctx context.Context) ([]domain.Category, error) {
	if err := r.d.check(ctx); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := append([]domain.Category{}, r.d.categories...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r catalogRepo) ListByActivity(ctx context.Context, activityID uuid.UUID) ([]domain.Availability, error) {
	if err := r.d.check(ctx); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := make([]domain.Availability, 0)
	for _, availability := range r.d.availabilities {
		if availability.ActivityID == activityID {
			out = append(out, availability)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}
