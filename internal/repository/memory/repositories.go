package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/apperr"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
)

var errDuplicateKey = errors.New("memory: duplicate key")

func (d *Datastore) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return apperr.Database(err)
	}
	if d.FailWith != nil {
		return apperr.Database(d.FailWith)
	}
	return nil
}

type activityRepo struct{ d *Datastore }

func (r activityRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	if err := r.d.check(ctx); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	activity, ok := r.d.activities[id]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	out := cloneActivity(activity)
	return &out, nil
}

func (r activityRepo) List(ctx context.Context, filter domain.ActivityListFilter) (*domain.ActivityPage, error) {
	if err := r.d.check(ctx); err != nil {
		return nil, err
	}
	limit := filter.ItemsPerPage
	if limit <= 0 {
		limit = domain.DefaultItemsPerPage
	}

	r.d.mu.RLock()
	matches := make([]domain.Activity, 0)
	for _, activity := range r.d.activities {
		if matchesFilter(activity, filter) {
			matches = append(matches, cloneActivity(activity))
		}
	}
	r.d.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		return strings.Compare(matches[i].ID.String(), matches[j].ID.String()) < 0
	})

	page := &domain.ActivityPage{Activities: matches}
	if len(matches) > limit {
		page.Activities = matches[:limit]
		page.LastEvaluatedID = page.Activities[limit-1].ID.String()
	}
	return page, nil
}

func matchesFilter(activity domain.Activity, filter domain.ActivityListFilter) bool {
	if filter.LastEvaluatedID != nil && strings.Compare(activity.ID.String(), filter.LastEvaluatedID.String()) <= 0 {
		return false
	}
	if filter.PriceMin > 0 && !(activity.Price > filter.PriceMin) {
		return false
	}
	if filter.PriceMax > 0 && !(activity.Price < filter.PriceMax) {
		return false
	}
	if filter.Category != "" && (activity.Category == nil || activity.Category.CategoryID.String() != filter.Category) {
		return false
	}
	if filter.Query != "" {
		fields := []string{activity.Name, activity.Description}
		if activity.Location != nil {
			fields = append(fields, activity.Location.City, activity.Location.Street, activity.Location.Country)
		}
		if activity.Office != nil {
			fields = append(fields, activity.Office.Name)
		}
		found := false
		for _, field := range fields {
			if strings.Contains(field, filter.Query) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r activityRepo) ListHighlighted(ctx context.Context, limit int) ([]domain.Activity, error) {
	if err := r.d.check(ctx); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	items := make([]domain.Activity, 0)
	for _, activity := range r.d.activities {
		if activity.Highlighted {
			items = append(items, cloneActivity(activity))
		}
	}
	r.d.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		if items[i].Mark != items[j].Mark {
			return items[i].Mark > items[j].Mark
		}
		return items[i].NbVotes > items[j].NbVotes
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (r activityRepo) Upsert(ctx context.Context, activity *domain.Activity) error {
	if err := r.d.check(ctx); err != nil {
		return err
	}
	r.d.PutActivity(*activity)
	return nil
}

type sharedActivityRepo struct{ d *Datastore }

func (r sharedActivityRepo) ListByTravelBand(ctx context.Context, travelBandID uuid.UUID) ([]domain.SharedActivity, error) {
	if err := r.d.check(ctx); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	return r.d.sortedShared(func(s domain.SharedActivity) bool {
		return s.TravelBandID == travelBandID
	}), nil
}

func (r sharedActivityRepo) GetByTravelBand(ctx context.Context, travelBandID, activityID uuid.UUID, folderID *uuid.UUID) (*domain.SharedActivity, error) {
	if err := r.d.check(ctx); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	items := r.d.sortedShared(func(s domain.SharedActivity) bool {
		return s.TravelBandID == travelBandID && s.ActivityID == activityID &&
			(folderID == nil || s.FolderID == *folderID)
	})
	if len(items) == 0 {
		return nil, domain.ErrSharedActivityNotFound
	}
	return &items[0], nil
}

func (r sharedActivityRepo) ExistsInFolder(ctx context.Context, travelBandID, folderID, activityID uuid.UUID) (bool, error) {
	if err := r.d.check(ctx); err != nil {
		return false, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	_, ok := r.d.shared[sharedKey{travelBandID: travelBandID, folderID: folderID, activityID: activityID}]
	return ok, nil
}

func (r sharedActivityRepo) Share(ctx context.Context, shared *domain.SharedActivity) error {
	if err := r.d.check(ctx); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	key := keyOf(*shared)
	if _, exists := r.d.shared[key]; exists {
		return domain.ErrActivityAlreadyShared
	}
	band, ok := r.d.travelBands[shared.TravelBandID]
	if !ok {
		return domain.ErrTravelBandNotFound
	}
	band.ActivityCount++
	r.d.travelBands[band.ID] = band
	r.d.shared[key] = cloneShared(*shared)
	return nil
}

func (r sharedActivityRepo) Update(ctx context.Context, shared *domain.SharedActivity) error {
	if err := r.d.check(ctx); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	key := keyOf(*shared)
	stored, ok := r.d.shared[key]
	if !ok {
		return domain.ErrSharedActivityNotFound
	}
	updated := cloneShared(*shared)
	updated.SharedAt = stored.SharedAt
	r.d.shared[key] = updated
	return nil
}

type travelBandRepo struct{ d *Datastore }

func (r travelBandRepo) Get(ctx context.Context, id uuid.UUID) (*domain.TravelBand, error) {
	if err := r.d.check(ctx); err != nil {
		return nil, err
	}
	band, ok := r.d.TravelBand(id)
	if !ok {
		return nil, domain.ErrTravelBandNotFound
	}
	return &band, nil
}

func (r travelBandRepo) list(match func(domain.TravelBand) bool) []domain.TravelBand {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	bands := make([]domain.TravelBand, 0)
	for _, band := range r.d.travelBands {
		if match(band) {
			bands = append(bands, cloneTravelBand(band))
		}
	}
	sort.Slice(bands, func(i, j int) bool {
		if !bands[i].CreatedAt.Equal(bands[j].CreatedAt) {
			return bands[i].CreatedAt.Before(bands[j].CreatedAt)
		}
		return strings.Compare(bands[i].ID.String(), bands[j].ID.String()) < 0
	})
	return bands
}

func (r travelBandRepo) ListAll(ctx context.Context) ([]domain.TravelBand, error) {
	if err := r.d.check(ctx); err != nil {
		return nil, err
	}
	return r.list(func(domain.TravelBand) bool { return true }), nil
}

func (r travelBandRepo) ListForSpotter(ctx context.Context, spotterID uuid.UUID) ([]domain.TravelBand, error) {
	if err := r.d.check(ctx); err != nil {
		return nil, err
	}
	spotter, ok := r.d.Spotter(spotterID)
	if !ok {
		return []domain.TravelBand{}, nil
	}
	return r.list(func(band domain.TravelBand) bool { return spotter.IsMemberOf(band.ID) }), nil
}

func (r travelBandRepo) CreateWithSpotter(ctx context.Context, band *domain.TravelBand, spotterID uuid.UUID) error {
	if err := r.d.check(ctx); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	spotter, ok := r.d.spotters[spotterID]
	if !ok {
		return domain.ErrSpotterNotFound
	}
	if _, exists := r.d.travelBands[band.ID]; exists {
		return apperr.Database(errDuplicateKey)
	}
	spotter.TravelBands = append(cloneStrings(spotter.TravelBands), band.ID.String())
	r.d.spotters[spotterID] = spotter
	r.d.travelBands[band.ID] = cloneTravelBand(*band)
	return nil
}

func (r travelBandRepo) UpdateThumbnail(ctx context.Context, id uuid.UUID, thumbnailURL string) error {
	if err := r.d.check(ctx); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	band, ok := r.d.travelBands[id]
	if !ok {
		return domain.ErrTravelBandNotFound
	}
	band.ThumbnailURL = thumbnailURL
	r.d.travelBands[id] = band
	return nil
}
