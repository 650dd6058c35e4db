package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/apperr"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
)

func TestShareRejectsDuplicateKey(t *testing.T) {
	store := New()
	band := domain.TravelBand{ID: uuid.New(), Folders: domain.Folders{{ID: uuid.New(), IsDefault: true}}}
	store.PutTravelBand(band)
	shared := domain.SharedActivity{TravelBandID: band.ID, FolderID: band.Folders[0].ID, ActivityID: uuid.New()}
	ctx := context.Background()

	if err := store.SharedActivities().Share(ctx, &shared); err != nil {
		t.Fatalf("Share returned error: %v", err)
	}
	if err := store.SharedActivities().Share(ctx, &shared); !errors.Is(err, domain.ErrActivityAlreadyShared) {
		t.Fatalf("expected ErrActivityAlreadyShared, got %v", err)
	}
	stored, _ := store.TravelBand(band.ID)
	if stored.ActivityCount != 1 {
		t.Fatalf("expected count 1, got %d", stored.ActivityCount)
	}
}

func TestShareUnknownBandLeavesNoRecord(t *testing.T) {
	store := New()
	shared := domain.SharedActivity{TravelBandID: uuid.New(), FolderID: uuid.New(), ActivityID: uuid.New()}

	err := store.SharedActivities().Share(context.Background(), &shared)
	if !errors.Is(err, domain.ErrTravelBandNotFound) {
		t.Fatalf("expected ErrTravelBandNotFound, got %v", err)
	}
	if store.SharedCount() != 0 {
		t.Fatalf("expected no shared record")
	}
}

func TestGetByTravelBandPicksEarliest(t *testing.T) {
	store := New()
	bandID, activityID := uuid.New(), uuid.New()
	first := domain.SharedActivity{TravelBandID: bandID, FolderID: uuid.New(), ActivityID: activityID, SharedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	second := domain.SharedActivity{TravelBandID: bandID, FolderID: uuid.New(), ActivityID: activityID, SharedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)}
	store.PutSharedActivity(second)
	store.PutSharedActivity(first)

	got, err := store.SharedActivities().GetByTravelBand(context.Background(), bandID, activityID, nil)
	if err != nil {
		t.Fatalf("GetByTravelBand returned error: %v", err)
	}
	if got.FolderID != first.FolderID {
		t.Fatalf("expected earliest shared record")
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	store := New()
	spotter := domain.Spotter{ID: uuid.New(), TravelBands: []string{"a"}}
	store.PutSpotter(spotter)

	snapshot, _ := store.Spotter(spotter.ID)
	snapshot.TravelBands[0] = "changed"

	again, _ := store.Spotter(spotter.ID)
	if again.TravelBands[0] != "a" {
		t.Fatalf("expected stored spotter to be isolated from callers")
	}
}

func TestFailWithReturnsDatabaseError(t *testing.T) {
	store := New()
	store.FailWith = errors.New("down")

	_, err := store.TravelBands().ListAll(context.Background())
	if !apperr.IsKind(err, apperr.KindDatabase) {
		t.Fatalf("expected database error, got %v", err)
	}
}

func TestCreateWithSpotterUnknownSpotter(t *testing.T) {
	store := New()
	band := &domain.TravelBand{ID: uuid.New()}

	err := store.TravelBands().CreateWithSpotter(context.Background(), band, uuid.New())
	if !errors.Is(err, domain.ErrSpotterNotFound) {
		t.Fatalf("expected ErrSpotterNotFound, got %v", err)
	}
	if _, ok := store.TravelBand(band.ID); ok {
		t.Fatalf("expected band not to be stored")
	}
}
