package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/apperr"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
)

func newTestShareService(f *fixture, now time.Time) *ShareService {
	svc := NewShareService(f.store)
	svc.now = func() time.Time { return now }
	return svc
}

func TestShareActivityIntoDefaultFolder(t *testing.T) {
	f := newFixture()
	now := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	svc := newTestShareService(f, now)

	shared, err := svc.ShareActivity(context.Background(), f.activity.ID, f.band.ID, nil)
	if err != nil {
		t.Fatalf("ShareActivity returned error: %v", err)
	}
	if shared.FolderID != f.defaultFolder.ID {
		t.Fatalf("expected default folder %s, got %s", f.defaultFolder.ID, shared.FolderID)
	}
	if shared.Name != f.activity.Name || shared.Price != f.activity.Price {
		t.Fatalf("expected snapshot of catalog fields, got %+v", shared)
	}
	if len(shared.Reactions) != 0 {
		t.Fatalf("expected no reactions, got %v", shared.Reactions)
	}
	if !shared.SharedAt.Equal(now) {
		t.Fatalf("expected sharedAt %v, got %v", now, shared.SharedAt)
	}

	band, _ := f.store.TravelBand(f.band.ID)
	if band.ActivityCount != 1 {
		t.Fatalf("expected activity count 1, got %d", band.ActivityCount)
	}
	if f.store.SharedCount() != 1 {
		t.Fatalf("expected one stored shared activity, got %d", f.store.SharedCount())
	}
}

func TestShareActivityTwiceInSameFolder(t *testing.T) {
	f := newFixture()
	svc := newTestShareService(f, time.Now())
	ctx := context.Background()

	if _, err := svc.ShareActivity(ctx, f.activity.ID, f.band.ID, nil); err != nil {
		t.Fatalf("first share failed: %v", err)
	}
	_, err := svc.ShareActivity(ctx, f.activity.ID, f.band.ID, &f.defaultFolder.ID)
	if !errors.Is(err, domain.ErrActivityAlreadyShared) {
		t.Fatalf("expected ErrActivityAlreadyShared, got %v", err)
	}
	if apperr.StatusOf(err) != 400 {
		t.Fatalf("expected 400, got %d", apperr.StatusOf(err))
	}

	band, _ := f.store.TravelBand(f.band.ID)
	if band.ActivityCount != 1 {
		t.Fatalf("expected activity count to stay at 1, got %d", band.ActivityCount)
	}
}

func TestShareActivityInTwoFolders(t *testing.T) {
	f := newFixture()
	other := f.addFolder("Food")
	svc := newTestShareService(f, time.Now())
	ctx := context.Background()

	if _, err := svc.ShareActivity(ctx, f.activity.ID, f.band.ID, nil); err != nil {
		t.Fatalf("share into default folder failed: %v", err)
	}
	if _, err := svc.ShareActivity(ctx, f.activity.ID, f.band.ID, &other.ID); err != nil {
		t.Fatalf("share into second folder failed: %v", err)
	}

	band, _ := f.store.TravelBand(f.band.ID)
	if band.ActivityCount != 2 {
		t.Fatalf("expected activity count 2, got %d", band.ActivityCount)
	}
}

func TestShareActivityUnknownFolder(t *testing.T) {
	f := newFixture()
	svc := newTestShareService(f, time.Now())
	missing := uuid.New()

	_, err := svc.ShareActivity(context.Background(), f.activity.ID, f.band.ID, &missing)
	if !errors.Is(err, domain.ErrFolderNotFound) {
		t.Fatalf("expected ErrFolderNotFound, got %v", err)
	}
	if f.store.SharedCount() != 0 {
		t.Fatalf("expected nothing stored")
	}
}

func TestShareActivityUnknownBandOrActivity(t *testing.T) {
	f := newFixture()
	svc := newTestShareService(f, time.Now())
	ctx := context.Background()

	if _, err := svc.ShareActivity(ctx, f.activity.ID, uuid.New(), nil); !errors.Is(err, domain.ErrTravelBandNotFound) {
		t.Fatalf("expected ErrTravelBandNotFound, got %v", err)
	}
	if _, err := svc.ShareActivity(ctx, uuid.New(), f.band.ID, nil); !errors.Is(err, domain.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
	band, _ := f.store.TravelBand(f.band.ID)
	if band.ActivityCount != 0 {
		t.Fatalf("expected activity count 0, got %d", band.ActivityCount)
	}
}

func TestShareActivityWithoutDefaultFolder(t *testing.T) {
	f := newFixture()
	band, _ := f.store.TravelBand(f.band.ID)
	band.Folders = domain.Folders{{ID: uuid.New(), Name: "Only"}}
	f.store.PutTravelBand(band)
	svc := newTestShareService(f, time.Now())

	_, err := svc.ShareActivity(context.Background(), f.activity.ID, f.band.ID, nil)
	if !errors.Is(err, ErrNoDefaultFolder) {
		t.Fatalf("expected ErrNoDefaultFolder, got %v", err)
	}
}

func TestShareActivityDatastoreFailure(t *testing.T) {
	f := newFixture()
	f.store.FailWith = errors.New("connection refused")
	svc := newTestShareService(f, time.Now())

	_, err := svc.ShareActivity(context.Background(), f.activity.ID, f.band.ID, nil)
	if !apperr.IsKind(err, apperr.KindDatabase) {
		t.Fatalf("expected database error, got %v", err)
	}
	appErr, _ := apperr.As(err)
	if appErr.Message != apperr.DatabaseMessage {
		t.Fatalf("expected generic message, got %q", appErr.Message)
	}
}
