package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestIsAuthorizedOnTravelBand(t *testing.T) {
	f := newFixture()
	svc := NewAuthorizationService(f.store.Spotters())
	ctx := context.Background()

	if err := svc.IsAuthorizedOnTravelBand(ctx, f.member.ID, f.band.ID); err != nil {
		t.Fatalf("expected member to be authorized, got %v", err)
	}
	if err := svc.IsAuthorizedOnTravelBand(ctx, f.outsider.ID, f.band.ID); !errors.Is(err, ErrUnauthorizedOnTravelBand) {
		t.Fatalf("expected outsider to be rejected, got %v", err)
	}
	if err := svc.IsAuthorizedOnTravelBand(ctx, uuid.New(), f.band.ID); !errors.Is(err, ErrUnauthorizedOnTravelBand) {
		t.Fatalf("expected unknown spotter to be rejected, got %v", err)
	}
}

func TestIsAuthorizedHidesDatastoreFailure(t *testing.T) {
	f := newFixture()
	f.store.FailWith = errors.New("timeout")
	svc := NewAuthorizationService(f.store.Spotters())

	err := svc.IsAuthorizedOnTravelBand(context.Background(), f.member.ID, f.band.ID)
	if !errors.Is(err, ErrUnauthorizedOnTravelBand) {
		t.Fatalf("expected ErrUnauthorizedOnTravelBand, got %v", err)
	}
}

func TestIsAuthorizedFromCaller(t *testing.T) {
	f := newFixture()
	svc := NewAuthorizationService(f.store.Spotters())
	ctx := context.Background()

	if err := svc.IsAuthorizedFromCaller(ctx, nil, f.band.ID); !errors.Is(err, ErrMissingIdentity) {
		t.Fatalf("expected ErrMissingIdentity, got %v", err)
	}
	if err := svc.IsAuthorizedFromCaller(ctx, &f.member.ID, f.band.ID); err != nil {
		t.Fatalf("expected member to be authorized, got %v", err)
	}
}
