package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/apperr"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/metrics"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/ports"
)

var ErrReactionNotFound = apperr.NotFound("no prior reaction from this spotter")

// ReactionTarget identifies the shared activity a spotter reacts to. FolderID
// is optional and picks one record when the activity sits in several folders.
type ReactionTarget struct {
	SpotterID    uuid.UUID
	TravelBandID uuid.UUID
	ActivityID   uuid.UUID
	FolderID     *uuid.UUID
}

// ReactionService keeps at most one reaction per spotter on a shared activity.
// Updates rewrite the whole record, so concurrent reactions on the same
// activity are last-writer-wins.
type ReactionService struct {
	spotters ports.SpotterRepository
	shared   ports.SharedActivityRepository
}

func NewReactionService(store ports.Datastore) *ReactionService {
	return &ReactionService{
		spotters: store.Spotters(),
		shared:   store.SharedActivities(),
	}
}

func (s *ReactionService) CreateReaction(ctx context.Context, target ReactionTarget, like bool) (*domain.Reaction, error) {
	spotter, shared, err := s.load(ctx, target)
	if err != nil {
		return nil, err
	}

	reaction := spotter.Reaction(like)
	shared.Reactions = shared.Reactions.Upsert(reaction)
	if err := s.shared.Update(ctx, shared); err != nil {
		return nil, err
	}
	metrics.ReactionsTotal.WithLabelValues(reactionAction(like)).Inc()
	return &reaction, nil
}

func (s *ReactionService) DeleteReaction(ctx context.Context, target ReactionTarget) (*domain.Reaction, error) {
	_, shared, err := s.load(ctx, target)
	if err != nil {
		return nil, err
	}

	removed, ok := shared.Reactions.Find(target.SpotterID)
	if !ok {
		return nil, ErrReactionNotFound
	}
	shared.Reactions = shared.Reactions.Without(target.SpotterID)
	if err := s.shared.Update(ctx, shared); err != nil {
		return nil, err
	}
	metrics.ReactionsTotal.WithLabelValues("delete").Inc()
	return &removed, nil
}

func (s *ReactionService) load(ctx context.Context, target ReactionTarget) (*domain.Spotter, *domain.SharedActivity, error) {
	spotter, err := s.spotters.Get(ctx, target.SpotterID)
	if err != nil {
		return nil, nil, err
	}
	if !spotter.IsMemberOf(target.TravelBandID) {
		return nil, nil, ErrUnauthorizedOnTravelBand
	}
	shared, err := s.shared.GetByTravelBand(ctx, target.TravelBandID, target.ActivityID, target.FolderID)
	if err != nil {
		return nil, nil, err
	}
	return spotter, shared, nil
}

func reactionAction(like bool) string {
	if like {
		return "like"
	}
	return "dislike"
}
