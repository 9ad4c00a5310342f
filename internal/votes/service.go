package votes

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/PollPeak_Go/internal/domain"
	"github.com/osse101/PollPeak_Go/internal/logger"
	"github.com/osse101/PollPeak_Go/internal/metrics"
	"github.com/osse101/PollPeak_Go/internal/repository"
)

// Service manages per-person upvote/downvote counters.
type Service interface {
	// Get returns the person's current tally, zeroed if they have none yet.
	Get(ctx context.Context, person string) (domain.VoteCounts, error)
	// Cast adds one vote on the given side. Casting an upvote retracts one
	// existing downvote, and the other way around.
	Cast(ctx context.Context, person string, field domain.VoteField) (domain.VoteCounts, error)
	// Retract removes one vote from the given side, never going below zero.
	Retract(ctx context.Context, person string, field domain.VoteField) (domain.VoteCounts, error)
	// Switch moves one vote from one side to the other in a single atomic
	// step. Switching to a side is equivalent to casting on it: the store
	// pairs the increment with a retraction of the opposite side.
	Switch(ctx context.Context, person string, from, to domain.VoteField) (domain.VoteCounts, error)
}

type service struct {
	repo  repository.Votes
	polls *domain.PollSet
}

// NewService creates a vote service backed by the given repository. The
// poll roster is the single source of who can be voted on.
func NewService(repo repository.Votes, polls *domain.PollSet) Service {
	return &service{repo: repo, polls: polls}
}

func (s *service) Get(ctx context.Context, person string) (domain.VoteCounts, error) {
	name, err := s.resolve(person)
	if err != nil {
		return domain.VoteCounts{}, err
	}
	return s.repo.GetCounts(ctx, name)
}

func (s *service) Cast(ctx context.Context, person string, field domain.VoteField) (domain.VoteCounts, error) {
	name, err := s.resolve(person)
	if err != nil {
		return domain.VoteCounts{}, err
	}
	if !field.Valid() {
		return domain.VoteCounts{}, fmt.Errorf("%w: %s", domain.ErrInvalidVoteField, field)
	}

	var counts domain.VoteCounts
	if field == domain.VoteFieldUp {
		counts, err = s.repo.AddUpvote(ctx, name)
	} else {
		counts, err = s.repo.AddDownvote(ctx, name)
	}
	if err != nil {
		return domain.VoteCounts{}, err
	}

	metrics.VotesCast.WithLabelValues(string(field)).Inc()
	logger.FromContext(ctx).Info(LogMsgVoteCast, "person", name, "field", field)
	return counts, nil
}

func (s *service) Retract(ctx context.Context, person string, field domain.VoteField) (domain.VoteCounts, error) {
	name, err := s.resolve(person)
	if err != nil {
		return domain.VoteCounts{}, err
	}
	if !field.Valid() {
		return domain.VoteCounts{}, fmt.Errorf("%w: %s", domain.ErrInvalidVoteField, field)
	}

	var counts domain.VoteCounts
	if field == domain.VoteFieldUp {
		counts, err = s.repo.RemoveUpvote(ctx, name)
	} else {
		counts, err = s.repo.RemoveDownvote(ctx, name)
	}
	if err != nil {
		return domain.VoteCounts{}, err
	}

	logger.FromContext(ctx).Info(LogMsgVoteRetracted, "person", name, "field", field)
	return counts, nil
}

func (s *service) Switch(ctx context.Context, person string, from, to domain.VoteField) (domain.VoteCounts, error) {
	if !from.Valid() || !to.Valid() || from == to {
		return domain.VoteCounts{}, fmt.Errorf("%w: %s to %s", domain.ErrInvalidVoteField, from, to)
	}
	return s.Cast(ctx, person, to)
}

// resolve canonicalizes person against the roster so counter rows are
// always keyed by the roster spelling.
func (s *service) resolve(person string) (string, error) {
	trimmed := strings.TrimSpace(person)
	for _, name := range s.polls.People {
		if strings.EqualFold(name, trimmed) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %s", domain.ErrPersonNotFound, trimmed)
}
