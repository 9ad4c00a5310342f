package repository

import (
	"context"

	"github.com/osse101/PollPeak_Go/internal/domain"
)

// Votes defines the interface for vote counter persistence. Every mutation
// returns the resulting counts so callers never need a follow-up read.
type Votes interface {
	GetCounts(ctx context.Context, person string) (domain.VoteCounts, error)
	AddUpvote(ctx context.Context, person string) (domain.VoteCounts, error)
	AddDownvote(ctx context.Context, person string) (domain.VoteCounts, error)
	RemoveUpvote(ctx context.Context, person string) (domain.VoteCounts, error)
	RemoveDownvote(ctx context.Context, person string) (domain.VoteCounts, error)
}
