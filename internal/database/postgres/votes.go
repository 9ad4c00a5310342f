package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PollPeak_Go/internal/domain"
)

// VoteRepository implements the vote counter repository for PostgreSQL
type VoteRepository struct {
	db *pgxpool.Pool
}

// NewVoteRepository creates a new VoteRepository
func NewVoteRepository(db *pgxpool.Pool) *VoteRepository {
	return &VoteRepository{db: db}
}

// GetCounts returns the person's tally, creating a zeroed row if absent.
func (r *VoteRepository) GetCounts(ctx context.Context, person string) (domain.VoteCounts, error) {
	query := `
		INSERT INTO person_votes (person)
		VALUES ($1)
		ON CONFLICT (person) DO UPDATE SET person = EXCLUDED.person
		RETURNING upvotes, downvotes
	`
	var counts domain.VoteCounts
	if err := r.db.QueryRow(ctx, query, person).Scan(&counts.Upvotes, &counts.Downvotes); err != nil {
		return domain.VoteCounts{}, fmt.Errorf("failed to get vote counts: %w", err)
	}
	return counts, nil
}

// AddUpvote increments upvotes and retracts one downvote if any exist.
// A single statement keeps the update atomic under concurrent voters.
func (r *VoteRepository) AddUpvote(ctx context.Context, person string) (domain.VoteCounts, error) {
	query := `
		INSERT INTO person_votes (person, upvotes, downvotes)
		VALUES ($1, 1, 0)
		ON CONFLICT (person) DO UPDATE
		SET upvotes = person_votes.upvotes + 1,
		    downvotes = GREATEST(person_votes.downvotes - 1, 0),
		    updated_at = NOW()
		RETURNING upvotes, downvotes
	`
	return r.mutate(ctx, query, person, "failed to add upvote")
}

// AddDownvote increments downvotes and retracts one upvote if any exist.
func (r *VoteRepository) AddDownvote(ctx context.Context, person string) (domain.VoteCounts, error) {
	query := `
		INSERT INTO person_votes (person, upvotes, downvotes)
		VALUES ($1, 0, 1)
		ON CONFLICT (person) DO UPDATE
		SET downvotes = person_votes.downvotes + 1,
		    upvotes = GREATEST(person_votes.upvotes - 1, 0),
		    updated_at = NOW()
		RETURNING upvotes, downvotes
	`
	return r.mutate(ctx, query, person, "failed to add downvote")
}

// RemoveUpvote decrements upvotes, never below zero.
func (r *VoteRepository) RemoveUpvote(ctx context.Context, person string) (domain.VoteCounts, error) {
	query := `
		INSERT INTO person_votes (person)
		VALUES ($1)
		ON CONFLICT (person) DO UPDATE
		SET upvotes = GREATEST(person_votes.upvotes - 1, 0),
		    updated_at = NOW()
		RETURNING upvotes, downvotes
	`
	return r.mutate(ctx, query, person, "failed to remove upvote")
}

// RemoveDownvote decrements downvotes, never below zero.
func (r *VoteRepository) RemoveDownvote(ctx context.Context, person string) (domain.VoteCounts, error) {
	query := `
		INSERT INTO person_votes (person)
		VALUES ($1)
		ON CONFLICT (person) DO UPDATE
		SET downvotes = GREATEST(person_votes.downvotes - 1, 0),
		    updated_at = NOW()
		RETURNING upvotes, downvotes
	`
	return r.mutate(ctx, query, person, "failed to remove downvote")
}

func (r *VoteRepository) mutate(ctx context.Context, query, person, errPrefix string) (domain.VoteCounts, error) {
	var counts domain.VoteCounts
	if err := r.db.QueryRow(ctx, query, person).Scan(&counts.Upvotes, &counts.Downvotes); err != nil {
		return domain.VoteCounts{}, fmt.Errorf("%s: %w", errPrefix, err)
	}
	return counts, nil
}
