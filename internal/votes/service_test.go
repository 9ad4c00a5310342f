package votes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PollPeak_Go/internal/domain"
)

// fakeVotesRepo mirrors the SQL semantics in memory: lazy rows, paired
// retraction on cast, floors at zero on removal.
type fakeVotesRepo struct {
	counts map[string]domain.VoteCounts
}

func newFakeVotesRepo() *fakeVotesRepo {
	return &fakeVotesRepo{counts: make(map[string]domain.VoteCounts)}
}

func (f *fakeVotesRepo) GetCounts(_ context.Context, person string) (domain.VoteCounts, error) {
	if _, ok := f.counts[person]; !ok {
		f.counts[person] = domain.VoteCounts{}
	}
	return f.counts[person], nil
}

func (f *fakeVotesRepo) AddUpvote(_ context.Context, person string) (domain.VoteCounts, error) {
	c := f.counts[person]
	c.Upvotes++
	if c.Downvotes > 0 {
		c.Downvotes--
	}
	f.counts[person] = c
	return c, nil
}

func (f *fakeVotesRepo) AddDownvote(_ context.Context, person string) (domain.VoteCounts, error) {
	c := f.counts[person]
	c.Downvotes++
	if c.Upvotes > 0 {
		c.Upvotes--
	}
	f.counts[person] = c
	return c, nil
}

func (f *fakeVotesRepo) RemoveUpvote(_ context.Context, person string) (domain.VoteCounts, error) {
	c := f.counts[person]
	if c.Upvotes > 0 {
		c.Upvotes--
	}
	f.counts[person] = c
	return c, nil
}

func (f *fakeVotesRepo) RemoveDownvote(_ context.Context, person string) (domain.VoteCounts, error) {
	c := f.counts[person]
	if c.Downvotes > 0 {
		c.Downvotes--
	}
	f.counts[person] = c
	return c, nil
}

func testRoster() *domain.PollSet {
	return &domain.PollSet{People: []string{"Nour", "Aiza", "Salma"}}
}

func TestGetCreatesZeroedCounts(t *testing.T) {
	svc := NewService(newFakeVotesRepo(), testRoster())

	counts, err := svc.Get(context.Background(), "Nour")
	require.NoError(t, err)
	assert.Equal(t, domain.VoteCounts{}, counts)
}

func TestCastUpvoteRetractsDownvote(t *testing.T) {
	svc := NewService(newFakeVotesRepo(), testRoster())
	ctx := context.Background()

	counts, err := svc.Cast(ctx, "Aiza", domain.VoteFieldDown)
	require.NoError(t, err)
	assert.Equal(t, domain.VoteCounts{Upvotes: 0, Downvotes: 1}, counts)

	counts, err = svc.Cast(ctx, "Aiza", domain.VoteFieldUp)
	require.NoError(t, err)
	assert.Equal(t, domain.VoteCounts{Upvotes: 1, Downvotes: 0}, counts)

	// No downvotes left to retract; the upvote still lands.
	counts, err = svc.Cast(ctx, "Aiza", domain.VoteFieldUp)
	require.NoError(t, err)
	assert.Equal(t, domain.VoteCounts{Upvotes: 2, Downvotes: 0}, counts)
}

func TestRetractFloorsAtZero(t *testing.T) {
	svc := NewService(newFakeVotesRepo(), testRoster())
	ctx := context.Background()

	counts, err := svc.Retract(ctx, "Salma", domain.VoteFieldUp)
	require.NoError(t, err)
	assert.Equal(t, domain.VoteCounts{}, counts)

	_, err = svc.Cast(ctx, "Salma", domain.VoteFieldUp)
	require.NoError(t, err)
	counts, err = svc.Retract(ctx, "Salma", domain.VoteFieldUp)
	require.NoError(t, err)
	assert.Equal(t, domain.VoteCounts{}, counts)
}

func TestSwitchMovesVoteBetweenSides(t *testing.T) {
	svc := NewService(newFakeVotesRepo(), testRoster())
	ctx := context.Background()

	_, err := svc.Cast(ctx, "Nour", domain.VoteFieldDown)
	require.NoError(t, err)

	counts, err := svc.Switch(ctx, "Nour", domain.VoteFieldDown, domain.VoteFieldUp)
	require.NoError(t, err)
	assert.Equal(t, domain.VoteCounts{Upvotes: 1, Downvotes: 0}, counts)

	t.Run("same side rejected", func(t *testing.T) {
		_, err := svc.Switch(ctx, "Nour", domain.VoteFieldUp, domain.VoteFieldUp)
		assert.ErrorIs(t, err, domain.ErrInvalidVoteField)
	})

	t.Run("invalid field", func(t *testing.T) {
		_, err := svc.Switch(ctx, "Nour", domain.VoteField("sideways"), domain.VoteFieldUp)
		assert.ErrorIs(t, err, domain.ErrInvalidVoteField)
	})
}

func TestVoteNameResolution(t *testing.T) {
	repo := newFakeVotesRepo()
	svc := NewService(repo, testRoster())
	ctx := context.Background()

	_, err := svc.Cast(ctx, "  nour ", domain.VoteFieldUp)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.counts["Nour"].Upvotes)
}

func TestVoteErrors(t *testing.T) {
	svc := NewService(newFakeVotesRepo(), testRoster())
	ctx := context.Background()

	t.Run("unknown person", func(t *testing.T) {
		_, err := svc.Cast(ctx, "Stranger", domain.VoteFieldUp)
		assert.ErrorIs(t, err, domain.ErrPersonNotFound)
	})

	t.Run("invalid field", func(t *testing.T) {
		_, err := svc.Cast(ctx, "Nour", domain.VoteField("sideways"))
		assert.ErrorIs(t, err, domain.ErrInvalidVoteField)

		_, err = svc.Retract(ctx, "Nour", domain.VoteField("sideways"))
		assert.ErrorIs(t, err, domain.ErrInvalidVoteField)
	})
}
