package wrapped

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PollPeak_Go/internal/domain"
)

func TestResolve(t *testing.T) {
	svc := NewService(testPollSet())
	ctx := context.Background()

	t.Run("matches case-insensitively", func(t *testing.T) {
		name, honorary, err := svc.Resolve(ctx, "nOuR")
		require.NoError(t, err)
		assert.Equal(t, "Nour", name)
		assert.False(t, honorary)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		name, _, err := svc.Resolve(ctx, "  Aiza ")
		require.NoError(t, err)
		assert.Equal(t, "Aiza", name)
	})

	t.Run("resolves honorary members", func(t *testing.T) {
		name, honorary, err := svc.Resolve(ctx, "maryam")
		require.NoError(t, err)
		assert.Equal(t, "Maryam", name)
		assert.True(t, honorary)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, _, err := svc.Resolve(ctx, "Stranger")
		assert.ErrorIs(t, err, domain.ErrPersonNotFound)
	})
}

func TestStats(t *testing.T) {
	svc := NewService(testPollSet())

	stats, err := svc.Stats(context.Background(), "aiza")
	require.NoError(t, err)

	assert.Equal(t, "Aiza", stats.Name)
	assert.False(t, stats.Honorary)
	assert.Equal(t, 4, stats.VoteCount)
	assert.Equal(t, 3, stats.PollCount)
	assert.Equal(t, 40, stats.Percentile)
	assert.Equal(t, 1.3, stats.OptionsPerPoll)
	assert.Equal(t, "Nour", stats.BestFriend)
	assert.Equal(t, 3, stats.AgreementCount)
	assert.Equal(t, "Safaa", stats.ArchNemesis)
	assert.Equal(t, 1, stats.DisagreementCount)
}

func TestStats_UnknownPerson(t *testing.T) {
	svc := NewService(testPollSet())

	_, err := svc.Stats(context.Background(), "Stranger")
	assert.ErrorIs(t, err, domain.ErrPersonNotFound)
}

func TestSummary(t *testing.T) {
	svc := NewService(testPollSet())

	summary := svc.Summary(context.Background())

	assert.Equal(t, 3, summary.TotalPolls)
	assert.Equal(t, 10, summary.TotalVotes)
	assert.Equal(t, 3.3, summary.AverageVotesPerPoll)
	assert.Equal(t, []string{"Aiza"}, summary.MostIndecisive)
	assert.Equal(t, []string{"Nour", "Aiza"}, summary.MostActive)
	assert.Equal(t, "Nour", summary.Trendsetter)
	assert.Equal(t, "Safaa", summary.Rebel)
	assert.Equal(t, "Aiza", summary.AllRounder)
	require.Len(t, summary.ActivityRanking, 5)
}

func TestDeck(t *testing.T) {
	svc := NewService(testPollSet())
	ctx := context.Background()

	t.Run("builds the full slideshow", func(t *testing.T) {
		deck, err := svc.Deck(ctx, "Nour")
		require.NoError(t, err)

		require.Len(t, deck, 23)
		assert.Equal(t, "Welcome Nour!", deck[0].Title)
		assert.Equal(t, "Thank You!", deck[len(deck)-1].Title)
	})

	t.Run("honorary members get the alternate greeting", func(t *testing.T) {
		deck, err := svc.Deck(ctx, "Maryam")
		require.NoError(t, err)

		assert.Equal(t, "WE MISS YOU MARYAM!", deck[0].Title)
	})

	t.Run("organisers are not told to thank themselves", func(t *testing.T) {
		people := testPollSet()
		people.People = append(people.People, "Samiya")
		deck, err := NewService(people).Deck(ctx, "Samiya")
		require.NoError(t, err)

		last := deck[len(deck)-1]
		assert.Len(t, last.Lines, 2)
	})

	t.Run("unknown person", func(t *testing.T) {
		_, err := svc.Deck(ctx, "Stranger")
		assert.ErrorIs(t, err, domain.ErrPersonNotFound)
	})
}
