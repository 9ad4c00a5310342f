package adventure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PollPeak_Go/internal/domain"
)

func testPolls() *domain.PollSet {
	return &domain.PollSet{
		People: []string{"Nour", "Aiza", "Zainab", "Safaa", "Suweda", "Bilgesu", "Khadeja"},
		Polls: []domain.Poll{
			{Name: PollBender, Options: []domain.Option{
				{Name: "Waterbender", Voters: []string{"Aiza"}},
				{Name: "Airbender", Voters: []string{"Safaa"}},
			}},
			{Name: PollPotato, Options: []domain.Option{
				{Name: "Roasted potatoes", Voters: []string{"Aiza", "Safaa"}},
			}},
			{Name: PollPlace, Options: []domain.Option{
				{Name: "Beach", Voters: []string{"Aiza"}},
			}},
			{Name: PollMovie, Options: []domain.Option{
				{Name: "Shrek", Voters: []string{"Safaa"}},
			}},
		},
	}
}

func testAdventures() *domain.AdventureSet {
	return &domain.AdventureSet{
		Paths: []string{"Cabin", "Rock Climbing Wall", "Forest"},
		Adventures: map[string]domain.AdventureLog{
			"Aiza": {
				Date:    "2025-06-14",
				Time:    "11:03",
				Items:   []string{domain.ItemLockPickingKit, domain.ItemDeckOfCards},
				Path:    domain.PathCabin,
				Guess:   16,
				Actions: []string{domain.ActionPlayCards, domain.ActionPlayCards, domain.ActionPlayCards},
				Slang:   "Bare",
			},
			"Safaa": {
				Date:    "2025-06-14",
				Time:    "12:40",
				Items:   []string{domain.ItemColoringBook},
				Path:    domain.PathForest,
				Guess:   88,
				Actions: []string{domain.ActionPlayCards, domain.ActionColourTogether, domain.ActionPlayCards},
				Slang:   "Sicko",
			},
			"Suweda": {
				Date:    "2025-06-14",
				Time:    "13:15",
				Items:   []string{domain.ItemGitHubAccount, domain.ItemCamera},
				Path:    domain.PathRockWall,
				Guess:   97,
				Actions: []string{domain.ActionPlayCards, domain.ActionPlayCards, domain.ActionPlayCards},
				Slang:   "Mad",
			},
			"Zainab": {
				Date:    "2025-06-14",
				Time:    "14:00",
				Items:   []string{domain.ItemUno, domain.ItemPicnicMat},
				Path:    domain.PathForest,
				Guess:   16,
				Actions: []string{domain.ActionPicnic, domain.ActionPlayCards, domain.ActionPlayCards},
				Slang:   "Butters",
			},
			"Khadeja": {
				Date:    "2025-06-14",
				Time:    "15:30",
				Items:   []string{domain.ItemDeckOfCards, domain.ItemBalloons},
				Path:    domain.PathRockWall,
				Guess:   23,
				Actions: []string{domain.ActionPlayCards, domain.ActionBalloonAnimals, domain.ActionPlayCards},
				Slang:   "Cheeky Nandos",
			},
			"Bilgesu": {
				Date:  "2025-06-14",
				Time:  "09:00",
				Path:  domain.PathCabin,
				Guess: 16,
			},
			"Nour": {
				Date:  "2025-06-14",
				Time:  "09:00",
				Path:  domain.PathForest,
				Guess: 23,
			},
		},
		ItemPrices: map[string]float64{
			domain.ItemLockPickingKit: 8.50,
			domain.ItemDeckOfCards:    3.00,
			domain.ItemColoringBook:   4.50,
			domain.ItemGitHubAccount:  7.00,
			domain.ItemCamera:         12.50,
			domain.ItemUno:            2.50,
			domain.ItemBalloons:       1.50,
			domain.ItemPicnicMat:      6.00,
		},
		Predictions: map[string]string{
			"Aiza": "Aiza will finally open that cafe.",
		},
	}
}

func newTestService() Service {
	return NewService(testAdventures(), testPolls())
}

func TestJournalPageSequence(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	t.Run("convinced on turn one skips later attempts", func(t *testing.T) {
		pages, err := svc.Journal(ctx, "Aiza")
		require.NoError(t, err)
		require.Len(t, pages, 11)

		titles := make([]string, 0, len(pages))
		for _, p := range pages {
			titles = append(titles, p.Title)
		}
		assert.Equal(t, []string{
			TitleIntro, TitleShopping, TitleReceipt, TitleDeparture,
			TitleChoice, TitlePath, TitleTroll, TitleTurnOne,
			TitleSlang, TitleAftermath, TitleSummary,
		}, titles)
	})

	t.Run("convinced on turn two renders twelve pages", func(t *testing.T) {
		pages, err := svc.Journal(ctx, "Safaa")
		require.NoError(t, err)
		require.Len(t, pages, 12)
		assert.Equal(t, TitleTurnTwo, pages[8].Title)
	})

	t.Run("stubborn farmer renders all three attempts", func(t *testing.T) {
		pages, err := svc.Journal(ctx, "Khadeja")
		require.NoError(t, err)
		require.Len(t, pages, 13)
		assert.Equal(t, TitleTurnTwo, pages[8].Title)
		assert.Equal(t, TitleTurnThree, pages[9].Title)
	})
}

func TestJournalNarrativeBranches(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	t.Run("lock picking kit finds the diary entry", func(t *testing.T) {
		pages, err := svc.Journal(ctx, "Aiza")
		require.NoError(t, err)
		assert.Contains(t, pages[5].Body, "diary entries")
		assert.Contains(t, pages[7].Body, "diary entry")
	})

	t.Run("uno reverse card skips the guessing game", func(t *testing.T) {
		pages, err := svc.Journal(ctx, "Zainab")
		require.NoError(t, err)
		troll := pages[6].Body
		assert.Contains(t, troll, "Uno reverse card")
		assert.Contains(t, troll, "Minus one point")
		assert.NotContains(t, troll, "One point for <b>Nour</b></i>")
	})

	t.Run("prime guess leaves a single cow", func(t *testing.T) {
		pages, err := svc.Journal(ctx, "Suweda")
		require.NoError(t, err)
		var slangBody string
		for _, p := range pages {
			if p.Title == TitleSlang {
				slangBody = p.Body
			}
		}
		assert.Contains(t, slangBody, "one lonely cow")
	})

	t.Run("palindrome guess reverses the slang", func(t *testing.T) {
		pages, err := svc.Journal(ctx, "Safaa")
		require.NoError(t, err)
		var slangBody string
		for _, p := range pages {
			if p.Title == TitleSlang {
				slangBody = p.Body
			}
		}
		// Safaa is an Airbender without a final picnic, so the chant stays
		// reversed all the way through.
		assert.Contains(t, slangBody, "okciS")
		assert.NotContains(t, slangBody, "wall of water")
		assert.NotContains(t, slangBody, "tray")
	})

	t.Run("tech lead gets the github account for free", func(t *testing.T) {
		pages, err := svc.Journal(ctx, "Suweda")
		require.NoError(t, err)
		receipt := pages[2].Body
		assert.NotContains(t, receipt, domain.ItemGitHubAccount+" -")
		assert.Contains(t, receipt, "tech lead")
		assert.Contains(t, receipt, "TOTAL: $12.50")
	})
}

func TestJournalOverrides(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	t.Run("treasurer stayed at the store", func(t *testing.T) {
		pages, err := svc.Journal(ctx, "Bilgesu")
		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, TitleSoloFinance, pages[0].Title)
		assert.Contains(t, pages[0].Body, "finances")
	})

	t.Run("nour trolled from behind a log", func(t *testing.T) {
		pages, err := svc.Journal(ctx, "nour")
		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, TitleSoloNour, pages[0].Title)
		assert.Contains(t, pages[0].Body, "8 points")
	})
}

func TestJournalErrors(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	t.Run("unknown person", func(t *testing.T) {
		_, err := svc.Journal(ctx, "Stranger")
		assert.ErrorIs(t, err, domain.ErrPersonNotFound)
	})

	t.Run("member without an adventure", func(t *testing.T) {
		_, err := svc.Journal(ctx, "Salma")
		assert.ErrorIs(t, err, domain.ErrPersonNotFound)
	})
}

func TestJournalCaching(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Journal(ctx, "Aiza")
	require.NoError(t, err)
	second, err := svc.Journal(ctx, "AIZA")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPeopleSorted(t *testing.T) {
	svc := newTestService()
	assert.Equal(t, []string{"Aiza", "Bilgesu", "Khadeja", "Nour", "Safaa", "Suweda", "Zainab"}, svc.People())
}

func TestGuideSections(t *testing.T) {
	svc := newTestService()
	guide := svc.Guide()
	require.Len(t, guide, 7)
	assert.Equal(t, "Sisters Supply Store", guide[0].Title)
	assert.Len(t, guide[0].Entries, 12)
	assert.Equal(t, []string{"16", "23"}, guide[2].Correct)
}

func TestPrediction(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	text, err := svc.Prediction(ctx, "aiza")
	require.NoError(t, err)
	assert.Contains(t, text, "cafe")

	_, err = svc.Prediction(ctx, "Stranger")
	assert.ErrorIs(t, err, domain.ErrPersonNotFound)

	assert.Equal(t, []string{"Aiza"}, svc.Predictions())
}
