package awards

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PollPeak_Go/internal/domain"
)

func testPollSet() *domain.PollSet {
	return &domain.PollSet{
		People: []string{"Nour", "Aiza", "Zainab", "Safaa", "Salma"},
		Polls: []domain.Poll{
			{
				Name: "Best Snack",
				Options: []domain.Option{
					{Name: "Crisps", Voters: []string{"Nour", "Aiza", "Zainab"}},
					{Name: "Chocolate", Voters: []string{"Safaa"}},
				},
			},
			{
				Name: "Best Season",
				Options: []domain.Option{
					{Name: "Winter", Voters: []string{"Aiza"}},
					{Name: "Summer", Voters: []string{"Nour", "Safaa", "Aiza"}},
				},
			},
		},
	}
}

func TestAwards_CeremonyOrder(t *testing.T) {
	svc := NewService(testPollSet())

	list := svc.Awards(context.Background())

	require.Len(t, list, 11)
	wantTitles := []string{
		TitleMostIndecisive,
		TitleMostDecisive,
		TitleMostActive,
		TitleTrendsetters,
		TitleRebels,
		TitleMostCultured,
		TitleMostControversial,
		TitleWeirdest,
		TitleAlwaysAwake,
		TitlePagesCorrupted,
		TitleOverallTeaser,
	}
	for i, want := range wantTitles {
		assert.Equal(t, want, list[i].Title)
	}
}

func TestAwards_PenaltyFlags(t *testing.T) {
	list := NewService(testPollSet()).Awards(context.Background())

	for _, award := range list {
		switch award.Title {
		case TitleWeirdest, TitleAlwaysAwake:
			assert.True(t, award.Penalty, award.Title)
		default:
			assert.False(t, award.Penalty, award.Title)
		}
	}
}

func TestAwards_RebelsNeverOverlapTrendsetters(t *testing.T) {
	list := NewService(testPollSet()).Awards(context.Background())

	var trendsetters, rebels domain.Podium
	for _, award := range list {
		switch award.Title {
		case TitleTrendsetters:
			trendsetters = award.Winners
		case TitleRebels:
			rebels = award.Winners
		}
	}

	for _, r := range rebels.Names() {
		if r == "" {
			continue
		}
		assert.NotContains(t, trendsetters.Names(), r)
	}
}

func TestFindWinners_BaselineIsParticipation(t *testing.T) {
	winners := FindWinners(nil, testPollSet())

	// Participation alone: Nour 2, Aiza 2, Safaa 2, Zainab 1.
	assert.Equal(t, []string{"Nour", "Aiza", "Safaa"}, winners)
}

func TestFindWinners_PodiumPointsAndAwardBonus(t *testing.T) {
	ps := testPollSet()
	list := []domain.Award{
		{Title: "Sharpest Dresser", Winners: domain.Podium{First: "Zainab", Second: "Salma"}},
	}

	// Zainab: 1*0.3 + 3 + 1 = 4.3, Salma: 0 + 2 + 1 = 3, everyone else
	// keeps their 0.6 baseline.
	winners := FindWinners(list, ps)

	assert.Equal(t, []string{"Zainab", "Salma", "Nour"}, winners)
}

func TestFindWinners_PenaltySubtractsPointsAndAward(t *testing.T) {
	ps := testPollSet()
	list := []domain.Award{
		{Title: TitleWeirdest, Winners: domain.Podium{First: "Nour"}, Penalty: true},
	}

	// Nour: 0.6 - 10 - 1 = -10.4, dropping below everyone.
	winners := FindWinners(list, ps)

	assert.Equal(t, []string{"Aiza", "Safaa", "Zainab"}, winners)
	assert.NotContains(t, winners, "Nour")
}

func TestFindWinners_IgnoresNamesOffTheRoster(t *testing.T) {
	ps := testPollSet()
	list := []domain.Award{
		{Title: TitlePagesCorrupted, Winners: domain.Podium{First: "Copilot"}},
		{Title: TitleOverallTeaser, Winners: domain.Podium{First: "???", Second: "???", Third: "???"}},
		{Title: TitleWeirdest, Winners: domain.Podium{First: "Madiha", Second: "Nour", Third: ""}, Penalty: true},
	}

	winners := FindWinners(list, ps)

	require.Len(t, winners, 3)
	assert.NotContains(t, winners, "Copilot")
	assert.NotContains(t, winners, "???")
	assert.NotContains(t, winners, "")
	assert.NotContains(t, winners, "Nour", "penalty still lands on real members")
}

func TestOverallWinners_TopThreeMembers(t *testing.T) {
	ps := testPollSet()
	winners := NewService(ps).OverallWinners(context.Background())

	require.Len(t, winners, 3)
	for _, w := range winners {
		assert.True(t, ps.HasPerson(w))
	}
}
