package awards

import (
	"context"
	"sort"

	"github.com/osse101/PollPeak_Go/internal/domain"
	"github.com/osse101/PollPeak_Go/internal/logger"
	"github.com/osse101/PollPeak_Go/internal/wrapped"
)

// Service builds the award ceremony: the podium list and the overall
// winners derived from it.
type Service interface {
	Awards(ctx context.Context) []domain.Award
	OverallWinners(ctx context.Context) []string
}

type service struct {
	polls *domain.PollSet
}

// NewService creates an awards service over an immutable poll set.
func NewService(polls *domain.PollSet) Service {
	return &service{polls: polls}
}

// Awards returns the full ceremony in presentation order. The computed
// podiums come from poll statistics; the rest were decided by committee.
func (s *service) Awards(ctx context.Context) []domain.Award {
	trendsetters := wrapped.Trendsetters(s.polls, wrapped.PodiumSize)
	rebels := wrapped.Rebels(s.polls, trendsetters, wrapped.PodiumSize)

	list := []domain.Award{
		{
			Title:   TitleMostIndecisive,
			Winners: podiumOf(wrapped.TopIndecisive(s.polls, wrapped.PodiumSize)),
			Extra:   "Go to these people if you wanna overthink",
		},
		{
			Title:   TitleMostDecisive,
			Winners: podiumOf(wrapped.MostDecisive(s.polls, wrapped.PodiumSize)),
			Extra:   "These are the best people to go to if you need to make a decision",
		},
		{
			Title:   TitleMostActive,
			Winners: podiumOf(wrapped.TopActive(s.polls, wrapped.PodiumSize)),
			Extra:   "If you ever need a quick response, these are the people to ask",
		},
		{
			Title:   TitleTrendsetters,
			Winners: podiumOf(trendsetters),
			Extra:   "If you ever need to advertise an event you know who to talk to",
		},
		{
			Title:   TitleRebels,
			Winners: podiumOf(rebels),
			Extra:   "Keep an eye on these people, they might be up to something",
		},
		{
			Title:   TitleMostCultured,
			Winners: domain.Podium{First: "Safaa", Second: "Aliyah", Third: "Aiza"},
			Extra:   "If you wanna have a good convo, now you know where to go!",
		},
		{
			Title:   TitleMostControversial,
			Winners: domain.Podium{First: "Samiya", Second: "Zainab", Third: "Safaa"},
			Extra:   "These three probably have the best debate topics",
		},
		{
			Title:   TitleWeirdest,
			Winners: domain.Podium{First: "Madiha", Second: "Nour"},
			Extra:   "WHO MAKES FAMILY FANFIC AT 2 AM? Sorry Aiza",
			Penalty: true,
		},
		{
			Title:   TitleAlwaysAwake,
			Winners: domain.Podium{First: "Samiya"},
			Extra:   "EVERYONE TELL SAMIYA TO GO TO SLEEP",
			Penalty: true,
		},
		{
			Title:   TitlePagesCorrupted,
			Winners: domain.Podium{First: "Copilot"},
			Extra:   "Copilot corrupted our code FIVE TIMES",
		},
		{
			Title:   TitleOverallTeaser,
			Winners: domain.Podium{First: "???", Second: "???", Third: "???"},
			Extra:   "Go",
		},
	}

	logger.FromContext(ctx).Debug(LogMsgCeremonyBuilt, "awards", len(list))
	return list
}

// OverallWinners scores the whole ceremony and returns the top three.
// Everyone starts from their participation count, podium places add
// 3/2/1 points and an award each, penalty podiums subtract 10/8/6 and
// an award. Names outside the roster never score.
func (s *service) OverallWinners(ctx context.Context) []string {
	return FindWinners(s.Awards(ctx), s.polls)
}

// FindWinners applies the overall scoring rules to a ceremony.
func FindWinners(list []domain.Award, polls *domain.PollSet) []string {
	points := make(map[string]float64, len(polls.People))
	awardCount := make(map[string]int, len(polls.People))
	for _, person := range polls.People {
		points[person] = float64(wrapped.ParticipationCount(polls, person)) * participationWeight
	}

	for _, award := range list {
		names := award.Winners.Names()
		if award.Penalty {
			applyPodium(polls, points, awardCount, names,
				[3]float64{-firstPlacePenalty, -secondPlacePenalty, -thirdPlacePenalty}, -1)
		} else {
			applyPodium(polls, points, awardCount, names,
				[3]float64{firstPlacePoints, secondPlacePoints, thirdPlacePoints}, 1)
		}
	}

	entries := make([]domain.RankedEntry, 0, len(polls.People))
	for _, person := range polls.People {
		entries = append(entries, domain.RankedEntry{
			Name:  person,
			Score: points[person] + float64(awardCount[person]),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	winners := make([]string, 0, wrapped.PodiumSize)
	for _, e := range entries {
		if len(winners) == wrapped.PodiumSize {
			break
		}
		winners = append(winners, e.Name)
	}
	return winners
}

func applyPodium(polls *domain.PollSet, points map[string]float64, awardCount map[string]int, names [3]string, delta [3]float64, countDelta int) {
	for i, name := range names {
		if !polls.HasPerson(name) {
			continue
		}
		points[name] += delta[i]
		awardCount[name] += countDelta
	}
}

func podiumOf(names []string) domain.Podium {
	var p domain.Podium
	if len(names) > 0 {
		p.First = names[0]
	}
	if len(names) > 1 {
		p.Second = names[1]
	}
	if len(names) > 2 {
		p.Third = names[2]
	}
	return p
}
