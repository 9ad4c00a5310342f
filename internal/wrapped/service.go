package wrapped

import (
	"context"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/PollPeak_Go/internal/domain"
	"github.com/osse101/PollPeak_Go/internal/logger"
)

// PersonStats is the personal half of a wrapped run.
type PersonStats struct {
	Name              string  `json:"name"`
	Honorary          bool    `json:"honorary"`
	VoteCount         int     `json:"vote_count"`
	PollCount         int     `json:"poll_count"`
	Percentile        int     `json:"percentile"`
	OptionsPerPoll    float64 `json:"options_per_poll"`
	BestFriend        string  `json:"best_friend"`
	AgreementCount    int     `json:"agreement_count"`
	ArchNemesis       string  `json:"arch_nemesis"`
	DisagreementCount int     `json:"disagreement_count"`
}

// Summary is the group-wide half of a wrapped run.
type Summary struct {
	TotalPolls          int                  `json:"total_polls"`
	TotalVotes          int                  `json:"total_votes"`
	AverageVotesPerPoll float64              `json:"average_votes_per_poll"`
	MostIndecisive      []string             `json:"most_indecisive"`
	MostActive          []string             `json:"most_active"`
	Trendsetter         string               `json:"trendsetter"`
	Rebel               string               `json:"rebel"`
	AllRounder          string               `json:"all_rounder"`
	ActivityRanking     []domain.RankedEntry `json:"activity_ranking"`
}

// Slide is one card in the wrapped slideshow.
type Slide struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Lines    []string `json:"lines"`
	Extra    string   `json:"extra,omitempty"`
}

// Service computes wrapped statistics and slide decks from the poll set.
type Service interface {
	Resolve(ctx context.Context, name string) (string, bool, error)
	Stats(ctx context.Context, name string) (*PersonStats, error)
	Summary(ctx context.Context) *Summary
	Deck(ctx context.Context, name string) ([]Slide, error)
}

type service struct {
	polls *domain.PollSet
	title cases.Caser
}

// NewService creates a wrapped service over an immutable poll set.
func NewService(polls *domain.PollSet) Service {
	return &service{
		polls: polls,
		title: cases.Title(language.English),
	}
}

// Resolve matches name against the roster case-insensitively and returns
// the canonical spelling plus whether it is an honorary member.
func (s *service) Resolve(_ context.Context, name string) (string, bool, error) {
	trimmed := strings.TrimSpace(name)
	for _, person := range s.polls.People {
		if strings.EqualFold(person, trimmed) {
			return person, false, nil
		}
	}
	for _, person := range s.polls.Honorary {
		if strings.EqualFold(person, trimmed) {
			return s.title.String(strings.ToLower(trimmed)), true, nil
		}
	}
	return "", false, fmt.Errorf("%w: %s", domain.ErrPersonNotFound, trimmed)
}

func (s *service) Stats(ctx context.Context, name string) (*PersonStats, error) {
	log := logger.FromContext(ctx)

	canonical, honorary, err := s.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	votes := VoteCount(s.polls, canonical)
	polls := ParticipationCount(s.polls, canonical)

	friends := BestFriends(s.polls, canonical)
	bff := ""
	agreement := 0
	if len(friends) > 1 {
		bff = friends[1].Name
		agreement = int(friends[1].Score)
	}

	nemeses := ArchNemeses(s.polls, canonical)
	enemy := ""
	disagreement := 0
	if len(nemeses) > 0 {
		enemy = nemeses[0].Name
		disagreement = int(nemeses[0].Score)
	}

	stats := &PersonStats{
		Name:              canonical,
		Honorary:          honorary,
		VoteCount:         votes,
		PollCount:         polls,
		Percentile:        Percentile(s.polls, canonical),
		OptionsPerPoll:    roundTenth(votes, polls),
		BestFriend:        bff,
		AgreementCount:    agreement,
		ArchNemesis:       enemy,
		DisagreementCount: disagreement,
	}

	log.Debug(LogMsgStatsComputed, "person", canonical, "votes", votes, "polls", polls)
	return stats, nil
}

func (s *service) Summary(_ context.Context) *Summary {
	trendsetters := Trendsetters(s.polls, PodiumSize)
	rebels := Rebels(s.polls, trendsetters, PodiumSize)

	trendsetter := ""
	if len(trendsetters) > 0 {
		trendsetter = trendsetters[0]
	}
	rebel := ""
	if len(rebels) > 0 {
		rebel = rebels[0]
	}

	return &Summary{
		TotalPolls:          TotalPolls(s.polls),
		TotalVotes:          TotalVotes(s.polls),
		AverageVotesPerPoll: roundTenth(TotalVotes(s.polls), TotalPolls(s.polls)),
		MostIndecisive:      MostIndecisive(s.polls),
		MostActive:          MostActive(s.polls),
		Trendsetter:         trendsetter,
		Rebel:               rebel,
		AllRounder:          AllRounder(s.polls),
		ActivityRanking:     ActivityRanking(s.polls),
	}
}

// roundTenth divides and rounds to one decimal place, returning 0 when the
// divisor is zero.
func roundTenth(numerator, divisor int) float64 {
	if divisor == 0 {
		return 0
	}
	return math.Round(float64(numerator)/float64(divisor)*10) / 10
}
