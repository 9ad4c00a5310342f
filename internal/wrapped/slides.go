package wrapped

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/PollPeak_Go/internal/logger"
)

// Deck builds the full wrapped slideshow for one person: the welcome,
// the group-wide highlights, the fixed poll shout-outs, the statistics
// and the personal slides, closing with a thank-you.
func (s *service) Deck(ctx context.Context, name string) ([]Slide, error) {
	canonical, honorary, err := s.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	stats, err := s.Stats(ctx, canonical)
	if err != nil {
		return nil, err
	}
	summary := s.Summary(ctx)

	deck := make([]Slide, 0, 24)
	deck = append(deck, s.welcomeSlide(canonical, honorary))
	deck = append(deck,
		Slide{
			Title: "Most Indecisive Person",
			Lines: summary.MostIndecisive,
			Extra: "This person could barely ever choose one option",
		},
		Slide{
			Title: "Most Active People",
			Lines: summary.MostActive,
			Extra: "These people participated in the most polls",
		},
		Slide{
			Title: "Trendsetter",
			Lines: []string{summary.Trendsetter},
			Extra: "The trendsetter is the person whose choice ends up winning most often",
		},
		Slide{
			Title: "Rebel",
			Lines: []string{summary.Rebel},
			Extra: "The rebel is the person who consistently votes against the majority",
		},
		Slide{
			Title: "The All-Rounder",
			Lines: []string{summary.AllRounder},
			Extra: "The all-rounder is the person who agrees with the most people across all polls",
		},
	)
	deck = append(deck, shoutOutSlides()...)
	deck = append(deck, Slide{
		Title: "Poll Statistics",
		Lines: []string{
			fmt.Sprintf("Total Polls: %d", summary.TotalPolls),
			fmt.Sprintf("Total Votes: %d", summary.TotalVotes),
			fmt.Sprintf("Average Votes per Poll: %.1f", summary.AverageVotesPerPoll),
		},
	})
	deck = append(deck,
		Slide{
			Title: "Now about you!",
			Lines: []string{fmt.Sprintf("Let's see how you did, %s!", canonical)},
		},
		Slide{
			Title: "You Voted...",
			Lines: []string{fmt.Sprintf("%d times!", stats.VoteCount)},
			Extra: fmt.Sprintf("You are in the top %d%% of voters", stats.Percentile),
		},
		Slide{
			Title: "You Voted In...",
			Lines: []string{fmt.Sprintf("%d polls", stats.PollCount)},
			Extra: fmt.Sprintf("That means on average, you picked %.1f options per poll", stats.OptionsPerPoll),
		},
		Slide{
			Title: "Best Friend",
			Lines: []string{stats.BestFriend},
			Extra: fmt.Sprintf("You two agreed %d times!", stats.AgreementCount),
		},
		Slide{
			Title: "Your Arch Nemesis",
			Lines: []string{stats.ArchNemesis},
			Extra: fmt.Sprintf("You two disagreed %d times!", stats.DisagreementCount),
		},
	)
	deck = append(deck, s.thankYouSlide(canonical, honorary))

	logger.FromContext(ctx).Debug(LogMsgDeckBuilt, "person", canonical, "slides", len(deck))
	return deck, nil
}

func (s *service) welcomeSlide(name string, honorary bool) Slide {
	if honorary {
		return Slide{
			Title:    fmt.Sprintf("WE MISS YOU %s!", strings.ToUpper(name)),
			Subtitle: "Even though you're not on comm, you'll always be a part of it in my (Nour's) eyes :)",
			Lines:    []string{"If you wanna continue, you can see the new comms wrapped"},
		}
	}
	return Slide{
		Title:    fmt.Sprintf("Welcome %s!", name),
		Subtitle: "Your 2025 STEMM Sisters Poll WRAPPED",
		Lines:    []string{"Let's see how your group stacked up this year"},
	}
}

func (s *service) thankYouSlide(name string, honorary bool) Slide {
	if honorary {
		return Slide{
			Title: "Thank You!",
			Lines: []string{
				"Thanks for always being amazing!",
				"And thank you for letting me be a part of this society :)",
			},
		}
	}
	lines := []string{
		fmt.Sprintf("Thank you %s for participating in the Sisters Poll! We really couldn't have done this without you.", name),
		"We hope you enjoyed your wrapped experience!",
	}
	if name != "Madiha" && name != "Samiya" && name != "Suweda" {
		lines = append(lines, "If you did, make sure to thank Madiha Suweda and Samiya!")
	}
	return Slide{Title: "Thank You!", Lines: lines}
}

// shoutOutSlides are the hand-picked poll awards in the middle of the deck.
func shoutOutSlides() []Slide {
	return []Slide{
		{
			Title: "Yummiest Poll",
			Lines: []string{"Salma"},
			Extra: "You got all of comm excited over potatoes",
		},
		{
			Title: "Most Evenly Split Poll",
			Lines: []string{"Zainab"},
			Extra: "Matcha: Love or Hate?",
		},
		{
			Title: "Most controversial poll",
			Lines: []string{"Samiya"},
			Extra: "This person's poll caused the biggest argument on the groupchat",
		},
		{
			Title: "Loves to Draw",
			Lines: []string{"Bilgesu"},
			Extra: "This person picked tied options every time",
		},
		{
			Title: "Funniest Poll",
			Lines: []string{"Aliyah"},
			Extra: "There's no way some of you actually use LinkedIn Reels",
		},
		{
			Title: "Hardest Poll",
			Lines: []string{"Safaa"},
			Extra: "You almost made Nour watch all the Spider-Man movies",
		},
		{
			Title: "Most innovative poll",
			Lines: []string{"Rameen"},
			Extra: "You introduced pictures to the game!",
		},
		{
			Title: "Most CAT-astrophic Poll",
			Lines: []string{"Khadeja"},
			Extra: "Even the admins had to get involved",
		},
		{
			Title: "Most Wholesome Poll",
			Lines: []string{"Suweda"},
			Extra: "No explanation needed",
		},
		{
			Title: "The Gatherers",
			Lines: []string{"Zainab", "Bilgesu"},
			Extra: "These people got everyone on comm to vote on their polls",
		},
	}
}
