package adventure

import (
	"strings"

	"github.com/osse101/PollPeak_Go/internal/domain"
)

// Traits are the poll answers the storyteller weaves into a journal.
// Every field falls back to "pass" when the person skipped that poll.
type Traits struct {
	Bender  string
	Movie   string
	Content string
	Potato  string
	Place   string
	Spider  string
}

// ResolveTraits looks up the person's first vote in each personality poll.
func ResolveTraits(polls *domain.PollSet, person string) Traits {
	return Traits{
		Bender:  firstVote(polls, PollBender, person),
		Movie:   firstVote(polls, PollMovie, person),
		Content: firstVote(polls, PollContent, person),
		Potato:  firstVote(polls, PollPotato, person),
		Place:   firstVote(polls, PollPlace, person),
		Spider:  firstVote(polls, PollSpider, person),
	}
}

func firstVote(polls *domain.PollSet, pollName, person string) string {
	poll := polls.PollByName(pollName)
	if poll == nil {
		return passTrait
	}
	if option := poll.OptionFor(person); option != "" {
		return option
	}
	return passTrait
}

// ColouringSubject is what ends up badly coloured in the forest, picked
// from the comfort movie vote with the Spiderman poll as a fallback.
func (t Traits) ColouringSubject() string {
	switch t.Movie {
	case "Confessions of a Shopaholic":
		return "Rebecca Bloomwood"
	case "My neighbor Totoro":
		return "Totoro"
	case "Princess Diaries":
		return "Princess Mia"
	case "Shrek":
		return "Shrek and Donkey"
	}
	if t.Spider != passTrait {
		return t.Spider
	}
	return "Venom"
}

// ColouringBookName is the franchise on the colouring book's cover.
func (t Traits) ColouringBookName() string {
	if t.Movie == passTrait {
		return "Spiderman"
	}
	return t.Movie
}

// DreamActivity phrases where the person would rather be mid-climb.
func (t Traits) DreamActivity() string {
	switch t.Place {
	case passTrait:
		return "at the farm"
	case "Theme Park", "Beach":
		return "at a " + strings.ToLower(t.Place)
	default:
		return strings.ToLower(t.Place)
	}
}
