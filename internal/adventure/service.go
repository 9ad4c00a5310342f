package adventure

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/PollPeak_Go/internal/domain"
	"github.com/osse101/PollPeak_Go/internal/logger"
)

// Service renders personalized farm adventure journals.
type Service interface {
	// Journal returns the full page sequence for one person.
	Journal(ctx context.Context, person string) ([]domain.Page, error)
	// People lists everyone with a recorded adventure, sorted.
	People() []string
	// Guide returns the static solutions walkthrough.
	Guide() []GuideSection
	// Prediction returns the end-of-year prediction written for person.
	Prediction(ctx context.Context, person string) (string, error)
	// Predictions lists everyone a prediction was written for, sorted.
	Predictions() []string
}

type service struct {
	set   *domain.AdventureSet
	polls *domain.PollSet
	cache *expirable.LRU[string, []domain.Page]
}

// NewService creates an adventure service over the loaded dataset. Journals
// are deterministic, so rendered pages are cached.
func NewService(set *domain.AdventureSet, polls *domain.PollSet) Service {
	return &service{
		set:   set,
		polls: polls,
		cache: expirable.NewLRU[string, []domain.Page](journalCacheSize, nil, journalCacheTTL*time.Minute),
	}
}

func (s *service) Journal(ctx context.Context, person string) ([]domain.Page, error) {
	log := logger.FromContext(ctx)

	name, err := s.resolve(person)
	if err != nil {
		return nil, err
	}

	if pages, ok := s.cache.Get(name); ok {
		log.Debug(LogMsgJournalCached, "person", name)
		return pages, nil
	}

	pages := s.render(name)
	s.cache.Add(name, pages)
	log.Debug(LogMsgJournalBuilt, "person", name, "pages", len(pages))
	return pages, nil
}

func (s *service) render(name string) []domain.Page {
	// Two people never made it up the mountain.
	switch name {
	case "Bilgesu":
		return []domain.Page{{
			Title: TitleSoloFinance,
			Body:  "<p>You were handling the finances at the Sister Supply Store all day.</p>",
		}}
	case "Nour":
		return []domain.Page{{
			Title: TitleSoloNour,
			Body:  "<p>You hid behind a LOG and TROLLED everyone on comm.</p><p><i>8 points for <b>Nour</b></i></p>",
		}}
	}

	adv := s.set.Adventures[name]
	if len(adv.Items) == 0 || len(adv.Actions) == 0 {
		return []domain.Page{{
			Title: TitleNoData,
			Body:  "<p>Adventure data not available</p>",
		}}
	}

	return newStoryteller(s.set, s.polls, name, adv).Pages()
}

// resolve matches person against the adventure roster, ignoring case and
// surrounding whitespace.
func (s *service) resolve(person string) (string, error) {
	trimmed := strings.TrimSpace(person)
	for name := range s.set.Adventures {
		if strings.EqualFold(name, trimmed) {
			return name, nil
		}
	}
	if s.polls.HasPerson(trimmed) || s.polls.IsHonorary(trimmed) {
		return "", fmt.Errorf("%w: %s", domain.ErrAdventureNotFound, trimmed)
	}
	return "", fmt.Errorf("%w: %s", domain.ErrPersonNotFound, trimmed)
}

func (s *service) People() []string {
	people := make([]string, 0, len(s.set.Adventures))
	for name := range s.set.Adventures {
		people = append(people, name)
	}
	sort.Strings(people)
	return people
}

func (s *service) Guide() []GuideSection {
	return Guide()
}

func (s *service) Prediction(ctx context.Context, person string) (string, error) {
	trimmed := strings.TrimSpace(person)
	for name, text := range s.set.Predictions {
		if strings.EqualFold(name, trimmed) {
			return text, nil
		}
	}
	return "", fmt.Errorf("%w: %s", domain.ErrPersonNotFound, trimmed)
}

func (s *service) Predictions() []string {
	people := make([]string, 0, len(s.set.Predictions))
	for name := range s.set.Predictions {
		people = append(people, name)
	}
	sort.Strings(people)
	return people
}
