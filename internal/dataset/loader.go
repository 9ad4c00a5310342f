package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/PollPeak_Go/internal/domain"
)

// Sentinel errors for dataset loading
var (
	ErrInvalidDocument = errors.New("invalid document")
	ErrDuplicateVote   = errors.New("duplicate vote")
	ErrUnknownVoter    = errors.New("unknown voter")
)

// Loader handles loading and validating the static datasets.
type Loader interface {
	Load(dir string) (*domain.Dataset, error)
}

type fileLoader struct {
	validate *validator.Validate
}

// NewLoader creates a new Loader instance.
func NewLoader() Loader {
	return &fileLoader{validate: validator.New()}
}

// pollsDoc mirrors the on-disk polls document. The polls object is kept raw
// so its key order can be recovered with a token decoder.
type pollsDoc struct {
	People   []string        `json:"people" validate:"required,min=1,dive,required"`
	Honorary []string        `json:"honorary" validate:"dive,required"`
	Polls    json.RawMessage `json:"polls" validate:"required"`
}

// adventureDoc mirrors the on-disk adventure document.
type adventureDoc struct {
	Adventures  map[string]domain.AdventureLog `json:"adventures" validate:"required"`
	Paths       []string                       `json:"paths" validate:"required,min=1,dive,required"`
	ItemPrices  map[string]float64             `json:"item_prices" validate:"required"`
	Predictions map[string]string              `json:"predictions"`
}

// Load reads, parses and validates both documents from dir. Any shape or
// invariant violation fails the whole load; the engines never see malformed
// data.
func (l *fileLoader) Load(dir string) (*domain.Dataset, error) {
	polls, err := l.loadPolls(filepath.Join(dir, PollsFileName))
	if err != nil {
		return nil, err
	}

	adventures, err := l.loadAdventures(filepath.Join(dir, AdventureFileName), polls)
	if err != nil {
		return nil, err
	}

	return &domain.Dataset{Polls: polls, Adventures: adventures}, nil
}

func (l *fileLoader) loadPolls(path string) (*domain.PollSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, path, err)
	}

	var doc pollsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFileFailed, path, err)
	}
	if err := l.validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, path, err)
	}

	polls, err := decodeOrderedPolls(doc.Polls)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseFileFailed, path, err)
	}

	ps := &domain.PollSet{
		People:   doc.People,
		Honorary: doc.Honorary,
		Polls:    polls,
	}

	if err := validatePolls(ps); err != nil {
		return nil, err
	}
	return ps, nil
}

func (l *fileLoader) loadAdventures(path string, polls *domain.PollSet) (*domain.AdventureSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, path, err)
	}

	var doc adventureDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFileFailed, path, err)
	}
	if err := l.validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, path, err)
	}

	as := &domain.AdventureSet{
		Adventures:  doc.Adventures,
		Paths:       doc.Paths,
		ItemPrices:  doc.ItemPrices,
		Predictions: doc.Predictions,
	}

	if err := validateAdventures(as, polls); err != nil {
		return nil, err
	}
	return as, nil
}

// decodeOrderedPolls walks the raw polls object with a token decoder so that
// poll and option order match the document. encoding/json maps would drop
// the order the trendsetter/rebel calculations depend on.
func decodeOrderedPolls(raw json.RawMessage) ([]domain.Poll, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var polls []domain.Poll
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		pollName, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("poll name: expected string, got %v", tok)
		}

		options, err := decodeOrderedOptions(dec)
		if err != nil {
			return nil, fmt.Errorf("poll %q: %w", pollName, err)
		}
		polls = append(polls, domain.Poll{Name: pollName, Options: options})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return polls, nil
}

func decodeOrderedOptions(dec *json.Decoder) ([]domain.Option, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var options []domain.Option
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		optionName, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("option name: expected string, got %v", tok)
		}

		var body struct {
			Voters []string `json:"voters"`
		}
		if err := dec.Decode(&body); err != nil {
			return nil, fmt.Errorf("option %q: %w", optionName, err)
		}
		options = append(options, domain.Option{Name: optionName, Voters: body.Voters})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return options, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

// validatePolls enforces the one-vote-per-person-per-poll invariant and
// that every voter is a known member.
func validatePolls(ps *domain.PollSet) error {
	known := make(map[string]bool, len(ps.People))
	for _, p := range ps.People {
		known[p] = true
	}

	for _, poll := range ps.Polls {
		seen := make(map[string]string)
		for _, opt := range poll.Options {
			for _, voter := range opt.Voters {
				if !known[voter] {
					return fmt.Errorf("%w: %q in poll %q", ErrUnknownVoter, voter, poll.Name)
				}
				if prev, dup := seen[voter]; dup {
					return fmt.Errorf("%w: %q voted for both %q and %q in poll %q",
						ErrDuplicateVote, voter, prev, opt.Name, poll.Name)
				}
				seen[voter] = opt.Name
			}
		}
	}
	return nil
}

func validateAdventures(as *domain.AdventureSet, polls *domain.PollSet) error {
	for item, price := range as.ItemPrices {
		if price < 0 {
			return fmt.Errorf("%w: negative price for item %q", ErrInvalidDocument, item)
		}
	}

	for person, log := range as.Adventures {
		if !polls.HasPerson(person) {
			return fmt.Errorf("%w: adventure for %q", ErrUnknownVoter, person)
		}
		if log.Path < 1 || log.Path > len(as.Paths) {
			return fmt.Errorf("%w: path %d out of range for %q", ErrInvalidDocument, log.Path, person)
		}
		if !domain.IsAcceptedGuess(log.Guess) {
			return fmt.Errorf("%w: guess %d not accepted for %q", ErrInvalidDocument, log.Guess, person)
		}
		if len(log.Actions) > MaxPersuasionTurns {
			return fmt.Errorf("%w: %d actions recorded for %q", ErrInvalidDocument, len(log.Actions), person)
		}
	}
	return nil
}
