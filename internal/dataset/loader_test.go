package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPollsJSON = `{
	"people": ["Nour", "Aiza", "Zainab"],
	"honorary": ["Maryam"],
	"polls": {
		"Best Snack": {
			"Crisps": {"voters": ["Nour", "Aiza"]},
			"Chocolate": {"voters": ["Zainab"]}
		},
		"Best Season": {
			"Winter": {"voters": ["Aiza"]},
			"Summer": {"voters": []}
		}
	}
}`

const validAdventureJSON = `{
	"adventures": {
		"Nour": {
			"date": "12/08/2025",
			"time": "14:05",
			"items": ["Camera", "Uno"],
			"path": 1,
			"guess": 36,
			"actions": ["Selfie", "Picnic", "Cards"],
			"slang": "Sigma"
		}
	},
	"paths": ["Cabin", "Forest", "Rock Climbing Wall"],
	"item_prices": {"Camera": 9.5, "Uno": 3},
	"predictions": {"Nour": "Will troll everyone"}
}`

func writeDataDir(t *testing.T, pollsJSON, adventureJSON string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, PollsFileName), []byte(pollsJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, AdventureFileName), []byte(adventureJSON), 0o644))
	return dir
}

func TestLoad_Valid(t *testing.T) {
	dir := writeDataDir(t, validPollsJSON, validAdventureJSON)

	ds, err := NewLoader().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"Nour", "Aiza", "Zainab"}, ds.Polls.People)
	assert.Equal(t, []string{"Maryam"}, ds.Polls.Honorary)
	require.Len(t, ds.Polls.Polls, 2)

	log, ok := ds.Adventures.Adventures["Nour"]
	require.True(t, ok)
	assert.Equal(t, 36, log.Guess)
	assert.Equal(t, "Cabin", ds.Adventures.PathName(log))
	assert.Equal(t, "Will troll everyone", ds.Adventures.Predictions["Nour"])
}

func TestLoad_PreservesDocumentOrder(t *testing.T) {
	dir := writeDataDir(t, validPollsJSON, validAdventureJSON)

	ds, err := NewLoader().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "Best Snack", ds.Polls.Polls[0].Name)
	assert.Equal(t, "Best Season", ds.Polls.Polls[1].Name)

	options := ds.Polls.Polls[0].Options
	require.Len(t, options, 2)
	assert.Equal(t, "Crisps", options[0].Name)
	assert.Equal(t, "Chocolate", options[1].Name)
	assert.Equal(t, []string{"Nour", "Aiza"}, options[0].Voters)
}

func TestLoad_DuplicateVote(t *testing.T) {
	polls := `{
		"people": ["Nour"],
		"polls": {
			"Best Snack": {
				"Crisps": {"voters": ["Nour"]},
				"Chocolate": {"voters": ["Nour"]}
			}
		}
	}`
	dir := writeDataDir(t, polls, validAdventureJSON)

	_, err := NewLoader().Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateVote)
}

func TestLoad_UnknownVoter(t *testing.T) {
	polls := `{
		"people": ["Nour"],
		"polls": {
			"Best Snack": {"Crisps": {"voters": ["Copilot"]}}
		}
	}`
	dir := writeDataDir(t, polls, validAdventureJSON)

	_, err := NewLoader().Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownVoter)
}

func TestLoad_AdventureForUnknownPerson(t *testing.T) {
	adventure := `{
		"adventures": {
			"Stranger": {"items": [], "path": 1, "guess": 16, "actions": [], "slang": "Bet"}
		},
		"paths": ["Cabin"],
		"item_prices": {}
	}`
	dir := writeDataDir(t, validPollsJSON, adventure)

	_, err := NewLoader().Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownVoter)
}

func TestLoad_RejectsBadGuess(t *testing.T) {
	adventure := `{
		"adventures": {
			"Nour": {"items": [], "path": 1, "guess": 41, "actions": [], "slang": "Bet"}
		},
		"paths": ["Cabin"],
		"item_prices": {}
	}`
	dir := writeDataDir(t, validPollsJSON, adventure)

	_, err := NewLoader().Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestLoad_RejectsPathOutOfRange(t *testing.T) {
	adventure := `{
		"adventures": {
			"Nour": {"items": [], "path": 4, "guess": 16, "actions": [], "slang": "Bet"}
		},
		"paths": ["Cabin", "Forest", "Rock Climbing Wall"],
		"item_prices": {}
	}`
	dir := writeDataDir(t, validPollsJSON, adventure)

	_, err := NewLoader().Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := NewLoader().Load(dir)
	require.Error(t, err)
}
