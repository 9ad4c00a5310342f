package dataset

// File names expected under the data directory
const (
	PollsFileName     = "polls.json"
	AdventureFileName = "adventure.json"
)

// MaxPersuasionTurns caps the recorded persuasion actions per adventure.
const MaxPersuasionTurns = 3

// Error message templates
const (
	ErrMsgReadFileFailed  = "failed to read dataset file %s: %w"
	ErrMsgParseFileFailed = "failed to parse dataset file %s: %w"
)
