package domain

// VoteField identifies one side of a person's vote counter.
type VoteField string

const (
	VoteFieldUp   VoteField = "upvotes"
	VoteFieldDown VoteField = "downvotes"
)

// Valid reports whether f is a known counter field.
func (f VoteField) Valid() bool {
	return f == VoteFieldUp || f == VoteFieldDown
}

// VoteCounts is one person's reaction tally. Rows are created lazily at
// zero and never deleted.
type VoteCounts struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}
