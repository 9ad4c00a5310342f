package votes

// Log messages
const (
	LogMsgVoteCast      = "vote cast"
	LogMsgVoteRetracted = "vote retracted"
)
