package wrapped

// PodiumSize is how many names fit on an award podium.
const PodiumSize = 3

// rebelSeed starts the running least-votes record above any plausible
// option's voter count.
const rebelSeed = 100

// Log messages
const (
	LogMsgStatsComputed = "wrapped stats computed"
	LogMsgDeckBuilt     = "wrapped deck built"
)
