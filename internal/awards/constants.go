package awards

// Award titles that appear in scoring rules
const (
	TitleMostIndecisive    = "Most Indecisive"
	TitleMostDecisive      = "Most Decisive"
	TitleMostActive        = "Most Active"
	TitleTrendsetters      = "The Trendsetters"
	TitleRebels            = "The Rebels"
	TitleMostCultured      = "Most Cultured"
	TitleMostControversial = "Most Controversial"
	TitleWeirdest          = "Weirdest"
	TitleAlwaysAwake       = "Always Awake"
	TitlePagesCorrupted    = "Most Pages Corrupted"
	TitleOverallTeaser     = "Go see overall winners"
)

// Overall scoring weights
const (
	participationWeight = 0.3

	firstPlacePoints  = 3
	secondPlacePoints = 2
	thirdPlacePoints  = 1

	firstPlacePenalty  = 10
	secondPlacePenalty = 8
	thirdPlacePenalty  = 6
)

// Log messages
const (
	LogMsgCeremonyBuilt = "award ceremony built"
)
