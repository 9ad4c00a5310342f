package adventure

// Poll names the storyteller personalizes from
const (
	PollBender  = "ATLA: What bender would you be?"
	PollMovie   = "Best Comfort Movie"
	PollContent = "Best short-form content"
	PollPotato  = "What is your way to consume a potato"
	PollPlace   = "Where would you rather be rn"
	PollSpider  = "Best Spiderman"
)

// passTrait marks a trait the person never voted on.
const passTrait = "pass"

// trollPopulation is how many trolls spawn at the troll line. The farmer
// helped them figure out their logarithmic reproduction equation, it used
// to be 78.
const trollPopulation = 228

// Cache sizing for rendered journals
const (
	journalCacheSize = 64
	journalCacheTTL  = 30 // minutes
)

// Page titles
const (
	TitleIntro       = "The Journey Begins"
	TitleShopping    = "Preparations"
	TitleReceipt     = "The Receipt"
	TitleDeparture   = "The Path Forward"
	TitleChoice      = "The Choice"
	TitlePath        = "The Adventure Unfolds"
	TitleTroll       = "The Troll Line"
	TitleTurnOne     = "The Farmer: First Attempt"
	TitleTurnTwo     = "The Farmer: Second Attempt"
	TitleTurnThree   = "The Farmer: Final Attempt"
	TitleSlang       = "The Message"
	TitleAftermath   = "The Aftermath"
	TitleSummary     = "Adventure Summary"
	TitleNoData      = "No Adventure Recorded"
	TitleSoloNour    = "Nour's Farm Adventure"
	TitleSoloFinance = "A Day at the Store"
)

// Log messages
const (
	LogMsgJournalBuilt  = "adventure journal built"
	LogMsgJournalCached = "adventure journal served from cache"
)
