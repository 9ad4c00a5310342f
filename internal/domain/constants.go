package domain

// Shopping budget everyone sets out with; change is what survives the store.
const AdventureBudget = 20

// AcceptedGuesses is the set of numbers the troll accepts. Each one carries
// a distinct narrative consequence.
var AcceptedGuesses = []int{16, 23, 36, 45, 88, 97}

// Guess values with special handling in the narrative engine.
const (
	GuessReversed  = 88 // slang is delivered mirrored
	GuessGerman    = 45 // slang is replaced with a German phrase
	GuessSingleCow = 97 // every cow but one disappears
	GuessCubeCows  = 36 // the cows turn cube-shaped
)

// Path indices, matching the order of AdventureSet.Paths.
const (
	PathCabin    = 1
	PathRockWall = 2
	PathForest   = 3
)

// Store items referenced by narrative branches.
const (
	ItemLockPickingKit = "Lock picking kit"
	ItemCamera         = "Camera"
	ItemPicnicMat      = "Picnic Mat"
	ItemColoringBook   = "Coloring Book + Crayons"
	ItemGitHubAccount  = "GitHub Account"
	ItemUno            = "Uno"
	ItemDeckOfCards    = "Deck of Cards"
	ItemBalloons       = "Balloons"
)

// Items found along the way, never sold in the store.
const (
	ItemDiaryEntry = "Diary Entry"
	ItemPlushie    = "Plushie"
)

// Persuasion actions.
const (
	ActionPlayCards       = "Play cards"
	ActionCards           = "Cards" // older sign-up forms recorded this variant
	ActionInvestingAdvice = "Investing Advice"
	ActionBalloonAnimals  = "Balloon Animals"
	ActionSelfie          = "Selfie"
	ActionColourTogether  = "Colour together"
	ActionPicnic          = "Picnic"
)

// IsAcceptedGuess reports whether g is one of the troll's accepted numbers.
func IsAcceptedGuess(g int) bool {
	for _, v := range AcceptedGuesses {
		if v == g {
			return true
		}
	}
	return false
}
