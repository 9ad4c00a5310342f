package adventure

// GuideEntry pairs one choice with the outcome that choice unlocks.
type GuideEntry struct {
	Choice  string `json:"choice"`
	Outcome string `json:"outcome"`
}

// GuideSection groups the entries for one decision point. Correct lists
// the choices that work out best, where the section has such a thing.
type GuideSection struct {
	Title   string       `json:"title"`
	Entries []GuideEntry `json:"entries"`
	Correct []string     `json:"correct,omitempty"`
}

// solutionsGuide spells out every branch of the farm adventure. Served
// as-is, it never changes at runtime.
var solutionsGuide = []GuideSection{
	{
		Title: "Sisters Supply Store",
		Entries: []GuideEntry{
			{Choice: "Lock picking kit", Outcome: "Opens the cabin door. The diary entry inside convinces the farmer on the very first attempt."},
			{Choice: "Camera", Outcome: "Documents the cabin, powers the rock wall brag climb, records the selfie attempts and captures the final chant."},
			{Choice: "Picnic Mat", Outcome: "Summons the mountain elves in the forest and makes the picnic persuasion possible."},
			{Choice: "Coloring Book + Crayons", Outcome: "A calming forest interlude (one elf nearly chokes on a crayon) and the colouring persuasion route."},
			{Choice: "Uno", Outcome: "One reverse card skips the troll's guessing game entirely."},
			{Choice: "Deck of Cards", Outcome: "Card tricks for the farmer. Without it the tricks get mimed, which goes badly."},
			{Choice: "Balloons", Outcome: "A balloon dog that moves the farmer to tears."},
			{Choice: "GitHub Account", Outcome: "A Leetcode Club notification that powers the rock wall climb. Free for the tech lead."},
			{Choice: "Lip Gloss", Outcome: "No effect on the adventure, but you look great."},
			{Choice: "German to English Dictionary", Outcome: "No effect. The troll's German punishment cannot be translated away."},
			{Choice: "STEMM Sticker", Outcome: "No effect, goes straight on the water bottle."},
			{Choice: "Mirror", Outcome: "No effect. A certain tin tray does the same job for free."},
		},
	},
	{
		Title: "Paths",
		Entries: []GuideEntry{
			{Choice: "Cabin", Outcome: "The safest route. A lock picking kit finds the diary entry, a camera finds three stories, empty hands find a plushie."},
			{Choice: "Rock Climbing Wall", Outcome: "The dangerous route. Without a GitHub account or camera the climb nearly ends the adventure."},
			{Choice: "Forest", Outcome: "A maze with no exit. Only a picnic mat or colouring book summons the elves who know the way out."},
		},
		Correct: []string{"Cabin"},
	},
	{
		Title: "The Troll's Numbers",
		Entries: []GuideEntry{
			{Choice: "16", Outcome: "Correct. No punishment."},
			{Choice: "23", Outcome: "Correct. No punishment."},
			{Choice: "88", Outcome: "A palindrome. The slang comes out reversed."},
			{Choice: "45", Outcome: "German-sounding. The message turns into German."},
			{Choice: "97", Outcome: "Prime. Every cow but one disappears, which suits the farmer fine."},
			{Choice: "36", Outcome: "A perfect square. The cows turn into perfect cubes."},
		},
		Correct: []string{"16", "23"},
	},
	{
		Title: "Farmer Turn One",
		Entries: []GuideEntry{
			{Choice: "Investing Advice", Outcome: "Convinces immediately if more than 5 in change survived the store. Otherwise he throws it in your face."},
			{Choice: "Picnic", Outcome: "Convinces immediately, a shared potato meal ends thirty years of silence."},
			{Choice: "Play cards", Outcome: "Impresses but does not convince. Worse with an invisible deck."},
			{Choice: "Balloon Animals", Outcome: "Moves him, but not quite enough."},
			{Choice: "Selfie", Outcome: "After the cabin the camera roll does the talking. Otherwise he smashes the camera."},
			{Choice: "Colour together", Outcome: "A quiet bonding session. Needs the book and crayons."},
		},
	},
	{
		Title: "Farmer Turn Two",
		Entries: []GuideEntry{
			{Choice: "Investing Advice", Outcome: "Same rule as turn one, change above 5 wins."},
			{Choice: "Picnic", Outcome: "Still an instant win."},
			{Choice: "Colour together", Outcome: "With the book, a long written conversation about trolls and logarithms wins him over."},
			{Choice: "Selfie", Outcome: "Without a camera the mimed photo scares him into surrendering the farm."},
			{Choice: "Play cards", Outcome: "A silent game of cambio. He enjoys it, the shovel stays within reach."},
			{Choice: "Balloon Animals", Outcome: "He reflects deeply, but holds out one more turn."},
		},
	},
	{
		Title: "Farmer Turn Three",
		Entries: []GuideEntry{
			{Choice: "Anything", Outcome: "The third attempt always lands. Persistence is its own persuasion."},
		},
	},
	{
		Title: "Slang",
		Entries: []GuideEntry{
			{Choice: "Bare", Outcome: "The herd now quantifies everything as bare."},
			{Choice: "Cheeky Nandos", Outcome: "The cows have opinions about chicken now. Awkward."},
			{Choice: "Shut up Fatty", Outcome: "Rude, but the cows chant it with love."},
			{Choice: "Butters", Outcome: "The cows use it about each other. Herd morale drops."},
			{Choice: "Sicko", Outcome: "The herd's new highest compliment."},
			{Choice: "Having Beef", Outcome: "Deeply uncomfortable for everyone involved."},
			{Choice: "Mad", Outcome: "Everything on the farm is mad now, innit."},
		},
	},
}

// Guide returns the full walkthrough of the adventure's branches.
func Guide() []GuideSection {
	return solutionsGuide
}
