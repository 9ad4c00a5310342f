package adventure

import (
	"github.com/osse101/PollPeak_Go/internal/domain"
)

func reverseWord(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func (st *storyteller) slang() string {
	word := st.log.Slang
	switch st.log.Guess {
	case domain.GuessReversed:
		word = reverseWord(word)
	case domain.GuessGerman:
		word = "Rindfleisch essen"
	}

	var b pageBuilder

	if st.log.Guess == domain.GuessSingleCow {
		b.p("You walk past the sobbing farmer and into the field. It's completely empty except for one lonely cow standing in the middle, chewing slowly.")
		b.p("\"Well,\" you think, \"one is better than none.\"")
		b.p("You walk up to the cow, look it dead in the eyes and say \"%s\".", word)
		b.p("The cow stops chewing. It stares at you for a long moment. Then, in a perfect deadpan, it says \"%s\" right back.", word)
		b.p("Mission accomplished. Sort of.")
		return b.html()
	}

	b.p("This is it. The moment you've been waiting for. You walk into the field and the cows slowly gather around you, curious about the newcomer.")

	if st.log.Guess == domain.GuessCubeCows {
		b.p("Except these aren't normal cows. Every single one of them is a perfect cube. Blocky heads, blocky bodies, blocky legs. They move in stiff little hops, like someone is animating them at ten frames a second.")
		b.p("\"So this is what the troll meant\" you think. \"And this is why the farmer was so distressed.\"")
		b.p("You decide a cube cow is still a cow, and a cow is a student.")
	}

	b.p("You clear your throat, look at your audience and say, loud and clear: \"%s\"", word)
	b.p("Silence. A hundred pairs of eyes (some of them square) stare back at you.")
	b.p("Then one cow near the front repeats it. Then another. Then the whole herd, in unison: \"%s! %s! %s!\"", word, word, word)

	switch {
	case st.log.Guess == domain.GuessReversed && st.traits.Bender == "Waterbender":
		b.p("Suddenly a wall of water erupts between you and the herd, bent out of thin air by your own clenched fists. The chant hits the water wall and bounces back at you, flipped around, and the herd picks up the reflection instead: \"%s! %s!\"", st.log.Slang, st.log.Slang)
		b.p("You taught them the word after all. Just not the way you planned.")
	case st.log.Guess == domain.GuessReversed && len(st.log.Actions) > 2 && st.log.Actions[2] == domain.ActionPicnic:
		b.p("Behind the herd you spot the farmer's abandoned tray, propped against the fence, its surface oddly reflective. The chant bounces off it and comes back mirrored, and the cows at the back pick up the reflection: \"%s! %s!\"", reverseWord(word), reverseWord(word))
		b.p("So that's why someone would need a tray like that.")
	case st.log.Guess == domain.GuessGerman:
		b.p("Wait. That's not slang. That's German. The troll's punishment finally clicks into place: everything you meant to say comes out in German now.")
		b.p("On the bright side, you are now the proud teacher of the world's only German-speaking herd.")
	}

	if st.log.Guess == domain.GuessCubeCows {
		b.raw("<p><em>and a bunch of Minecraft cows no less</em></p>")
	}

	if st.holds(domain.ItemCamera) {
		b.p("You pull out your camera and record the chanting herd. Nobody back home is going to believe this without proof.")
	}

	b.p("You stand there, surrounded by a chorus of chanting cows, and smile. You actually did it. You taught the cows slang.")

	if st.log.Guess == domain.GuessGerman {
		b.p("Even if it was the wrong language.")
	}

	return b.html()
}

func (st *storyteller) aftermath() string {
	var b pageBuilder
	b.p("News of the talking herd spreads faster than the trolls reproduce. Within a week the farm has a queue at the gate, and within a month it has a gift shop.")

	switch st.log.Guess {
	case domain.GuessSingleCow:
		b.p("Your single cow becomes a minor celebrity. One cow, one word, endless interviews. The troll insists the vanishing herd was never meant as a punishment, but nobody believes a troll.")
	case domain.GuessCubeCows:
		b.p("The cube cows are an instant sensation. Game developers fly in from around the world to study them. The farmer, watching from a safe distance, still refuses to milk one.")
	case domain.GuessGerman:
		b.p("Linguists descend on the farm to document the only bovine German dialect in existence. You smile and nod through every interview, since you can only answer in German anyway.")
	case domain.GuessReversed:
		b.p("The mirrored chant becomes a local tongue twister. Kids visit the farm just to shout words at the water wall and hear them come back reversed.")
	default:
		b.p("The herd keeps chanting \"%s\" at every visitor, and the word quietly enters the local dictionary. Strictly speaking it was already in yours.", st.log.Slang)
	}

	if st.holds(domain.ItemCamera) {
		b.p("Your recording of the first chant goes viral. The comments are split evenly between \"fake\" and \"I was there\".")
	}

	b.p("The farmer, wherever he ended up, is finally at peace. And you? You head home with an empty wallet, a full heart and a story nobody will ever let you finish telling.")
	return b.html()
}
