package adventure

import (
	"fmt"
	"math"
	"strings"

	"github.com/osse101/PollPeak_Go/internal/domain"
)

// storyteller renders one person's journal. The inventory starts as the
// shopping list and grows with what the path hands out, which is why page
// order matters.
type storyteller struct {
	person    string
	log       domain.AdventureLog
	set       *domain.AdventureSet
	polls     *domain.PollSet
	traits    Traits
	inventory []string
	change    int
}

func newStoryteller(set *domain.AdventureSet, polls *domain.PollSet, person string, log domain.AdventureLog) *storyteller {
	return &storyteller{
		person:    person,
		log:       log,
		set:       set,
		polls:     polls,
		traits:    ResolveTraits(polls, person),
		inventory: append([]string(nil), log.Items...),
		change:    int(math.Floor(domain.AdventureBudget - spendTotal(set, person, log))),
	}
}

// spendTotal sums the receipt. Suweda's GitHub account never hits the
// till, she is tech lead and already owns one.
func spendTotal(set *domain.AdventureSet, person string, log domain.AdventureLog) float64 {
	total := 0.0
	for _, item := range log.Items {
		if person == "Suweda" && item == domain.ItemGitHubAccount {
			continue
		}
		total += set.ItemPrices[item]
	}
	return total
}

func (st *storyteller) holds(item string) bool {
	for _, it := range st.inventory {
		if it == item {
			return true
		}
	}
	return false
}

func (st *storyteller) pickUp(item string) {
	st.inventory = append(st.inventory, item)
}

func (st *storyteller) action(turn int) string {
	return actionOr(st.log, turn, st.traits.Bender)
}

// Pages renders the whole journal in reading order.
func (st *storyteller) Pages() []domain.Page {
	convinced := convincedAfter(st.log, st.change, st.traits.Bender)

	pages := []domain.Page{
		{Title: TitleIntro, Body: st.intro()},
		{Title: TitleShopping, Body: st.shopping()},
		{Title: TitleReceipt, Body: st.receipt()},
		{Title: TitleDeparture, Body: st.departure()},
		{Title: TitleChoice, Body: st.pathChoice()},
		{Title: TitlePath, Body: st.pathAdventure()},
		{Title: TitleTroll, Body: st.trollDialogue()},
		{Title: TitleTurnOne, Body: st.turnOne()},
	}
	if convinced > 1 {
		pages = append(pages, domain.Page{Title: TitleTurnTwo, Body: st.turnTwo()})
	}
	if convinced > 2 {
		pages = append(pages, domain.Page{Title: TitleTurnThree, Body: st.turnThree()})
	}
	pages = append(pages,
		domain.Page{Title: TitleSlang, Body: st.slang()},
		domain.Page{Title: TitleAftermath, Body: st.aftermath()},
		domain.Page{Title: TitleSummary, Body: st.summary()},
	)
	return pages
}

type pageBuilder struct {
	sb strings.Builder
}

func (b *pageBuilder) p(format string, args ...any) {
	b.sb.WriteString("<p>")
	fmt.Fprintf(&b.sb, format, args...)
	b.sb.WriteString("</p>")
}

func (b *pageBuilder) raw(s string) {
	b.sb.WriteString(s)
}

func (b *pageBuilder) html() string {
	return b.sb.String()
}

func (st *storyteller) intro() string {
	var b pageBuilder
	b.p("You live near mount poll peak. At the top lives a very old farmer, who has not spoken to anyone or anything for the past 30 years. No one dares to enter his farm at the risk of interacting with him.")
	b.p("<em>Until today!</em>")
	b.p("You heard a rumor that the reason he's isolated is because his cows have the ability to speak English. This farmer read animal farm and does NOT wanna risk anything.")
	b.p("But as an English language enthusiast you decide to set off with 20 in your backpack because you feel like you have a crucial message to deliver.")
	return b.html()
}

func (st *storyteller) shopping() string {
	var b pageBuilder
	b.p("You decide to spend the 20, thinking it will help you on your journey. After 30 minutes of hard thinking, you carry your stuff to the cashier.")
	b.p("You watch as your things are dragged by the conveyer belt. You and the cashier give each other an awkward look. \"Why does the cashier kind of look like Bilgesu?\" you think to yourself, but shut the thought down. Its not like shes the treasurer or something.")
	b.p("After the brief moment of awkwardness, you get handed your receipt:")
	return b.html()
}

func (st *storyteller) receipt() string {
	var b pageBuilder
	b.raw("<div class=\"receipt\">")
	b.p("<strong>SISTERS SUPPLIES STORE</strong><br/>13 Poll Peak Base Rd<br/>Tel: (555) 123-STEMM")
	b.p("Date: %s<br/>Time: %s<br/>Cashier: Bilgesu?", st.log.Date, st.log.Time)

	total := 0.0
	b.raw("<ul>")
	for _, item := range st.log.Items {
		if st.person == "Suweda" && item == domain.ItemGitHubAccount {
			continue
		}
		price := st.set.ItemPrices[item]
		total += price
		b.raw(fmt.Sprintf("<li>%s - $%.2f</li>", item, price))
	}
	b.raw("</ul>")
	b.p("TOTAL: $%.2f", total)
	b.p("Thank you %s, for shopping with us!<br/>Good luck on your adventure!", st.person)
	b.raw("</div>")

	if st.person == "Suweda" && st.log.HasItem(domain.ItemGitHubAccount) {
		b.p("You realized the GitHub account is not on your receipt. But why would it be? You're tech lead! Of course you have a GitHub Account!")
	}
	return b.html()
}

func (st *storyteller) departure() string {
	var b pageBuilder
	if st.change > 0 {
		b.p("You pocket your %d of change and head out.", st.change)
	} else {
		b.p("You leave without any change, you are now one step closer to debt. Your stomach drops. What if you need something else on the journey? YOLO you say and head out.")
	}
	b.p("Your heart is racing, your palms are sweaty. It's getting real now. As you walk, the sun that was once shining warmly on your back suddenly disappears.")
	b.p("You slowly raise you head up and see something towering above you. You've reached the base of the mountain.")
	return b.html()
}

func (st *storyteller) pathChoice() string {
	var b pageBuilder
	b.p("There are three paths ahead of you:")
	b.raw("<ol><li>A cabin on the mountain's left edge.</li><li>A rock climbing wall on the mountain's middle.</li><li>A forest on the mountain's right edge.</li></ol>")
	b.p("You take a deep breath, feeling the weight of your decision. Each path seems to promise a different adventure, but you know you can only choose one.")
	b.p("The cabin looks mysterious, the rock climbing wall challenges your adventurous spirit, and the forest whispers secrets of its own. Which path will you choose?")
	b.p("<strong>You chose: %s</strong>", st.set.PathName(st.log))
	return b.html()
}

func (st *storyteller) pathAdventure() string {
	switch st.log.Path {
	case domain.PathCabin:
		return st.cabinPath()
	case domain.PathForest:
		return st.forestPath()
	case domain.PathRockWall:
		return st.rockWallPath()
	}
	return "<p>Your adventure continues in ways you never expected...</p>"
}

func (st *storyteller) cabinPath() string {
	var b pageBuilder
	b.p("You approach the mysterious cabin. The wooden structure creaks in the mountain wind, and you can see a faint light flickering through the windows.")

	switch {
	case st.log.HasItem(domain.ItemLockPickingKit):
		b.p("You notice the door is locked, but fortunately you brought your lock picking kit! After a few tense minutes of work, you hear the satisfying click of the lock opening.")
		b.p("Inside, you discover an old journal filled with daily diary entries written in a child's handwriting. The pages are yellowed with age, and you can barely make out the words in the dim light. You rip the page and shove it into your bag. This sounds an awful lot like the farmer, you think. Maybe it will be useful when I get there.")
		st.pickUp(domain.ItemDiaryEntry)
	case st.log.HasItem(domain.ItemCamera):
		b.p("You decide to document this mysterious place. You take several photos of the cabin's exterior, capturing its weathered wood. You decide to scout the perimeter. At a distance you can see sections blocked off by fences, it looks farm-like, you think. You decide to take a picture of it, intrigued by the stillness of what you believe used to be a vibrant farm.")
		b.p("You walk towards the back of the cabin and find a plushie. You can't make out what animal it's supposed to be as it has been left in the dirt for so long it's starting to decompose. You decide to take a picture of that as well.")
		b.p("Still curious, you peer into one of the windows. The sunlight perfectly strikes a photo sitting on a desk. It's a picture of a troll with a baby cow. \"Is that the farmer's cow?\" you think. You decide to snap a photo.")
		b.p("Satisfied with the three photos and the stories you might unravel, you decide to continue your adventure.")
	default:
		b.p("You try the door handle, but it's locked tight. You peer through the windows but can only make out shadowy shapes inside.")
		b.p("Without the right tools, you can only admire the cabin from the outside and wonder what secrets it holds. So you decide to tour the perimeter and see if you can find any clues about its history. There you see a plushie, its white fur now black from the dirt surrounding it. You pick it up from its tail and place it in your backpack. Maybe I can give this to the farmer? you think. What the heck would he do with a dirty plushie though? You decide it won't hurt to try and continue to the farm.")
		st.pickUp(domain.ItemPlushie)
	}
	return b.html()
}

func (st *storyteller) forestPath() string {
	var b pageBuilder
	b.p("For some reason, the tall maze of trees calls out to you. You take a deep breath and head towards the forest.")
	b.p("As you draw closer to the trees, you feel your breath get heavy. Your legs ache as you trudge through the steep terrain, but you push on, determined to deliver your message.")
	b.p("You finally reach the forest. As far as your eye can see the landscape is covered in trees. You extend your neck trying to look for an exit, but after searching for what feels like hours, you realize there is none.")

	switch {
	case st.log.HasItem(domain.ItemPicnicMat):
		b.p("Defeated and tired, you take your picnic mat out and lay down. As you rest, you notice the forest seems less threatening. The longer you stare up into the sky, the brighter the cracks in the trees becomes. Suddenly you see a stream of glitter, before you can react an elf pops up in your face.")
		b.p("\"Hiya friend! Can me and my friends sit with ya?\" Their voice sounds familiar, making you feel strangely at home. You sit up and brush the mat, gesturing them to take a seat. A dozen elves come flocking onto the mat, staring all wide eyed and smiley at you.")
		b.p("You feel a bit uneasy as these elves have a bit of a familiar look to them. \"Sorry but what do you guys do?\" you ask.")
		b.p("\"We're the elves of this mountain! We maintain balance in the ecosystem by helping anyone that needs it!\"")
		b.p("Thats when it clicks. These elves look like Zainab and Aliyah! This is your chance to escape this forest")
		b.p("\"Wait so if I need help getting out of this forest can you help me?\"")
		b.p("\"We sure can! Just follow me!\"")
		b.p("And just like that, with the snap of the elf's finger you find yourself standing in front of the forest. You thank all twelve of the elves and continue on your journey.")
	case st.log.HasItem(domain.ItemColoringBook):
		b.p("\"I'll figure this out in a bit,\" you think to yourself. You take out your %s colouring book and start badly colouring %s.", st.traits.ColouringBookName(), st.traits.ColouringSubject())
		b.p("The simple act of coloring helps calm your nerves and gives you time to think about your situation. Just as you're about to make a move an elf pops up in front of you.")
		b.p("\"Hello there friend! Can me and my other friend sit with ya?\" Their voice sounds familiar, making you feel strangely at home. You look up from your colouring book and hand one of them a green crayon. They all gather round the chosen elf, staring at the crayon in amazement.")
		b.p("\"This is a crayon! It's used -\"")
		b.p("But just as you're about to finish your sentence you watch the elf shove the crayon in their mouth.")
		switch st.person {
		case "Aliyah":
			b.p("Next thing you know, the elf grabbing at it's neck and gasping for air, their friend is screaming and running in circles. While you look at this disaster unfold, you can't help but see the elves resemblance to Zainab and yourself. But just as you're about to mention it the gravity of the situation hits you.")
		case "Zainab":
			b.p("Next thing you know, the elf grabbing at it's neck and gasping for air, their friend is screaming and running in circles. While you look at this disaster unfold, you can't help but see the elves resemblance to yourself and Aliyah. But just as you're about to mention it the gravity of the situation hits you.")
		}
		b.p("\"You're choking!\" you say")
		b.p("You get up and perform the heimlich on the choking elf. After what feels like forever you see a crayon fly across the forest.")
		b.p("\"Phew\" the elf exclaims. \"How can I repay you?\"")
		b.p("\"Can you help me get out of this forest?\" you ask")
		b.p("\"Sure I can!\"")
		if st.person == "Aliyah" || st.person == "Zainab" {
			b.p("And just like that, with the snap of the elf's finger you find yourself standing in front of the forest. Before you can even begin to process that you have an elf doppleganger, both elves snap their fingers again and disappear. You convince yourself you're hallucinating and continue on your journey.")
		} else {
			b.p("And just like that, with the snap of the elf's finger you find yourself standing in front of the forest. You thank the Zainab and Aliyah look alikes and continue on your journey.")
		}
	default:
		if st.traits.Bender == "Airbender" {
			b.p("As you wander through the forest, you feel a gentle breeze guiding you. You close your eyes and focus on the air around you, using your bending skills to navigate through the dense trees.")
		}
		b.p("You wander deeper into the forest, using your instincts to navigate. The trees seem to whisper secrets as you pass by.")
		b.p("Eventually, you find a small clearing where sunlight breaks through the canopy, giving you hope and a moment of peace.")
	}
	return b.html()
}

func (st *storyteller) rockWallPath() string {
	var b pageBuilder
	b.p("The imposing rock wall stretches high above you, its surface marked with natural handholds and challenging overhangs.")
	b.p("You feel your heart racing as you prepare for the climb. I wish I was %s right now you think to yourself. But you must focus. This is the moment of truth.", st.traits.DreamActivity())

	switch {
	case st.log.HasItem(domain.ItemGitHubAccount):
		b.p("All of a sudden your phone rings. You look down and see a message from Suweda. Leetcode Club today! You clap your hands together and feel a surge of energy run through your veins. It felt like a mixture of red bull, electricity and bad social skills entering your body. Theres no way Im missing leetcode club you think, and with that you grip the holds with all your strength and launch yourself upwards.")
		b.p("You make steady progress up the wall, your muscles burning but your determination unwavering. After an intense climb, you reach the top and are rewarded with a breathtaking view of the farm above.")
	case st.log.HasItem(domain.ItemCamera):
		b.p("You pull out your camera and start taking pictures of the wall. \"Imagine telling people I cleared this,\" you think to yourself. The very idea of being able to brag about it fills you with energy.")
		b.p("You tackle the wall with renewed vigor, your enhanced energy helping you power through the challenging sections with surprising ease.")
		b.p("As you reach the top, fatigue starts to strike. You stop for a bit to try and catch your breath and make the mistake of looking down. A fall from here can kill you. Panic starts to set in. You shakily continue the climb.")
		b.p("The end is drawing near. The anticipation of relief is just enough to keep you going. You reach the final hold and get ready to push yourself up onto the flat terrain.")
		b.p("But you can't do it. Your remaining energy is being spent on trying to keep you still. Thats when you feel a force pull you up. As you lay on your back, you are sheilded from the sun by Khadeja and Rameen.")
		b.p("\"Did you actually think we'd let you die with an insane picture like that?\" they say")
		b.p("Just as you're about to respond, they disappear. Too tired to process what happened, you choose to ignore the whole situation.")
		b.p("\"I cant wait to post this on my %s\", you say through panting breaths. But before you do that you remembered you need to reach the farm.", st.traits.Content)
	default:
		b.p("Without anything to help you, you decide to attempt a free climb. You make it partway up using just your hands and determination.")
		b.p("Eventually your arms start to get shaky. You look down and realize you're quite high up. A fall from here would be deadly. Panic sets in. Your hands start to slip. You scream for help only to be met with your own echo. \"I'm not going to die like this\" you think and gather all your strength to complete the climb. Alas! The end is in sight. You extend your arm to grasp the last hold, the thought of relief pushing you forwards.")
		b.p("Then your foot slips.")
		b.p("Your heart drops, you scream as you feel yourself get pulled towards the ground. You close your eyes and brace for impact...")
		b.p("Nothing happens. You open your eyes and look up. Aiza and Samiya are there <i>reaching out</i>, each of them grabbing one hand. They help you up and before you can thank them, they disappear. You know you're tight on time so decide to deal with this later. You take a deep breath and continue your journey.")
	}
	return b.html()
}

func (st *storyteller) trollDialogue() string {
	var b pageBuilder
	b.p("As you walk, you see a line of cut logs laid out across the mountain. Without knowing, you cross into the troll line and bump into a troll. You sigh, why does this troll look familiar?")
	b.p("All of a sudden a troll spawns from every log in the forest. There were %d trolls to be exact. WHY DO ALL THESE TROLLS LOOK THE SAME?", trollPopulation)
	b.p("'Okay woah there why are there so many of you?' you ask, confused.")
	b.p("The trolls face lights up. 'Oh! We actually reproduce logarithmically! But don't worry we're slowing down soon'")
	b.p("'How soon is soon?' you ask")
	b.p("'Around a thousand years' the troll says with a smile.")
	b.p("'WHAT? THATS NOT SOON!' you exclaim")
	b.p("'HEY YOU HAVE NO RIGHT TO SPEAK YOUR BREED PRODUCES EXPONENTIALLY! HOW DID YOU REACH EIGHT BILLION ALREADY?' the troll yells back")
	b.p("'Okay okay chill, I just want to get to the farm' you say. The troll laughs at that.")
	b.p("The troll says if you do not guess ONE of the two numbers it's thinking of you will be punished without knowing what the punishment is.")

	if st.log.HasItem(domain.ItemUno) {
		b.p("'No' you say.")
		b.p("'What do you mean no?' the troll is beginning to look stressed 'I am very powerful in this forest. You don't want to mess with me.'")
		b.p("'Oh ya?' you say pulling out an Uno reverse card. 'How about you guess my number instead?'")
		b.p("The troll drops to it's knees. 'I can't believe I got trolled by a human' it says. 'Fine, you win. You can go to the farm now'")
		b.p("You walk past the troll line and continue your journey to the farm")
		b.p("<i>Minus one point for <b>Nour</b></i>")
		return b.html()
	}

	b.p("'Okay, my guess is %d!' you say.", st.log.Guess)
	b.p("The troll grins and rubs its hands together. 'Very well then' it says.")

	if st.log.Guess == domain.GuessCubeCows || st.log.Guess == domain.GuessSingleCow {
		b.p("Just then you hear a faint scream coming from the farm.")
		b.p("'What was that?!' you exclaim")
		b.p("'Idk' the troll says cooly as it shrugs its shoulders. 'But you're free to go now!'")
	}

	b.p("'Did I get the number correct?' you ask")
	b.p("'There's no way of knowing until you arrive to the farm' the troll says")
	b.p("You can barely hide your annoyance. The troll sees this and realizes it succesfully trolled you")
	b.p("<i>One point for <b>Nour</b></i>")
	return b.html()
}

func (st *storyteller) summary() string {
	var b pageBuilder
	b.p("<strong>Path Chosen:</strong> %s", st.set.PathName(st.log))

	b.raw("<p><strong>Items Brought:</strong></p><ul>")
	for _, item := range st.log.Items {
		b.raw(fmt.Sprintf("<li>%s ($%.2f)</li>", item, st.set.ItemPrices[item]))
	}
	b.raw("</ul>")

	b.raw("<p><strong>Actions Taken:</strong></p><ul>")
	for _, action := range st.log.Actions {
		b.raw(fmt.Sprintf("<li>%s</li>", action))
	}
	b.raw("</ul>")

	b.p("<strong>Guess:</strong> %d", st.log.Guess)
	b.p("<strong>Slang:</strong> \"%s\"", st.log.Slang)
	return b.html()
}
