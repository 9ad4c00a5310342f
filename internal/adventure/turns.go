package adventure

import (
	"github.com/osse101/PollPeak_Go/internal/domain"
)

func (st *storyteller) turnOne() string {
	var b pageBuilder
	b.p("You manage to escape the troll with no effect (that you know of) And then you finally reach the farm!!! You see an old man running towards you with a shovel in his hand. You have three tries to convince him that you're a nice and friendly person")
	b.p("You're aware that the cows are near, so you refrain from speaking in case the cows pick up what you say. Everything must be done in silence")

	switch st.log.Guess {
	case domain.GuessCubeCows:
		b.p("You raise your arms as the farmer approaches you and place your index finger to your lips, signalling that you will not speak. He is still charging towards you. He looks really distressed.")
		b.p("\"M-my cows\" he says between deep breaths. \"They're not right.. somethings wrong they're different\"")
		b.p("\"Of course they're different\" you think. \"They speak English!\"")
		b.p("You conclude that he's just old and has memory issues, so you try and calm him down.")
	case domain.GuessSingleCow:
		b.p("As he runs towards you his voice gets clearer. \"They're all gone!\" he shouts. \"All but one! I'm free! I'm free!\"")
		b.p("\"Excuse me sir! What is going on?\"")
		b.p("\"My cows\" he says, a massive grin on his face. \"I don't know how but they're all gone! Did a troll ask you to guess a number?\"")
		b.p("\"Yes\" you say")
		b.p("\"Oh thank god! You guessed wrong! This must be one of the trolls punishments! I've been waiting for this day! Thank you! Thank you!\" he shouts. He's practically ripping his hair out from happiness")
		b.p("You realize the farmer is too euphoric to even notice you anymore. He's begun kissing the floor and crying uncontrollably on his knees. Seeing your opportunity you slip past him and enter the farm.")
		return b.html()
	default:
		b.p("You raise your arms as the farmer approaches you and place your index finger to your lips, signalling that you will not speak. The farmer relaxes and places his shovel down. Now is your time to make your move.")
	}

	if st.holds(domain.ItemDiaryEntry) {
		b.p("You pull out the diary entry you found in the cabin and show it to the farmer. His eyes widen as he recognizes the handwriting. \"This... this is my writing,\" he whispers, a mix of shock and sorrow in his voice. \"To think I once dreamed of the life I have, just for me to hate it now.\"")
		b.p("The farmer's expression softens as he looks at you with a newfound understanding. \"You found this in the cabin, didn't you? I haven't been back there in years. Thank you for bringing this to me. It means more than you know.\"")
		b.p("You nod, feeling a sense of accomplishment. \"I just wanted to help. Animal Farm is fiction, your cows won't turn on you. Not if I talk to them for you,\" you say, pointing at the cows. The farmer chuckles softly, a genuine smile breaking through his weathered face. \"Maybe you're right. Maybe it's time I stop fearing what I don't understand.\"")
		b.p("\"It's time\" he says. \"I've been running away from the inevitable. Silence doesn't sit well with the mind. I was so expressive then, now I'm just a soulless vessel. What is life without connection? Go do it. Talk to the cows. Let them connect the way we just did. Let them learn the value of expression. A value I've failed to recognize.\"")
		b.p("\"Thank you\" he mutters, a sad smile on his face.")
		b.p("And with that, the farmer clutches his diary entry, gives you a slight nod and heads back into his shed.")
		return b.html()
	}

	switch action := st.action(0); action {
	case domain.ActionPlayCards, domain.ActionCards:
		if st.holds(domain.ItemDeckOfCards) {
			b.p("For your first attempt, you decide to pull out a deck of cards. You shuffle them and fan them out, gesturing the farmer to pick one. The farmer thinks for a bit and picks a card near the middle of the deck.")
			b.p("You hand him back the deck and allow him to place the card wherever he wants. You take it back and perform some impressive riffle shuffles and deck cuts. The farmer can't help but smile at this impressive display of dexterity.")
			b.p("Now is the real showstopper moment, you take the top card out of the deck and show the farmer. You see a frown creep up on his face.")
			b.p("He thinks you messed up the trick.")
			b.p("You smile and flick your wrist. Just like that the King of Hearts is staring back at the farmer as he stares back at you in awe.")
		} else {
			b.p("You reach into your backpack trying to feel for your deck of cards. After minutes of searching your heart drops as you realize you forgot to buy cards. In a moment of desperation, you pull out nothing and decide to improvise and mime shuffling the deck. You hand the invisible deck to the farmer and he stares at you in confusion. Your right hand remains in a dealers grip, you stare at him manically and point at your empty hand with your left hand, mouthing pick one.")
			b.p("The farmer hesitantly picks a card from the invisible deck. He pretends to pensively look at the card and memorize it. You take it back and perform some impressive invisible riffle shuffles and deck cuts. The farmer watches and smiles, as his eyes show increasing concern for your mental wellbeing.")
			b.p("You pretend to pull out a card and start cheering as if you got the card correct. The farmer is starting too look scared. \"Who is this freak\" he thinks to himself. You see a frown creep up on his face.")
		}
	case domain.ActionInvestingAdvice:
		if st.change > 5 {
			b.p("\"I'm here to give you something\" you whisper. \"A new beginning\"")
			b.p("You pull out your %d pounds of leftover cash and hand it to the farmer. He looks at you stunned. \"What on earth am I going to do with %d pounds?\" he whispers angrily.", st.change, st.change)
			b.p("\"Invest it.\" you say, with a grin.")
			b.p("\"Investing? Isn't that just some new generation BS?\"")
			b.p("\"No it's very controlled\" you say. \"In today's day and age you can take this cash and turn it into as much as you want. There are whole mathematical models that predict the markets nowadays.\"")
			b.p("His eyes light up. \"Mathematical you say? Well I do enjoy math. Thank you, I'll look into this. And you're sure it will make me rich?\"")
			b.p("\"Positive\" you say")
			b.p("\"Okay then. Who needs a farm then? I'm going to buy some investing equipment!\" And with that the farmer leaves his farm behind, on the search for investing equipment (a laptop).")
		} else {
			b.p("He throws it in your face")
		}
	case domain.ActionBalloonAnimals:
		if st.holds(domain.ItemBalloons) {
			st.balloonScene(&b)
		}
	case domain.ActionSelfie:
		if st.log.Path == domain.PathCabin {
			st.cabinSelfieScene(&b)
		} else {
			b.p("You give the farmer a warm smile and rummage through your backpack for your camera. You timidly pull it out and wave him over. You turn the lens towards you, and smile a big warm smile. The farmer standing nearby. Click!")
			if st.person == "Aliyah" {
				b.p("You load up the picture and hand the camera to the old man. He first looks at the picture, then at you, then back at the picture, then you. \"Elf\" he whispers, pointing at you in the picture.")
				b.p("\"No, I'm not an elf. I met them though, they're really nice.\" you whisper back.")
			}
			b.p("You load up the picture and hand the camera to the farmer.")
			b.p("He turns his attention to himself. He looks visibly disturbed, it's very clear that the isolation has taken a toll on him both physically and mentally. It seems he's just now seeing the physical effect. His lip quivers as he looks up to the sky trying to compose himself.")
			b.p("In a bout of rage he throws your camera on the floor. You pick it up and put it back in your backpack.")
		}
	case domain.ActionColourTogether:
		if st.holds(domain.ItemColoringBook) {
			if st.log.Path == domain.PathForest {
				b.p("You sit down on the grass and gesture him to sit with you. You then pull out a colouring book and take a red crayon. You hand him the box. His hand hovers over it, as if he's looking for something. After a few minutes he pulls out a black crayon and writes 'Green?' on the first page of the colouring book.")
				b.p("'Elf lost it' you write back.")
				if st.person == "Aliyah" {
					b.p("'Oh so you lost it?' The farmer writes. He can barely hold it together at his own joke.")
					b.p("'Haha very funny' you write back.")
				}
				b.p("The farmer chuckles at the thought.")
				b.p("The farmer grabs the box again and takes out blue and yellow. With a blue crayon in his left, and a yellow crayon in his right, he scribbles all over the page in his makeshift green.")
			} else {
				st.greenCrayonScene(&b)
			}
		} else {
			b.p("You decide an arts bonding session would be nice, so you look through your backpack for your colouring book and crayons.")
			b.p("\"Uh oh\" you think. \"I forgot to buy a colouring book\"")
			b.p("It's too late to do anything now! So you dedicate to the bit. You sit down, pick up a stick and start aggressively scribbling on the grass. The farmer looks at you confused. He slowly approaches you, his concern increasing with each step. You look up and notice him towering above you, like a worried parent. You gesture at him to come sit down with you.")
			b.p("He shakes his head and walks away.")
		}
	case domain.ActionPicnic:
		if st.holds(domain.ItemPicnicMat) {
			st.picnicScene(&b, false)
		} else {
			b.p("You try to mime having a picnic but the farmer looks at you like you're crazy")
		}
	}

	return b.html()
}

func (st *storyteller) turnTwo() string {
	feel := "unconvinced"
	if st.log.Guess == domain.GuessCubeCows {
		feel = "distressed"
	}

	var b pageBuilder
	b.p("The farmer still looks %s. You realize you need to try a different approach. Your second attempt begins...", feel)

	if st.holds(domain.ItemPlushie) {
		b.p("Suddenly you remember about the plushie in your bag. You kneel down and open your bag and frantically search through it. This has got to mean something you think. The farmer looks at you in shock. 'Where did she get all this energy from' he thinks.")
		b.p("Suddenly you feel fur brush against your fingers. You grab the object and yank it out of your bag, exposing it to the outside world. You lift it high above your head, showing the farmer what you found.")
		b.p("He stares a long pensive stare. His face begins to distort in shock. \"My Shami\" he whispers, tears welling up in his tired eyes. \"Where did you find her?\"")
		b.p("\"I passed by a cabin on my way here and found her in the backyard.\" you say")
		b.p("\"Shami was my very first love.\" he explains. \"She's the reason I wanted to become a farmer. My dad bought her for me so that I could understand his work. He was a farmer too you see, but not as intense as me. She's the reason I love cows, Shami's always been my favorite cow.\"")
		b.p("He starts hugging and kissing Shami. You look away because Shami's really dirty and you don't even wanna imagine what diseases this guy is gonna get.")
		b.p("\"Thank you.\" he says. \"I didn't even get to say bye to my parents. Can you believe that?\" his voice cracks.")
		b.p("\"All because of these cows! So what if animal farms happens? I treated my animals well, just like my dad did. I let go of what was most important to me all because of a delusion. I can't do this anymore.\"")
		b.p("\"Go do it.\" he says")
		b.p("\"Do what?\" you ask")
		b.p("\"Just rip the bandaid off, I need this phase of my life over with. Go expose the cows to our language. Let them share our tongue. To hell with the consequences. I'm done\" he says and walks off into the distance, clutching Shami tight as tears silently stream down his face.")
		return b.html()
	}

	switch action := st.action(1); action {
	case domain.ActionPlayCards, domain.ActionCards:
		if st.holds(domain.ItemDeckOfCards) {
			b.p("For your second attempt, you decide to pull out a deck of cards. You shuffle them and fan them out, gesturing the farmer to pick one. The farmer thinks for a bit and picks a card near the middle of the deck.")
			b.p("You play a silent game of cambio and let him win. His eyes gleam with a pride he hasn't felt in decades, but a win at cards is not enough to make him step aside.")
		} else {
			b.p("You reach into your pocket and pull out nothing. Realizing you forgot to buy cards you decide to improvise and mime shuffling the deck. You hand the invisible deck to the farmer and he stares at you in confusion. Your right hand remains in a dealers grip, you stare at him manically and point at your empty hand with your left hand, mouthing pick one.")
			b.p("The farmer hesitantly picks a card from the invisible deck. He pretends to pensively look at the card and memorize it. You take it back and perform some impressive invisible riffle shuffles and deck cuts. The farmer watches and smiles, as his eyes show increasing concern for your mental wellbeing.")
		}
	case domain.ActionInvestingAdvice:
		if st.change > 5 {
			b.p("You press your %d pounds of leftover change into his palm and whisper everything you know about compound growth and market indices. His eyebrows rise further with every word.", st.change)
			b.p("\"Mathematical models, you say?\" he mutters, already folding the notes into his coat. \"Who needs a farm then?\" And with that he marches off down the mountain in search of investing equipment (a laptop).")
		} else {
			b.p("He throws it in your face")
		}
	case domain.ActionBalloonAnimals:
		if st.holds(domain.ItemBalloons) {
			st.balloonScene(&b)
		}
	case domain.ActionSelfie:
		if st.log.Path == domain.PathCabin {
			st.cabinSelfieScene(&b)
		} else {
			b.p("Once again, you reach into your backpack and rummage through it trying to find your camera. After a few minutes of searching you realize you didn't buy a camera.")
			b.p("\"What is wrong with me today?\" you think to yourself")
			b.p("\"Oh well, here we go again\"")
			b.p("You look up at the farmer with the same maniacal smile and create a rectangle with your hands, trying to mime a camera.")
			b.p("\"Picture?\" you mouth")
			b.p("The farmer fearfully shakes his head no. You start aggressively waving your hand, gesturing to him to come over to you. When he refuses you go to him instead, still smiling that same intense smile.")
			b.p("\"Listen, M-Miss. I don't know if you just escaped a mental hospital or what, but I'm really not comfortable being around you. Are you here for my cows? W-Will they m-make you feel better? Y-You c-can go to them if you'd l-like. P-Please just l-leave me a-alone.\"")
			b.p("The farmer slowly backs up, and as soon as he gets far enough from you he starts running (as fast as an old man can) towards the shed.")
		}
	case domain.ActionColourTogether:
		if st.holds(domain.ItemColoringBook) {
			if st.log.Path == domain.PathForest {
				b.p("You sit down on the grass and gesture him to sit with you. You then pull out a colouring book and take a red crayon. You hand him the box. His hand hovers over it, as if he's looking for something. After a few minutes he pulls out a black crayon and writes 'Green?' on the first page of the colouring book.")
				b.p("He turns the book towards you, awaiting your response.")
				b.p("\"Elf lost it\" you write back.")
				if st.person == "Aliyah" {
					b.p("He turns the book towards him. \"Oh so you lost it?\" The farmer writes. He can barely hold it together at his own joke.")
					b.p("You take the book. \"Haha very funny\" you write back.")
				}
				b.p("The farmer chuckles at the thought.")
				b.p("He grabs the box again and takes out blue and yellow. With a blue crayon in his left, and a yellow crayon in his right, he scribbles all over the page in his makeshift green.")
				b.p("\"You like green?\" you write and turn the book.")
				b.p("\"I love it, it reminds me of my father. He was a farmer too.\" he wrote.")
				b.p("\"Is it cuz green is nature?\"")
				b.p("\"No it's the colour of the trolls. They grew up with me, they're actually the reason my cows can talk. It's a long story, but I'm not mad at them. They were only trying to make me happy and it was a long time ago, back then there were only 78 of them.\"")
				b.p("\"78?? Aren't there like 220 now?\" you scribble.")
				b.p("\"Yes. 228 to be exact. I helped them figure out their reproduction equation. Did you know it's logarithmic?! I've never seen that before. I tend to see how well my animals reproduce and it's usually exponential.\"")
				b.p("\"Ya, troll told me. So weird\"")
				b.p("\"Do you wanna know the equation? It is n(t) = 78 log(t). Solve this to find my age :)\" he jotted.")
				b.p("\"Haha, I'm sure you're no older than 30.\"")
				b.p("He looks at you with a deep sadness. He takes the colouring book and flips to a new page. He writes and writes for what feels like ages. Taking breaks in between to fully articulate what he wants to say. After a while he hands you the book, gets up and walks back to his shed, leaving the shovel behind.")
				b.p("\"I'm not that young though, I appreciate the flattery but it is very apparent that my life is nearing its end. You have made me reflect though. After decades without any form of connection, you've shown me the value of interaction. Who am I to deprive any living creature of such a gift. I hope all my animals will be able to have an interaction resembling ours. You can go on and talk to them. I wouldn't want anyone else to do the honour. Thank you for coming to see me, it means more than you'll ever know.\"")
			} else {
				st.greenCrayonScene(&b)
			}
		} else {
			b.p("You try to mime colouring.")
		}
	case domain.ActionPicnic:
		st.picnicScene(&b, false)
	}

	return b.html()
}

func (st *storyteller) turnThree() string {
	var b pageBuilder
	b.p("You're so close. You can tell he just needs one more push. You take a deep breath and prepare for your last attempt...")

	switch action := st.action(2); action {
	case domain.ActionPlayCards, domain.ActionCards:
		if st.holds(domain.ItemDeckOfCards) {
			b.p("For your final attempt, you decide to pull out a deck of cards. You shuffle them and fan them out, gesturing the farmer to pick one. The farmer thinks for a bit and picks a card near the middle of the deck.")
			b.p("You deal out a game of heart attack. The farmer gets so into it that when the matching cards land he slams the pile and screams. The cows don't copy him. He freezes, looks at the silent herd and realizes he has been free this whole time.")
		} else {
			b.p("Once more you mime shuffling a deck that isn't there. The farmer watches your empty hands flicking invisible cards and backs away slowly, genuinely worried now.")
		}
	case domain.ActionInvestingAdvice:
		if st.change > 5 {
			b.p("You hold out your remaining %d pounds one last time, along with every piece of investing advice you can remember. Something about the persistence wins him over. He pockets the notes, mutters about mathematical models and wanders off to buy a laptop.", st.change)
		} else {
			b.p("He throws it in your face")
		}
	case domain.ActionBalloonAnimals:
		b.p("You blow up your last balloon and twist it into a little dog. The farmer cradles it like something precious, his eyes lighting up for the first time all day. He waves you through without a word.")
	case domain.ActionSelfie:
		if st.log.Path == domain.PathCabin {
			st.cabinSelfieScene(&b)
		} else {
			b.p("You hold the camera out one final time and snap the two of you together. He stares at the picture for a long moment, at the big smile he didn't know he still had, and quietly steps aside. Human connection, it turns out, beats thirty years of silence.")
		}
	case domain.ActionColourTogether:
		if st.holds(domain.ItemColoringBook) {
			if st.log.Path == domain.PathForest {
				b.p("You open the colouring book again and he reaches straight for the green crayon. It isn't there. He looks at you, you look at him, and you both remember the elf. He shakes his head, smiling despite himself, and scribbles his makeshift green one more time.")
			} else {
				st.greenCrayonScene(&b)
			}
		} else {
			b.p("You try to mime colouring.")
		}
	case domain.ActionPicnic:
		st.picnicScene(&b, true)
	}

	return b.html()
}

// balloonScene is shared between the first two turns.
func (st *storyteller) balloonScene(b *pageBuilder) {
	b.p("You rummage through your bag again. \"Please tell me I have balloons\". Just then you feel a bit of friction as you try to move your hand. \"Bingo! I have balloons\". You yank a green one out with excitement and begin to fill it up with air.")
	b.p("The farmer turns around at the sound of you wheezing into the balloon. His eyes begin to light up more and more as the balloon gets fuller. He walks closer, intrigued at what you're about to do.")
	b.p("You tie the balloon and begin to pinch a small section near the opening. You then twist it. You then fold the balloon over and make an even bigger section, the two sides of the balloon are touching now. You twist that off as well. You repeat this a few more times, taking care not to make it pop.")
	b.p("You finally finish and hand the farmer your creation with the biggest smile.")
	b.p("\"Is this mine?\" he asks innocently")
	b.p("\"Yes! All yours!\" you reply")
	b.p("He begins to tear up as he mouths thank you. You can see it in his eyes that he's hurt. He stares at the balloon dog and reflects deeply.")
	b.p("\"I lost everything for nothing.\" he whispers. \"I wish I could go back in time and reverse this. If someone would have come and spoken to me sooner, maybe I would have realized my mistake much earlier. But I'm too far gone now.\"")
}

// cabinSelfieScene plays whenever a selfie is attempted after the cabin.
func (st *storyteller) cabinSelfieScene(b *pageBuilder) {
	b.p("You pull out your camera, take a quick picture of the two of you, and hand it over. He flicks back one photo too far and lands on the cabin you passed on the way up. His old house.")
	b.p("He stares at the weathered porch for a long time, tears gathering in the corners of his eyes. Without a word he presses the camera back into your hands, turns around and shuffles back towards the shed.")
}

// greenCrayonScene is the colouring session away from the forest, where
// the green crayon is still in the box.
func (st *storyteller) greenCrayonScene(b *pageBuilder) {
	b.p("You spread the colouring book between you and hand him the box of crayons. He takes out the green one straight away and starts filling in a meadow, slow and careful, like it's the most important job in the world.")
	b.p("Neither of you says a thing. You colour side by side until the page is done, and for a little while the farm doesn't feel lonely at all.")
}

// picnicScene is the potato meal. The final turn ends with the farmer
// leaving his oddly reflective tray behind.
func (st *storyteller) picnicScene(b *pageBuilder, finalTurn bool) {
	b.p("You lay the picnic mat out and brush the dirt off. You take a seat and gesture him to do the same.")
	b.p("His eyes light up and he runs back to his shed. He comes back with a massive tray wrapped in tin foil and places it in the middle of the picnic mat. He carefully peels off the tin foil and both of you get hit with a cloud of smoke.")
	b.p("After the smoke clears you notice the farmer prepared himself some %s.", st.traits.Potato)
	b.p("\"These are my favorite\" he says. \"I thought you might like some too!\"")
	b.p("\"Are you kidding me?!\" you say. \"This is MY WAY to consume a potato!\"")
	b.p("You sit in silence enjoying the meal.")
	b.p("\"I don't know why you're here\" the farmer starts, \"but I don't think I care. I just wanted to say thank you for sharing this meal with me. It's been a while since I've done that with someone. And to think I've been doing this all because of some cows?!\" he laughs at the absurdity of his own sentence.")

	if st.log.Guess == domain.GuessCubeCows {
		b.p("\"I don't think I want to live like this anymore\" he continues. \"Thank you for making me realize that. The cows are all yours, even though there's something not right with them. I dont even think I can milk them anymore. Maybe I'm just hallucinating, you know how old age is. But go crazy!\" he says. He slowly gets up from the picnic mat, takes his tray and returns to his shed.")
		return
	}

	b.p("\"I don't think I want to live like this anymore\" he continues. \"Thank you for making me realize that. The cows are all yours, do whatever you want with them.\" he says with a smile. \"I'm done\"")
	if finalTurn {
		b.p("He picks himself up off the picnic mat with great difficulty due to his age. He then heads off to the shed, too tired to take his tray. You sit for a bit and admire the tray. The surface is oddly reflective, almost like a mirror. \"Why would someone need a tray like this?\" you wonder.")
	} else {
		b.p("He picks himself up off the picnic mat with great difficulty due to his age. He then picks up his tray and heads back to his shed.")
	}
}
