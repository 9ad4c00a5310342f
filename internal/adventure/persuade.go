package adventure

import "github.com/osse101/PollPeak_Go/internal/domain"

// convincedAfter returns the persuasion turn (1-3) after which the farmer
// gives in. The outcome is fixed by what was bought, the path taken, the
// troll guess and the recorded actions; turns the farmer is already
// convinced before simply never happen.
func convincedAfter(log domain.AdventureLog, change int, bender string) int {
	// The diary entry found behind the cabin lock wins him over instantly,
	// while cabin visitors who found neither the kit nor a camera bring
	// back the plushie, which lands on turn two.
	if log.Path == domain.PathCabin && log.HasItem(domain.ItemLockPickingKit) {
		return 1
	}
	if log.Path == domain.PathCabin && !log.HasItem(domain.ItemLockPickingKit) && !log.HasItem(domain.ItemCamera) {
		return 2
	}

	if turnConvinces(log, 0, change, bender) {
		return 1
	}
	if log.Guess == domain.GuessSingleCow {
		return 1
	}

	if turnConvinces(log, 1, change, bender) {
		return 2
	}
	action := actionOr(log, 1, bender)
	if action == domain.ActionColourTogether && log.HasItem(domain.ItemColoringBook) {
		return 2
	}
	if action == domain.ActionSelfie && !log.HasItem(domain.ItemCamera) {
		return 2
	}

	// The third attempt always lands.
	return 3
}

// turnConvinces covers the actions that work on any turn.
func turnConvinces(log domain.AdventureLog, turn int, change int, bender string) bool {
	action := actionOr(log, turn, bender)
	if action == domain.ActionInvestingAdvice && change > 5 {
		return true
	}
	return action == domain.ActionPicnic
}

// actionOr substitutes the person's bender type when no action was
// recorded for a turn.
func actionOr(log domain.AdventureLog, turn int, bender string) string {
	if a := log.Action(turn); a != "" {
		return a
	}
	return bender
}
