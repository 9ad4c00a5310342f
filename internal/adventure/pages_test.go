package adventure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/PollPeak_Go/internal/domain"
)

func departureFor(t *testing.T, person string, items []string) (*storyteller, string) {
	t.Helper()
	st := newStoryteller(testAdventures(), testPolls(), person, domain.AdventureLog{
		Items:   items,
		Path:    domain.PathForest,
		Guess:   16,
		Actions: []string{domain.ActionPlayCards, domain.ActionPlayCards, domain.ActionPlayCards},
		Slang:   "Bare",
	})
	return st, st.departure()
}

func TestDeparture(t *testing.T) {
	t.Run("leftover change is pocketed", func(t *testing.T) {
		st, body := departureFor(t, "Khadeja", []string{domain.ItemDeckOfCards})
		assert.Equal(t, 17, st.change)
		assert.Contains(t, body, "pocket your 17 of change")
	})

	t.Run("spending the whole budget leaves nothing", func(t *testing.T) {
		// 8.50 + 4.50 + 7.00 lands exactly on the budget.
		st, body := departureFor(t, "Khadeja", []string{
			domain.ItemLockPickingKit, domain.ItemColoringBook, domain.ItemGitHubAccount,
		})
		assert.Equal(t, 0, st.change)
		assert.Contains(t, body, "leave without any change")
	})

	t.Run("overspending also leaves nothing", func(t *testing.T) {
		st, body := departureFor(t, "Khadeja", []string{
			domain.ItemCamera, domain.ItemLockPickingKit,
		})
		assert.Equal(t, -1, st.change)
		assert.Contains(t, body, "leave without any change")
		assert.NotContains(t, body, "pocket")
	})
}
