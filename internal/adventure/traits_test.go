package adventure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTraits(t *testing.T) {
	polls := testPolls()

	aiza := ResolveTraits(polls, "Aiza")
	assert.Equal(t, "Waterbender", aiza.Bender)
	assert.Equal(t, "Roasted potatoes", aiza.Potato)
	assert.Equal(t, "Beach", aiza.Place)
	assert.Equal(t, passTrait, aiza.Movie)

	nour := ResolveTraits(polls, "Nour")
	assert.Equal(t, passTrait, nour.Bender)
}

func TestColouringSubject(t *testing.T) {
	assert.Equal(t, "Shrek and Donkey", Traits{Movie: "Shrek"}.ColouringSubject())
	assert.Equal(t, "Totoro", Traits{Movie: "My neighbor Totoro"}.ColouringSubject())
	assert.Equal(t, "Tobey Maguire", Traits{Movie: passTrait, Spider: "Tobey Maguire"}.ColouringSubject())
	assert.Equal(t, "Venom", Traits{Movie: passTrait, Spider: passTrait}.ColouringSubject())
}

func TestColouringBookName(t *testing.T) {
	assert.Equal(t, "Spiderman", Traits{Movie: passTrait}.ColouringBookName())
	assert.Equal(t, "Shrek", Traits{Movie: "Shrek"}.ColouringBookName())
}

func TestDreamActivity(t *testing.T) {
	assert.Equal(t, "at the farm", Traits{Place: passTrait}.DreamActivity())
	assert.Equal(t, "at a beach", Traits{Place: "Beach"}.DreamActivity())
	assert.Equal(t, "home in bed", Traits{Place: "Home in bed"}.DreamActivity())
}
